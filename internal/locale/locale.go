// Package locale maps message keys to display text. The core of chorus
// never formats user-visible strings itself; it asks a Localizer so that
// message catalogs can be swapped without touching playback or layout code.
package locale

import (
	_ "embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed messages/en.toml
var englishMessages []byte

// Localizer resolves message keys with optional template data.
type Localizer struct {
	loc *i18n.Localizer
}

// New creates a Localizer for the given BCP 47 language tags, falling back
// to English. Unknown tags are ignored rather than rejected.
func New(langs ...string) *Localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	// The English catalog is compiled in; additional languages would be
	// loaded from the config directory here.
	bundle.MustParseMessageFileBytes(englishMessages, "en.toml")

	return &Localizer{
		loc: i18n.NewLocalizer(bundle, append(langs, language.English.String())...),
	}
}

// T resolves a message key with the given template data. A missing key
// degrades silently: the key itself is returned so the UI still renders.
func (l *Localizer) T(key string, data map[string]any) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}

// TCount resolves a message key with pluralization based on count.
func (l *Localizer) TCount(key string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		return key
	}
	return msg
}
