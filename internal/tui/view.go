package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chorus/internal/playback"
	"chorus/internal/tagrow"
	"chorus/internal/tui/styles"
	"chorus/internal/util"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		m.list.View(),
		m.viewNowPlaying(),
	}
	if tags := m.viewTagRow(); tags != "" {
		sections = append(sections, tags)
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewNowPlaying renders the playback pane: track line, progress bar, and
// any coordinator status message.
func (m Model) viewNowPlaying() string {
	width := m.width - horizontalMargin

	if !m.ctrl.Bound() || m.current == nil {
		return styles.NowPlayingBox.Width(width).Render(
			styles.Muted.Render(m.loc.T("nothing_playing", nil)))
	}

	snap := m.ctrl.Snapshot()

	track := styles.TrackTitle.Render(m.current.Title)
	if m.current.Artist != "" {
		track += styles.TrackArtist.Render(" · " + m.current.Artist)
	}

	status := statusIndicator(snap.Status)
	header := lipgloss.NewStyle().
		Foreground(styles.StatusColor(snap.Status.String())).
		Render(status) + " " + track
	header = util.TruncateANSI(header, width-2)

	var lines []string
	lines = append(lines, header)

	barWidth := width - 16 // room for the time display
	if barWidth > 4 {
		frac := 0.0
		if snap.Duration > 0 {
			frac = snap.CurrentTime / snap.Duration
		}
		times := styles.TimeDisplay.Render(
			fmt.Sprintf("%s / %s", formatTime(snap.CurrentTime), formatTime(snap.Duration)))
		lines = append(lines, progressBar(frac, barWidth)+" "+times)
	}

	switch snap.Status {
	case playback.StatusLoading:
		lines = append(lines, styles.Muted.Render(m.loc.T("status_loading", nil)))
	case playback.StatusPlayed:
		lines = append(lines, styles.Muted.Render(m.loc.T("status_replay", nil)))
	}
	if msg := m.coord.StatusMessage(); msg != "" {
		lines = append(lines, styles.StatusMessage.Render(msg))
	}
	if m.err != nil {
		lines = append(lines, styles.Error.Render(m.err.Error()))
	}

	return styles.NowPlayingBox.Width(width).Render(strings.Join(lines, "\n"))
}

// viewTagRow flows the visible tag chips into rows and appends the
// expand/collapse control.
func (m Model) viewTagRow() string {
	visible := m.engine.VisibleTags()
	if len(visible) == 0 {
		return ""
	}
	width := m.width - horizontalMargin

	chips := make([]string, len(visible))
	for i, tag := range visible {
		style := styles.TagChip
		if i == m.tagFocus {
			style = styles.TagChipFocused
		}
		chips[i] = style.Render(tag)
	}

	var control string
	if hidden := m.engine.HiddenCount(); hidden > 0 {
		control = styles.TagToggle.Render(
			m.loc.TCount("tags_show_more", hidden, nil))
	} else if m.engine.Expanded() && m.engine.HasOverflow() {
		control = styles.TagToggle.Render(m.loc.T("tags_show_less", nil))
	}
	if control != "" {
		chips = append(chips, control)
	}

	return flowChips(chips, width)
}

// flowChips wraps rendered chips into lines that fit the container width,
// mirroring the flow the layout inspector models.
func flowChips(chips []string, width int) string {
	var rows []string
	var row strings.Builder
	rowWidth := 0

	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if rowWidth > 0 && rowWidth+1+w > width {
			rows = append(rows, row.String())
			row.Reset()
			rowWidth = 0
		}
		if rowWidth > 0 {
			row.WriteString(" ")
			rowWidth++
		}
		row.WriteString(chip)
		rowWidth += w
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// tagRowHeight estimates the lines the tag row occupies, for sizing the
// list above it.
func tagRowHeight(engine *tagrow.Engine) int {
	if len(engine.VisibleTags()) == 0 {
		return 0
	}
	if engine.Expanded() {
		return 2
	}
	return 1
}

// statusIndicator returns the icon shown next to the track title.
func statusIndicator(s playback.Status) string {
	switch s {
	case playback.StatusPlaying:
		return "▶"
	case playback.StatusLoading:
		return "◌"
	case playback.StatusPlayed:
		return "↺"
	default:
		return "⏸"
	}
}

// formatTime renders seconds as m:ss, with an hour field once it matters.
func formatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	min := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%d:%02d", min, sec)
}

// progressBar renders a filled/empty bar for a playback fraction.
func progressBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return styles.ProgressFilled.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}
