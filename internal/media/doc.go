// Package media models the playable resources the rest of chorus
// coordinates around: the Resource contract a playback controller binds to,
// the process-wide Coordinator that keeps at most one resource audible, and
// the PropertyStore that remembers per-media flags across sessions.
package media
