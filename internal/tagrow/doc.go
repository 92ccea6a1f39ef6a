// Package tagrow lays out a track's tag list as wrapped rows with a cap on
// how many rows show while collapsed. The row-counting algorithm is pure and
// direction-aware; measurement is abstracted behind an Inspector so the
// engine itself never touches the renderer.
package tagrow
