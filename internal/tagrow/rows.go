package tagrow

// Normalize deduplicates tags by exact match, keeping the first occurrence
// of each and preserving order.
func Normalize(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// RowStartIndex returns the index of the first element that would start row
// maxRows+1, given each element's inline-start offset. An element starts a
// new row when it sits no farther along the inline axis than its
// predecessor: offsets strictly advance within a row, so an equal offset
// can only mean the element wrapped. In a right-to-left layout the
// comparison inverts, since inline progress runs toward smaller offsets.
// When everything fits within maxRows rows the returned index is
// len(offsets).
//
// The offset comparison is the only geometric fact the algorithm relies on.
// Row heights, gaps, and element widths never enter into it.
func RowStartIndex(offsets []float64, rtl bool, maxRows int) int {
	rows := 0
	for i, off := range offsets {
		startsRow := i == 0
		if i > 0 {
			if rtl {
				startsRow = off >= offsets[i-1]
			} else {
				startsRow = off <= offsets[i-1]
			}
		}
		if startsRow {
			rows++
			if rows > maxRows {
				return i
			}
		}
	}
	return len(offsets)
}
