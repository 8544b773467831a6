// Package textutil provides width-aware text helpers for laying labels
// into fixed cell regions.
package textutil

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate fits s into maxWidth columns, ending with an ellipsis when
// anything had to be cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	avail := maxWidth - VisualWidth(ellipsis)
	if avail < 0 {
		return ellipsis
	}

	var out []rune
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + ellipsis
}

// PadRight extends s with spaces to exactly targetWidth columns,
// truncating when it is already wider.
func PadRight(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-w)
}
