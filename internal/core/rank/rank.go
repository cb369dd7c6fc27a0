// Package rank turns aggregated counter rows into ordered, padded,
// human readable leaderboard lines
//
// Everything here is pure so the chat frontend can render the returned
// strings verbatim
package rank

import (
	"fmt"
	"regexp"
	"strings"
)

// Entry is one leaderboard row before formatting
type Entry struct {
	Label string
	Count int64
}

// customEmojiName pulls the :name: out of a platform custom emoji tag
// like <a:partyparrot:123456789012345678>
var customEmojiName = regexp.MustCompile(`:(?P<name>[^\d:]+):`)

// EmojiLabel returns a display label for an emoji dimension value
// custom emoji tags collapse to their inline-code name, unicode emoji
// pass through unchanged
func EmojiLabel(emoji string) string {
	m := customEmojiName.FindStringSubmatch(emoji)
	if m == nil {
		return emoji
	}
	return "`" + m[1] + "`"
}

// Unit returns the singular unit at exactly one, plural otherwise
// including zero
func Unit(count int64, unit string) string {
	if count == 1 {
		return unit
	}
	return unit + "s"
}

// Pluralize renders count with its unit
func Pluralize(count int64, unit string) string {
	return fmt.Sprintf("%d %s", count, Unit(count, unit))
}

// Lines renders entries as 1-based numbered rows
//
// The row marker is ` #N ` inside backticks. With ten or more rows the
// marker pads to three characters so #1 aligns under #10, otherwise two.
// An empty leaderboard renders exactly one explanatory line and never an
// empty slice
func Lines(entries []Entry, unit, emptyLine string) []string {
	if len(entries) == 0 {
		return []string{emptyLine}
	}

	width := 2
	if len(entries) >= 10 {
		width = 3
	}

	out := make([]string, 0, len(entries))
	for i, e := range entries {
		marker := fmt.Sprintf("%*s", width, fmt.Sprintf("#%d", i+1))
		out = append(out, fmt.Sprintf("` %s ` %s - **%d** %s", marker, e.Label, e.Count, Unit(e.Count, unit)))
	}
	return out
}

// Board is a convenience that joins Lines with newlines
func Board(entries []Entry, unit, emptyLine string) string {
	return strings.Join(Lines(entries, unit, emptyLine), "\n")
}
