// Package emojiscan extracts emoji from raw message content and
// pre-aggregates them per distinct emoji
//
// The write path records one bucket increment per distinct emoji, not one
// per occurrence, so counting happens here before any store round-trip.
// Custom platform emoji keep their full <a:name:id> tag as the bucket
// dimension, unicode emoji are NFC normalized so visually identical
// sequences share one key
package emojiscan

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// customEmoji matches platform custom emoji tags, animated or not
var customEmoji = regexp.MustCompile(`<a?:\w+:\d{17,19}>`)

const (
	vs16   = "️"
	keycap = "⃣"
)

// Counts returns occurrences per distinct emoji in content
//
// The returned map is nil-safe to range over; an empty or emoji-free
// string yields an empty map
func Counts(content string) map[string]int {
	out := make(map[string]int)
	if content == "" {
		return out
	}

	for _, tag := range customEmoji.FindAllString(content, -1) {
		out[tag]++
	}
	// strip tags so their name/id runes are not rescanned
	rest := customEmoji.ReplaceAllString(content, " ")

	// grapheme segmentation keeps ZWJ joins, variation selectors, skin
	// tones, keycaps and regional indicator pairs in one cluster
	g := uniseg.NewGraphemes(rest)
	for g.Next() {
		if key, ok := emojiKey(norm.NFC.String(g.Str())); ok {
			out[key]++
		}
	}
	return out
}

// emojiKey reports whether a grapheme cluster is an emoji and returns the
// fully qualified form as the bucket key. Text-style variants missing
// VS16 (bare © or a digit+keycap without the selector) collapse onto
// their qualified twin so visually identical input shares one bucket
func emojiKey(cluster string) (string, bool) {
	if _, err := gomoji.GetInfo(cluster); err == nil {
		return cluster, true
	}
	if strings.Contains(cluster, vs16) {
		return "", false
	}
	var qualified string
	if strings.HasSuffix(cluster, keycap) {
		qualified = strings.TrimSuffix(cluster, keycap) + vs16 + keycap
	} else {
		qualified = cluster + vs16
	}
	if _, err := gomoji.GetInfo(qualified); err == nil {
		return qualified, true
	}
	return "", false
}
