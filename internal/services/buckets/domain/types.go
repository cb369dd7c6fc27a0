// Package domain holds the counter bucket model shared by the write and read paths
package domain

import (
	"time"

	ptime "chatty/internal/platform/time"
)

// EventKind discriminates what a bucket counts
type EventKind string

// Bucket kinds
const (
	KindMessage  EventKind = "message"
	KindEmoji    EventKind = "emoji"
	KindReaction EventKind = "reaction"
)

// Valid reports whether k is a known kind
func (k EventKind) Valid() bool {
	switch k {
	case KindMessage, KindEmoji, KindReaction:
		return true
	}
	return false
}

// Period names a lookback window anchored at the current UTC day
type Period string

// Supported lookback windows
const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodYear    Period = "year"
	PeriodAllTime Period = "alltime"
)

// Valid reports whether p is a known period
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAllTime:
		return true
	}
	return false
}

// Since returns the inclusive lower day bound for the period, or nil for alltime
// The bound is computed from now truncated to the UTC day so that a request at
// 23:59 and one at 00:01 the next minute cover the same set of whole days
func (p Period) Since(now time.Time) *time.Time {
	day := now.UTC().Truncate(24 * time.Hour)
	var since time.Time
	switch p {
	case PeriodWeek:
		since = day.AddDate(0, 0, -7)
	case PeriodMonth:
		since = day.AddDate(0, -1, 0)
	case PeriodYear:
		since = day.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return ptime.Ptr(since)
}

// Key identifies one counter bucket
// Optional dimensions use the empty string so the identity stays a plain
// tuple: message buckets carry no emoji and no other user, emoji buckets
// carry no other user, reaction buckets carry the reactee in OtherUserID
type Key struct {
	GuildID     string
	ChannelID   string
	UserID      string
	OtherUserID string
	Kind        EventKind
	Emoji       string
	Day         time.Time // UTC midnight
	Hour        int       // 0..23
}

// At fills Day and Hour from an instant, normalizing to UTC
func (k Key) At(t time.Time) Key {
	u := t.UTC()
	k.Day = u.Truncate(24 * time.Hour)
	k.Hour = u.Hour()
	return k
}

// Filter narrows aggregate queries
// Empty string fields match any value rather than the empty sentinel; the
// query shapes used by the read path never need to select on a sentinel
type Filter struct {
	GuildID     string
	ChannelID   string
	UserID      string
	OtherUserID string
	Kind        EventKind
	Emoji       string
}

// GroupField selects the dimension for grouped sums
type GroupField string

// Groupable dimensions
const (
	GroupByUser  GroupField = "user_id"
	GroupByEmoji GroupField = "emoji"
)

// GroupRow is one grouped sum, ordered by Sum descending
type GroupRow struct {
	Label string
	Sum   int64
}
