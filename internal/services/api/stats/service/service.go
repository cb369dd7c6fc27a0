// Package service contains stats workflows over the bucket store
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"chatty/internal/core/rank"
	"chatty/internal/modkit/repokit"
	"chatty/internal/services/api/stats/domain"
	bdomain "chatty/internal/services/buckets/domain"
	"chatty/internal/services/buckets/repo"
)

// reaction and emoji boards cap at 20 rows, chatters are capped by the caller
const topEmojiLimit = 20

// Placeholder lines for empty boards
const (
	emptyChatters  = "No messages have been sent yet"
	emptyEmojis    = "No emojis have been used yet"
	emptyReactions = "No reactions have been given yet"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// Option tweaks optional service wiring
type Option func(*Svc)

// WithClock overrides the wall clock, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// New constructs a stats service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("stats.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	s := &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// since resolves the scope period into a lower day bound, nil for alltime
func (s *Svc) since(sc domain.Scope) *time.Time {
	p := bdomain.Period(sc.Period)
	if !p.Valid() {
		p = bdomain.PeriodAllTime
	}
	return p.Since(s.now())
}

// UserStats returns one member's message totals, NoData when nothing matched
func (s *Svc) UserStats(ctx context.Context, in domain.UserStatsInput) (domain.UserStatsResponse, error) {
	f := bdomain.Filter{
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		UserID:    in.UserID,
		Kind:      bdomain.KindMessage,
	}
	since := s.since(in.Scope)

	total, err := s.Repo.SumCounters(ctx, f, since)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}
	if total == 0 {
		return domain.UserStatsResponse{NoData: true}, nil
	}

	st := &domain.UserStats{
		Total:   total,
		Summary: fmt.Sprintf("%d %s", total, rank.Unit(total, "message")),
	}
	if ts, err := s.Repo.LastUpdated(ctx, f, since); err != nil {
		return domain.UserStatsResponse{}, err
	} else if ts != nil {
		st.LastActive = ts.UTC().Format(time.RFC3339)
	}
	return domain.UserStatsResponse{Stats: st}, nil
}

// TopChatters ranks members by message count
func (s *Svc) TopChatters(ctx context.Context, in domain.TopChattersInput) (domain.Leaderboard, error) {
	f := bdomain.Filter{GuildID: in.GuildID, ChannelID: in.ChannelID, Kind: bdomain.KindMessage}
	rows, err := s.Repo.GroupSum(ctx, f, bdomain.GroupByUser, s.since(in.Scope), in.Limit)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return board(rows, func(label string) string { return label }, "message", emptyChatters), nil
}

// TopEmojis ranks emoji by use count, guild wide or for one member
func (s *Svc) TopEmojis(ctx context.Context, in domain.TopEmojisInput) (domain.Leaderboard, error) {
	f := bdomain.Filter{
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		UserID:    in.UserID,
		Kind:      bdomain.KindEmoji,
	}
	rows, err := s.Repo.GroupSum(ctx, f, bdomain.GroupByEmoji, s.since(in.Scope), topEmojiLimit)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return board(rows, rank.EmojiLabel, "use", emptyEmojis), nil
}

// TopReactions ranks reaction emoji, optionally narrowed by giver or receiver
func (s *Svc) TopReactions(ctx context.Context, in domain.TopReactionsInput) (domain.Leaderboard, error) {
	f := bdomain.Filter{
		GuildID:     in.GuildID,
		ChannelID:   in.ChannelID,
		UserID:      in.ReactorID,
		OtherUserID: in.ReacteeID,
		Kind:        bdomain.KindReaction,
	}
	rows, err := s.Repo.GroupSum(ctx, f, bdomain.GroupByEmoji, s.since(in.Scope), topEmojiLimit)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return board(rows, rank.EmojiLabel, "reaction", emptyReactions), nil
}

// Hourly returns the raw UTC histogram, timezone remap happens at the edge
func (s *Svc) Hourly(ctx context.Context, in domain.HourlyInput) (domain.Hourly, error) {
	f := bdomain.Filter{
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		UserID:    in.UserID,
		Kind:      bdomain.KindMessage,
	}
	since := s.since(in.Scope)

	hist, err := s.Repo.HourlySums(ctx, f, since)
	if err != nil {
		return domain.Hourly{}, err
	}
	out := domain.Hourly{Hours: hist, Total: hist.Total()}

	if in.UserID != "" && out.Total > 0 {
		guild := f
		guild.UserID = ""
		all, err := s.Repo.SumCounters(ctx, guild, since)
		if err != nil {
			return domain.Hourly{}, err
		}
		if all > 0 {
			pct := math.Round(float64(out.Total)/float64(all)*1000) / 10
			out.SharePct = &pct
		}
	}
	return out, nil
}

// board converts grouped sums into a rendered leaderboard
func board(rows []bdomain.GroupRow, label func(string) string, unit, empty string) domain.Leaderboard {
	out := domain.Leaderboard{Rows: make([]domain.LeaderboardRow, 0, len(rows))}
	entries := make([]rank.Entry, 0, len(rows))
	for _, r := range rows {
		out.Rows = append(out.Rows, domain.LeaderboardRow{Label: r.Label, Count: r.Sum})
		entries = append(entries, rank.Entry{Label: label(r.Label), Count: r.Sum})
	}
	out.Lines = rank.Lines(entries, unit, empty)
	out.Board = rank.Board(entries, unit, empty)
	return out
}
