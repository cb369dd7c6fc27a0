// Package service contains activity ingest workflows
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"chatty/internal/core/emojiscan"
	"chatty/internal/modkit/repokit"
	"chatty/internal/platform/logger"
	"chatty/internal/platform/store"
	"chatty/internal/services/api/activity/domain"
	bdomain "chatty/internal/services/buckets/domain"
	"chatty/internal/services/buckets/repo"
)

// Service defines the activity ingest contract
type Service interface {
	domain.ServicePort
}

// Svc implements the activity ingest service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	ch  store.Clickhouse
	log logger.Logger
	now func() time.Time
}

// Option tweaks optional service wiring
type Option func(*Svc)

// WithClickhouse enables the append only event archive
func WithClickhouse(ch store.Clickhouse) Option {
	return func(s *Svc) { s.ch = ch }
}

// WithLogger sets the service logger
func WithLogger(log logger.Logger) Option {
	return func(s *Svc) { s.log = log }
}

// WithClock overrides the wall clock, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// New constructs an activity ingest service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("activity.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("activity.Service requires a non nil Repo binder")
	}
	s := &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// RecordMessage counts one message for the author and any emoji the content carries
// The message bucket and the derived emoji buckets commit together
func (s *Svc) RecordMessage(ctx context.Context, in domain.MessageInput) (domain.RecordResult, error) {
	now := s.now()
	msgKey := bdomain.Key{
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		UserID:    in.UserID,
		Kind:      bdomain.KindMessage,
	}.At(now)

	counts := emojiscan.Counts(in.Content)
	if len(counts) == 0 {
		if err := s.Repo.UpsertIncrement(ctx, msgKey, 1); err != nil {
			return domain.RecordResult{}, err
		}
		s.archive(ctx, now, "message", in.GuildID, in.ChannelID, in.UserID, "", "")
		return domain.RecordResult{Buckets: 1}, nil
	}

	// stable write order keeps lock ordering consistent across writers
	names := make([]string, 0, len(counts))
	for e := range counts {
		names = append(names, e)
	}
	sort.Strings(names)

	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.UpsertIncrement(ctx, msgKey, 1); err != nil {
			return err
		}
		for _, e := range names {
			k := bdomain.Key{
				GuildID:   in.GuildID,
				ChannelID: in.ChannelID,
				UserID:    in.UserID,
				Kind:      bdomain.KindEmoji,
				Emoji:     e,
			}.At(now)
			if err := r.UpsertIncrement(ctx, k, int64(counts[e])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.RecordResult{}, err
	}
	s.archive(ctx, now, "message", in.GuildID, in.ChannelID, in.UserID, "", "")
	return domain.RecordResult{Buckets: 1 + len(names)}, nil
}

// RecordEmoji counts explicit emoji usage, Count defaults to 1
func (s *Svc) RecordEmoji(ctx context.Context, in domain.EmojiInput) (domain.RecordResult, error) {
	now := s.now()
	amount := in.Count
	if amount <= 0 {
		amount = 1
	}
	k := bdomain.Key{
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		UserID:    in.UserID,
		Kind:      bdomain.KindEmoji,
		Emoji:     in.Emoji,
	}.At(now)
	if err := s.Repo.UpsertIncrement(ctx, k, amount); err != nil {
		return domain.RecordResult{}, err
	}
	s.archive(ctx, now, "emoji", in.GuildID, in.ChannelID, in.UserID, "", in.Emoji)
	return domain.RecordResult{Buckets: 1}, nil
}

// RecordReaction counts one reaction from reactor to reactee
func (s *Svc) RecordReaction(ctx context.Context, in domain.ReactionInput) (domain.RecordResult, error) {
	now := s.now()
	k := bdomain.Key{
		GuildID:     in.GuildID,
		ChannelID:   in.ChannelID,
		UserID:      in.ReactorID,
		OtherUserID: in.ReacteeID,
		Kind:        bdomain.KindReaction,
		Emoji:       in.Emoji,
	}.At(now)
	if err := s.Repo.UpsertIncrement(ctx, k, 1); err != nil {
		return domain.RecordResult{}, err
	}
	s.archive(ctx, now, "reaction", in.GuildID, in.ChannelID, in.ReactorID, in.ReacteeID, in.Emoji)
	return domain.RecordResult{Buckets: 1}, nil
}

// archive appends the raw event when the columnar seam is wired
// row shape: id, kind, guild_id, channel_id, user_id, other_user_id, emoji, at
// failures never affect the counter write, they are logged and dropped
func (s *Svc) archive(ctx context.Context, at time.Time, kind, guild, channel, user, other, emoji string) {
	if s.ch == nil {
		return
	}
	row := []any{uuid.NewString(), kind, guild, channel, user, other, emoji, at.UTC()}
	if err := s.ch.Insert(ctx, "activity_events", [][]any{row}); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("activity archive insert failed")
	}
}
