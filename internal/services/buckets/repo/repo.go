// Package repo provides postgres access for activity counter buckets
package repo

import (
	"context"
	"fmt"
	"time"

	"chatty/internal/core/hourshift"
	"chatty/internal/modkit/repokit"
	perr "chatty/internal/platform/errors"
	"chatty/internal/platform/store"
	"chatty/internal/services/buckets/domain"
)

// Repo is the persistence surface shared by the record and stats services
type Repo interface {
	// UpsertIncrement adds amount to the bucket at key, creating it at amount
	// when absent. One statement, so concurrent writers never lose counts
	UpsertIncrement(ctx context.Context, key domain.Key, amount int64) error

	// SumCounters totals counters matching f with day >= since (nil since means all time)
	SumCounters(ctx context.Context, f domain.Filter, since *time.Time) (int64, error)

	// LastUpdated returns the newest bucket write matching f, nil when nothing matches
	LastUpdated(ctx context.Context, f domain.Filter, since *time.Time) (*time.Time, error)

	// GroupSum returns per-group totals ordered by total desc then label asc
	// limit <= 0 means no limit
	GroupSum(ctx context.Context, f domain.Filter, by domain.GroupField, since *time.Time, limit int) ([]domain.GroupRow, error)

	// HourlySums returns totals per raw UTC hour matching f
	HourlySums(ctx context.Context, f domain.Filter, since *time.Time) (hourshift.Histogram, error)

	// EnsureSchema creates the bucket table and indexes if missing
	EnsureSchema(ctx context.Context) error
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

var schema = []string{
	`create table if not exists activity_buckets (
	guild_id text not null,
	channel_id text not null,
	user_id text not null,
	other_user_id text not null default '',
	kind text not null,
	emoji text not null default '',
	day date not null,
	hour smallint not null,
	counter bigint not null default 0,
	updated_at timestamptz not null default now(),
	primary key (guild_id, channel_id, user_id, other_user_id, kind, emoji, day, hour)
)`,
	`create index if not exists activity_buckets_guild_kind_day_idx
	on activity_buckets (guild_id, kind, day)`,
}

func (r *queries) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := store.Exec(ctx, r.q, stmt); err != nil {
			return perr.FromPostgres(err, "ensure activity_buckets")
		}
	}
	return nil
}

func (r *queries) UpsertIncrement(ctx context.Context, key domain.Key, amount int64) error {
	const sql = `
insert into activity_buckets
(guild_id, channel_id, user_id, other_user_id, kind, emoji, day, hour, counter, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
on conflict (guild_id, channel_id, user_id, other_user_id, kind, emoji, day, hour)
do update set counter = activity_buckets.counter + excluded.counter, updated_at = now()
`
	// insert or update, either way exactly one row
	err := store.ExecOne(ctx, r.q, sql,
		key.GuildID, key.ChannelID, key.UserID, key.OtherUserID,
		string(key.Kind), key.Emoji, key.Day, key.Hour, amount,
	)
	return perr.FromPostgresWithField(err, "bucket upsert")
}

// whereFilter matches any value on empty string fields and skips the day
// bound on a nil since. Args $1..$7 in Filter field order then since
const whereFilter = `
where guild_id = $1
and ($2 = '' or channel_id = $2)
and ($3 = '' or user_id = $3)
and ($4 = '' or other_user_id = $4)
and ($5 = '' or kind = $5)
and ($6 = '' or emoji = $6)
and ($7::date is null or day >= $7)
`

func filterArgs(f domain.Filter, since *time.Time) []any {
	return []any{f.GuildID, f.ChannelID, f.UserID, f.OtherUserID, string(f.Kind), f.Emoji, since}
}

func (r *queries) SumCounters(ctx context.Context, f domain.Filter, since *time.Time) (int64, error) {
	sql := `select coalesce(sum(counter), 0) from activity_buckets` + whereFilter
	n, err := store.Scalar[int64](ctx, r.q, sql, filterArgs(f, since)...)
	return n, perr.FromPostgres(err, "sum counters")
}

func (r *queries) LastUpdated(ctx context.Context, f domain.Filter, since *time.Time) (*time.Time, error) {
	sql := `select max(updated_at) from activity_buckets` + whereFilter
	ts, err := store.Scalar[*time.Time](ctx, r.q, sql, filterArgs(f, since)...)
	return ts, perr.FromPostgres(err, "last updated")
}

func groupColumn(by domain.GroupField) (string, error) {
	switch by {
	case domain.GroupByUser:
		return "user_id", nil
	case domain.GroupByEmoji:
		return "emoji", nil
	}
	return "", perr.InvalidArgf("unknown group field %q", by)
}

func (r *queries) GroupSum(
	ctx context.Context,
	f domain.Filter,
	by domain.GroupField,
	since *time.Time,
	limit int,
) ([]domain.GroupRow, error) {
	col, err := groupColumn(by)
	if err != nil {
		return nil, err
	}
	// label asc breaks ties so equal totals list in a stable order
	sql := fmt.Sprintf(`select %s, sum(counter) as total from activity_buckets`, col) +
		whereFilter +
		fmt.Sprintf(`group by %s
order by total desc, %s asc
`, col, col)
	if limit > 0 {
		sql += fmt.Sprintf("limit %d\n", limit)
	}

	rowsOut, err := store.Many(ctx, r.q, func(row store.Row) (domain.GroupRow, error) {
		var gr domain.GroupRow
		return gr, row.Scan(&gr.Label, &gr.Sum)
	}, sql, filterArgs(f, since)...)
	return rowsOut, perr.FromPostgres(err, "group sum")
}

func (r *queries) HourlySums(
	ctx context.Context,
	f domain.Filter,
	since *time.Time,
) (hourshift.Histogram, error) {
	sql := `select hour, sum(counter) as total from activity_buckets` +
		whereFilter + `group by hour
order by hour asc
`
	type hourSum struct {
		hour  int
		total int64
	}
	var hist hourshift.Histogram
	sums, err := store.Many(ctx, r.q, func(row store.Row) (hourSum, error) {
		var hs hourSum
		return hs, row.Scan(&hs.hour, &hs.total)
	}, sql, filterArgs(f, since)...)
	if err != nil {
		return hist, perr.FromPostgres(err, "hourly sums")
	}
	for _, hs := range sums {
		if hs.hour >= 0 && hs.hour < len(hist) {
			hist[hs.hour] = hs.total
		}
	}
	return hist, nil
}
