// Package domain holds DTOs for stats http and service contracts
package domain

// Scope narrows a query to a guild with optional channel and lookback period
// Period accepts week, month, year or alltime and defaults to alltime
type Scope struct {
	GuildID   string `json:"guild_id" validate:"required,min=1,max=32" example:"102837465920137428"`
	ChannelID string `json:"channel_id,omitempty" validate:"omitempty,min=1,max=32" example:"102837465920137430"`
	Period    string `json:"period,omitempty" validate:"omitempty,oneof=week month year alltime" example:"month"`
}

// UserStatsInput asks for one member's message totals
type UserStatsInput struct {
	Scope
	UserID string `json:"user_id" validate:"required,min=1,max=32" example:"102837465920137431"`
}

// UserStats is the point stats payload, absent entirely when nothing matched
type UserStats struct {
	Total      int64  `json:"total" example:"1234"`
	LastActive string `json:"last_active,omitempty" example:"2025-06-15T14:42:07Z"`
	Summary    string `json:"summary" example:"1234 messages"`
}

// UserStatsResponse wraps point stats with an explicit no-data marker
type UserStatsResponse struct {
	NoData bool       `json:"no_data" example:"false"`
	Stats  *UserStats `json:"stats"`
}

// TopChattersInput asks for the message leaderboard
// Limit of zero means unbounded
type TopChattersInput struct {
	Scope
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// TopEmojisInput asks for the emoji leaderboard, optionally for one member
type TopEmojisInput struct {
	Scope
	UserID string `json:"user_id,omitempty" validate:"omitempty,min=1,max=32" example:"102837465920137431"`
}

// TopReactionsInput asks for the reaction leaderboard
// ReactorID and ReacteeID narrow by who gave or received the reaction
type TopReactionsInput struct {
	Scope
	ReactorID string `json:"reactor_id,omitempty" validate:"omitempty,min=1,max=32" example:"102837465920137431"`
	ReacteeID string `json:"reactee_id,omitempty" validate:"omitempty,min=1,max=32" example:"102837465920137432"`
}

// LeaderboardRow is one ranked entry
type LeaderboardRow struct {
	Label string `json:"label" example:"102837465920137431"`
	Count int64  `json:"count" example:"42"`
}

// Leaderboard carries ranked entries plus render-ready lines for thin clients
// Lines always holds at least one line, a placeholder when Rows is empty
type Leaderboard struct {
	Rows  []LeaderboardRow `json:"rows"`
	Lines []string         `json:"lines"`
	Board string           `json:"board"`
}

// HourlyInput asks for an hourly activity histogram
// UserID empty means guild wide; TZOffset is minutes east of UTC
type HourlyInput struct {
	Scope
	UserID   string `json:"user_id,omitempty" validate:"omitempty,min=1,max=32" example:"102837465920137431"`
	TZOffset int    `json:"tz_offset,omitempty" validate:"omitempty,min=-840,max=840" example:"-300"`
}

// Hourly is the histogram payload, hours indexed 0..23 local to TZOffset
// SharePct is only set for user scoped queries with guild activity present
type Hourly struct {
	Hours    [24]int64 `json:"hours"`
	Total    int64     `json:"total" example:"17"`
	SharePct *float64  `json:"share_pct,omitempty" example:"12.5"`
}
