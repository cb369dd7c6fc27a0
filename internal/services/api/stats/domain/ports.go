package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	UserStats(ctx context.Context, in UserStatsInput) (UserStatsResponse, error)
	TopChatters(ctx context.Context, in TopChattersInput) (Leaderboard, error)
	TopEmojis(ctx context.Context, in TopEmojisInput) (Leaderboard, error)
	TopReactions(ctx context.Context, in TopReactionsInput) (Leaderboard, error)
	Hourly(ctx context.Context, in HourlyInput) (Hourly, error)
}
