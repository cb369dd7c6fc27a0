package module

import (
	"context"

	"chatty/internal/services/api/stats/domain"
	statssvc "chatty/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc statssvc.Service }

// UserStats returns point stats for one member
func (a adaptStatsPort) UserStats(ctx context.Context, in domain.UserStatsInput) (domain.UserStatsResponse, error) {
	return a.svc.UserStats(ctx, in)
}

// TopChatters returns the message leaderboard
func (a adaptStatsPort) TopChatters(ctx context.Context, in domain.TopChattersInput) (domain.Leaderboard, error) {
	return a.svc.TopChatters(ctx, in)
}

// TopEmojis returns the emoji leaderboard
func (a adaptStatsPort) TopEmojis(ctx context.Context, in domain.TopEmojisInput) (domain.Leaderboard, error) {
	return a.svc.TopEmojis(ctx, in)
}

// TopReactions returns the reaction leaderboard
func (a adaptStatsPort) TopReactions(ctx context.Context, in domain.TopReactionsInput) (domain.Leaderboard, error) {
	return a.svc.TopReactions(ctx, in)
}

// Hourly returns the hourly histogram
func (a adaptStatsPort) Hourly(ctx context.Context, in domain.HourlyInput) (domain.Hourly, error) {
	return a.svc.Hourly(ctx, in)
}
