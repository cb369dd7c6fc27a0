package module

import (
	"context"

	"chatty/internal/services/api/activity/domain"
	activitysvc "chatty/internal/services/api/activity/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptActivityPort struct{ svc activitysvc.Service }

// RecordMessage counts a sent message
func (a adaptActivityPort) RecordMessage(ctx context.Context, in domain.MessageInput) (domain.RecordResult, error) {
	return a.svc.RecordMessage(ctx, in)
}

// RecordEmoji counts emoji usage
func (a adaptActivityPort) RecordEmoji(ctx context.Context, in domain.EmojiInput) (domain.RecordResult, error) {
	return a.svc.RecordEmoji(ctx, in)
}

// RecordReaction counts a reaction
func (a adaptActivityPort) RecordReaction(ctx context.Context, in domain.ReactionInput) (domain.RecordResult, error) {
	return a.svc.RecordReaction(ctx, in)
}
