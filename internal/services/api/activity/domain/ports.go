package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	RecordMessage(ctx context.Context, in MessageInput) (RecordResult, error)
	RecordEmoji(ctx context.Context, in EmojiInput) (RecordResult, error)
	RecordReaction(ctx context.Context, in ReactionInput) (RecordResult, error)
}
