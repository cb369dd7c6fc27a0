// Package domain holds DTOs for activity ingest http and service contracts
package domain

// Snowflake ids arrive as strings and are never parsed numerically

// MessageInput records one sent message
// Content is optional; when present it is scanned for emoji usage
type MessageInput struct {
	GuildID   string `json:"guild_id" validate:"required,min=1,max=32" example:"102837465920137428"`
	ChannelID string `json:"channel_id" validate:"required,min=1,max=32" example:"102837465920137430"`
	UserID    string `json:"user_id" validate:"required,min=1,max=32" example:"102837465920137431"`
	Content   string `json:"content,omitempty" validate:"omitempty,max=4000" example:"good morning ☀️"`
}

// EmojiInput records emoji usage outside of message scanning
// Count defaults to 1 when omitted
type EmojiInput struct {
	GuildID   string `json:"guild_id" validate:"required,min=1,max=32" example:"102837465920137428"`
	ChannelID string `json:"channel_id" validate:"required,min=1,max=32" example:"102837465920137430"`
	UserID    string `json:"user_id" validate:"required,min=1,max=32" example:"102837465920137431"`
	Emoji     string `json:"emoji" validate:"required,min=1,max=64" example:"🔥"`
	Count     int64  `json:"count,omitempty" validate:"omitempty,min=1,max=1000" example:"1"`
}

// ReactionInput records one reaction given by ReactorID on a message by ReacteeID
type ReactionInput struct {
	GuildID   string `json:"guild_id" validate:"required,min=1,max=32" example:"102837465920137428"`
	ChannelID string `json:"channel_id" validate:"required,min=1,max=32" example:"102837465920137430"`
	ReactorID string `json:"reactor_id" validate:"required,min=1,max=32" example:"102837465920137431"`
	ReacteeID string `json:"reactee_id" validate:"required,min=1,max=32" example:"102837465920137432"`
	Emoji     string `json:"emoji" validate:"required,min=1,max=64" example:"👍"`
}

// RecordResult reports how many bucket increments a record applied
type RecordResult struct {
	Buckets int `json:"buckets" example:"2"`
}
