// Package http provides http transport for activity ingest
package http

import (
	stdhttp "net/http"

	"chatty/internal/modkit/httpkit"
	"chatty/internal/services/api/activity/domain"
	svc "chatty/internal/services/api/activity/service"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one message sent
	httpkit.PostJSON[domain.MessageInput](r, "/message", h.message)

	// explicit emoji usage
	httpkit.PostJSON[domain.EmojiInput](r, "/emoji", h.emoji)

	// one reaction given
	httpkit.PostJSON[domain.ReactionInput](r, "/reaction", h.reaction)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /activity/message Activity activityMessage
// @Summary Record a sent message
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.MessageInput true "Event"
// @Success 200 {object} domain.RecordResult "ok"
// @Router /activity/message [post]
func (h *handlers) message(r *stdhttp.Request, in domain.MessageInput) (any, error) {
	return h.svc.RecordMessage(r.Context(), in)
}

// swagger:route POST /activity/emoji Activity activityEmoji
// @Summary Record emoji usage
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.EmojiInput true "Event"
// @Success 200 {object} domain.RecordResult "ok"
// @Router /activity/emoji [post]
func (h *handlers) emoji(r *stdhttp.Request, in domain.EmojiInput) (any, error) {
	return h.svc.RecordEmoji(r.Context(), in)
}

// swagger:route POST /activity/reaction Activity activityReaction
// @Summary Record a reaction
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.ReactionInput true "Event"
// @Success 200 {object} domain.RecordResult "ok"
// @Router /activity/reaction [post]
func (h *handlers) reaction(r *stdhttp.Request, in domain.ReactionInput) (any, error) {
	return h.svc.RecordReaction(r.Context(), in)
}
