// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"chatty/internal/core/hourshift"
	"chatty/internal/modkit/httpkit"
	"chatty/internal/services/api/stats/domain"
	svc "chatty/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// point stats for one member
	httpkit.PostJSON[domain.UserStatsInput](r, "/user", h.userStats)

	// message leaderboard
	httpkit.PostJSON[domain.TopChattersInput](r, "/chatters", h.topChatters)

	// emoji leaderboard
	httpkit.PostJSON[domain.TopEmojisInput](r, "/emojis", h.topEmojis)

	// reaction leaderboard
	httpkit.PostJSON[domain.TopReactionsInput](r, "/reactions", h.topReactions)

	// hourly histogram, guild wide or per member
	httpkit.PostJSON[domain.HourlyInput](r, "/hourly", h.hourly)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/user Stats statsUser
// @Summary Message totals for one member
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.UserStatsInput true "Query"
// @Success 200 {object} domain.UserStatsResponse "ok"
// @Router /stats/user [post]
func (h *handlers) userStats(r *stdhttp.Request, in domain.UserStatsInput) (any, error) {
	return h.svc.UserStats(r.Context(), in)
}

// swagger:route POST /stats/chatters Stats statsChatters
// @Summary Top chatters by message count
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.TopChattersInput true "Query"
// @Success 200 {object} domain.Leaderboard "ok"
// @Router /stats/chatters [post]
func (h *handlers) topChatters(r *stdhttp.Request, in domain.TopChattersInput) (any, error) {
	return h.svc.TopChatters(r.Context(), in)
}

// swagger:route POST /stats/emojis Stats statsEmojis
// @Summary Top emoji by use count
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.TopEmojisInput true "Query"
// @Success 200 {object} domain.Leaderboard "ok"
// @Router /stats/emojis [post]
func (h *handlers) topEmojis(r *stdhttp.Request, in domain.TopEmojisInput) (any, error) {
	return h.svc.TopEmojis(r.Context(), in)
}

// swagger:route POST /stats/reactions Stats statsReactions
// @Summary Top reaction emoji
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.TopReactionsInput true "Query"
// @Success 200 {object} domain.Leaderboard "ok"
// @Router /stats/reactions [post]
func (h *handlers) topReactions(r *stdhttp.Request, in domain.TopReactionsInput) (any, error) {
	return h.svc.TopReactions(r.Context(), in)
}

// swagger:route POST /stats/hourly Stats statsHourly
// @Summary Hourly activity histogram
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.HourlyInput true "Query"
// @Success 200 {object} domain.Hourly "ok"
// @Router /stats/hourly [post]
func (h *handlers) hourly(r *stdhttp.Request, in domain.HourlyInput) (any, error) {
	out, err := h.svc.Hourly(r.Context(), in)
	if err != nil {
		return nil, err
	}
	// local time presentation is a transport concern, storage stays UTC
	if in.TZOffset != 0 {
		out.Hours = hourshift.Remap(out.Hours, in.TZOffset)
	}
	return out, nil
}
