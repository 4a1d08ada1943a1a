package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type statsResponse struct {
	ActiveCampaigns  int64           `json:"active_campaigns"`
	ImpressionsToday int64           `json:"impressions_today"`
	CompletionsToday int64           `json:"completions_today"`
	RevenueToday     decimal.Decimal `json:"revenue_today"`
	PendingRetries   int64           `json:"pending_retries"`
}

// handleStatsOverview returns today's dashboard snapshot. Internal errors
// produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{
		ActiveCampaigns:  st.ActiveCampaigns,
		ImpressionsToday: st.ImpressionsToday,
		CompletionsToday: st.CompletionsToday,
		RevenueToday:     st.RevenueToday,
		PendingRetries:   st.PendingRetries,
	})
}

type usageResponse struct {
	IdentityID  string           `json:"identity_id"`
	TasksToday  int64            `json:"tasks_today"`
	PerResource map[string]int64 `json:"per_resource"`
}

func (h *Handler) handleUsage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "identity")
	u, err := h.svc.Usage(r.Context(), id)
	if err != nil {
		if isClientError(err) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("usage error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	resp := usageResponse{
		IdentityID:  id,
		TasksToday:  u.TasksToday,
		PerResource: make(map[string]int64, len(u.PerResource)),
	}
	for res, n := range u.PerResource {
		resp.PerResource[string(res)] = n
	}
	h.writeJSON(w, http.StatusOK, resp)
}
