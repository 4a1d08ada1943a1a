package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
)

type campaignRequest struct {
	Name            string          `json:"name"`
	BaseCPM         decimal.Decimal `json:"base_cpm"`
	DurationSeconds int             `json:"duration_seconds"`
	TargetTiers     []string        `json:"target_tiers"`
	ContentRef      string          `json:"content_ref"`
	TargetingRule   string          `json:"targeting_rule"`
	ScheduleStart   *time.Time      `json:"schedule_start"`
	ScheduleEnd     *time.Time      `json:"schedule_end"`
	Budget          decimal.Decimal `json:"budget"`
	Status          string          `json:"status"`
}

type campaignResponse struct {
	ID                    int64           `json:"id"`
	Name                  string          `json:"name"`
	BaseCPM               decimal.Decimal `json:"base_cpm"`
	DurationSeconds       int             `json:"duration_seconds"`
	TargetTiers           []domain.Tier   `json:"target_tiers"`
	ContentRef            string          `json:"content_ref"`
	TargetingRule         string          `json:"targeting_rule,omitempty"`
	ScheduleStart         time.Time       `json:"schedule_start"`
	ScheduleEnd           *time.Time      `json:"schedule_end,omitempty"`
	Budget                decimal.Decimal `json:"budget"`
	CumulativeRevenue     decimal.Decimal `json:"cumulative_revenue"`
	CumulativeImpressions int64           `json:"cumulative_impressions"`
	CumulativeCompletions int64           `json:"cumulative_completions"`
	Status                string          `json:"status"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		BaseCPM:               c.BaseCPM,
		DurationSeconds:       c.DurationSeconds,
		TargetTiers:           c.TargetTiers,
		ContentRef:            c.ContentRef,
		TargetingRule:         c.TargetingRule,
		ScheduleStart:         c.ScheduleStart,
		ScheduleEnd:           c.ScheduleEnd,
		Budget:                c.Budget,
		CumulativeRevenue:     c.CumulativeRevenue,
		CumulativeImpressions: c.CumulativeImpressions,
		CumulativeCompletions: c.CumulativeCompletions,
		Status:                string(c.Status),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c := domain.Campaign{
		Name:            body.Name,
		BaseCPM:         body.BaseCPM,
		DurationSeconds: body.DurationSeconds,
		ContentRef:      body.ContentRef,
		TargetingRule:   body.TargetingRule,
		ScheduleEnd:     body.ScheduleEnd,
		Budget:          body.Budget,
		Status:          domain.CampaignStatus(body.Status),
	}
	if body.ScheduleStart != nil {
		c.ScheduleStart = *body.ScheduleStart
	}
	for _, t := range body.TargetTiers {
		c.TargetTiers = append(c.TargetTiers, domain.Tier(t))
	}

	if err := h.admin.CreateCampaign(r.Context(), &c); err != nil {
		h.campaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(&c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.admin.GetCampaign(r.Context(), id)
	if err != nil {
		h.campaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

type statusRequest struct {
	Status string `json:"status"`
}

// handleSetStatus pauses, resumes or cancels a campaign.
func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var body statusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.admin.SetStatus(r.Context(), id, domain.CampaignStatus(body.Status)); err != nil {
		h.campaignError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return 0, false
	}
	return id, true
}

func (h *Handler) campaignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		h.writeError(w, http.StatusNotFound, "campaign not found")
	case isClientError(err):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("campaign admin error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
