package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
)

type behaviorRequest struct {
	CompletionRate *float64 `json:"completion_rate"`
	SessionSeconds int64    `json:"session_seconds"`
}

type admissionRequest struct {
	IdentityID   string          `json:"identity_id"`
	Tier         string          `json:"tier"`
	Country      string          `json:"country"`
	ResourceType string          `json:"resource_type"`
	Behavior     behaviorRequest `json:"behavior"`
}

type adResponse struct {
	CampaignID      int64           `json:"campaign_id"`
	ContentRef      string          `json:"content_ref"`
	DurationSeconds int             `json:"duration_seconds"`
	EffectiveCPM    decimal.Decimal `json:"effective_cpm"`
	TrackingToken   string          `json:"tracking_token"`
	Fallback        bool            `json:"fallback"`
}

type decisionResponse struct {
	Status         domain.Status `json:"status"`
	Reason         domain.Reason `json:"reason,omitempty"`
	RemainingQuota int64         `json:"remaining_quota"`
	Ad             *adResponse   `json:"ad,omitempty"`
}

// handleAdmission evaluates one unit of work. Granted requests get 200,
// with an ad descriptor when one must be shown first. Quota denials map to
// 429, an unavailable quota store to 503 and malformed input to 400.
func (h *Handler) handleAdmission(w http.ResponseWriter, r *http.Request) {
	var body admissionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	dec, err := h.svc.Evaluate(r.Context(), domain.AdmissionRequest{
		Identity: domain.Identity{
			ID:      body.IdentityID,
			Tier:    domain.Tier(body.Tier),
			Country: body.Country,
		},
		Resource: domain.ResourceType(body.ResourceType),
		Behavior: domain.Behavior{
			CompletionRate: body.Behavior.CompletionRate,
			SessionSeconds: body.Behavior.SessionSeconds,
		},
	})
	if err != nil {
		if isClientError(err) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("evaluate error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := decisionResponse{
		Status:         dec.Status,
		Reason:         dec.Reason,
		RemainingQuota: dec.RemainingQuota,
	}
	if ad := dec.Ad; ad != nil {
		resp.Ad = &adResponse{
			CampaignID:      ad.CampaignID,
			ContentRef:      ad.ContentRef,
			DurationSeconds: ad.DurationSeconds,
			EffectiveCPM:    ad.EffectiveCPM,
			TrackingToken:   ad.TrackingToken,
			Fallback:        ad.Fallback,
		}
	}

	status := http.StatusOK
	switch dec.Reason {
	case domain.ReasonQuotaExceeded:
		status = http.StatusTooManyRequests
	case domain.ReasonQuotaUnavailable:
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, resp)
}
