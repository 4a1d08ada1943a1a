package port

import (
	"context"

	"adgate/internal/core/domain"
)

// CampaignRepository is the campaign catalog. Listing never returns the
// fallback campaign.
type CampaignRepository interface {
	// ListForTier returns every campaign whose target tiers contain tier,
	// regardless of status, schedule or budget.
	ListForTier(ctx context.Context, tier domain.Tier) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id or domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCampaign stores c and assigns its ID.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// SetStatus changes a campaign's status.
	SetStatus(ctx context.Context, id int64, status domain.CampaignStatus) error
	// CompleteIfActive moves an active campaign to completed. It reports
	// false, without error, when the campaign is in any other state.
	CompleteIfActive(ctx context.Context, id int64) (bool, error)
	// CountActive returns the number of campaigns in the active state.
	CountActive(ctx context.Context) (int64, error)
}
