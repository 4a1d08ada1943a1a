package port

import (
	"context"

	"adgate/internal/core/domain"
)

// AdmissionUseCase defines the operations exposed by the engine. This
// interface is the primary port into the application domain and is what
// the HTTP adapter depends on.
type AdmissionUseCase interface {
	// Evaluate decides whether req may proceed and whether an ad must be
	// shown first. Quota denials and store outages are reported through
	// the returned Decision; an error means the request itself is invalid.
	Evaluate(ctx context.Context, req domain.AdmissionRequest) (domain.Decision, error)

	// CompleteImpression records that the ad behind token finished
	// playing. Unknown tokens, foreign identities and repeats return false.
	CompleteImpression(ctx context.Context, token, identityID string) bool

	// Stats returns a dashboard snapshot.
	Stats(ctx context.Context) (domain.Stats, error)

	// Usage returns today's quota usage of identityID.
	Usage(ctx context.Context, identityID string) (domain.Usage, error)
}

// CampaignAdmin manages campaign records for the admin collaborator.
type CampaignAdmin interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	SetStatus(ctx context.Context, id int64, status domain.CampaignStatus) error
}
