package port

import (
	"context"

	"adgate/internal/core/domain"
)

// DeadLetterSink receives impressions that could not be recorded after all
// retries, so revenue can be reconciled out of band.
type DeadLetterSink interface {
	Publish(ctx context.Context, imp domain.Impression, watermark int64, cause error) error
}
