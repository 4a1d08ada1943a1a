package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTier      = errors.New("adgate: unknown tier")
	ErrUnknownResource  = errors.New("adgate: unknown resource type")
	ErrInvalidIdentity  = errors.New("adgate: invalid identity")
	ErrInvalidRequest   = errors.New("adgate: invalid request")
	ErrCampaignNotFound = errors.New("adgate: campaign not found")
	ErrInvalidCampaign  = errors.New("adgate: invalid campaign")
	// ErrQuotaExceeded is never returned from Evaluate; it names the denial
	// for callers that want an error value.
	ErrQuotaExceeded = errors.New("adgate: quota exceeded")
)

// ConfigurationError reports an invalid policy or factor table. It is
// raised while loading configuration and is fatal at startup.
type ConfigurationError struct {
	Section string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("adgate: configuration: %s: %v", e.Section, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
