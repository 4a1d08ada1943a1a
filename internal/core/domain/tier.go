package domain

import "fmt"

// Tier is a subscription tier.
type Tier string

const (
	TierFree       Tier = "free"
	TierBasic      Tier = "basic"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

// Tiers lists every known tier in ascending order of price.
var Tiers = []Tier{TierFree, TierBasic, TierPremium, TierEnterprise}

// ParseTier validates a tier name.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// ResourceType is a category of meterable AI task.
type ResourceType string

const (
	ResourceText     ResourceType = "text"
	ResourceImage    ResourceType = "image"
	ResourceCode     ResourceType = "code"
	ResourceResearch ResourceType = "research"
	ResourceAnalysis ResourceType = "analysis"
	ResourceVoice    ResourceType = "voice"
)

// ResourceTypes lists every meterable resource type.
var ResourceTypes = []ResourceType{
	ResourceText,
	ResourceImage,
	ResourceCode,
	ResourceResearch,
	ResourceAnalysis,
	ResourceVoice,
}

// ParseResourceType validates a resource type name.
func ParseResourceType(s string) (ResourceType, error) {
	for _, r := range ResourceTypes {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, s)
}
