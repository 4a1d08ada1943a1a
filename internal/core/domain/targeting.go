package domain

// TargetingFacts are the request attributes a campaign targeting rule can
// refer to.
type TargetingFacts struct {
	Tier     Tier
	Country  string
	Resource ResourceType
}
