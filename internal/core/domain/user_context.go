package domain

// Identity describes the subscriber behind a request. It is supplied by the
// session provider and trusted as-is; counters live in the stores and are
// looked up by ID.
type Identity struct {
	ID      string
	Tier    Tier
	Country string // ISO 3166-1 alpha-2, upper case
}

// Behavior carries optional engagement signals reported by the caller. Zero
// values mean "unknown" and do not adjust pricing.
type Behavior struct {
	// CompletionRate is the fraction of previously served ads the identity
	// watched to the end, in [0,1].
	CompletionRate *float64
	// SessionSeconds is the length of the current session.
	SessionSeconds int64
}

// AdmissionRequest is one inbound unit of work submitted by the task
// orchestrator before it calls a generation provider.
type AdmissionRequest struct {
	Identity Identity
	Resource ResourceType
	Behavior Behavior
}
