package domain

// Status is the terminal state of an admission.
type Status string

const (
	StatusGranted       Status = "granted"
	StatusGrantedWithAd Status = "granted_with_ad"
	StatusDenied        Status = "denied"
)

// Reason explains a denial.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonQuotaExceeded    Reason = "quota_exceeded"
	ReasonQuotaUnavailable Reason = "quota_unavailable"
)

// Decision is the result of evaluating one admission request. Unlimited
// resources report RemainingQuota as -1.
type Decision struct {
	Status         Status
	Reason         Reason
	Ad             *AdDescriptor
	RemainingQuota int64
}

// Granted reports whether the caller may proceed with the underlying work.
func (d Decision) Granted() bool {
	return d.Status == StatusGranted || d.Status == StatusGrantedWithAd
}
