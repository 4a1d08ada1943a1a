// Package policy holds the immutable tier tables that drive quota, ad
// frequency and pricing decisions. Tables are parsed once at startup from
// YAML and exposed through typed accessors.
package policy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"adgate/internal/core/domain"
	"adgate/internal/core/pricing"
)

//go:embed tiers.yaml
var defaultTables []byte

// Unlimited is the quota limit meaning "no daily cap".
const Unlimited int64 = -1

// Frequency is the ad cadence for one tier.
type Frequency struct {
	UnitsPerAd   int64 `yaml:"units_per_ad"`
	MaxAdsPerDay int64 `yaml:"max_ads_per_day"`
}

// Enabled reports whether ads are shown at all.
func (f Frequency) Enabled() bool {
	return f.UnitsPerAd > 0
}

// Fallback describes the house campaign served when nothing else qualifies.
type Fallback struct {
	CPM             decimal.Decimal `yaml:"cpm"`
	ContentRef      string          `yaml:"content_ref"`
	DurationSeconds int             `yaml:"duration_seconds"`
}

type document struct {
	Quotas    map[domain.Tier]map[domain.ResourceType]int64 `yaml:"quotas"`
	Frequency map[domain.Tier]Frequency                     `yaml:"frequency"`
	Pricing   pricing.Factors                               `yaml:"pricing"`
	Fallback  Fallback                                      `yaml:"fallback"`
}

// Policy is the validated, read-only view of the tables.
type Policy struct {
	quotas    map[domain.Tier]map[domain.ResourceType]int64
	frequency map[domain.Tier]Frequency
	pricing   pricing.Factors
	fallback  Fallback
}

// Default returns the built-in tables.
func Default() (*Policy, error) {
	return Parse(defaultTables)
}

// Load reads tables from path, or returns the built-in tables when path is
// empty.
func Load(path string) (*Policy, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigurationError{Section: "policy", Err: err}
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document. Any structural problem is
// reported as a *domain.ConfigurationError.
func Parse(data []byte) (*Policy, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.ConfigurationError{Section: "policy", Err: err}
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &Policy{
		quotas:    doc.Quotas,
		frequency: doc.Frequency,
		pricing:   doc.Pricing,
		fallback:  doc.Fallback,
	}, nil
}

func (d *document) validate() error {
	for _, t := range domain.Tiers {
		limits, ok := d.Quotas[t]
		if !ok {
			return &domain.ConfigurationError{Section: "quotas", Err: fmt.Errorf("missing tier %q", t)}
		}
		for _, r := range domain.ResourceTypes {
			limit, ok := limits[r]
			if !ok {
				return &domain.ConfigurationError{Section: "quotas", Err: fmt.Errorf("tier %q: missing resource %q", t, r)}
			}
			if limit < Unlimited {
				return &domain.ConfigurationError{Section: "quotas", Err: fmt.Errorf("tier %q: resource %q: invalid limit %d", t, r, limit)}
			}
		}

		f, ok := d.Frequency[t]
		if !ok {
			return &domain.ConfigurationError{Section: "frequency", Err: fmt.Errorf("missing tier %q", t)}
		}
		if f.UnitsPerAd < 0 || f.MaxAdsPerDay < 0 {
			return &domain.ConfigurationError{Section: "frequency", Err: fmt.Errorf("tier %q: values must be non-negative", t)}
		}
	}
	if d.Frequency[domain.TierEnterprise].Enabled() {
		return &domain.ConfigurationError{Section: "frequency", Err: errors.New("enterprise must not show ads")}
	}
	if err := d.Pricing.Validate(); err != nil {
		return &domain.ConfigurationError{Section: "pricing", Err: err}
	}
	if !d.Fallback.CPM.IsPositive() {
		return &domain.ConfigurationError{Section: "fallback", Err: errors.New("cpm must be positive")}
	}
	if d.Fallback.ContentRef == "" {
		return &domain.ConfigurationError{Section: "fallback", Err: errors.New("content_ref is required")}
	}
	return nil
}

// Limit returns the daily limit for tier and resource, or Unlimited.
func (p *Policy) Limit(t domain.Tier, r domain.ResourceType) (int64, error) {
	limits, ok := p.quotas[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTier, t)
	}
	limit, ok := limits[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownResource, r)
	}
	return limit, nil
}

// Frequency returns the ad cadence for tier t. Unknown tiers get ads
// disabled.
func (p *Policy) Frequency(t domain.Tier) Frequency {
	return p.frequency[t]
}

// Pricing returns the CPM factor tables.
func (p *Policy) Pricing() pricing.Factors {
	return p.pricing
}

// Fallback returns the house campaign settings.
func (p *Policy) Fallback() Fallback {
	return p.fallback
}
