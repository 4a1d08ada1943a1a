package policy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adgate/internal/core/domain"
)

func TestDefaultTables(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	for _, tier := range domain.Tiers {
		for _, r := range domain.ResourceTypes {
			_, err := p.Limit(tier, r)
			assert.NoError(t, err, "tier=%s resource=%s", tier, r)
		}
	}

	limit, err := p.Limit(domain.TierFree, domain.ResourceText)
	require.NoError(t, err)
	assert.Equal(t, int64(5), limit)

	limit, err = p.Limit(domain.TierEnterprise, domain.ResourceVoice)
	require.NoError(t, err)
	assert.Equal(t, Unlimited, limit)

	assert.Equal(t, Frequency{UnitsPerAd: 2, MaxAdsPerDay: 10}, p.Frequency(domain.TierFree))
	assert.False(t, p.Frequency(domain.TierEnterprise).Enabled())
	assert.Equal(t, "0.5", p.Fallback().CPM.String())
}

func TestLimitUnknown(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	_, err = p.Limit("platinum", domain.ResourceText)
	assert.ErrorIs(t, err, domain.ErrUnknownTier)

	_, err = p.Limit(domain.TierFree, "video")
	assert.ErrorIs(t, err, domain.ErrUnknownResource)
}

func TestParseRejectsIncompleteTables(t *testing.T) {
	cases := map[string]struct {
		mutate  func(string) string
		section string
	}{
		"missing resource": {
			mutate:  func(s string) string { return strings.Replace(s, "    voice: 2\n  basic:", "  basic:", 1) },
			section: "quotas",
		},
		"enterprise ads enabled": {
			mutate: func(s string) string {
				return strings.Replace(s, "  enterprise:\n    units_per_ad: 0", "  enterprise:\n    units_per_ad: 3", 1)
			},
			section: "frequency",
		},
		"zero geo default": {
			mutate:  func(s string) string { return strings.Replace(s, "default: 0.7", "default: 0", 1) },
			section: "pricing",
		},
		"enterprise multiplier non-zero": {
			mutate:  func(s string) string { return strings.Replace(s, "    enterprise: 0\n  geo:", "    enterprise: 0.1\n  geo:", 1) },
			section: "pricing",
		},
		"negative max ads": {
			mutate:  func(s string) string { return strings.Replace(s, "max_ads_per_day: 10", "max_ads_per_day: -1", 1) },
			section: "frequency",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			doc := tc.mutate(string(defaultTables))
			require.NotEqual(t, string(defaultTables), doc, "mutation did not apply")

			_, err := Parse([]byte(doc))
			var cfgErr *domain.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tc.section, cfgErr.Section)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	doc := string(defaultTables) + "\nbogus: true\n"
	_, err := Parse([]byte(doc))
	var cfgErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	doc := strings.Replace(string(defaultTables), "    text: 5\n", "    text: 7\n", 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	limit, err := p.Limit(domain.TierFree, domain.ResourceText)
	require.NoError(t, err)
	assert.Equal(t, int64(7), limit)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var cfgErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}
