package pricing

import (
	"errors"
	"fmt"
	"strings"

	"adgate/internal/core/domain"
)

// MinFloorRatio is the lowest floor a policy may configure: an effective
// CPM never drops under half the base CPM.
const MinFloorRatio = 0.5

// Factors are the static multiplier tables used by the Optimizer. They are
// loaded once at startup and never mutated afterwards.
type Factors struct {
	// TimeOfDay holds four multipliers for the 6-hour windows starting at
	// 00:00, 06:00, 12:00 and 18:00.
	TimeOfDay []float64 `yaml:"time_of_day"`
	// DayOfWeek holds seven multipliers indexed by time.Weekday (Sunday = 0).
	DayOfWeek []float64               `yaml:"day_of_week"`
	Tier      map[domain.Tier]float64 `yaml:"tier"`
	Geo       Geo                     `yaml:"geo"`
	Behavior  Behavior                `yaml:"behavior"`
	// FloorRatio bounds the effective CPM from below as a fraction of base.
	// It may not go under MinFloorRatio.
	FloorRatio float64 `yaml:"floor_ratio"`
}

// Geo maps ISO country codes to multipliers.
type Geo struct {
	Default   float64            `yaml:"default"`
	Countries map[string]float64 `yaml:"countries"`
}

// Behavior adjusts price by engagement signals. Steps are matched in order;
// the first step whose threshold is met wins.
type Behavior struct {
	Completion []CompletionStep `yaml:"completion"`
	Session    []SessionStep    `yaml:"session"`
}

type CompletionStep struct {
	MinRate float64 `yaml:"min_rate"`
	Factor  float64 `yaml:"factor"`
}

type SessionStep struct {
	MinSeconds int64   `yaml:"min_seconds"`
	Factor     float64 `yaml:"factor"`
}

// Validate checks table shapes and that no factor is zero or negative,
// except the enterprise tier multiplier which must be exactly zero.
func (f Factors) Validate() error {
	if len(f.TimeOfDay) != 4 {
		return fmt.Errorf("time_of_day: want 4 buckets, got %d", len(f.TimeOfDay))
	}
	if len(f.DayOfWeek) != 7 {
		return fmt.Errorf("day_of_week: want 7 entries, got %d", len(f.DayOfWeek))
	}
	for i, v := range f.TimeOfDay {
		if v <= 0 {
			return fmt.Errorf("time_of_day[%d]: factor must be positive", i)
		}
	}
	for i, v := range f.DayOfWeek {
		if v <= 0 {
			return fmt.Errorf("day_of_week[%d]: factor must be positive", i)
		}
	}
	for _, t := range domain.Tiers {
		v, ok := f.Tier[t]
		if !ok {
			return fmt.Errorf("tier: missing multiplier for %q", t)
		}
		if t == domain.TierEnterprise {
			if v != 0 {
				return errors.New("tier: enterprise multiplier must be 0")
			}
			continue
		}
		if v <= 0 {
			return fmt.Errorf("tier: %q multiplier must be positive", t)
		}
	}
	if f.Geo.Default <= 0 {
		return errors.New("geo: default multiplier must be positive")
	}
	for c, v := range f.Geo.Countries {
		if v <= 0 {
			return fmt.Errorf("geo: %q multiplier must be positive", c)
		}
		if c != strings.ToUpper(c) {
			return fmt.Errorf("geo: country code %q must be upper case", c)
		}
	}
	for i, s := range f.Behavior.Completion {
		if s.Factor <= 0 {
			return fmt.Errorf("behavior.completion[%d]: factor must be positive", i)
		}
	}
	for i, s := range f.Behavior.Session {
		if s.Factor <= 0 {
			return fmt.Errorf("behavior.session[%d]: factor must be positive", i)
		}
	}
	if f.FloorRatio < MinFloorRatio || f.FloorRatio > 1 {
		return fmt.Errorf("floor_ratio must be in [%v,1]", MinFloorRatio)
	}
	return nil
}

func (f Factors) timeOfDay(hour int) float64 {
	return f.TimeOfDay[hour/6]
}

func (f Factors) geo(country string) float64 {
	if v, ok := f.Geo.Countries[strings.ToUpper(country)]; ok {
		return v
	}
	return f.Geo.Default
}

func (f Factors) behavior(b domain.Behavior) float64 {
	factor := 1.0
	if b.CompletionRate != nil {
		for _, s := range f.Behavior.Completion {
			if *b.CompletionRate >= s.MinRate {
				factor *= s.Factor
				break
			}
		}
	}
	if b.SessionSeconds > 0 {
		for _, s := range f.Behavior.Session {
			if b.SessionSeconds >= s.MinSeconds {
				factor *= s.Factor
				break
			}
		}
	}
	return factor
}
