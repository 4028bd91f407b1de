// Package rules holds the tunable risk rules table: detector weights, day
// thresholds, severity cutoffs and the keyword-to-category table used to
// classify free-text milestone events.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"shipment-monitor/internal/features/alerts/domain"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTable []byte

// ErrInvalidRules is wrapped by every validation failure of a rules table.
var ErrInvalidRules = errors.New("invalid risk rules")

// Category is a semantic class of milestone text.
type Category string

const (
	CategoryPickup      Category = "pickup"
	CategoryDeparture   Category = "departure"
	CategoryCustoms     Category = "customs"
	CategoryCustomsHold Category = "customs_hold"
	CategoryPort        Category = "port"
	CategoryHub         Category = "hub"
	CategoryWeather     Category = "weather"
	CategoryCapacity    Category = "capacity"
	CategoryDocs        Category = "docs"
	CategoryTerminal    Category = "terminal"
)

// Categories lists every category a table must define keywords for.
var Categories = []Category{
	CategoryPickup,
	CategoryDeparture,
	CategoryCustoms,
	CategoryCustomsHold,
	CategoryPort,
	CategoryHub,
	CategoryWeather,
	CategoryCapacity,
	CategoryDocs,
	CategoryTerminal,
}

// Thresholds are the day cutoffs used by the detectors.
type Thresholds struct {
	LostDays            float64                          `yaml:"lost_days"`
	StaleDays           map[domain.TransportMode]float64 `yaml:"stale_days"`
	NoPickupDays        float64                          `yaml:"no_pickup_days"`
	DepartureWindowDays map[domain.TransportMode]float64 `yaml:"departure_window_days"`
	ServiceLevelFactor  map[string]float64               `yaml:"service_level_factor"`
	CustomsDwellDays    float64                          `yaml:"customs_dwell_days"`
	PortDwellDays       float64                          `yaml:"port_dwell_days"`
	HubDwellDays        float64                          `yaml:"hub_dwell_days"`
	LongDwellDays       float64                          `yaml:"long_dwell_days"`
}

// SeverityCutoffs map a score to a severity: score >= High is High,
// score >= Medium is Medium, anything lower is Low.
type SeverityCutoffs struct {
	High   int `yaml:"high"`
	Medium int `yaml:"medium"`
}

// Rules is an immutable, validated rules table.
type Rules struct {
	Version    int                       `yaml:"version"`
	Weights    map[domain.RiskReason]int `yaml:"weights"`
	Severity   SeverityCutoffs           `yaml:"severity"`
	Thresholds Thresholds                `yaml:"thresholds"`
	Keywords   map[Category][]string     `yaml:"keywords"`
}

// Default returns the embedded rules table.
// It panics if the embedded table is invalid, which only a broken build can cause.
func Default() *Rules {
	r, err := Parse(defaultTable, nil)
	if err != nil {
		panic(fmt.Sprintf("rules: embedded default table: %v", err))
	}
	return r
}

// Load returns the embedded defaults when path is empty. Otherwise it reads the
// YAML file at path and overlays it on the defaults, so a file only needs the
// keys it changes. Keyword lists are replaced, not merged.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	return Parse(data, Default())
}

// Parse decodes a YAML table over base (nil for an empty base) and validates it.
func Parse(data []byte, base *Rules) (*Rules, error) {
	r := base
	if r == nil {
		r = &Rules{}
	}

	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}

	r.normalize()

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Rules) normalize() {
	for cat, words := range r.Keywords {
		normalized := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				normalized = append(normalized, w)
			}
		}
		r.Keywords[cat] = normalized
	}

	factors := make(map[string]float64, len(r.Thresholds.ServiceLevelFactor))
	for level, f := range r.Thresholds.ServiceLevelFactor {
		factors[strings.ToLower(strings.TrimSpace(level))] = f
	}
	r.Thresholds.ServiceLevelFactor = factors
}

// Validate checks that every weight, threshold and category is present and sane.
func (r *Rules) Validate() error {
	if r.Version < 1 {
		return fmt.Errorf("%w: version must be >= 1", ErrInvalidRules)
	}

	for _, reason := range domain.RiskReasons {
		w, ok := r.Weights[reason]
		if !ok {
			return fmt.Errorf("%w: missing weight for %s", ErrInvalidRules, reason)
		}
		if w < 0 {
			return fmt.Errorf("%w: negative weight for %s", ErrInvalidRules, reason)
		}
	}

	if r.Severity.Medium <= 0 || r.Severity.High <= r.Severity.Medium || r.Severity.High > 100 {
		return fmt.Errorf("%w: severity cutoffs must satisfy 0 < medium < high <= 100", ErrInvalidRules)
	}

	t := r.Thresholds
	for _, mode := range []domain.TransportMode{domain.ModeAir, domain.ModeSea, domain.ModeRoad} {
		if t.StaleDays[mode] <= 0 {
			return fmt.Errorf("%w: stale_days for %s must be positive", ErrInvalidRules, mode)
		}
		if t.DepartureWindowDays[mode] <= 0 {
			return fmt.Errorf("%w: departure_window_days for %s must be positive", ErrInvalidRules, mode)
		}
	}
	for level, f := range t.ServiceLevelFactor {
		if f <= 0 {
			return fmt.Errorf("%w: service_level_factor for %q must be positive", ErrInvalidRules, level)
		}
	}

	days := map[string]float64{
		"lost_days":          t.LostDays,
		"customs_dwell_days": t.CustomsDwellDays,
		"port_dwell_days":    t.PortDwellDays,
		"hub_dwell_days":     t.HubDwellDays,
		"long_dwell_days":    t.LongDwellDays,
	}
	for key, v := range days {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidRules, key)
		}
	}
	if t.NoPickupDays < 0 {
		return fmt.Errorf("%w: no_pickup_days must not be negative", ErrInvalidRules)
	}

	for _, cat := range Categories {
		if len(r.Keywords[cat]) == 0 {
			return fmt.Errorf("%w: no keywords for category %s", ErrInvalidRules, cat)
		}
	}

	return nil
}

// Match reports whether any text contains a keyword of the category.
func (r *Rules) Match(cat Category, texts ...string) bool {
	for _, text := range texts {
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		for _, kw := range r.Keywords[cat] {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// Weight returns the configured weight of a reason.
func (r *Rules) Weight(reason domain.RiskReason) int {
	return r.Weights[reason]
}

// StaleDays returns the staleness threshold for a mode.
func (r *Rules) StaleDays(mode domain.TransportMode) float64 {
	return r.Thresholds.StaleDays[mode]
}

// DepartureWindowDays returns how long after ordering a departure is expected,
// scaled by the service level factor. Unknown service levels use a factor of 1.
func (r *Rules) DepartureWindowDays(mode domain.TransportMode, serviceLevel string) float64 {
	window := r.Thresholds.DepartureWindowDays[mode]
	if f, ok := r.Thresholds.ServiceLevelFactor[strings.ToLower(strings.TrimSpace(serviceLevel))]; ok {
		window *= f
	}
	return window
}
