package engine

import (
	"fmt"
	"strings"
)

// Tier is a named inclusive range of a stat.
type Tier struct {
	Name string `yaml:"name"`
	Low  int    `yaml:"low"`
	High int    `yaml:"high"`
}

// Contains reports whether v falls inside the tier.
func (t Tier) Contains(v int) bool {
	return v >= t.Low && v <= t.High
}

// TierTable is an ordered list of tiers, lowest first. The order is what
// "next" and "previous" tier mean, so it must never be sorted or reshuffled.
type TierTable []Tier

// Direction of an imminent tier shift.
type Direction string

const (
	Improvement Direction = "improvement"
	Degradation Direction = "degradation"
)

// Shift describes the nearest tier boundary crossing for a value sitting on
// the edge of its tier.
type Shift struct {
	Direction    Direction
	Target       string
	PointsNeeded int
}

// Of returns the name of the tier containing v.
func (t TierTable) Of(v int) (string, error) {
	for _, tier := range t {
		if tier.Contains(v) {
			return tier.Name, nil
		}
	}
	return "", fmt.Errorf("no tier contains %d: %w", v, ErrNotFound)
}

// Index returns the position of the named tier, or -1.
func (t TierTable) Index(name string) int {
	for i, tier := range t {
		if tier.Name == name {
			return i
		}
	}
	return -1
}

// Lookup returns the named tier. Matching is exact first, then case-insensitive.
func (t TierTable) Lookup(name string) (Tier, error) {
	if i := t.Index(name); i >= 0 {
		return t[i], nil
	}
	for _, tier := range t {
		if strings.EqualFold(tier.Name, strings.TrimSpace(name)) {
			return tier, nil
		}
	}
	return Tier{}, fmt.Errorf("tier %q: %w", name, ErrNotFound)
}

// Names lists tier names in table order.
func (t TierTable) Names() []string {
	names := make([]string, len(t))
	for i, tier := range t {
		names[i] = tier.Name
	}
	return names
}

// Shift computes the imminent tier change for value within currentTier.
// A value on the upper bound of a non-last tier points at the next tier; a
// value on the lower bound of a non-first tier points at the previous one.
// The upper bound is checked first, so a single-point tier only ever reports
// an improvement. Interior values and unknown tiers yield false.
func (t TierTable) Shift(currentTier string, value int) (Shift, bool) {
	i := t.Index(currentTier)
	if i < 0 {
		return Shift{}, false
	}
	cur := t[i]
	switch {
	case value == cur.High && i < len(t)-1:
		next := t[i+1]
		return Shift{Direction: Improvement, Target: next.Name, PointsNeeded: next.Low - value}, true
	case value == cur.Low && i > 0:
		prev := t[i-1]
		return Shift{Direction: Degradation, Target: prev.Name, PointsNeeded: value - prev.High}, true
	}
	return Shift{}, false
}

// Validate checks the table is non-empty, ordered, contiguous and has unique names.
func (t TierTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("empty tier table: %w", ErrInvalidArgument)
	}
	seen := make(map[string]bool, len(t))
	for i, tier := range t {
		if tier.Name == "" {
			return fmt.Errorf("tier %d has no name: %w", i, ErrInvalidArgument)
		}
		if seen[tier.Name] {
			return fmt.Errorf("duplicate tier %q: %w", tier.Name, ErrInvalidArgument)
		}
		seen[tier.Name] = true
		if tier.Low > tier.High {
			return fmt.Errorf("tier %q has low %d above high %d: %w", tier.Name, tier.Low, tier.High, ErrInvalidArgument)
		}
		if i > 0 && tier.Low != t[i-1].High+1 {
			return fmt.Errorf("tier %q does not continue from %q: %w", tier.Name, t[i-1].Name, ErrInvalidArgument)
		}
	}
	return nil
}
