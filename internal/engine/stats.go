package engine

import (
	"fmt"
	"strings"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
)

// StatField selects one numeric stat on a country record.
type StatField int

const (
	StatEconomy StatField = iota
	StatStability
	StatMilitary
	StatMorale
	StatSupply
)

var statPaths = map[StatField]string{
	StatEconomy:   "economy.value",
	StatStability: "stability.value",
	StatMilitary:  "military_strength.value",
	StatMorale:    "morale",
	StatSupply:    "supply",
}

// Path is the dotted document path of the field.
func (f StatField) Path() string {
	return statPaths[f]
}

// Label is a human name for the field.
func (f StatField) Label() string {
	switch f {
	case StatEconomy:
		return "Economy"
	case StatStability:
		return "Stability"
	case StatMilitary:
		return "Military Strength"
	case StatMorale:
		return "Morale"
	case StatSupply:
		return "Supply"
	}
	return "Unknown"
}

// ParseStatField resolves a dotted path such as "economy.value".
func ParseStatField(path string) (StatField, error) {
	p := strings.ToLower(strings.TrimSpace(path))
	for f, known := range statPaths {
		if p == known {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", path, ErrPathNotFound)
}

// score returns a pointer to the selected field.
func (f StatField) score(c *data.Country) *data.Score {
	switch f {
	case StatEconomy:
		return &c.Economy.Value
	case StatStability:
		return &c.Stability.Value
	case StatMilitary:
		return &c.MilitaryStrength.Value
	case StatMorale:
		return &c.Morale
	case StatSupply:
		return &c.Supply
	}
	return nil
}

// Read returns the current score of the field on c.
func (f StatField) Read(c *data.Country) (data.Score, error) {
	s := f.score(c)
	if s == nil {
		return data.Score{}, fmt.Errorf("stat field %d: %w", int(f), ErrPathNotFound)
	}
	return *s, nil
}

// Method is how a delta amount is turned into the applied change.
type Method int

const (
	Flat Method = iota
	Roll
)

func (m Method) String() string {
	if m == Roll {
		return "roll"
	}
	return "flat"
}

// ParseMethod accepts "flat" or "roll"; empty means flat.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat":
		return Flat, nil
	case "roll", "1dx":
		return Roll, nil
	}
	return Flat, fmt.Errorf("method %q (want flat or roll): %w", s, ErrInvalidArgument)
}

// Delta reports one applied stat change.
type Delta struct {
	Field    StatField
	Method   Method
	Applied  int
	Previous data.Score
	Current  data.Score
}

// ApplyDelta changes one stat of c in place. Roll draws the change from
// [1, amount]; Flat uses amount as-is. A numeric field is incremented; an
// unset or non-numeric field is overwritten with the change itself. The
// recorded tier is left alone even when the value leaves its range.
func ApplyDelta(c *data.Country, field StatField, amount int, method Method, src Source) (Delta, error) {
	target := field.score(c)
	if target == nil {
		return Delta{}, fmt.Errorf("stat field %d: %w", int(field), ErrPathNotFound)
	}

	applied := amount
	if method == Roll {
		if amount < 1 {
			return Delta{}, fmt.Errorf("roll ceiling %d must be at least 1: %w", amount, ErrInvalidAmount)
		}
		applied = src.IntRange(1, amount)
	}

	d := Delta{Field: field, Method: method, Applied: applied, Previous: *target}
	if cur, ok := target.Value(); ok {
		*target = data.NewScore(cur + float64(applied))
	} else {
		*target = data.NewScore(float64(applied))
	}
	d.Current = *target
	return d, nil
}
