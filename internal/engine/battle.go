package engine

import (
	"fmt"
	"strings"
)

// Battle rolls use a d10.
const (
	BattleDieMin = 1
	BattleDieMax = 10
)

// RollMode selects which of the two battle draws counts.
type RollMode int

const (
	RollNone RollMode = iota
	RollAdvantage
	RollDisadvantage
)

func (m RollMode) String() string {
	switch m {
	case RollAdvantage:
		return "Advantage"
	case RollDisadvantage:
		return "Disadvantage"
	}
	return "None"
}

// ParseRollMode accepts the mode names case-insensitively; empty means None.
func ParseRollMode(s string) (RollMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "normal":
		return RollNone, nil
	case "advantage", "adv":
		return RollAdvantage, nil
	case "disadvantage", "dis":
		return RollDisadvantage, nil
	}
	return RollNone, fmt.Errorf("roll mode %q (want Advantage, Disadvantage or None): %w", s, ErrInvalidArgument)
}

var outcomes = [...]string{
	1:  "Narrow turnout (Lower)",
	2:  "Normal turnout (Lower)",
	3:  "Critical turnout (Lower)",
	4:  "Narrow turnout (Medium)",
	5:  "Normal turnout (Medium)",
	6:  "Critical turnout (Medium)",
	7:  "Narrow turnout (Upper)",
	8:  "Normal turnout (Upper)",
	9:  "Critical turnout (Upper)",
	10: "Best turnout",
}

// Narrative maps a final battle value to its outcome.
func Narrative(result int) (string, error) {
	if result < BattleDieMin || result > BattleDieMax {
		return "", fmt.Errorf("battle result %d: %w", result, ErrInvalidResult)
	}
	return outcomes[result], nil
}

// Battle is the outcome of one resolution.
type Battle struct {
	Rolls     [2]int
	Mode      RollMode
	Base      int
	Modifier  int
	Final     int
	Narrative string
}

// Trace explains which draw was used.
func (b Battle) Trace() string {
	switch b.Mode {
	case RollAdvantage:
		return fmt.Sprintf("Rolls: %d, %d → Chose higher", b.Rolls[0], b.Rolls[1])
	case RollDisadvantage:
		return fmt.Sprintf("Rolls: %d, %d → Chose lower", b.Rolls[0], b.Rolls[1])
	}
	return fmt.Sprintf("Roll: %d", b.Rolls[0])
}

// ResolveBattle draws two d10s, keeps one according to mode, applies the
// modifier and clamps to the die range. Both draws are taken in every mode so
// the number of values consumed from src never depends on the mode.
func ResolveBattle(src Source, modifier int, mode RollMode) (Battle, error) {
	b := Battle{Mode: mode, Modifier: modifier}
	b.Rolls[0] = src.IntRange(BattleDieMin, BattleDieMax)
	b.Rolls[1] = src.IntRange(BattleDieMin, BattleDieMax)

	switch mode {
	case RollAdvantage:
		b.Base = max(b.Rolls[0], b.Rolls[1])
	case RollDisadvantage:
		b.Base = min(b.Rolls[0], b.Rolls[1])
	default:
		b.Base = b.Rolls[0]
	}

	b.Final = clamp(b.Base+modifier, BattleDieMin, BattleDieMax)
	narrative, err := Narrative(b.Final)
	if err != nil {
		return Battle{}, err
	}
	b.Narrative = narrative
	return b, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
