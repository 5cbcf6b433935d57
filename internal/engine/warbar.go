package engine

import "strings"

// Glyph defaults for the war bar.
const (
	DefaultAttackerGlyph = "\U0001f7e5"
	DefaultDefenderGlyph = "\U0001f7e6"
	CenterGlyph          = "⚔️"
)

// Bar is a rendered momentum track: attacker tiles, the front line, defender tiles.
type Bar struct {
	Intensity     int
	Momentum      int // clamped to [-Intensity, Intensity]
	AttackerTiles int
	DefenderTiles int
	AttackerGlyph string
	DefenderGlyph string
}

// Slots is the total width of the bar including the center glyph.
func (b Bar) Slots() int {
	return b.AttackerTiles + b.DefenderTiles + 1
}

func (b Bar) String() string {
	return strings.Repeat(b.AttackerGlyph, b.AttackerTiles) + CenterGlyph + strings.Repeat(b.DefenderGlyph, b.DefenderTiles)
}

// RenderBar lays out a war's momentum. The stored momentum is a running total
// that may exceed the intensity; it is clamped here and only here. An
// intensity below 1 renders as 1.
func RenderBar(intensity, momentum int, attackerGlyph, defenderGlyph string) Bar {
	intensity = max(1, intensity)
	m := clamp(momentum, -intensity, intensity)
	half := (2*intensity + 1) / 2

	if attackerGlyph == "" {
		attackerGlyph = DefaultAttackerGlyph
	}
	if defenderGlyph == "" {
		defenderGlyph = DefaultDefenderGlyph
	}
	return Bar{
		Intensity:     intensity,
		Momentum:      m,
		AttackerTiles: half + m,
		DefenderTiles: half - m,
		AttackerGlyph: attackerGlyph,
		DefenderGlyph: defenderGlyph,
	}
}
