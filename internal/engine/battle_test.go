package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBattle(t *testing.T) {
	tests := []struct {
		name      string
		draws     []int
		modifier  int
		mode      RollMode
		final     int
		narrative string
		trace     string
	}{
		{"plain roll uses first draw", []int{7, 2}, 0, RollNone, 7, "Narrow turnout (Upper)", "Roll: 7"},
		{"advantage keeps higher", []int{3, 8}, 0, RollAdvantage, 8, "Normal turnout (Upper)", "Rolls: 3, 8 → Chose higher"},
		{"disadvantage keeps lower", []int{3, 8}, 0, RollDisadvantage, 3, "Critical turnout (Lower)", "Rolls: 3, 8 → Chose lower"},
		{"modifier applies", []int{5, 1}, 2, RollNone, 7, "Narrow turnout (Upper)", "Roll: 5"},
		{"clamps high", []int{9, 9}, 3, RollNone, 10, "Best turnout", "Roll: 9"},
		{"clamps low", []int{2, 6}, -3, RollDisadvantage, 1, "Narrow turnout (Lower)", "Rolls: 2, 6 → Chose lower"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewQueueSource(tt.draws...)
			b, err := ResolveBattle(src, tt.modifier, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.final, b.Final)
			assert.Equal(t, tt.narrative, b.Narrative)
			assert.Equal(t, tt.trace, b.Trace())
		})
	}
}

func TestResolveBattleAlwaysConsumesTwoDraws(t *testing.T) {
	for _, mode := range []RollMode{RollNone, RollAdvantage, RollDisadvantage} {
		src := NewQueueSource(4, 4, 9)
		_, err := ResolveBattle(src, 0, mode)
		require.NoError(t, err)
		assert.Equal(t, 1, src.Remaining(), mode.String())
	}
}

func TestResolveBattleRandomStaysInRange(t *testing.T) {
	src := NewSeededSource(42)
	for i := 0; i < 500; i++ {
		b, err := ResolveBattle(src, i%7-3, RollMode(i%3))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, b.Final, BattleDieMin)
		assert.LessOrEqual(t, b.Final, BattleDieMax)
	}
}

func TestNarrativeRejectsOutOfRange(t *testing.T) {
	_, err := Narrative(0)
	assert.ErrorIs(t, err, ErrInvalidResult)
	_, err = Narrative(11)
	assert.ErrorIs(t, err, ErrInvalidResult)

	got, err := Narrative(10)
	require.NoError(t, err)
	assert.Equal(t, "Best turnout", got)
}

func TestParseRollMode(t *testing.T) {
	for in, want := range map[string]RollMode{
		"":             RollNone,
		"None":         RollNone,
		"advantage":    RollAdvantage,
		"Disadvantage": RollDisadvantage,
	} {
		got, err := ParseRollMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRollMode("lucky")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
