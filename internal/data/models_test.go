package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreDecoding(t *testing.T) {
	tests := []struct {
		raw    string
		set    bool
		value  float64
		output string
	}{
		{`12`, true, 12, `12`},
		{`12.5`, true, 12.5, `12.5`},
		{`-3`, true, -3, `-3`},
		{`"Normal"`, false, 0, `"Normal"`},
		{`null`, false, 0, `null`},
		{`{"odd":true}`, false, 0, `{"odd":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var s Score
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &s))
			v, ok := s.Value()
			assert.Equal(t, tt.set, ok)
			assert.Equal(t, tt.value, v)

			out, err := json.Marshal(s)
			require.NoError(t, err)
			assert.Equal(t, tt.output, string(out))
		})
	}
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "42", NewScore(42).String())
	assert.Equal(t, "unset", Score{}.String())

	var legacy Score
	require.NoError(t, json.Unmarshal([]byte(`"High"`), &legacy))
	assert.Equal(t, "High", legacy.String())
}

func TestCountryRoundTrip(t *testing.T) {
	raw := `{
		"leader": "Queen Mab",
		"military_strength": {"tier": "Light", "value": 12},
		"stability": {"tier": "Stable", "value": 64},
		"economy": {"tier": "Growing", "value": 180},
		"morale": "Normal",
		"supply": 55,
		"composition": "Pike and shot",
		"tags": ["Reformist", "Elite"]
	}`

	var first Country
	require.NoError(t, json.Unmarshal([]byte(raw), &first))
	assert.Equal(t, 180, first.Economy.Value.Int())
	assert.False(t, first.Morale.IsSet())

	out, err := json.Marshal(first)
	require.NoError(t, err)

	var second Country
	require.NoError(t, json.Unmarshal(out, &second))
	assert.Equal(t, first, second)
}

func TestWarRoundTrip(t *testing.T) {
	w := War{
		Name: "War of the Roses", Attacker: "York", Defender: "Lancaster",
		Momentum: 9, Intensity: 3, AttackerEmoji: "🌹", DefenderEmoji: "🥀",
		Status: WarClosed, StartedAt: "2026-01-02", EndedAt: "2026-02-03",
	}
	out, err := json.Marshal(WarLog{Wars: []War{w}})
	require.NoError(t, err)

	var back WarLog
	require.NoError(t, json.Unmarshal(out, &back))
	require.Len(t, back.Wars, 1)
	assert.Equal(t, w, back.Wars[0])
	assert.False(t, back.Wars[0].IsActive())
}
