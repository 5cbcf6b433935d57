package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
)

func TestParseKeyValues(t *testing.T) {
	inv, err := parser.Parse(`/declarewar name: Punic War attacker: Rome defender: Carthage intensity: 8`)
	require.NoError(t, err)

	assert.Equal(t, "declarewar", inv.Name)
	assert.Equal(t, "Punic War", inv.Get("name"))
	assert.Equal(t, "Rome", inv.Get("attacker"))
	assert.Equal(t, "Carthage", inv.Get("defender"))
	assert.Equal(t, "8", inv.Get("intensity"))
	assert.Empty(t, inv.Positional)
}

func TestParseQuotedAndEmoji(t *testing.T) {
	inv, err := parser.Parse(`/editwar name: "Punic War" new_attacker_emoji: 🔥 new_defender: "Carthage: the city"`)
	require.NoError(t, err)

	assert.Equal(t, "Punic War", inv.Get("name"))
	assert.Equal(t, "🔥", inv.Get("new_attacker_emoji"))
	assert.Equal(t, "Carthage: the city", inv.Get("new_defender"))
}

func TestParseNegativeNumbers(t *testing.T) {
	inv, err := parser.Parse("/updatewar name: Punic_War change: -3")
	require.NoError(t, err)
	assert.Equal(t, "-3", inv.Get("change"))
	assert.Equal(t, "Punic_War", inv.Get("name"))
}

func TestParsePositionalAndMention(t *testing.T) {
	inv, err := parser.Parse("/WarBar@ArchivistBot Punic War")
	require.NoError(t, err)

	assert.Equal(t, "warbar", inv.Name)
	assert.Equal(t, "Punic War", inv.Positional)
	assert.Equal(t, "Punic War", inv.First("war_name"))
}

func TestParseWithoutSlash(t *testing.T) {
	inv, err := parser.Parse("checkturn")
	require.NoError(t, err)
	assert.Equal(t, "checkturn", inv.Name)
	assert.Empty(t, inv.Args)
}

func TestParseEmptyValueAndRepeats(t *testing.T) {
	inv, err := parser.Parse("/warledger show_closed: country: A country: B")
	require.NoError(t, err)

	assert.True(t, inv.Has("show_closed"))
	assert.Equal(t, "", inv.Get("show_closed"))
	assert.Equal(t, "B", inv.Get("country"))
	assert.False(t, inv.Has("missing"))
}

func TestParseColonInsideValue(t *testing.T) {
	inv, err := parser.Parse("/declarewar name: Crisis:1 attacker: A defender:\tB")
	require.NoError(t, err)
	assert.Equal(t, "Crisis:1", inv.Get("name"))
	assert.Equal(t, "A", inv.Get("attacker"))
	assert.Equal(t, "B", inv.Get("defender"))

	inv, err = parser.Parse("/warbar Year:1380")
	require.NoError(t, err)
	assert.Equal(t, "Year:1380", inv.Positional)
	assert.Empty(t, inv.Args)
}

func TestParseKeysAreCaseInsensitive(t *testing.T) {
	inv, err := parser.Parse("/eco Country: Venice Amount: 5")
	require.NoError(t, err)
	assert.Equal(t, "Venice", inv.First("country"))
	assert.Equal(t, "5", inv.Get("amount"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		command string
	}{
		{`/declarewar name: "Punic War`, "declarewar"},
		{`/`, ""},
		{`name: Venice`, "name:"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, parser.ErrSyntax)

			if tt.command != "" {
				var se *parser.SyntaxError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.command, se.Command)
			}
		})
	}

	_, err := parser.Parse("   ")
	assert.ErrorIs(t, err, parser.ErrSyntax)
}

