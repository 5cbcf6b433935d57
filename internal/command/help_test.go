package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
)

func TestEveryCommandIsRegistered(t *testing.T) {
	names := []string{
		"declarewar", "resolvebattle", "updatewar", "editwar", "endwar", "deletewar", "warbar", "warledger",
		"registercountry", "countryinfo", "checkeco", "checkstability", "checkmoral", "checksupply",
		"checkmilitary", "checktags", "listcountries", "eco", "stability", "moral", "supply", "military",
		"startturn", "checkturn", "setturn", "dumpcountry", "dumpjson", "resetcountry", "help",
	}
	for _, n := range names {
		d, ok := Lookup(n)
		if assert.True(t, ok, n) {
			assert.NotEmpty(t, d.Usage, n)
			assert.NotEmpty(t, d.Summary, n)
		}
	}
	assert.Len(t, Definitions(), len(names))
}

func TestGMOnlyCommands(t *testing.T) {
	gm := map[string]bool{
		"declarewar": true, "resolvebattle": true, "updatewar": true, "editwar": true, "endwar": true,
		"deletewar": true, "registercountry": true, "eco": true, "stability": true, "moral": true,
		"supply": true, "military": true, "startturn": true, "setturn": true, "dumpcountry": true,
		"dumpjson": true, "resetcountry": true,
	}
	for _, d := range Definitions() {
		assert.Equal(t, gm[d.Name], d.GMOnly, d.Name)
	}
}

func TestHelp(t *testing.T) {
	env, _ := newEnv(t)
	env.IsGM = false

	list := mustRun(t, env, "/help").Messages[0]
	assert.Contains(t, list, "/warbar:")
	assert.NotContains(t, list, "/declarewar")

	env.IsGM = true
	list = mustRun(t, env, "/help").Messages[0]
	assert.Contains(t, list, "/declarewar [GM]:")

	detail := mustRun(t, env, "/help command: /WARBAR").Messages[0]
	assert.Contains(t, detail, "Usage: `/warbar war_name: <war>`")

	_, err := run(t, env, "/help nuke")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}
