package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
	"github.com/bravoman80000/Country-Sim-Bot/internal/registry"
	"github.com/bravoman80000/Country-Sim-Bot/internal/rules"
)

func newEnv(t *testing.T, dice ...int) (*Env, *engine.QueueSource) {
	t.Helper()
	src := engine.NewQueueSource(dice...)
	reg, err := rules.NewRegistry(src)
	require.NoError(t, err)
	chronicle, err := rules.LoadChronicle(reg, data.NewLoader([]string{t.TempDir()}))
	require.NoError(t, err)

	return &Env{
		Countries: registry.NewCountries(map[string]data.Country{
			"Venice": {
				Leader:           "Doge",
				MilitaryStrength: data.StatBlock{Tier: "Moderate", Value: data.NewScore(30)},
				Stability:        data.StatBlock{Tier: "Stable", Value: data.NewScore(69)},
				Economy:          data.StatBlock{Tier: "Growing", Value: data.NewScore(150)},
				Morale:           data.NewScore(66),
				Supply:           data.NewScore(60),
				Composition:      "Galleys",
				Tags:             []string{"Naval", "Mercantile"},
			},
		}),
		Wars:      registry.NewWars(data.WarLog{}),
		Calendar:  data.Calendar{Year: 1444, Turn: 1},
		Tiers:     engine.DefaultTierSet(),
		Dice:      src,
		Chronicle: chronicle,
		Today:     "2026-10-15",
		IsGM:      true,
	}, src
}

func run(t *testing.T, env *Env, input string) (*Result, error) {
	t.Helper()
	inv, err := parser.Parse(input)
	require.NoError(t, err)
	d, ok := Lookup(inv.Name)
	require.True(t, ok, "unknown command %s", inv.Name)
	return d.Run(env, inv)
}

func mustRun(t *testing.T, env *Env, input string) *Result {
	t.Helper()
	res, err := run(t, env, input)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}
