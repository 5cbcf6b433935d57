package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
)

func TestDumps(t *testing.T) {
	env, _ := newEnv(t)

	one := mustRun(t, env, "/dumpcountry country: Venice").Messages[0]
	assert.Contains(t, one, "```json\n{\n  \"leader\": \"Doge\"")
	assert.Contains(t, one, "\"morale\": 66")

	all := mustRun(t, env, "/dumpjson").Messages[0]
	assert.Contains(t, all, "\"Venice\": {")

	_, err := run(t, env, "/dumpcountry country: Atlantis")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestResetCountry(t *testing.T) {
	env, _ := newEnv(t)
	res := mustRun(t, env, "/resetcountry Venice")
	assert.Equal(t, "🔁 `Venice` has been reset to defaults.", res.Messages[0])
	assert.True(t, res.Changed.Has(DocCountries))

	c, err := env.Countries.Get("Venice")
	require.NoError(t, err)
	assert.Equal(t, data.DefaultCountry("Venice"), c)
}

func TestDumpCountryStatPath(t *testing.T) {
	env, _ := newEnv(t)

	res := mustRun(t, env, "/dumpcountry country: Venice stat: economy.value")
	assert.Equal(t, "🔎 `Venice` economy.value = 150", res.Messages[0])

	res = mustRun(t, env, "/dumpcountry country: Venice stat: Morale")
	assert.Equal(t, "🔎 `Venice` morale = 66", res.Messages[0])

	_, err := run(t, env, "/dumpcountry country: Venice stat: economy.tier")
	assert.ErrorIs(t, err, engine.ErrPathNotFound)
}
