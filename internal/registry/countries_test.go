package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
)

func registration(name string) Registration {
	return Registration{
		Name:          name,
		Leader:        "Doge",
		MilitaryTier:  "Moderate",
		StabilityTier: "Stable",
		EconomyTier:   "scraping by",
		MoraleTier:    "High",
		SupplyTier:    "Adequate",
		Composition:   "Galleys",
		Tags:          "Mercantile, Naval, Mercantile,",
	}
}

func TestRegisterRollsInsideTiers(t *testing.T) {
	tiers := engine.DefaultTierSet()
	r := NewCountries(nil)

	c, err := r.Register(registration("Venice"), tiers, engine.NewSeededSource(3))
	require.NoError(t, err)

	assert.Equal(t, "Venice", c.Name)
	assert.Equal(t, "Scraping By", c.Economy.Tier)
	checks := []struct {
		table engine.TierTable
		tier  string
		value int
	}{
		{tiers.Military, c.MilitaryStrength.Tier, c.MilitaryStrength.Value.Int()},
		{tiers.Stability, c.Stability.Tier, c.Stability.Value.Int()},
		{tiers.Economy, c.Economy.Tier, c.Economy.Value.Int()},
	}
	for _, chk := range checks {
		got, err := chk.table.Of(chk.value)
		require.NoError(t, err)
		assert.Equal(t, chk.tier, got)
	}

	morale, err := tiers.Morale.Of(c.Morale.Int())
	require.NoError(t, err)
	assert.Equal(t, "High", morale)

	assert.Equal(t, []string{"Mercantile", "Naval"}, c.Tags)
	assert.Equal(t, []string{"Venice"}, r.Names())
}

func TestRegisterDeterministicDraws(t *testing.T) {
	src := engine.NewQueueSource(30, 65, 120, 70, 60)
	c, err := NewCountries(nil).Register(registration("Genoa"), engine.DefaultTierSet(), src)
	require.NoError(t, err)

	assert.Equal(t, 30, c.MilitaryStrength.Value.Int())
	assert.Equal(t, 65, c.Stability.Value.Int())
	assert.Equal(t, 120, c.Economy.Value.Int())
	assert.Equal(t, 70, c.Morale.Int())
	assert.Equal(t, 60, c.Supply.Int())
}

func TestRegisterRejectsDuplicatesAndUnknownTiers(t *testing.T) {
	r := NewCountries(map[string]data.Country{"Venice": {Leader: "Doge"}})

	_, err := r.Register(registration("Venice"), engine.DefaultTierSet(), engine.NewQueueSource())
	assert.ErrorIs(t, err, engine.ErrAlreadyExists)

	reg := registration("Milan")
	reg.EconomyTier = "Bankrupt"
	_, err = r.Register(reg, engine.DefaultTierSet(), engine.NewQueueSource())
	assert.ErrorIs(t, err, engine.ErrNotFound)
	assert.Equal(t, 1, r.Len())
}

func TestCountryNamesAreCaseSensitive(t *testing.T) {
	r := NewCountries(map[string]data.Country{"Venice": {Leader: "Doge"}})

	c, err := r.Get("Venice")
	require.NoError(t, err)
	assert.Equal(t, "Venice", c.Name)

	_, err = r.Get("venice")
	assert.ErrorIs(t, err, engine.ErrNotFound)
	assert.Equal(t, []string{"Venice"}, r.Search("VEN", 0))
}

func TestReset(t *testing.T) {
	r := NewCountries(map[string]data.Country{"Venice": {Leader: "Doge", Tags: []string{"Naval"}}})

	c, err := r.Reset("Venice")
	require.NoError(t, err)
	assert.Equal(t, data.DefaultCountry("Venice"), c)

	_, err = r.Reset("Milan")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{"A", "B"}, SplitTags(" A ,B,, A"))
}
