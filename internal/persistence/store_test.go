package persistence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
)

func openers(t *testing.T) map[string]func() *Documents {
	return map[string]func() *Documents{
		DriverJSON: func() *Documents {
			s, err := OpenJSON(t.TempDir())
			require.NoError(t, err)
			return s
		},
		DriverSQLite: func() *Documents {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
			require.NoError(t, err)
			return s
		},
	}
}

func TestEmptyStore(t *testing.T) {
	for driver, open := range openers(t) {
		t.Run(driver, func(t *testing.T) {
			s := open()
			defer s.Close()

			countries, err := s.LoadCountries()
			require.NoError(t, err)
			assert.Empty(t, countries)
			assert.NotNil(t, countries)

			log, err := s.LoadWars()
			require.NoError(t, err)
			assert.Empty(t, log.Wars)

			def := data.Calendar{Year: 1444, Turn: 1}
			cal, err := s.LoadCalendar(def)
			require.NoError(t, err)
			assert.Equal(t, def, cal)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	venice := data.Country{
		Leader:           "Doge",
		MilitaryStrength: data.StatBlock{Tier: "Moderate", Value: data.NewScore(30)},
		Stability:        data.StatBlock{Tier: "Stable", Value: data.NewScore(65)},
		Economy:          data.StatBlock{Tier: "Growing", Value: data.NewScore(160.5)},
		Morale:           data.NewScore(70),
		Supply:           data.NewScore(60),
		Composition:      "Galleys",
		Tags:             []string{"Naval"},
	}
	war := data.War{
		Name: "Punic War", Attacker: "Rome", Defender: "Carthage",
		Momentum: 12, Intensity: 5, AttackerEmoji: "🟥", DefenderEmoji: "🟦",
		Status: data.WarActive, StartedAt: "2026-10-15",
	}

	for driver, open := range openers(t) {
		t.Run(driver, func(t *testing.T) {
			s := open()
			defer s.Close()

			require.NoError(t, s.SaveCountries(map[string]data.Country{"Venice": venice}))
			require.NoError(t, s.SaveWars(data.WarLog{Wars: []data.War{war}}))
			require.NoError(t, s.SaveCalendar(data.Calendar{Year: 1450, Turn: 3}))

			countries, err := s.LoadCountries()
			require.NoError(t, err)
			require.Contains(t, countries, "Venice")
			got := countries["Venice"]
			assert.Equal(t, "Venice", got.Name)
			assert.Equal(t, "Doge", got.Leader)
			assert.Equal(t, "160.5", got.Economy.Value.String())
			assert.Equal(t, 65, got.Stability.Value.Int())
			assert.Equal(t, []string{"Naval"}, got.Tags)

			log, err := s.LoadWars()
			require.NoError(t, err)
			assert.Equal(t, []data.War{war}, log.Wars)

			cal, err := s.LoadCalendar(data.Calendar{Year: 1444, Turn: 1})
			require.NoError(t, err)
			assert.Equal(t, data.Calendar{Year: 1450, Turn: 3}, cal)
		})
	}
}

func TestSaveReplacesDocument(t *testing.T) {
	for driver, open := range openers(t) {
		t.Run(driver, func(t *testing.T) {
			s := open()
			defer s.Close()

			require.NoError(t, s.SaveCountries(map[string]data.Country{"A": {}, "B": {}}))
			require.NoError(t, s.SaveCountries(map[string]data.Country{"C": {}}))

			countries, err := s.LoadCountries()
			require.NoError(t, err)
			assert.Len(t, countries, 1)
			assert.Contains(t, countries, "C")
		})
	}
}

func TestJSONLayout(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenJSON(dir)
	require.NoError(t, err)

	require.NoError(t, s.SaveWars(data.WarLog{}))
	require.NoError(t, s.SaveCalendar(data.Calendar{Year: 1444, Turn: 2}))

	wars, err := os.ReadFile(filepath.Join(dir, WarsDoc))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"wars\": []\n}\n", string(wars))

	cal, err := os.ReadFile(filepath.Join(dir, CalendarDoc))
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"year\": 1444,\n    \"turn\": 2\n}\n", string(cal))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestLegacyDocumentsKeepUnsetScores(t *testing.T) {
	dir := t.TempDir()
	legacy := `{"Venice": {"leader": "Doge", "military_strength": {"tier": "Moderate", "value": "unset"},
		"stability": {"tier": "Stable", "value": 65}, "economy": {"tier": "Growing", "value": 160},
		"morale": "Normal", "supply": 50, "composition": "", "tags": []}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CountriesDoc), []byte(legacy), 0644))

	s, err := OpenJSON(dir)
	require.NoError(t, err)
	countries, err := s.LoadCountries()
	require.NoError(t, err)

	v := countries["Venice"]
	assert.False(t, v.Morale.IsSet())
	assert.Equal(t, "Normal", v.Morale.String())
	assert.False(t, v.MilitaryStrength.Value.IsSet())

	require.NoError(t, s.SaveCountries(countries))
	raw, err := os.ReadFile(filepath.Join(dir, CountriesDoc))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"morale": "Normal"`)
}

func TestCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, WarsDoc), []byte("{not json"), 0644))

	s, err := OpenJSON(dir)
	require.NoError(t, err)
	_, err = s.LoadWars()
	assert.ErrorContains(t, err, WarsDoc)
}

func TestOpenDrivers(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(Options{Driver: "sqlite", DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, filepath.Join(dir, "archivist.db"))

	s, err = Open(Options{DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(Options{Driver: "postgres", DataDir: dir})
	assert.Error(t, err)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	wars := filepath.Join(dir, "old_warlog.json")
	require.NoError(t, os.WriteFile(wars, []byte(`{"wars": [{"name": "Italian Wars", "attacker": "France", "defender": "Venice", "intensity": 5, "momentum": -2}]}`), 0644))

	s := OpenFiles(map[string]string{WarsDoc: wars})

	log, err := s.LoadWars()
	require.NoError(t, err)
	require.Len(t, log.Wars, 1)
	assert.Equal(t, -2, log.Wars[0].Momentum)

	countries, err := s.LoadCountries()
	require.NoError(t, err)
	assert.Empty(t, countries)

	cal, err := s.LoadCalendar(data.Calendar{Year: 1444, Turn: 1})
	require.NoError(t, err)
	assert.Equal(t, data.Calendar{Year: 1444, Turn: 1}, cal)

	assert.Error(t, s.SaveCalendar(cal))
	require.NoError(t, s.SaveWars(log))
	assert.FileExists(t, wars)
}
