package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
)

func TestCELRegistry(t *testing.T) {
	registry, err := NewRegistry(engine.NewQueueSource(7))
	require.NoError(t, err)
	eval := func(expr string, facts Facts) (any, error) {
		prog, err := registry.Compile(expr)
		if err != nil {
			return nil, err
		}
		return evaluate(prog, facts)
	}

	t.Run("Calendar variables", func(t *testing.T) {
		out, err := eval("year >= 1444 && turn == 2", Facts{Year: 1450, Turn: 2})
		require.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Roll function", func(t *testing.T) {
		out, err := eval("roll(1, 10)", Facts{})
		require.NoError(t, err)
		assert.Equal(t, int64(7), out)
	})

	t.Run("World counts", func(t *testing.T) {
		out, err := eval("active_wars > countries / 2", Facts{Countries: 4, ActiveWars: 3})
		require.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Unknown variable", func(t *testing.T) {
		_, err := eval("gold > 3", Facts{})
		assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	})
}

func TestDefaultChronicle(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	c, err := LoadChronicle(reg, data.NewLoader([]string{t.TempDir()}))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	msgs, err := c.Fire(Facts{Year: 10, Turn: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Event: The technological breakthrough in energy production boosts your economy."}, msgs)

	msgs, err = c.Fire(Facts{Year: 10, Turn: 2})
	require.NoError(t, err)
	assert.Empty(t, msgs)

	msgs, err = c.Fire(Facts{Year: 1444, Turn: 1})
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestChronicleOverride(t *testing.T) {
	dir := t.TempDir()
	custom := `events:
  - when: turn == 1
    message: A new year dawns.
  - when: year % 100 == 0
    message: A new century.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ChronicleFile), []byte(custom), 0644))

	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	c, err := LoadChronicle(reg, data.NewLoader([]string{dir}))
	require.NoError(t, err)

	msgs, err := c.Fire(Facts{Year: 1500, Turn: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"A new year dawns.", "A new century."}, msgs)
}

func TestChronicleRejectsBadConditions(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	_, err = NewChronicle(reg, []Event{{When: "year ==", Message: "broken"}})
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)

	c, err := NewChronicle(reg, []Event{{When: "year + 1", Message: "not a condition"}})
	require.NoError(t, err)
	_, err = c.Fire(Facts{Year: 1})
	assert.Error(t, err)
}

func TestNilChronicle(t *testing.T) {
	var c *Chronicle
	msgs, err := c.Fire(Facts{Year: 5, Turn: 1})
	assert.NoError(t, err)
	assert.Nil(t, msgs)
}
