package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
)

func TestStartTurn(t *testing.T) {
	env, _ := newEnv(t)
	env.Calendar = data.Calendar{Year: 1444, Turn: 4}

	res := mustRun(t, env, "/startturn")
	assert.Equal(t, []string{"📅 It is now Turn 1 of the year 1445."}, res.Messages)
	assert.Equal(t, data.Calendar{Year: 1445, Turn: 1}, env.Calendar)
	assert.True(t, res.Changed.Has(DocCalendar))
}

func TestStartTurnFiresChronicle(t *testing.T) {
	env, _ := newEnv(t)
	env.Calendar = data.Calendar{Year: 4, Turn: 4}

	res := mustRun(t, env, "/startturn")
	assert.Len(t, res.Messages, 2)
	assert.Equal(t, "📯 Event: The first trade agreement is signed with neighboring countries.", res.Messages[1])
}

func TestCheckAndSetTurn(t *testing.T) {
	env, _ := newEnv(t)

	res := mustRun(t, env, "/checkturn")
	assert.Equal(t, "📖 The Archivist whispers: It is Turn 1 of the year 1444.", res.Messages[0])
	assert.Zero(t, res.Changed)

	res = mustRun(t, env, "/setturn year: 1446 turn: 3")
	assert.Equal(t, "📝 Time has been rewritten. It is now Turn 3 of the year 1446.", res.Messages[0])
	assert.Equal(t, data.Calendar{Year: 1446, Turn: 3}, env.Calendar)

	_, err := run(t, env, "/setturn year: 1446 turn: 5")
	assert.ErrorIs(t, err, engine.ErrInvalidTurn)
	assert.Equal(t, data.Calendar{Year: 1446, Turn: 3}, env.Calendar)

	_, err = run(t, env, "/setturn turn: 2")
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}
