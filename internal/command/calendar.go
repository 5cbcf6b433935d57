package command

import (
	"fmt"

	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
	"github.com/bravoman80000/Country-Sim-Bot/internal/rules"
)

func init() {
	register(
		&Definition{
			Name:    "startturn",
			Usage:   "/startturn",
			Summary: "Advance to the next turn (increments turn/year).",
			GMOnly:  true,
			Run:     startTurn,
		},
		&Definition{
			Name:    "checkturn",
			Usage:   "/checkturn",
			Summary: "Check the current turn and year.",
			Run:     checkTurn,
		},
		&Definition{
			Name:    "setturn",
			Usage:   "/setturn year: <year> turn: <1-4>",
			Summary: "Set the current year and turn manually.",
			GMOnly:  true,
			Run:     setTurn,
		},
	)
}

func startTurn(env *Env, _ *parser.Invocation) (*Result, error) {
	env.Calendar = engine.AdvanceTurn(env.Calendar)
	res := reply(fmt.Sprintf("📅 It is now Turn %d of the year %d.", env.Calendar.Turn, env.Calendar.Year))
	res.Changed = DocCalendar

	events, err := env.Chronicle.Fire(rules.Facts{
		Year:       env.Calendar.Year,
		Turn:       env.Calendar.Turn,
		Countries:  env.Countries.Len(),
		ActiveWars: len(env.Wars.List(false)),
	})
	for _, e := range events {
		res.Messages = append(res.Messages, "📯 "+e)
	}
	if err != nil {
		res.Whispers = append(res.Whispers, fmt.Sprintf("⚠️ Chronicle stopped: %v", err))
	}
	return res, nil
}

func checkTurn(env *Env, _ *parser.Invocation) (*Result, error) {
	return reply(fmt.Sprintf("📖 The Archivist whispers: It is Turn %d of the year %d.", env.Calendar.Turn, env.Calendar.Year)), nil
}

func setTurn(env *Env, inv *parser.Invocation) (*Result, error) {
	year, err := requiredInt(inv, "year")
	if err != nil {
		return nil, err
	}
	turn, err := requiredInt(inv, "turn")
	if err != nil {
		return nil, err
	}
	cal, err := engine.SetCalendar(year, turn)
	if err != nil {
		return nil, fail(engine.ErrInvalidTurn, "⚠️ Turn must be between 1 and %d.", engine.TurnsPerYear)
	}
	env.Calendar = cal
	res := reply(fmt.Sprintf("📝 Time has been rewritten. It is now Turn %d of the year %d.", cal.Turn, cal.Year))
	res.Changed = DocCalendar
	return res, nil
}
