package command

import (
	"fmt"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
)

func init() {
	stats := []struct {
		name  string
		field engine.StatField
		what  string
	}{
		{"eco", engine.StatEconomy, "economy score"},
		{"stability", engine.StatStability, "stability score"},
		{"moral", engine.StatMorale, "morale"},
		{"supply", engine.StatSupply, "supply level"},
		{"military", engine.StatMilitary, "military value (hidden score, not tier directly)"},
	}
	for _, s := range stats {
		register(&Definition{
			Name:    s.name,
			Usage:   fmt.Sprintf("/%s country: <country> amount: <n> [method: flat|roll]", s.name),
			Summary: fmt.Sprintf("Modify a country's %s.", s.what),
			GMOnly:  true,
			Run:     modifyStat(s.field),
		})
	}
}

func modifyStat(field engine.StatField) func(*Env, *parser.Invocation) (*Result, error) {
	return func(env *Env, inv *parser.Invocation) (*Result, error) {
		c, err := countryArg(env, inv)
		if err != nil {
			return nil, err
		}
		amount, err := requiredInt(inv, "amount")
		if err != nil {
			return nil, err
		}
		method, err := engine.ParseMethod(inv.Get("method"))
		if err != nil {
			return nil, fail(engine.ErrInvalidArgument, "❌ Method must be flat or roll.")
		}

		d, err := engine.ApplyDelta(&c, field, amount, method, env.Dice)
		if err != nil {
			return nil, fail(engine.ErrInvalidAmount, "❌ A roll needs an amount of at least 1.")
		}
		env.Countries.Put(c)

		res := reply(fmt.Sprintf("📈 %s for *%s* modified by *%d*.", field.Label(), c.Name, d.Applied))
		res.Whispers = append(res.Whispers, fmt.Sprintf("🕵️ GM Log: %s's %s is now %s", c.Name, field.Path(), d.Current))
		if note := tierDrift(env, c, field, d.Current); note != "" {
			res.Whispers = append(res.Whispers, note)
		}
		res.Changed = DocCountries
		return res, nil
	}
}

// tierDrift flags a stat block whose recorded tier no longer contains its
// value. The tier itself is left for the GM to change.
func tierDrift(env *Env, c data.Country, field engine.StatField, current data.Score) string {
	var recorded string
	switch field {
	case engine.StatEconomy:
		recorded = c.Economy.Tier
	case engine.StatStability:
		recorded = c.Stability.Tier
	case engine.StatMilitary:
		recorded = c.MilitaryStrength.Tier
	default:
		return ""
	}
	v, ok := wholeValue(current)
	if !ok {
		return ""
	}
	reads, err := env.Tiers.For(field).Of(v)
	if err != nil {
		return fmt.Sprintf("⚠️ %s %d is outside every tier (recorded: %s).", field.Label(), v, recorded)
	}
	if reads != recorded {
		return fmt.Sprintf("⚠️ %s is recorded as %s but %d reads as %s.", field.Label(), recorded, v, reads)
	}
	return ""
}
