package command

import (
	"encoding/json"
	"fmt"

	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
)

func init() {
	register(
		&Definition{
			Name:    "dumpcountry",
			Usage:   "/dumpcountry country: <country> [stat: economy.value|stability.value|military_strength.value|morale|supply]",
			Summary: "Show one country's stored record as JSON.",
			GMOnly:  true,
			Run:     dumpCountry,
		},
		&Definition{
			Name:    "dumpjson",
			Usage:   "/dumpjson",
			Summary: "Show the whole countries document as JSON.",
			GMOnly:  true,
			Run:     dumpJSON,
		},
		&Definition{
			Name:    "resetcountry",
			Usage:   "/resetcountry country: <country>",
			Summary: "Reset a single country to defaults.",
			GMOnly:  true,
			Run:     resetCountry,
		},
	)
}

func jsonBlock(v any) (string, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode dump: %w", err)
	}
	return "```json\n" + string(raw) + "\n```", nil
}

func dumpCountry(env *Env, inv *parser.Invocation) (*Result, error) {
	c, err := countryArg(env, inv)
	if err != nil {
		return nil, err
	}
	if path := inv.Get("stat"); path != "" {
		field, err := engine.ParseStatField(path)
		if err != nil {
			return nil, fail(engine.ErrPathNotFound, "❌ No stat at %q. Try economy.value, stability.value, military_strength.value, morale or supply.", path)
		}
		v, err := field.Read(&c)
		if err != nil {
			return nil, err
		}
		return reply(fmt.Sprintf("🔎 `%s` %s = %s", c.Name, field.Path(), v)), nil
	}
	block, err := jsonBlock(c)
	if err != nil {
		return nil, err
	}
	return reply(block), nil
}

func dumpJSON(env *Env, _ *parser.Invocation) (*Result, error) {
	block, err := jsonBlock(env.Countries.Document())
	if err != nil {
		return nil, err
	}
	return reply(block), nil
}

func resetCountry(env *Env, inv *parser.Invocation) (*Result, error) {
	c, err := countryArg(env, inv)
	if err != nil {
		return nil, err
	}
	if _, err := env.Countries.Reset(c.Name); err != nil {
		return nil, err
	}
	res := reply(fmt.Sprintf("🔁 `%s` has been reset to defaults.", c.Name))
	res.Changed = DocCountries
	return res, nil
}
