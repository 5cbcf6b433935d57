package command

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
)

// title capitalises every word and lower-cases the rest, so "PUNIC war"
// reads "Punic War". Casers are stateful, so build one per call.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// required returns the value of the first key present, falling back to the
// positional text when primary is set.
func required(inv *parser.Invocation, key string, primary bool) (string, error) {
	v := inv.Get(key)
	if v == "" && primary {
		v = inv.First(key)
	}
	if v == "" {
		return "", fail(engine.ErrInvalidArgument, "❌ Missing *%s:*. Usage: %s", key, usageOf(inv.Name))
	}
	return v, nil
}

func intArg(inv *parser.Invocation, key string, def int) (int, error) {
	raw := inv.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(raw, "+"))
	if err != nil {
		return 0, fail(engine.ErrInvalidArgument, "❌ *%s:* must be a whole number, got %q.", key, raw)
	}
	return n, nil
}

func requiredInt(inv *parser.Invocation, key string) (int, error) {
	if _, err := required(inv, key, false); err != nil {
		return 0, err
	}
	return intArg(inv, key, 0)
}

// boolArg treats a key given without a value as true.
func boolArg(inv *parser.Invocation, key string) (bool, error) {
	if !inv.Has(key) {
		return false, nil
	}
	switch strings.ToLower(inv.Get(key)) {
	case "", "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	}
	return false, fail(engine.ErrInvalidArgument, "❌ *%s:* must be yes or no, got %q.", key, inv.Get(key))
}

func usageOf(name string) string {
	if d, ok := Lookup(name); ok {
		return d.Usage
	}
	return "/" + name
}

// findCountry loads a country by its exact name.
func findCountry(env *Env, name string) (data.Country, error) {
	c, err := env.Countries.Get(name)
	if err != nil {
		return data.Country{}, fail(engine.ErrNotFound, "❌ The Archivist finds no record of *%s*.", name)
	}
	return c, nil
}

// wholeValue returns the score as an int when it holds a whole number.
func wholeValue(s data.Score) (int, bool) {
	v, ok := s.Value()
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}
