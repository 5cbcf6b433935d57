package command

import (
	"fmt"
	"strings"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
	"github.com/bravoman80000/Country-Sim-Bot/internal/registry"
)

func init() {
	register(
		&Definition{
			Name:    "registercountry",
			Usage:   "/registercountry name: <country> leader: <ruler> military_tier: <tier> stability_tier: <tier> economy_tier: <tier> morale: <tier> supply: <tier> [composition: <units>] [tags: a, b]",
			Summary: "Register a new country in the Archivist's ledger.",
			GMOnly:  true,
			Run:     registerCountry,
		},
		&Definition{
			Name:    "countryinfo",
			Usage:   "/countryinfo country: <country>",
			Summary: "View full public details about a registered country.",
			Run:     countryInfo,
		},
		&Definition{
			Name:    "checkeco",
			Usage:   "/checkeco country: <country>",
			Summary: "Check a country's economic tier.",
			Run:     recordedTierCheck(engine.StatEconomy, "💰 *Economy of %s*"),
		},
		&Definition{
			Name:    "checkstability",
			Usage:   "/checkstability country: <country>",
			Summary: "Check a country's stability tier.",
			Run:     recordedTierCheck(engine.StatStability, "🏛 *Stability of %s*"),
		},
		&Definition{
			Name:    "checkmoral",
			Usage:   "/checkmoral country: <country>",
			Summary: "Check a country's troop morale.",
			Run:     derivedTierCheck(engine.StatMorale, "🧠 *Morale of %s*", "Current Morale"),
		},
		&Definition{
			Name:    "checksupply",
			Usage:   "/checksupply country: <country>",
			Summary: "Check a country's supply levels.",
			Run:     derivedTierCheck(engine.StatSupply, "📦 *Supply Levels of %s*", "Current Supply"),
		},
		&Definition{
			Name:    "checkmilitary",
			Usage:   "/checkmilitary country: <country>",
			Summary: "Check a country's military strength tier.",
			Run:     checkMilitary,
		},
		&Definition{
			Name:    "checktags",
			Usage:   "/checktags country: <country>",
			Summary: "Check any tags associated with a country.",
			Run:     checkTags,
		},
		&Definition{
			Name:    "listcountries",
			Usage:   "/listcountries",
			Summary: "List every registered country.",
			Run:     listCountries,
		},
	)
}

func registerCountry(env *Env, inv *parser.Invocation) (*Result, error) {
	name, err := required(inv, "name", true)
	if err != nil {
		return nil, err
	}
	if _, err := env.Countries.Get(name); err == nil {
		return nil, fail(engine.ErrAlreadyExists, "⚠️ The Archivist has already recorded *%s*.", name)
	}

	reg := registry.Registration{
		Name:        name,
		Composition: inv.Get("composition"),
		Tags:        inv.Get("tags"),
	}
	if reg.Leader, err = required(inv, "leader", false); err != nil {
		return nil, err
	}
	tierArgs := []struct {
		key   string
		table engine.TierTable
		dst   *string
	}{
		{"military_tier", env.Tiers.Military, &reg.MilitaryTier},
		{"stability_tier", env.Tiers.Stability, &reg.StabilityTier},
		{"economy_tier", env.Tiers.Economy, &reg.EconomyTier},
		{"morale", env.Tiers.Morale, &reg.MoraleTier},
		{"supply", env.Tiers.Supply, &reg.SupplyTier},
	}
	for _, ta := range tierArgs {
		v, err := required(inv, ta.key, false)
		if err != nil {
			return nil, err
		}
		tier, err := ta.table.Lookup(v)
		if err != nil {
			return nil, fail(engine.ErrNotFound, "❌ Unknown %s %q. Choose one of: %s.",
				strings.ReplaceAll(ta.key, "_", " "), v, strings.Join(ta.table.Names(), ", "))
		}
		*ta.dst = tier.Name
	}

	c, err := env.Countries.Register(reg, env.Tiers, env.Dice)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📜 *The Archivist Records %s*\n", c.Name)
	b.WriteString("_The Archivist strikes pen to paper, recording the histories of these people..._\n\n")
	fmt.Fprintf(&b, "*Ruler:* %s\n", c.Leader)
	fmt.Fprintf(&b, "🛡 *Military:* %s\n", c.MilitaryStrength.Tier)
	fmt.Fprintf(&b, "💰 *Economy:* %s\n", c.Economy.Tier)
	fmt.Fprintf(&b, "🏛 *Stability:* %s\n", c.Stability.Tier)
	fmt.Fprintf(&b, "🧠 *Morale:* %s | 📦 *Supply:* %s", reg.MoraleTier, reg.SupplyTier)
	writeProfileExtras(&b, c)

	res := reply(b.String())
	res.Whispers = []string{fmt.Sprintf("🕵️ GM Log: %s rolled military %s, stability %s, economy %s, morale %s, supply %s.",
		c.Name, c.MilitaryStrength.Value, c.Stability.Value, c.Economy.Value, c.Morale, c.Supply)}
	res.Changed = DocCountries
	return res, nil
}

func writeProfileExtras(b *strings.Builder, c data.Country) {
	if c.Composition != "" {
		fmt.Fprintf(b, "\n🪖 *Unit Composition:* %s", c.Composition)
	}
	if len(c.Tags) > 0 {
		fmt.Fprintf(b, "\n🏷 *Tags:* %s", strings.Join(c.Tags, ", "))
	}
}

func countryArg(env *Env, inv *parser.Invocation) (data.Country, error) {
	name, err := required(inv, "country", true)
	if err != nil {
		return data.Country{}, err
	}
	return findCountry(env, name)
}

func countryInfo(env *Env, inv *parser.Invocation) (*Result, error) {
	c, err := countryArg(env, inv)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📘 *Country Profile: %s*\n", c.Name)
	fmt.Fprintf(&b, "*Leader:* %s\n", c.Leader)
	fmt.Fprintf(&b, "🛡 Military: %s\n", c.MilitaryStrength.Tier)
	fmt.Fprintf(&b, "💰 Economy: %s\n", c.Economy.Tier)
	fmt.Fprintf(&b, "🏛 Stability: %s\n", c.Stability.Tier)
	fmt.Fprintf(&b, "🧠 Morale: %s\n", c.Morale)
	fmt.Fprintf(&b, "📦 Supply: %s", c.Supply)
	writeProfileExtras(&b, c)
	return reply(b.String()), nil
}

func shiftLine(s engine.Shift) string {
	return fmt.Sprintf("\nClosest tier shift: *%s* to _%s_ — %d points needed.", title(string(s.Direction)), s.Target, s.PointsNeeded)
}

// recordedTierCheck reports a stat block's stored tier and, when the value
// sits on a tier edge, the imminent shift.
func recordedTierCheck(field engine.StatField, header string) func(*Env, *parser.Invocation) (*Result, error) {
	return func(env *Env, inv *parser.Invocation) (*Result, error) {
		c, err := countryArg(env, inv)
		if err != nil {
			return nil, err
		}
		var tier string
		switch field {
		case engine.StatEconomy:
			tier = c.Economy.Tier
		case engine.StatStability:
			tier = c.Stability.Tier
		}
		score, err := field.Read(&c)
		if err != nil {
			return nil, err
		}

		msg := fmt.Sprintf(header+"\n*Tier:* %s\n_Current Score:_ %s", c.Name, tier, score)
		if v, ok := wholeValue(score); ok {
			if s, ok := env.Tiers.For(field).Shift(tier, v); ok {
				msg += shiftLine(s)
			}
		}
		return reply(msg), nil
	}
}

// derivedTierCheck is for scalar stats that carry no tier of their own.
func derivedTierCheck(field engine.StatField, header, label string) func(*Env, *parser.Invocation) (*Result, error) {
	return func(env *Env, inv *parser.Invocation) (*Result, error) {
		c, err := countryArg(env, inv)
		if err != nil {
			return nil, err
		}
		score, err := field.Read(&c)
		if err != nil {
			return nil, err
		}

		table := env.Tiers.For(field)
		tier := "unrated"
		var shift string
		if v, ok := wholeValue(score); ok {
			if name, err := table.Of(v); err == nil {
				tier = name
				if s, ok := table.Shift(name, v); ok {
					shift = shiftLine(s)
				}
			} else {
				tier = "off the scale"
			}
		}
		return reply(fmt.Sprintf(header+"\n_%s:_ %s (%s)%s", c.Name, label, score, tier, shift)), nil
	}
}

func checkMilitary(env *Env, inv *parser.Invocation) (*Result, error) {
	c, err := countryArg(env, inv)
	if err != nil {
		return nil, err
	}
	return reply(fmt.Sprintf("🛡 *Military Strength of %s*\n*Tier:* %s\n_Further details remain in classified files._",
		c.Name, c.MilitaryStrength.Tier)), nil
}

func checkTags(env *Env, inv *parser.Invocation) (*Result, error) {
	c, err := countryArg(env, inv)
	if err != nil {
		return nil, err
	}
	text := "No tags assigned."
	if len(c.Tags) > 0 {
		text = strings.Join(c.Tags, ", ")
	}
	return reply(fmt.Sprintf("🏷 *Tags for %s*\n%s", c.Name, text)), nil
}

func listCountries(env *Env, _ *parser.Invocation) (*Result, error) {
	names := env.Countries.Names()
	return reply(fmt.Sprintf("🌍 *Registered Countries* (%d):\n%s", len(names), strings.Join(names, ", "))), nil
}
