package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
	"github.com/bravoman80000/Country-Sim-Bot/internal/registry"
)

func init() {
	register(
		&Definition{
			Name:    "declarewar",
			Usage:   "/declarewar name: <title> attacker: <who> defender: <who> [intensity: 1-20] [attacker_emoji: 🟥] [defender_emoji: 🟦]",
			Summary: "Declare a new war between two nations.",
			GMOnly:  true,
			Run:     declareWar,
		},
		&Definition{
			Name:    "resolvebattle",
			Usage:   "/resolvebattle [war: <war>] attacker: <faction> defender: <faction> [modifier: -3..3] [roll_mode: Advantage|Disadvantage|None]",
			Summary: "Resolve a battle between two factions.",
			GMOnly:  true,
			Run:     resolveBattle,
		},
		&Definition{
			Name:    "updatewar",
			Usage:   "/updatewar name: <war> change: <momentum>",
			Summary: "Update the momentum value of a war.",
			GMOnly:  true,
			Run:     updateWar,
		},
		&Definition{
			Name:    "editwar",
			Usage:   "/editwar name: <war> [new_attacker:] [new_defender:] [new_intensity:] [new_attacker_emoji:] [new_defender_emoji:]",
			Summary: "Edit war details like attacker, defender, emojis, or intensity.",
			GMOnly:  true,
			Run:     editWar,
		},
		&Definition{
			Name:    "endwar",
			Usage:   "/endwar name: <war>",
			Summary: "Close an active war and stamp its end date.",
			GMOnly:  true,
			Run:     endWar,
		},
		&Definition{
			Name:    "deletewar",
			Usage:   "/deletewar war_name: <war>",
			Summary: "Remove a war permanently from the ledger.",
			GMOnly:  true,
			Run:     deleteWar,
		},
		&Definition{
			Name:    "warbar",
			Usage:   "/warbar war_name: <war>",
			Summary: "View the current war bar for a war.",
			Run:     warBar,
		},
		&Definition{
			Name:    "warledger",
			Usage:   "/warledger [show_closed: yes]",
			Summary: "View a list of all current or past wars.",
			Run:     warLedger,
		},
	)
}

func warName(inv *parser.Invocation) (string, error) {
	if name := inv.First("name", "war_name"); name != "" {
		return name, nil
	}
	return "", fail(engine.ErrInvalidArgument, "❌ Which war? Usage: %s", usageOf(inv.Name))
}

func declareWar(env *Env, inv *parser.Invocation) (*Result, error) {
	name, err := required(inv, "name", true)
	if err != nil {
		return nil, err
	}
	attacker, err := required(inv, "attacker", false)
	if err != nil {
		return nil, err
	}
	defender, err := required(inv, "defender", false)
	if err != nil {
		return nil, err
	}
	intensity, err := intArg(inv, "intensity", registry.DefaultIntensity)
	if err != nil {
		return nil, err
	}

	w, err := env.Wars.Declare(registry.Declaration{
		Name:          name,
		Attacker:      attacker,
		Defender:      defender,
		Intensity:     intensity,
		AttackerEmoji: inv.Get("attacker_emoji"),
		DefenderEmoji: inv.Get("defender_emoji"),
	}, env.Today)
	if errors.Is(err, engine.ErrAlreadyExists) {
		return nil, fail(engine.ErrAlreadyExists, "⚠️ The ledger already holds a war named *%s*.", name)
	}
	if err != nil {
		return nil, err
	}

	res := reply(fmt.Sprintf("👮 *The Archivist records a new war...*\n"+
		"%s %s vs %s %s\n"+
		"📖 Title: _%s_\n"+
		"🔥 Intensity: %d (War Bar size)\n"+
		"🗓️ Begun: %s\n"+
		"📊 Momentum set to ⚔️ (0)",
		w.AttackerEmoji, w.Attacker, w.Defender, w.DefenderEmoji,
		w.Name, w.Intensity, w.StartedAt))
	res.Changed = DocWars
	return res, nil
}

func resolveBattle(env *Env, inv *parser.Invocation) (*Result, error) {
	warTitle := "Independent Engagement"
	attacker, defender := inv.Get("attacker"), inv.Get("defender")
	if raw := inv.Get("war"); raw != "" {
		warTitle = title(registry.NormalizeName(raw))
		if w, err := env.Wars.Active(raw); err == nil {
			warTitle = title(w.Name)
			if attacker == "" {
				attacker = w.Attacker
			}
			if defender == "" {
				defender = w.Defender
			}
		}
	}
	if attacker == "" || defender == "" {
		return nil, fail(engine.ErrInvalidArgument, "❌ A battle needs an attacker and a defender. Usage: %s", usageOf(inv.Name))
	}

	modifier, err := intArg(inv, "modifier", 0)
	if err != nil {
		return nil, err
	}
	mode, err := engine.ParseRollMode(inv.Get("roll_mode"))
	if err != nil {
		return nil, fail(engine.ErrInvalidArgument, "❌ Roll mode must be Advantage, Disadvantage or None.")
	}

	b, err := engine.ResolveBattle(env.Dice, modifier, mode)
	if err != nil {
		return nil, err
	}
	return reply(fmt.Sprintf("📜 _The Archivist opens the ledger..._\n\n"+
		"⚔️ *%s*\n"+
		"🎯 Attacker: *%s*\n"+
		"🛡️ Defender: *%s*\n\n"+
		"🎲 %s\n"+
		"🔧 Modifier: %d\n"+
		"📟 Final Roll: *%d*\n\n"+
		"📖 *Outcome:* %s",
		warTitle, title(attacker), title(defender),
		b.Trace(), b.Modifier, b.Final, b.Narrative)), nil
}

func updateWar(env *Env, inv *parser.Invocation) (*Result, error) {
	name, err := warName(inv)
	if err != nil {
		return nil, err
	}
	change, err := requiredInt(inv, "change")
	if err != nil {
		return nil, err
	}
	w, err := env.Wars.Update(name, change)
	if err != nil {
		return nil, fail(engine.ErrNotFound, "❌ No active war by that name found.")
	}
	res := reply(fmt.Sprintf("⚖️ Updated *%s* momentum to %d.", w.Name, w.Momentum))
	if intensity := registry.BarIntensity(w); abs(w.Momentum) > intensity {
		res.Whispers = append(res.Whispers, fmt.Sprintf("🕵️ GM Log: momentum %d exceeds intensity %d; the bar shows it at the edge.", w.Momentum, intensity))
	}
	res.Changed = DocWars
	return res, nil
}

func editWar(env *Env, inv *parser.Invocation) (*Result, error) {
	name, err := warName(inv)
	if err != nil {
		return nil, err
	}
	var p registry.WarPatch
	if v := inv.Get("new_attacker"); v != "" {
		p.Attacker = &v
	}
	if v := inv.Get("new_defender"); v != "" {
		p.Defender = &v
	}
	if inv.Get("new_intensity") != "" {
		n, err := intArg(inv, "new_intensity", 0)
		if err != nil {
			return nil, err
		}
		p.Intensity = &n
	}
	if v := inv.Get("new_attacker_emoji"); v != "" {
		p.AttackerEmoji = &v
	}
	if v := inv.Get("new_defender_emoji"); v != "" {
		p.DefenderEmoji = &v
	}

	w, err := env.Wars.Edit(name, p)
	if err != nil {
		return nil, fail(engine.ErrNotFound, "❌ War not found or inactive.")
	}
	res := reply(fmt.Sprintf("✏️ Updated *%s*.\nNow %s *%s* vs %s %s | Intensity: %d",
		w.Name, w.AttackerEmoji, w.Attacker, w.Defender, w.DefenderEmoji, w.Intensity))
	res.Changed = DocWars
	return res, nil
}

func endWar(env *Env, inv *parser.Invocation) (*Result, error) {
	name, err := warName(inv)
	if err != nil {
		return nil, err
	}
	w, err := env.Wars.Close(name, env.Today)
	if err != nil {
		return nil, fail(engine.ErrNotFound, "❌ No active war by that name found.")
	}
	res := reply(fmt.Sprintf("🏳️ *%s* has ended on %s. The Archivist closes the chapter.\n%s vs %s | Final momentum: %+d",
		w.Name, w.EndedAt, w.Attacker, w.Defender, w.Momentum))
	res.Changed = DocWars
	return res, nil
}

func deleteWar(env *Env, inv *parser.Invocation) (*Result, error) {
	name, err := warName(inv)
	if err != nil {
		return nil, err
	}
	if env.Wars.Delete(name) == 0 {
		return reply("⚠️ No war by that name found to delete."), nil
	}
	res := reply(fmt.Sprintf("🗑️ War *%s* has been permanently removed from the records.", name))
	res.Changed = DocWars
	return res, nil
}

func warBar(env *Env, inv *parser.Invocation) (*Result, error) {
	name, err := warName(inv)
	if err != nil {
		return nil, err
	}
	w, err := env.Wars.Active(name)
	if err != nil {
		return nil, fail(engine.ErrNotFound, "❌ No active war found.")
	}
	bar := engine.RenderBar(registry.BarIntensity(w), w.Momentum, w.AttackerEmoji, w.DefenderEmoji)
	return reply(fmt.Sprintf("📊 *%s*\n%s vs %s\n\n%s\n\n📆 Intensity: %d | 📈 Momentum: %+d",
		title(w.Name), w.Attacker, w.Defender, bar, bar.Intensity, bar.Momentum)), nil
}

func warLedger(env *Env, inv *parser.Invocation) (*Result, error) {
	showClosed, err := boolArg(inv, "show_closed")
	if err != nil {
		return nil, err
	}
	visible := env.Wars.List(showClosed)
	if len(visible) == 0 {
		return reply("📖 No wars found in the Archivist's records."), nil
	}

	var b strings.Builder
	b.WriteString("📚 *The Archivist's War Ledger:*\n")
	for _, w := range visible {
		status := "🔥 Active"
		if !w.IsActive() {
			status = "✅ Closed"
		}
		end := w.EndedAt
		if end == "" {
			end = "Ongoing"
		}
		fmt.Fprintf(&b, "\n• *%s* (%s)\n  %s vs %s\n  Intensity: %d | Dates: %s - %s\n",
			w.Name, status, w.Attacker, w.Defender, w.Intensity, w.StartedAt, end)
	}
	return reply(b.String()), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
