package command

import (
	"fmt"
	"strings"

	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
)

func init() {
	register(&Definition{
		Name:    "help",
		Usage:   "/help [command: <name>]",
		Summary: "Shows available commands or detailed info on a specific one.",
		Run:     help,
	})
}

func help(env *Env, inv *parser.Invocation) (*Result, error) {
	if name := strings.TrimPrefix(strings.ToLower(inv.First("command")), "/"); name != "" && name != "all" {
		d, ok := Lookup(name)
		if !ok {
			return nil, fail(engine.ErrNotFound, "❌ Unknown command: %s", name)
		}
		msg := fmt.Sprintf("*/%s*\n%s\nUsage: `%s`", d.Name, d.Summary, d.Usage)
		if d.GMOnly {
			msg += "\n_GM only._"
		}
		return reply(msg), nil
	}

	var b strings.Builder
	b.WriteString("📚 *The Archivist answers to:*\n")
	for _, d := range Definitions() {
		if d.GMOnly && !env.IsGM {
			continue
		}
		tag := ""
		if d.GMOnly {
			tag = " [GM]"
		}
		fmt.Fprintf(&b, "\n/%s%s: %s", d.Name, tag, d.Summary)
	}
	b.WriteString("\n\nType /help command: <name> for details.")
	return reply(b.String()), nil
}
