package session

import (
	"errors"

	"github.com/bravoman80000/Country-Sim-Bot/internal/command"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
)

// Describe turns an error into the message shown in chat.
func Describe(err error) string {
	var f *command.Failure
	if errors.As(err, &f) {
		return f.Message
	}

	var syn *parser.SyntaxError
	switch {
	case errors.As(err, &syn):
		if d, ok := command.Lookup(syn.Command); ok {
			return "❌ I couldn't read that. Usage: " + d.Usage
		}
		return "❌ I wasn't able to understand your command. Try /help."
	case errors.Is(err, parser.ErrSyntax):
		return "❌ I wasn't able to understand your command. Try /help."
	case errors.Is(err, engine.ErrUnauthorized):
		return "❌ Only GMs may alter the course of nations."
	case errors.Is(err, engine.ErrNotFound):
		return "❌ The Archivist finds no such record."
	case errors.Is(err, engine.ErrPathNotFound):
		return "❌ That is not a stat the Archivist tracks."
	case errors.Is(err, engine.ErrInvalidAmount):
		return "❌ That amount cannot be applied."
	case errors.Is(err, engine.ErrInvalidTurn):
		return "⚠️ Turn must be between 1 and 4."
	case errors.Is(err, engine.ErrInvalidResult):
		return "❌ The battle roll fell outside the ledger's range."
	case errors.Is(err, engine.ErrAlreadyExists):
		return "⚠️ The Archivist has already recorded that."
	case errors.Is(err, engine.ErrInvalidArgument):
		return "❌ Some of those details don't make sense. Try /help."
	}
	return "❌ The Archivist's quill slipped; nothing was recorded. Please try again."
}
