package command

import (
	"fmt"
	"sort"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
	"github.com/bravoman80000/Country-Sim-Bot/internal/registry"
	"github.com/bravoman80000/Country-Sim-Bot/internal/rules"
)

// Env is the loaded world a handler works on. The session fills it before
// the call and persists the documents named in Result.Changed afterwards.
type Env struct {
	Countries *registry.Countries
	Wars      *registry.Wars
	Calendar  data.Calendar
	Tiers     engine.TierSet
	Dice      engine.Source
	Chronicle *rules.Chronicle
	Today     string // YYYY-MM-DD
	IsGM      bool
}

// Docs is a set of persisted documents.
type Docs uint8

const (
	DocCountries Docs = 1 << iota
	DocWars
	DocCalendar
)

// Has reports whether d includes every document in other.
func (d Docs) Has(other Docs) bool {
	return d&other == other
}

// Result holds the output of a command execution.
type Result struct {
	Messages []string
	Whispers []string // private notes for the caller only
	Changed  Docs
}

func reply(msgs ...string) *Result {
	return &Result{Messages: msgs}
}

// Definition describes one chat command.
type Definition struct {
	Name    string
	Usage   string
	Summary string
	GMOnly  bool
	Run     func(env *Env, inv *parser.Invocation) (*Result, error)
}

var definitions = map[string]*Definition{}

func register(defs ...*Definition) {
	for _, d := range defs {
		if _, dup := definitions[d.Name]; dup {
			panic(fmt.Sprintf("command %q registered twice", d.Name))
		}
		definitions[d.Name] = d
	}
}

// Lookup returns the command with the given lower-case name.
func Lookup(name string) (*Definition, bool) {
	d, ok := definitions[name]
	return d, ok
}

// Definitions lists every command alphabetically.
func Definitions() []*Definition {
	out := make([]*Definition, 0, len(definitions))
	for _, d := range definitions {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Failure is an error whose message is ready to show in chat. Kind is the
// engine sentinel it classifies as.
type Failure struct {
	Kind    error
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Kind
}

func fail(kind error, format string, args ...any) error {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
