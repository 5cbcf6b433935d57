package parser

import "strings"

// Command is one line of chat input: "/name [positional...] key: value ...".
type Command struct {
	Name       string   `parser:"@Word"`
	Positional []string `parser:"@(String | Word)*"`
	Args       []*Arg   `parser:"@@*"`
}

// Arg is a "key: value" pair. A bare value may span several words; they
// run until the next key.
type Arg struct {
	Key    string   `parser:"@Key"`
	Values []string `parser:"@(String | Word)*"`
}

// Invocation is a parsed command ready for dispatch.
type Invocation struct {
	Name       string
	Positional string
	Args       map[string]string
}

// Invocation flattens the parse tree. The command name is lower-cased and
// stripped of its slash and any Telegram "@botname" suffix; keys are
// lower-cased and a repeated key keeps its last value.
func (c *Command) Invocation() *Invocation {
	name, _, _ := strings.Cut(strings.TrimPrefix(c.Name, "/"), "@")
	inv := &Invocation{
		Name:       strings.ToLower(name),
		Positional: strings.Join(c.Positional, " "),
		Args:       make(map[string]string, len(c.Args)),
	}
	for _, a := range c.Args {
		inv.Args[strings.ToLower(a.Key)] = strings.Join(a.Values, " ")
	}
	return inv
}

// Get returns the trimmed value of key, or "" when absent.
func (i *Invocation) Get(key string) string {
	return strings.TrimSpace(i.Args[key])
}

// Has reports whether key was given, even with an empty value.
func (i *Invocation) Has(key string) bool {
	_, ok := i.Args[key]
	return ok
}

// First returns the first non-empty value among keys, falling back to the
// positional text. This lets "/warbar Punic War" stand in for
// "/warbar war_name: Punic War".
func (i *Invocation) First(keys ...string) string {
	for _, k := range keys {
		if v := i.Get(k); v != "" {
			return v
		}
	}
	return strings.TrimSpace(i.Positional)
}
