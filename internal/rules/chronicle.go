package rules

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
)

// ChronicleFile is looked up in the data directories to replace the built-in events.
const ChronicleFile = "chronicle.yaml"

//go:embed chronicle.yaml
var defaultChronicle []byte

// Event is one scripted announcement.
type Event struct {
	When    string `yaml:"when"`
	Message string `yaml:"message"`
}

type chronicleFile struct {
	Events []Event `yaml:"events"`
}

type compiledEvent struct {
	Event
	prog cel.Program
}

// Chronicle evaluates scripted events against the calendar.
type Chronicle struct {
	events []compiledEvent
}

// NewChronicle compiles every event condition up front.
func NewChronicle(reg *Registry, events []Event) (*Chronicle, error) {
	c := &Chronicle{}
	for i, e := range events {
		prog, err := reg.Compile(e.When)
		if err != nil {
			return nil, fmt.Errorf("chronicle event %d (%q): %w", i+1, e.When, err)
		}
		c.events = append(c.events, compiledEvent{Event: e, prog: prog})
	}
	return c, nil
}

// LoadChronicle reads chronicle.yaml from the data directories, or the
// built-in events when there is none.
func LoadChronicle(reg *Registry, loader *data.Loader) (*Chronicle, error) {
	var f chronicleFile
	err := loader.Load(ChronicleFile, &f)
	if errors.Is(err, data.ErrNoReference) {
		if err := data.Decode(defaultChronicle, &f); err != nil {
			return nil, fmt.Errorf("embedded chronicle: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return NewChronicle(reg, f.Events)
}

// Len is the number of events.
func (c *Chronicle) Len() int {
	if c == nil {
		return 0
	}
	return len(c.events)
}

// Fire returns the messages of every event whose condition holds, in file
// order. A condition that errors or is not boolean stops evaluation.
func (c *Chronicle) Fire(facts Facts) ([]string, error) {
	if c == nil {
		return nil, nil
	}
	var out []string
	for _, e := range c.events {
		val, err := evaluate(e.prog, facts)
		if err != nil {
			return out, fmt.Errorf("chronicle %q: %w", e.When, err)
		}
		ok, isBool := val.(bool)
		if !isBool {
			return out, fmt.Errorf("chronicle %q yields %T, not bool", e.When, val)
		}
		if ok {
			out = append(out, e.Message)
		}
	}
	return out, nil
}
