package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax marks input that does not follow the command grammar.
var ErrSyntax = errors.New("unrecognised command syntax")

var defaultParser = Build()

// Parse reads one line of input. Grammar failures wrap ErrSyntax.
func Parse(input string) (*Invocation, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input: %w", ErrSyntax)
	}
	cmd, err := defaultParser.ParseString("", input)
	if err != nil {
		return nil, MapError(input, err)
	}
	inv := cmd.Invocation()
	if inv.Name == "" {
		return nil, fmt.Errorf("no command name in %q: %w", input, ErrSyntax)
	}
	return inv, nil
}

// MapError turns a participle error into one naming the command that was
// being typed, so the caller can show its usage.
func MapError(input string, err error) error {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(input), "/"))
	if len(fields) == 0 {
		return fmt.Errorf("%v: %w", err, ErrSyntax)
	}
	name, _, _ := strings.Cut(fields[0], "@")
	return &SyntaxError{Command: strings.ToLower(name), Cause: err}
}

// SyntaxError reports a malformed command.
type SyntaxError struct {
	Command string
	Cause   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("could not read /%s: %v", e.Command, e.Cause)
}

// Is lets errors.Is match ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}
