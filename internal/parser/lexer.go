package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits chat input into key, quoted string and bare word tokens.
// Rule order matters: a key must win over a bare word. A key needs
// whitespace or the end of input after its colon, so "Crisis:1" stays one
// word.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Key", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*:(?:\s+|$)`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Word", Pattern: `[^\s"]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Build creates the parser from the struct tags in ast.go.
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
		participle.Map(func(t lexer.Token) (lexer.Token, error) {
			t.Value = strings.TrimSuffix(strings.TrimSpace(t.Value), ":")
			return t, nil
		}, "Key"),
	)
}
