package lint

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// HypLexer splits a board description into braces, parentheses, commas,
// "KEY=" tokens and bare words. Keys must be tried before words so that
// X1=13.0 lexes as Key "X1=", Word "13.0".
var HypLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},

	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},

	{Name: "Key", Pattern: `[^\s{}()=,]+=`},
	{Name: "Word", Pattern: `[^\s{}()=,]+`},
})
