// Package token defines the token emitted by the lexer.
package token

import (
	"fmt"

	"github.com/gqltools/sdl/pkg/lexing/keyword"
	"github.com/gqltools/sdl/pkg/lexing/position"
)

type Token struct {
	Keyword keyword.Keyword
	// Literal is the token value. For strings and block strings it holds the
	// decoded content, for comments the text without the leading '#', for
	// everything else the raw source text.
	Literal      string
	TextPosition position.Position
}

func (t Token) String() string {
	return fmt.Sprintf("token:: Keyword: %s, Literal: %q, Pos: %s", t.Keyword, t.Literal, t.TextPosition)
}

func (t *Token) SetStart(textPosition position.Position) {
	t.TextPosition.LineStart = textPosition.LineStart
	t.TextPosition.CharStart = textPosition.CharStart
}

func (t *Token) SetEnd(textPosition position.Position) {
	t.TextPosition.LineEnd = textPosition.LineStart
	t.TextPosition.CharEnd = textPosition.CharStart
}
