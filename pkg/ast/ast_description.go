package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

// Description is the documentation attached to exactly one definition, field,
// input value or enum value. It comes either from a string/block-string
// literal or from a run of '#' comment lines directly above the construct.
type Description struct {
	IsDefined     bool
	Content       string
	IsBlockString bool
	Position      position.Position
}
