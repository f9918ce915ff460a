package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

// Directive is one '@name(args)' application. Applications on a construct are
// kept in source order and are not deduplicated, rejecting repeated
// applications is a semantic concern.
type Directive struct {
	Name      string
	Arguments []Argument
	Position  position.Position
}

// Argument names are unique within one directive application, the parser
// rejects duplicates.
type Argument struct {
	Name     string
	Value    Value
	Position position.Position
}
