package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

// FieldDefinition is owned exclusively by its parent type definition.
// An absent argument list and an empty '()' both yield an empty
// ArgumentsDefinition, the distinction is not preserved.
type FieldDefinition struct {
	Description         Description
	Name                string
	ArgumentsDefinition []InputValueDefinition
	Type                Type
	Directives          []Directive
	Position            position.Position
}
