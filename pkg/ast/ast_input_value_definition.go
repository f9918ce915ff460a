package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

// InputValueDefinition describes one argument or input object field.
type InputValueDefinition struct {
	Description  Description
	Name         string
	Type         Type
	DefaultValue DefaultValue
	Directives   []Directive
	Position     position.Position
}

// DefaultValue tracks presence explicitly: an absent default is not the same
// as an explicit 'null' default.
type DefaultValue struct {
	IsDefined bool
	Value     Value
}
