package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

type UnionTypeDefinition struct {
	Description Description
	Name        string
	Directives  []Directive
	// HasUnionMemberTypes reports whether the '=' member list was present.
	// 'union U' without '=' declares a valid empty union.
	HasUnionMemberTypes bool
	UnionMemberTypes    []NamedType
	Position            position.Position
}

func (d *UnionTypeDefinition) DefinitionPosition() position.Position { return d.Position }
func (d *UnionTypeDefinition) definitionNode()                       {}

type UnionTypeExtension struct {
	UnionTypeDefinition
}
