package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

type InterfaceTypeDefinition struct {
	Description          Description
	Name                 string
	ImplementsInterfaces []NamedType
	Directives           []Directive
	HasFieldDefinitions  bool
	FieldDefinitions     []FieldDefinition
	Position             position.Position
}

func (d *InterfaceTypeDefinition) DefinitionPosition() position.Position { return d.Position }
func (d *InterfaceTypeDefinition) definitionNode()                       {}

type InterfaceTypeExtension struct {
	InterfaceTypeDefinition
}
