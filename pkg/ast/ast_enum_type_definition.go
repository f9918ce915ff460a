package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

type EnumTypeDefinition struct {
	Description             Description
	Name                    string
	Directives              []Directive
	HasEnumValuesDefinition bool
	EnumValuesDefinition    []EnumValueDefinition
	Position                position.Position
}

func (d *EnumTypeDefinition) DefinitionPosition() position.Position { return d.Position }
func (d *EnumTypeDefinition) definitionNode()                       {}

type EnumValueDefinition struct {
	Description Description
	EnumValue   string
	Directives  []Directive
	Position    position.Position
}

type EnumTypeExtension struct {
	EnumTypeDefinition
}
