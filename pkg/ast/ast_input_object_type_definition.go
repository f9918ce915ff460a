package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

type InputObjectTypeDefinition struct {
	Description              Description
	Name                     string
	Directives               []Directive
	HasInputFieldsDefinition bool
	InputFieldsDefinition    []InputValueDefinition
	Position                 position.Position
}

func (d *InputObjectTypeDefinition) DefinitionPosition() position.Position { return d.Position }
func (d *InputObjectTypeDefinition) definitionNode()                       {}

type InputObjectTypeExtension struct {
	InputObjectTypeDefinition
}
