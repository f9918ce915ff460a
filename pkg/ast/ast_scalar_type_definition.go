package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

type ScalarTypeDefinition struct {
	Description Description
	Name        string
	Directives  []Directive
	Position    position.Position
}

func (d *ScalarTypeDefinition) DefinitionPosition() position.Position { return d.Position }
func (d *ScalarTypeDefinition) definitionNode()                       {}

type ScalarTypeExtension struct {
	ScalarTypeDefinition
}
