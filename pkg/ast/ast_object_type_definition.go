package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

type ObjectTypeDefinition struct {
	Description          Description
	Name                 string
	ImplementsInterfaces []NamedType
	Directives           []Directive
	// HasFieldDefinitions distinguishes 'type Foo {}' (true with an empty
	// list) from 'type Foo' without a body (false).
	HasFieldDefinitions bool
	FieldDefinitions    []FieldDefinition
	Position            position.Position
}

func (d *ObjectTypeDefinition) DefinitionPosition() position.Position { return d.Position }
func (d *ObjectTypeDefinition) definitionNode()                       {}

// ObjectTypeExtension is an 'extend type' definition. Extensions never carry
// a description.
type ObjectTypeExtension struct {
	ObjectTypeDefinition
}
