package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

// DirectiveDefinition is a `directive @name on LOCATION` definition.
// DirectiveLocations holds the location names in source order.
type DirectiveDefinition struct {
	Description         Description
	Name                string
	ArgumentsDefinition []InputValueDefinition
	DirectiveLocations  []string
	Position            position.Position
}

func (d *DirectiveDefinition) DefinitionPosition() position.Position { return d.Position }
func (d *DirectiveDefinition) definitionNode()                       {}
