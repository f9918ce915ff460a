package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

type OperationType int

const (
	OperationTypeUndefined OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "undefined"
	}
}

// RootOperationTypeDefinition is a single `query: QueryRoot` entry inside a
// schema definition body.
type RootOperationTypeDefinition struct {
	OperationType OperationType
	NamedType     NamedType
	Position      position.Position
}

type SchemaDefinition struct {
	Description                  Description
	Directives                   []Directive
	RootOperationTypeDefinitions []RootOperationTypeDefinition
	Position                     position.Position
}

func (d *SchemaDefinition) DefinitionPosition() position.Position { return d.Position }
func (d *SchemaDefinition) definitionNode()                       {}
