// Package ast holds the abstract syntax tree of one SDL document.
//
// All nodes are built in a single parse pass and must be treated as immutable
// afterwards. The Document exclusively owns its descendants: the tree has no
// cycles and no shared nodes. Definition, Type and Value are sealed interface
// sets, a consumer switching over them handles every variant or none.
package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

// Document is an ordered sequence of top level definitions, in source order,
// without dedup or merging.
type Document struct {
	Definitions []Definition
}

// Definition is one top level SDL definition or type extension.
//
// The concrete types are *SchemaDefinition, *ObjectTypeDefinition,
// *InterfaceTypeDefinition, *UnionTypeDefinition, *EnumTypeDefinition,
// *ScalarTypeDefinition, *InputObjectTypeDefinition, *DirectiveDefinition and
// the six *<Kind>TypeExtension wrappers.
type Definition interface {
	DefinitionPosition() position.Position
	definitionNode()
}
