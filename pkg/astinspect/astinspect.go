// Package astinspect extracts syntactic relationships from a parsed document.
//
// It answers which named types a definition references, without any semantic
// validation: unresolved names are simply skipped when building edges.
package astinspect

import "github.com/gqltools/sdl/pkg/ast"

// Edge is one dependency between two definitions, by identifier.
type Edge struct {
	From string
	To   string
}

// DefinitionID returns the identifier a definition appears under in a
// dependency graph. Extensions get an "Ext" suffix so that a type and its
// extension stay distinct nodes, the schema definition is always "Schema".
func DefinitionID(definition ast.Definition) string {
	switch d := definition.(type) {
	case *ast.SchemaDefinition:
		return "Schema"
	case *ast.ObjectTypeDefinition:
		return d.Name
	case *ast.ObjectTypeExtension:
		return d.Name + "Ext"
	case *ast.InterfaceTypeDefinition:
		return d.Name
	case *ast.InterfaceTypeExtension:
		return d.Name + "Ext"
	case *ast.UnionTypeDefinition:
		return d.Name
	case *ast.UnionTypeExtension:
		return d.Name + "Ext"
	case *ast.EnumTypeDefinition:
		return d.Name
	case *ast.EnumTypeExtension:
		return d.Name + "Ext"
	case *ast.ScalarTypeDefinition:
		return d.Name
	case *ast.ScalarTypeExtension:
		return d.Name + "Ext"
	case *ast.InputObjectTypeDefinition:
		return d.Name
	case *ast.InputObjectTypeExtension:
		return d.Name + "Ext"
	case *ast.DirectiveDefinition:
		return d.Name
	default:
		return ""
	}
}

// TypeDependencies lists the named types a definition references: field and
// argument types, implemented interfaces, union members, input field types
// and schema root operation types. Names are deduplicated and kept in source
// order.
func TypeDependencies(definition ast.Definition) []string {
	c := &collector{seen: map[string]bool{}}

	switch d := definition.(type) {
	case *ast.SchemaDefinition:
		for _, root := range d.RootOperationTypeDefinitions {
			c.add(root.NamedType.Name)
		}
	case *ast.ObjectTypeDefinition:
		c.collectFieldsAndInterfaces(d.ImplementsInterfaces, d.FieldDefinitions)
	case *ast.ObjectTypeExtension:
		c.collectFieldsAndInterfaces(d.ImplementsInterfaces, d.FieldDefinitions)
	case *ast.InterfaceTypeDefinition:
		c.collectFieldsAndInterfaces(d.ImplementsInterfaces, d.FieldDefinitions)
	case *ast.InterfaceTypeExtension:
		c.collectFieldsAndInterfaces(d.ImplementsInterfaces, d.FieldDefinitions)
	case *ast.UnionTypeDefinition:
		c.collectMembers(d.UnionMemberTypes)
	case *ast.UnionTypeExtension:
		c.collectMembers(d.UnionMemberTypes)
	case *ast.InputObjectTypeDefinition:
		c.collectInputValues(d.InputFieldsDefinition)
	case *ast.InputObjectTypeExtension:
		c.collectInputValues(d.InputFieldsDefinition)
	case *ast.DirectiveDefinition:
		c.collectInputValues(d.ArgumentsDefinition)
	}

	return c.names
}

// DependencyEdges builds the dependency edges of a whole document. Referenced
// names without a definition in the document produce no edge.
func DependencyEdges(document *ast.Document) []Edge {
	index := ast.NewIndex(document)

	var edges []Edge
	for _, definition := range document.Definitions {
		from := DefinitionID(definition)
		if from == "" {
			continue
		}
		for _, to := range TypeDependencies(definition) {
			if len(index.DefinitionsByName(to)) == 0 {
				continue
			}
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

type collector struct {
	names []string
	seen  map[string]bool
}

func (c *collector) add(name string) {
	if c.seen[name] {
		return
	}
	c.seen[name] = true
	c.names = append(c.names, name)
}

func (c *collector) collectFieldsAndInterfaces(interfaces []ast.NamedType, fields []ast.FieldDefinition) {
	for _, named := range interfaces {
		c.add(named.Name)
	}
	for i := range fields {
		for _, argument := range fields[i].ArgumentsDefinition {
			c.add(ast.UnderlyingName(argument.Type))
		}
		c.add(ast.UnderlyingName(fields[i].Type))
	}
}

func (c *collector) collectMembers(members []ast.NamedType) {
	for _, member := range members {
		c.add(member.Name)
	}
}

func (c *collector) collectInputValues(list []ast.InputValueDefinition) {
	for i := range list {
		c.add(ast.UnderlyingName(list[i].Type))
	}
}
