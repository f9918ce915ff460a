package ast

import "github.com/cespare/xxhash/v2"

// Index enables constant time lookup of definitions by name. Extensions are
// excluded so a lookup always yields base definitions.
type Index struct {
	definitions map[uint64][]Definition
}

func NewIndex(doc *Document) *Index {
	index := &Index{
		definitions: make(map[uint64][]Definition, len(doc.Definitions)),
	}
	for _, definition := range doc.Definitions {
		name, ok := indexName(definition)
		if !ok {
			continue
		}
		key := xxhash.Sum64String(name)
		index.definitions[key] = append(index.definitions[key], definition)
	}
	return index
}

// DefinitionsByName returns all base definitions carrying the given name, in
// document order. Valid documents hold at most one per name but the parser
// does not enforce uniqueness, so callers get every match.
func (i *Index) DefinitionsByName(name string) []Definition {
	return i.definitions[xxhash.Sum64String(name)]
}

func indexName(definition Definition) (string, bool) {
	switch d := definition.(type) {
	case *ObjectTypeDefinition:
		return d.Name, true
	case *InterfaceTypeDefinition:
		return d.Name, true
	case *UnionTypeDefinition:
		return d.Name, true
	case *EnumTypeDefinition:
		return d.Name, true
	case *ScalarTypeDefinition:
		return d.Name, true
	case *InputObjectTypeDefinition:
		return d.Name, true
	case *DirectiveDefinition:
		return d.Name, true
	default:
		return "", false
	}
}
