package ast

import "github.com/gqltools/sdl/pkg/lexing/position"

// Type is a recursive type reference wrapper.
//
// The concrete types are NamedType, ListType and NonNullType. The grammar
// forbids '!!', a NonNullType never directly wraps another NonNullType. A
// ListType may wrap any reference, including another ListType or NonNullType.
type Type interface {
	typeNode()
}

type NamedType struct {
	Name     string
	Position position.Position
}

type ListType struct {
	OfType Type
}

type NonNullType struct {
	OfType Type
}

func (NamedType) typeNode()   {}
func (ListType) typeNode()    {}
func (NonNullType) typeNode() {}

// UnderlyingName unwraps list and non-null wrappers down to the named type.
func UnderlyingName(t Type) string {
	for {
		switch concrete := t.(type) {
		case NamedType:
			return concrete.Name
		case ListType:
			t = concrete.OfType
		case NonNullType:
			t = concrete.OfType
		default:
			return ""
		}
	}
}
