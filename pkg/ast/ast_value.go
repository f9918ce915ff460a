package ast

import "strconv"

// Value is one value expression, used for directive arguments, default values
// and object fields.
//
// The concrete types are IntValue, FloatValue, StringValue, BooleanValue,
// NullValue, EnumValue, ListValue and ObjectValue.
type Value interface {
	valueNode()
}

// IntValue keeps the raw literal, the syntactic layer does not range check.
type IntValue struct {
	Raw string
}

func (v IntValue) Int64() (int64, error) {
	return strconv.ParseInt(v.Raw, 10, 64)
}

type FloatValue struct {
	Raw string
}

func (v FloatValue) Float64() (float64, error) {
	return strconv.ParseFloat(v.Raw, 64)
}

// StringValue holds the decoded content. BlockString marks a triple-quoted
// literal whose common indentation has already been stripped by the lexer.
type StringValue struct {
	Value       string
	BlockString bool
}

type BooleanValue bool

type NullValue struct{}

type EnumValue struct {
	Name string
}

type ListValue struct {
	Values []Value
}

// ObjectValue fields keep source order. Field names are unique within one
// object, the parser rejects duplicates.
type ObjectValue struct {
	Fields []ObjectField
}

type ObjectField struct {
	Name  string
	Value Value
}

func (IntValue) valueNode()     {}
func (FloatValue) valueNode()   {}
func (StringValue) valueNode()  {}
func (BooleanValue) valueNode() {}
func (NullValue) valueNode()    {}
func (EnumValue) valueNode()    {}
func (ListValue) valueNode()    {}
func (ObjectValue) valueNode()  {}
