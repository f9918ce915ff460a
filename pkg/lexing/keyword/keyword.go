// Package keyword classifies the tokens emitted by the lexer.
package keyword

import "fmt"

type Keyword int

const (
	UNDEFINED Keyword = iota
	EOF
	COMMENT

	COLON
	BANG
	AT
	SPREAD
	PIPE
	EQUALS
	AND
	DOLLAR
	BRACKETOPEN
	BRACKETCLOSE
	SQUAREBRACKETOPEN
	SQUAREBRACKETCLOSE
	CURLYBRACKETOPEN
	CURLYBRACKETCLOSE

	STRING
	BLOCKSTRING
	INTEGER
	FLOAT

	IDENT
	ON
	TRUE
	FALSE
	NULL
	TYPE
	ENUM
	UNION
	INPUT
	QUERY
	EXTEND
	SCHEMA
	SCALAR
	MUTATION
	INTERFACE
	DIRECTIVE
	IMPLEMENTS
	SUBSCRIPTION
)

// IsName reports whether a token classified as k is a valid Name.
// SDL keywords are not reserved, a field or type may be called 'type'.
func (k Keyword) IsName() bool {
	return k >= IDENT
}

func (k Keyword) String() string {
	switch k {
	case UNDEFINED:
		return "UNDEFINED"
	case EOF:
		return "EOF"
	case COMMENT:
		return "COMMENT"
	case COLON:
		return "COLON"
	case BANG:
		return "BANG"
	case AT:
		return "AT"
	case SPREAD:
		return "SPREAD"
	case PIPE:
		return "PIPE"
	case EQUALS:
		return "EQUALS"
	case AND:
		return "AND"
	case DOLLAR:
		return "DOLLAR"
	case BRACKETOPEN:
		return "BRACKETOPEN"
	case BRACKETCLOSE:
		return "BRACKETCLOSE"
	case SQUAREBRACKETOPEN:
		return "SQUAREBRACKETOPEN"
	case SQUAREBRACKETCLOSE:
		return "SQUAREBRACKETCLOSE"
	case CURLYBRACKETOPEN:
		return "CURLYBRACKETOPEN"
	case CURLYBRACKETCLOSE:
		return "CURLYBRACKETCLOSE"
	case STRING:
		return "STRING"
	case BLOCKSTRING:
		return "BLOCKSTRING"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case IDENT:
		return "IDENT"
	case ON:
		return "ON"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NULL:
		return "NULL"
	case TYPE:
		return "TYPE"
	case ENUM:
		return "ENUM"
	case UNION:
		return "UNION"
	case INPUT:
		return "INPUT"
	case QUERY:
		return "QUERY"
	case EXTEND:
		return "EXTEND"
	case SCHEMA:
		return "SCHEMA"
	case SCALAR:
		return "SCALAR"
	case MUTATION:
		return "MUTATION"
	case INTERFACE:
		return "INTERFACE"
	case DIRECTIVE:
		return "DIRECTIVE"
	case IMPLEMENTS:
		return "IMPLEMENTS"
	case SUBSCRIPTION:
		return "SUBSCRIPTION"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see keyword.go)", k)
	}
}

// FromIdent returns the keyword for a lexed Name literal.
func FromIdent(ident string) Keyword {
	switch ident {
	case "on":
		return ON
	case "true":
		return TRUE
	case "type":
		return TYPE
	case "null":
		return NULL
	case "enum":
		return ENUM
	case "false":
		return FALSE
	case "union":
		return UNION
	case "query":
		return QUERY
	case "input":
		return INPUT
	case "extend":
		return EXTEND
	case "schema":
		return SCHEMA
	case "scalar":
		return SCALAR
	case "mutation":
		return MUTATION
	case "interface":
		return INTERFACE
	case "directive":
		return DIRECTIVE
	case "implements":
		return IMPLEMENTS
	case "subscription":
		return SUBSCRIPTION
	default:
		return IDENT
	}
}
