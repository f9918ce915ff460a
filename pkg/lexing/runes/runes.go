// Package runes defines the rune alphabet of the SDL grammar.
package runes

const (
	EOF            = 0
	COLON          = ':'
	BANG           = '!'
	CARRIAGERETURN = '\r'
	LINETERMINATOR = '\n'
	TAB            = '\t'
	SPACE          = ' '
	COMMA          = ','
	HASHTAG        = '#'
	QUOTE          = '"'
	BACKSLASH      = '\\'
	DOT            = '.'
	AT             = '@'
	DOLLAR         = '$'
	PIPE           = '|'
	EQUALS         = '='
	SUB            = '-'
	AND            = '&'
	UNDERSCORE     = '_'

	LPAREN = '('
	RPAREN = ')'
	LBRACK = '['
	RBRACK = ']'
	LBRACE = '{'
	RBRACE = '}'
)
