// Package lexer turns one SDL document into a lazy stream of tokens.
//
// Whitespace and commas are insignificant and skipped. Comments are NOT
// skipped, they are emitted as tokens because the parser attaches leading
// comment runs to the following definition as its description.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gqltools/sdl/pkg/graphqlerror"
	"github.com/gqltools/sdl/pkg/lexing/keyword"
	"github.com/gqltools/sdl/pkg/lexing/position"
	"github.com/gqltools/sdl/pkg/lexing/runes"
	"github.com/gqltools/sdl/pkg/lexing/token"
)

// Lexer emits tokens from an input string. It is not safe for concurrent use,
// every goroutine owns its own Lexer.
type Lexer struct {
	input         string
	inputPosition int
	line          uint32
	char          uint32
}

// NewLexer initializes a new lexer without input.
func NewLexer() *Lexer {
	return &Lexer{}
}

// SetInput sets the input and resets all position state.
func (l *Lexer) SetInput(input string) {
	l.input = strings.TrimPrefix(input, "\ufeff")
	l.inputPosition = 0
	l.line = 1
	l.char = 1
}

// Input returns the input currently being lexed, after BOM stripping.
func (l *Lexer) Input() string {
	return l.input
}

// Read emits the next token. This cannot be undone. A returned error is
// always a *graphqlerror.LexError and ends the token stream.
func (l *Lexer) Read() (token.Token, error) {
	l.swallowWhitespace()

	var tok token.Token
	tok.SetStart(l.pos())

	if l.inputPosition >= len(l.input) {
		tok.Keyword = keyword.EOF
		tok.SetEnd(l.pos())
		return tok, nil
	}

	c := l.input[l.inputPosition]

	if key, ok := singleRuneKeyword(c); ok {
		l.consume()
		tok.Keyword = key
		tok.Literal = string(c)
		tok.SetEnd(l.pos())
		return tok, nil
	}

	switch {
	case c == runes.HASHTAG:
		l.readComment(&tok)
		return tok, nil
	case c == runes.QUOTE:
		return tok, l.readString(&tok)
	case c == runes.DOT:
		return tok, l.readSpread(&tok)
	case c == runes.SUB || byteIsDigit(c):
		return tok, l.readNumber(&tok)
	case byteIsNameStart(c):
		l.readName(&tok)
		return tok, nil
	}

	return tok, l.errPos(tok.TextPosition, fmt.Sprintf("unexpected character %q", c))
}

func singleRuneKeyword(c byte) (keyword.Keyword, bool) {
	switch c {
	case runes.BANG:
		return keyword.BANG, true
	case runes.DOLLAR:
		return keyword.DOLLAR, true
	case runes.AND:
		return keyword.AND, true
	case runes.LPAREN:
		return keyword.BRACKETOPEN, true
	case runes.RPAREN:
		return keyword.BRACKETCLOSE, true
	case runes.COLON:
		return keyword.COLON, true
	case runes.EQUALS:
		return keyword.EQUALS, true
	case runes.AT:
		return keyword.AT, true
	case runes.LBRACK:
		return keyword.SQUAREBRACKETOPEN, true
	case runes.RBRACK:
		return keyword.SQUAREBRACKETCLOSE, true
	case runes.LBRACE:
		return keyword.CURLYBRACKETOPEN, true
	case runes.RBRACE:
		return keyword.CURLYBRACKETCLOSE, true
	case runes.PIPE:
		return keyword.PIPE, true
	default:
		return keyword.UNDEFINED, false
	}
}

func (l *Lexer) pos() position.Position {
	return position.Position{
		LineStart: l.line,
		CharStart: l.char,
	}
}

// consume advances past the current byte, tracking line/column. \r\n counts
// as a single line terminator, attributed to the \n.
func (l *Lexer) consume() byte {
	c := l.input[l.inputPosition]
	l.inputPosition++

	switch c {
	case runes.LINETERMINATOR:
		l.line++
		l.char = 1
	case runes.CARRIAGERETURN:
		if l.inputPosition < len(l.input) && l.input[l.inputPosition] == runes.LINETERMINATOR {
			l.char++
		} else {
			l.line++
			l.char = 1
		}
	default:
		l.char++
	}

	return c
}

func (l *Lexer) peekByte() byte {
	if l.inputPosition < len(l.input) {
		return l.input[l.inputPosition]
	}
	return runes.EOF
}

func (l *Lexer) peekByteAt(offset int) byte {
	if l.inputPosition+offset < len(l.input) {
		return l.input[l.inputPosition+offset]
	}
	return runes.EOF
}

func (l *Lexer) peekEquals(equals string) bool {
	end := l.inputPosition + len(equals)
	if end > len(l.input) {
		return false
	}
	return l.input[l.inputPosition:end] == equals
}

func (l *Lexer) swallowWhitespace() {
	for l.inputPosition < len(l.input) {
		switch l.input[l.inputPosition] {
		case runes.SPACE, runes.TAB, runes.COMMA, runes.LINETERMINATOR, runes.CARRIAGERETURN:
			l.consume()
		default:
			return
		}
	}
}

// readComment consumes '#' up to but not including the line terminator. The
// literal is stored without the leading '#' and at most one following space.
func (l *Lexer) readComment(tok *token.Token) {
	tok.Keyword = keyword.COMMENT

	l.consume()
	if l.peekByte() == runes.SPACE {
		l.consume()
	}

	start := l.inputPosition
	for l.inputPosition < len(l.input) {
		if c := l.input[l.inputPosition]; c == runes.LINETERMINATOR || c == runes.CARRIAGERETURN {
			break
		}
		l.consume()
	}

	tok.Literal = l.input[start:l.inputPosition]
	tok.SetEnd(l.pos())
}

func (l *Lexer) readName(tok *token.Token) {
	start := l.inputPosition
	for l.inputPosition < len(l.input) && byteIsNameContinuation(l.input[l.inputPosition]) {
		l.consume()
	}

	tok.Literal = l.input[start:l.inputPosition]
	tok.Keyword = keyword.FromIdent(tok.Literal)
	tok.SetEnd(l.pos())
}

func (l *Lexer) readSpread(tok *token.Token) error {
	if !l.peekEquals("...") {
		return l.errPos(tok.TextPosition, "unexpected character '.', expected spread '...'")
	}

	l.consume()
	l.consume()
	l.consume()

	tok.Keyword = keyword.SPREAD
	tok.Literal = "..."
	tok.SetEnd(l.pos())
	return nil
}

// readNumber lexes IntValue and FloatValue per the GraphQL grammar: an
// optional negative sign, an integer part without leading zeros, then an
// optional fractional part and/or exponent part.
func (l *Lexer) readNumber(tok *token.Token) error {
	start := l.inputPosition

	if l.peekByte() == runes.SUB {
		l.consume()
	}

	if !byteIsDigit(l.peekByte()) {
		return l.errPos(tok.TextPosition, "invalid numeric literal, expected digit after '-'")
	}

	if l.consume() != '0' {
		for byteIsDigit(l.peekByte()) {
			l.consume()
		}
	} else if byteIsDigit(l.peekByte()) {
		return l.errPos(tok.TextPosition, "invalid numeric literal, unexpected digit after leading 0")
	}

	isFloat := false

	if l.peekByte() == runes.DOT {
		if !byteIsDigit(l.peekByteAt(1)) {
			return l.errPos(tok.TextPosition, "invalid numeric literal, expected digit after '.'")
		}
		l.consume()
		for byteIsDigit(l.peekByte()) {
			l.consume()
		}
		isFloat = true
	}

	if c := l.peekByte(); c == 'e' || c == 'E' {
		l.consume()
		if c := l.peekByte(); c == '+' || c == runes.SUB {
			l.consume()
		}
		if !byteIsDigit(l.peekByte()) {
			return l.errPos(tok.TextPosition, "invalid numeric literal, expected digit in exponent")
		}
		for byteIsDigit(l.peekByte()) {
			l.consume()
		}
		isFloat = true
	}

	// '1.2.3' and '123abc' must not lex as a number followed by more tokens.
	if c := l.peekByte(); c == runes.DOT || byteIsNameStart(c) {
		return l.errPos(tok.TextPosition, fmt.Sprintf("invalid numeric literal, unexpected character %q", c))
	}

	if isFloat {
		tok.Keyword = keyword.FLOAT
	} else {
		tok.Keyword = keyword.INTEGER
	}
	tok.Literal = l.input[start:l.inputPosition]
	tok.SetEnd(l.pos())
	return nil
}

func (l *Lexer) readString(tok *token.Token) error {
	l.consume()

	if l.peekByte() == runes.QUOTE {
		if l.peekByteAt(1) == runes.QUOTE {
			l.consume()
			l.consume()
			return l.readBlockString(tok)
		}
		l.consume()
		tok.Keyword = keyword.STRING
		tok.Literal = ""
		tok.SetEnd(l.pos())
		return nil
	}

	var out strings.Builder
	for {
		if l.inputPosition >= len(l.input) {
			return l.errPos(tok.TextPosition, "unterminated string")
		}

		c := l.input[l.inputPosition]
		if c == runes.LINETERMINATOR || c == runes.CARRIAGERETURN {
			return l.errPos(tok.TextPosition, "unterminated string")
		}
		l.consume()

		switch c {
		case runes.QUOTE:
			tok.Keyword = keyword.STRING
			tok.Literal = out.String()
			tok.SetEnd(l.pos())
			return nil
		case runes.BACKSLASH:
			if err := l.readEscape(&out); err != nil {
				return err
			}
		default:
			out.WriteByte(c)
		}
	}
}

func (l *Lexer) readEscape(out *strings.Builder) error {
	escapePos := l.pos()

	if l.inputPosition >= len(l.input) {
		return l.errPos(escapePos, "unterminated string")
	}

	switch c := l.consume(); c {
	case runes.QUOTE:
		out.WriteByte(runes.QUOTE)
	case runes.BACKSLASH:
		out.WriteByte(runes.BACKSLASH)
	case '/':
		out.WriteByte('/')
	case 'b':
		out.WriteByte('\b')
	case 'f':
		out.WriteByte('\f')
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case 'u':
		if l.inputPosition+4 > len(l.input) {
			return l.errPos(escapePos, "invalid unicode escape sequence, expected 4 hex digits")
		}
		hex := l.input[l.inputPosition : l.inputPosition+4]
		codePoint, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return l.errPos(escapePos, fmt.Sprintf("invalid unicode escape sequence '\\u%s'", hex))
		}
		if codePoint >= 0xd800 && codePoint <= 0xdfff {
			return l.errPos(escapePos, fmt.Sprintf("invalid unicode escape sequence '\\u%s', surrogate code point", hex))
		}
		for i := 0; i < 4; i++ {
			l.consume()
		}
		out.WriteRune(rune(codePoint))
	default:
		return l.errPos(escapePos, fmt.Sprintf("invalid escape sequence '\\%c'", c))
	}

	return nil
}

// readBlockString is entered after the opening '"""' has been consumed.
func (l *Lexer) readBlockString(tok *token.Token) error {
	var raw strings.Builder

	for {
		if l.inputPosition >= len(l.input) {
			return l.errPos(tok.TextPosition, "unterminated block string")
		}

		if l.peekEquals(`\"""`) {
			for i := 0; i < 4; i++ {
				l.consume()
			}
			raw.WriteString(`"""`)
			continue
		}

		if l.peekEquals(`"""`) {
			for i := 0; i < 3; i++ {
				l.consume()
			}
			tok.Keyword = keyword.BLOCKSTRING
			tok.Literal = blockStringValue(raw.String())
			tok.SetEnd(l.pos())
			return nil
		}

		raw.WriteByte(l.consume())
	}
}

// blockStringValue strips the common indentation of all non-blank lines after
// the first and trims leading and trailing blank lines, per the BlockStringValue
// semantics of the GraphQL spec.
func blockStringValue(raw string) string {
	lines := splitLines(raw)

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := countLeadingWhitespace(line)
		if indent < len(line) && (commonIndent == -1 || indent < commonIndent) {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i, line := range lines[1:] {
			if commonIndent < len(line) {
				lines[i+1] = line[commonIndent:]
			} else {
				lines[i+1] = ""
			}
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	lines := make([]string, 0, 8)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case runes.LINETERMINATOR:
			lines = append(lines, s[start:i])
			start = i + 1
		case runes.CARRIAGERETURN:
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == runes.LINETERMINATOR {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func countLeadingWhitespace(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != runes.SPACE && line[i] != runes.TAB {
			return i
		}
	}
	return len(line)
}

func isBlank(line string) bool {
	return countLeadingWhitespace(line) == len(line)
}

func byteIsNameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == runes.UNDERSCORE
}

func byteIsNameContinuation(c byte) bool {
	return byteIsNameStart(c) || byteIsDigit(c)
}

func byteIsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (l *Lexer) errPos(pos position.Position, reason string) error {
	loc := graphqlerror.Location{Line: pos.LineStart, Column: pos.CharStart}
	return &graphqlerror.LexError{
		Reason:   reason,
		Location: loc,
		Snippet:  graphqlerror.Snippet(l.input, loc),
	}
}
