// Package graphqlerror defines the structured errors returned by the lexer and parser.
//
// Both error kinds carry the 1-based line/column of the offending token plus
// the source line it appeared on, so that callers can render precise
// diagnostics without re-scanning the input.
package graphqlerror

import (
	"fmt"
	"strings"
)

// Location is a 1-based line/column pair into the lexed input.
type Location struct {
	Line   uint32
	Column uint32
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LexError reports a malformed token: bad escape, unterminated string or
// block string, invalid numeric literal, unexpected character.
type LexError struct {
	Reason   string
	Location Location
	Snippet  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Reason, e.Location)
}

// ParseError reports a token stream that does not match the expected grammar
// production.
type ParseError struct {
	Expected string
	Found    string
	Location Location
	Snippet  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, found %s at %s", e.Expected, e.Found, e.Location)
}

// Snippet extracts the source line loc points into, with the line terminator
// stripped. It returns "" when loc lies outside the input.
func Snippet(input string, loc Location) string {
	line := uint32(1)
	start := 0
	for i := 0; i < len(input); i++ {
		if line == loc.Line {
			break
		}
		if input[i] == '\n' {
			line++
			start = i + 1
		}
	}
	if line != loc.Line {
		return ""
	}
	end := strings.IndexAny(input[start:], "\r\n")
	if end == -1 {
		return input[start:]
	}
	return input[start : start+end]
}
