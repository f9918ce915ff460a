package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqltools/sdl/pkg/graphqlerror"
	"github.com/gqltools/sdl/pkg/lexing/keyword"
	"github.com/gqltools/sdl/pkg/lexing/token"
)

func readAll(t *testing.T, input string) []token.Token {
	t.Helper()
	lex := NewLexer()
	lex.SetInput(input)
	var tokens []token.Token
	for {
		tok, err := lex.Read()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Keyword == keyword.EOF {
			return tokens
		}
	}
}

func TestLexerReadSingleToken(t *testing.T) {
	run := func(input string, wantKeyword keyword.Keyword, wantLiteral string) func(*testing.T) {
		return func(t *testing.T) {
			lex := NewLexer()
			lex.SetInput(input)
			tok, err := lex.Read()
			require.NoError(t, err)
			assert.Equal(t, wantKeyword, tok.Keyword)
			assert.Equal(t, wantLiteral, tok.Literal)
		}
	}

	t.Run("integer", run("1337", keyword.INTEGER, "1337"))
	t.Run("negative integer", run("-42", keyword.INTEGER, "-42"))
	t.Run("zero", run("0", keyword.INTEGER, "0"))
	t.Run("float", run("13.37", keyword.FLOAT, "13.37"))
	t.Run("negative float", run("-0.5", keyword.FLOAT, "-0.5"))
	t.Run("float with exponent", run("1e50", keyword.FLOAT, "1e50"))
	t.Run("float with signed exponent", run("6.0221413e+23", keyword.FLOAT, "6.0221413e+23"))
	t.Run("ident", run("Person", keyword.IDENT, "Person"))
	t.Run("ident with underscore", run("_typename", keyword.IDENT, "_typename"))
	t.Run("keyword type", run("type", keyword.TYPE, "type"))
	t.Run("keyword implements", run("implements", keyword.IMPLEMENTS, "implements"))
	t.Run("keyword subscription", run("subscription", keyword.SUBSCRIPTION, "subscription"))
	t.Run("string", run(`"hello"`, keyword.STRING, "hello"))
	t.Run("empty string", run(`""`, keyword.STRING, ""))
	t.Run("string with escapes", run(`"a\nb\t\"c\\"`, keyword.STRING, "a\nb\t\"c\\"))
	t.Run("string with unicode escape", run(`"\u0041"`, keyword.STRING, "A"))
	t.Run("string with non ascii unicode escape", run(`"caf\u00e9"`, keyword.STRING, "café"))
	t.Run("block string", run(`"""hello"""`, keyword.BLOCKSTRING, "hello"))
	t.Run("block string with escaped quotes", run(`"""contains \""" inside"""`, keyword.BLOCKSTRING, `contains """ inside`))
	t.Run("comment", run("# hello world", keyword.COMMENT, "hello world"))
	t.Run("comment without space", run("#hello", keyword.COMMENT, "hello"))
	t.Run("comment strips one space only", run("#  hello", keyword.COMMENT, " hello"))
	t.Run("spread", run("...", keyword.SPREAD, "..."))
	t.Run("bang", run("!", keyword.BANG, "!"))
	t.Run("pipe", run("|", keyword.PIPE, "|"))
	t.Run("and", run("&", keyword.AND, "&"))
	t.Run("curly open", run("{", keyword.CURLYBRACKETOPEN, "{"))
	t.Run("eof", run("", keyword.EOF, ""))
	t.Run("eof after whitespace", run(" \t\n,,", keyword.EOF, ""))
	t.Run("bom is stripped", run("\ufefftype", keyword.TYPE, "type"))
}

func TestLexerBlockStringIndent(t *testing.T) {
	lex := NewLexer()
	lex.SetInput("\"\"\"\n  first\n    second\n\n\"\"\"")

	tok, err := lex.Read()
	require.NoError(t, err)
	assert.Equal(t, keyword.BLOCKSTRING, tok.Keyword)
	assert.Equal(t, "first\n  second", tok.Literal)
}

func TestLexerTokenStream(t *testing.T) {
	tokens := readAll(t, "type Person {\n\tname: String!\n}")

	keywords := make([]keyword.Keyword, len(tokens))
	for i, tok := range tokens {
		keywords[i] = tok.Keyword
	}

	assert.Equal(t, []keyword.Keyword{
		keyword.TYPE,
		keyword.IDENT,
		keyword.CURLYBRACKETOPEN,
		keyword.IDENT,
		keyword.COLON,
		keyword.IDENT,
		keyword.BANG,
		keyword.CURLYBRACKETCLOSE,
		keyword.EOF,
	}, keywords)
}

func TestLexerCommasAreInsignificant(t *testing.T) {
	tokens := readAll(t, "[1, 2,,3]")
	require.Len(t, tokens, 6)
	assert.Equal(t, "1", tokens[1].Literal)
	assert.Equal(t, "2", tokens[2].Literal)
	assert.Equal(t, "3", tokens[3].Literal)
}

func TestLexerPositions(t *testing.T) {
	tokens := readAll(t, "type Foo {\n  bar: Int\n}")

	typeTok := tokens[0]
	assert.Equal(t, uint32(1), typeTok.TextPosition.LineStart)
	assert.Equal(t, uint32(1), typeTok.TextPosition.CharStart)
	assert.Equal(t, uint32(1), typeTok.TextPosition.LineEnd)
	assert.Equal(t, uint32(5), typeTok.TextPosition.CharEnd)

	barTok := tokens[3]
	assert.Equal(t, "bar", barTok.Literal)
	assert.Equal(t, uint32(2), barTok.TextPosition.LineStart)
	assert.Equal(t, uint32(3), barTok.TextPosition.CharStart)
}

func TestLexerErrors(t *testing.T) {
	run := func(input string, wantLine, wantColumn uint32) func(*testing.T) {
		return func(t *testing.T) {
			lex := NewLexer()
			lex.SetInput(input)

			var err error
			for err == nil {
				var tok token.Token
				tok, err = lex.Read()
				if err == nil && tok.Keyword == keyword.EOF {
					t.Fatal("expected a lex error, got EOF")
				}
			}

			var lexErr *graphqlerror.LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, wantLine, lexErr.Location.Line)
			assert.Equal(t, wantColumn, lexErr.Location.Column)
			assert.NotEmpty(t, lexErr.Reason)
		}
	}

	t.Run("leading zero", run("01", 1, 1))
	t.Run("missing fraction digits", run("1.", 1, 1))
	t.Run("double dot", run("1.2.3", 1, 1))
	t.Run("name glued to number", run("123abc", 1, 1))
	t.Run("missing exponent digits", run("1e", 1, 1))
	t.Run("lone minus", run("-", 1, 1))
	t.Run("unterminated string", run(`"abc`, 1, 1))
	t.Run("string with line break", run("\"ab\nc\"", 1, 1))
	t.Run("invalid escape", run(`"a\qb"`, 1, 4))
	t.Run("truncated unicode escape", run(`"\u00`, 1, 3))
	t.Run("surrogate unicode escape", run(`"\ud83d"`, 1, 3))
	t.Run("unterminated block string", run(`"""abc`, 1, 1))
	t.Run("lone dot", run(".", 1, 1))
	t.Run("unexpected character", run("?", 1, 1))
	t.Run("error on later line", run("type Foo\n01", 2, 1))
}

func TestLexErrorSnippet(t *testing.T) {
	lex := NewLexer()
	lex.SetInput("type Foo\n01")

	var err error
	for err == nil {
		_, err = lex.Read()
	}

	var lexErr *graphqlerror.LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "01", lexErr.Snippet)
}
