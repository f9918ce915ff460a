// Package astparser builds an ast.Document from SDL text.
//
// The parser is a recursive-descent parser with one token lookahead and no
// backtracking. One method per grammar production. Errors are fail-fast: the
// first lex or parse error aborts the whole document and no partial AST is
// returned.
//
// Leading '#' comment runs are collected while reading tokens and attached to
// the following definition, field, input value or enum value as its
// description, the way string descriptions are.
package astparser

import (
	"fmt"
	"strings"

	"github.com/gqltools/sdl/pkg/ast"
	"github.com/gqltools/sdl/pkg/graphqlerror"
	"github.com/gqltools/sdl/pkg/lexer"
	"github.com/gqltools/sdl/pkg/lexing/keyword"
	"github.com/gqltools/sdl/pkg/lexing/position"
	"github.com/gqltools/sdl/pkg/lexing/token"
)

// ParseDocumentString parses one SDL document.
func ParseDocumentString(input string) (*ast.Document, error) {
	return NewParser().Parse(input)
}

// ParseDocumentBytes parses one SDL document from a byte slice.
func ParseDocumentBytes(input []byte) (*ast.Document, error) {
	return NewParser().Parse(string(input))
}

// Parser is reusable across documents but not safe for concurrent use, every
// goroutine owns its own Parser.
type Parser struct {
	lexer    *lexer.Lexer
	document *ast.Document
	err      error

	lookahead    token.Token
	hasLookahead bool
	last         token.Token

	// comment run state, see collectComment
	commentRun         strings.Builder
	hasCommentRun      bool
	commentRunLine     uint32
	commentRunPosition position.Position

	// pendingComment is the comment run directly above the current lookahead
	// token, cleared whenever the lookahead is consumed
	pendingComment         string
	hasPendingComment      bool
	pendingCommentPosition position.Position
}

func NewParser() *Parser {
	return &Parser{
		lexer: lexer.NewLexer(),
	}
}

// Parse parses input into a Document. All state from previous calls is reset.
func (p *Parser) Parse(input string) (*ast.Document, error) {
	p.lexer.SetInput(input)
	p.document = &ast.Document{}
	p.err = nil
	p.hasLookahead = false
	p.last = token.Token{}
	p.commentRun.Reset()
	p.hasCommentRun = false
	p.hasPendingComment = false

	p.parse()
	if p.err != nil {
		return nil, p.err
	}
	return p.document, nil
}

func (p *Parser) parse() {
	for {
		if p.err != nil {
			return
		}
		if p.peek() == keyword.EOF {
			p.read()
			return
		}
		p.parseDefinition()
	}
}

// ensureLookahead fills the one token lookahead buffer, folding comment
// tokens into the comment run as it goes.
func (p *Parser) ensureLookahead() {
	if p.hasLookahead || p.err != nil {
		return
	}
	for {
		tok, err := p.lexer.Read()
		if err != nil {
			p.err = err
			return
		}
		if tok.Keyword == keyword.COMMENT {
			p.collectComment(tok)
			continue
		}
		if p.hasCommentRun && tok.TextPosition.LineStart == p.commentRunLine+1 {
			p.pendingComment = p.commentRun.String()
			p.hasPendingComment = true
			p.pendingCommentPosition = p.commentRunPosition
		}
		p.commentRun.Reset()
		p.hasCommentRun = false
		p.lookahead = tok
		p.hasLookahead = true
		return
	}
}

// collectComment appends tok to the current comment run. A comment that does
// not sit on the line directly below the previous one starts a fresh run, the
// interrupted run is discarded. A comment trailing code on the same line is
// never part of a description.
func (p *Parser) collectComment(tok token.Token) {
	if tok.TextPosition.LineStart == p.last.TextPosition.LineEnd {
		return
	}
	if p.hasCommentRun && tok.TextPosition.LineStart != p.commentRunLine+1 {
		p.commentRun.Reset()
		p.hasCommentRun = false
	}
	if !p.hasCommentRun {
		p.commentRunPosition = tok.TextPosition
	} else {
		p.commentRun.WriteByte('\n')
		p.commentRunPosition.MergeEndIntoEnd(tok.TextPosition)
	}
	p.commentRun.WriteString(tok.Literal)
	p.hasCommentRun = true
	p.commentRunLine = tok.TextPosition.LineStart
}

func (p *Parser) peek() keyword.Keyword {
	p.ensureLookahead()
	if p.err != nil {
		return keyword.EOF
	}
	return p.lookahead.Keyword
}

func (p *Parser) read() token.Token {
	p.ensureLookahead()
	if p.err != nil || !p.hasLookahead {
		return token.Token{Keyword: keyword.EOF}
	}
	tok := p.lookahead
	p.hasLookahead = false
	p.hasPendingComment = false
	p.last = tok
	return tok
}

func (p *Parser) mustRead(expected keyword.Keyword) token.Token {
	next := p.read()
	if next.Keyword != expected {
		p.errUnexpectedToken(next, expected)
	}
	return next
}

// mustReadName accepts IDENT and every SDL keyword, keywords are not reserved
// and may be used as type or field names.
func (p *Parser) mustReadName() token.Token {
	next := p.read()
	if !next.Keyword.IsName() {
		p.errUnexpectedToken(next, keyword.IDENT)
	}
	return next
}

func (p *Parser) errUnexpectedToken(unexpected token.Token, expected ...keyword.Keyword) {
	if p.err != nil {
		return
	}
	p.err = p.parseError(expectationText(expected), foundText(unexpected), unexpected.TextPosition)
}

func (p *Parser) parseError(expected, found string, pos position.Position) *graphqlerror.ParseError {
	loc := graphqlerror.Location{Line: pos.LineStart, Column: pos.CharStart}
	return &graphqlerror.ParseError{
		Expected: expected,
		Found:    found,
		Location: loc,
		Snippet:  graphqlerror.Snippet(p.lexer.Input(), loc),
	}
}

func expectationText(expected []keyword.Keyword) string {
	if len(expected) == 0 {
		return "a different token"
	}
	parts := make([]string, len(expected))
	for i, k := range expected {
		parts[i] = keywordText(k)
	}
	return strings.Join(parts, " or ")
}

func foundText(tok token.Token) string {
	if tok.Keyword == keyword.EOF {
		return "EOF"
	}
	if tok.Literal != "" {
		return fmt.Sprintf("`%s`", tok.Literal)
	}
	return keywordText(tok.Keyword)
}

func keywordText(k keyword.Keyword) string {
	switch k {
	case keyword.EOF:
		return "EOF"
	case keyword.IDENT:
		return "Name"
	case keyword.STRING:
		return "String"
	case keyword.BLOCKSTRING:
		return "BlockString"
	case keyword.INTEGER:
		return "Int"
	case keyword.FLOAT:
		return "Float"
	case keyword.COLON:
		return "`:`"
	case keyword.BANG:
		return "`!`"
	case keyword.AT:
		return "`@`"
	case keyword.SPREAD:
		return "`...`"
	case keyword.PIPE:
		return "`|`"
	case keyword.EQUALS:
		return "`=`"
	case keyword.AND:
		return "`&`"
	case keyword.DOLLAR:
		return "`$`"
	case keyword.BRACKETOPEN:
		return "`(`"
	case keyword.BRACKETCLOSE:
		return "`)`"
	case keyword.SQUAREBRACKETOPEN:
		return "`[`"
	case keyword.SQUAREBRACKETCLOSE:
		return "`]`"
	case keyword.CURLYBRACKETOPEN:
		return "`{`"
	case keyword.CURLYBRACKETCLOSE:
		return "`}`"
	default:
		return fmt.Sprintf("`%s`", strings.ToLower(k.String()))
	}
}

// parseDescription consumes the description preceding a describable
// construct, either the pending comment run or a string token. fromString
// reports the string form, which is disallowed on extensions.
func (p *Parser) parseDescription() (description ast.Description, fromString bool) {
	key := p.peek()
	if key == keyword.STRING || key == keyword.BLOCKSTRING {
		if p.hasPendingComment {
			p.errDescriptionConflict(p.lookahead.TextPosition)
			return
		}
		tok := p.read()
		description = ast.Description{
			IsDefined:     true,
			Content:       tok.Literal,
			IsBlockString: tok.Keyword == keyword.BLOCKSTRING,
			Position:      tok.TextPosition,
		}
		p.peek()
		if p.hasPendingComment {
			p.errDescriptionConflict(p.pendingCommentPosition)
			return
		}
		return description, true
	}
	if p.hasPendingComment {
		description = ast.Description{
			IsDefined: true,
			Content:   p.pendingComment,
			Position:  p.pendingCommentPosition,
		}
		p.hasPendingComment = false
	}
	return description, false
}

func (p *Parser) errDescriptionConflict(pos position.Position) {
	if p.err != nil {
		return
	}
	p.err = p.parseError("one description form", "both a comment run and a string description", pos)
}

func (p *Parser) parseDefinition() {
	description, fromString := p.parseDescription()
	if p.err != nil {
		return
	}

	var definition ast.Definition
	switch p.peek() {
	case keyword.SCHEMA:
		definition = p.parseSchemaDefinition(description)
	case keyword.TYPE:
		definition = p.parseObjectTypeDefinition(description)
	case keyword.INTERFACE:
		definition = p.parseInterfaceTypeDefinition(description)
	case keyword.UNION:
		definition = p.parseUnionTypeDefinition(description)
	case keyword.ENUM:
		definition = p.parseEnumTypeDefinition(description)
	case keyword.SCALAR:
		definition = p.parseScalarTypeDefinition(description)
	case keyword.INPUT:
		definition = p.parseInputObjectTypeDefinition(description)
	case keyword.DIRECTIVE:
		definition = p.parseDirectiveDefinition(description)
	case keyword.EXTEND:
		if fromString {
			p.err = p.parseError("a definition after the description", "`extend`", p.lookahead.TextPosition)
			return
		}
		definition = p.parseTypeExtension()
	default:
		p.errUnexpectedToken(p.read(),
			keyword.SCHEMA, keyword.TYPE, keyword.INTERFACE, keyword.UNION,
			keyword.ENUM, keyword.SCALAR, keyword.INPUT, keyword.DIRECTIVE,
			keyword.EXTEND)
		return
	}

	if p.err != nil {
		return
	}
	p.document.Definitions = append(p.document.Definitions, definition)
}

func (p *Parser) parseSchemaDefinition(description ast.Description) *ast.SchemaDefinition {
	schemaTok := p.read()
	definition := &ast.SchemaDefinition{
		Description: description,
		Position:    schemaTok.TextPosition,
	}
	definition.Directives = p.parseDirectiveList()
	p.mustRead(keyword.CURLYBRACKETOPEN)

	for {
		if p.err != nil {
			return nil
		}
		switch p.peek() {
		case keyword.QUERY, keyword.MUTATION, keyword.SUBSCRIPTION:
			opTok := p.read()
			p.mustRead(keyword.COLON)
			nameTok := p.mustReadName()
			root := ast.RootOperationTypeDefinition{
				OperationType: operationTypeFromKeyword(opTok.Keyword),
				NamedType:     ast.NamedType{Name: nameTok.Literal, Position: nameTok.TextPosition},
				Position:      opTok.TextPosition,
			}
			root.Position.MergeEndIntoEnd(nameTok.TextPosition)
			definition.RootOperationTypeDefinitions = append(definition.RootOperationTypeDefinitions, root)
		case keyword.CURLYBRACKETCLOSE:
			closing := p.read()
			definition.Position.MergeEndIntoEnd(closing.TextPosition)
			return definition
		default:
			p.errUnexpectedToken(p.read(),
				keyword.QUERY, keyword.MUTATION, keyword.SUBSCRIPTION, keyword.CURLYBRACKETCLOSE)
			return nil
		}
	}
}

func operationTypeFromKeyword(k keyword.Keyword) ast.OperationType {
	switch k {
	case keyword.QUERY:
		return ast.OperationTypeQuery
	case keyword.MUTATION:
		return ast.OperationTypeMutation
	case keyword.SUBSCRIPTION:
		return ast.OperationTypeSubscription
	default:
		return ast.OperationTypeUndefined
	}
}

func (p *Parser) parseObjectTypeDefinition(description ast.Description) *ast.ObjectTypeDefinition {
	typeTok := p.read()
	nameTok := p.mustReadName()
	definition := &ast.ObjectTypeDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    typeTok.TextPosition,
	}
	if p.peek() == keyword.IMPLEMENTS {
		definition.ImplementsInterfaces = p.parseImplementsInterfaces()
	}
	definition.Directives = p.parseDirectiveList()
	if p.peek() == keyword.CURLYBRACKETOPEN {
		definition.HasFieldDefinitions = true
		definition.FieldDefinitions = p.parseFieldDefinitionList()
	}
	definition.Position.MergeEndIntoEnd(p.last.TextPosition)
	return definition
}

func (p *Parser) parseInterfaceTypeDefinition(description ast.Description) *ast.InterfaceTypeDefinition {
	interfaceTok := p.read()
	nameTok := p.mustReadName()
	definition := &ast.InterfaceTypeDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    interfaceTok.TextPosition,
	}
	if p.peek() == keyword.IMPLEMENTS {
		definition.ImplementsInterfaces = p.parseImplementsInterfaces()
	}
	definition.Directives = p.parseDirectiveList()
	if p.peek() == keyword.CURLYBRACKETOPEN {
		definition.HasFieldDefinitions = true
		definition.FieldDefinitions = p.parseFieldDefinitionList()
	}
	definition.Position.MergeEndIntoEnd(p.last.TextPosition)
	return definition
}

func (p *Parser) parseImplementsInterfaces() []ast.NamedType {
	p.read() // implements
	if p.peek() == keyword.AND {
		p.read()
	}
	var interfaces []ast.NamedType
	for {
		nameTok := p.mustReadName()
		if p.err != nil {
			return nil
		}
		interfaces = append(interfaces, ast.NamedType{Name: nameTok.Literal, Position: nameTok.TextPosition})
		if p.peek() != keyword.AND {
			return interfaces
		}
		p.read()
	}
}

func (p *Parser) parseUnionTypeDefinition(description ast.Description) *ast.UnionTypeDefinition {
	unionTok := p.read()
	nameTok := p.mustReadName()
	definition := &ast.UnionTypeDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    unionTok.TextPosition,
	}
	definition.Directives = p.parseDirectiveList()

	// 'union U' without '=' declares a valid empty union, '=' requires at
	// least one member
	if p.peek() == keyword.EQUALS {
		p.read()
		definition.HasUnionMemberTypes = true
		if p.peek() == keyword.PIPE {
			p.read()
		}
		for {
			memberTok := p.mustReadName()
			if p.err != nil {
				return nil
			}
			definition.UnionMemberTypes = append(definition.UnionMemberTypes,
				ast.NamedType{Name: memberTok.Literal, Position: memberTok.TextPosition})
			if p.peek() != keyword.PIPE {
				break
			}
			p.read()
		}
	}

	definition.Position.MergeEndIntoEnd(p.last.TextPosition)
	return definition
}

func (p *Parser) parseEnumTypeDefinition(description ast.Description) *ast.EnumTypeDefinition {
	enumTok := p.read()
	nameTok := p.mustReadName()
	definition := &ast.EnumTypeDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    enumTok.TextPosition,
	}
	definition.Directives = p.parseDirectiveList()
	if p.peek() == keyword.CURLYBRACKETOPEN {
		definition.HasEnumValuesDefinition = true
		definition.EnumValuesDefinition = p.parseEnumValuesDefinition()
	}
	definition.Position.MergeEndIntoEnd(p.last.TextPosition)
	return definition
}

func (p *Parser) parseEnumValuesDefinition() []ast.EnumValueDefinition {
	p.read() // {
	values := []ast.EnumValueDefinition{}
	for {
		if p.err != nil {
			return nil
		}
		switch p.peek() {
		case keyword.CURLYBRACKETCLOSE:
			p.read()
			return values
		case keyword.EOF:
			p.errUnexpectedToken(p.read(), keyword.CURLYBRACKETCLOSE)
			return nil
		default:
			values = append(values, p.parseEnumValueDefinition())
		}
	}
}

func (p *Parser) parseEnumValueDefinition() ast.EnumValueDefinition {
	description, _ := p.parseDescription()
	nameTok := p.mustReadName()
	switch nameTok.Keyword {
	case keyword.TRUE, keyword.FALSE, keyword.NULL:
		if p.err == nil {
			p.err = p.parseError("an enum value name", fmt.Sprintf("`%s`", nameTok.Literal), nameTok.TextPosition)
		}
		return ast.EnumValueDefinition{}
	}
	value := ast.EnumValueDefinition{
		Description: description,
		EnumValue:   nameTok.Literal,
		Position:    nameTok.TextPosition,
	}
	value.Directives = p.parseDirectiveList()
	value.Position.MergeEndIntoEnd(p.last.TextPosition)
	return value
}

func (p *Parser) parseScalarTypeDefinition(description ast.Description) *ast.ScalarTypeDefinition {
	scalarTok := p.read()
	nameTok := p.mustReadName()
	definition := &ast.ScalarTypeDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    scalarTok.TextPosition,
	}
	definition.Directives = p.parseDirectiveList()
	definition.Position.MergeEndIntoEnd(p.last.TextPosition)
	return definition
}

func (p *Parser) parseInputObjectTypeDefinition(description ast.Description) *ast.InputObjectTypeDefinition {
	inputTok := p.read()
	nameTok := p.mustReadName()
	definition := &ast.InputObjectTypeDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    inputTok.TextPosition,
	}
	definition.Directives = p.parseDirectiveList()
	if p.peek() == keyword.CURLYBRACKETOPEN {
		definition.HasInputFieldsDefinition = true
		definition.InputFieldsDefinition = p.parseInputValueDefinitionList(keyword.CURLYBRACKETCLOSE)
	}
	definition.Position.MergeEndIntoEnd(p.last.TextPosition)
	return definition
}

func (p *Parser) parseDirectiveDefinition(description ast.Description) *ast.DirectiveDefinition {
	directiveTok := p.read()
	p.mustRead(keyword.AT)
	nameTok := p.mustReadName()
	definition := &ast.DirectiveDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    directiveTok.TextPosition,
	}
	if p.peek() == keyword.BRACKETOPEN {
		definition.ArgumentsDefinition = p.parseInputValueDefinitionList(keyword.BRACKETCLOSE)
	}
	p.mustRead(keyword.ON)
	if p.peek() == keyword.PIPE {
		p.read()
	}
	for {
		locationTok := p.mustReadName()
		if p.err != nil {
			return nil
		}
		if !validDirectiveLocations[locationTok.Literal] {
			p.err = p.parseError("a directive location", fmt.Sprintf("`%s`", locationTok.Literal), locationTok.TextPosition)
			return nil
		}
		definition.DirectiveLocations = append(definition.DirectiveLocations, locationTok.Literal)
		if p.peek() != keyword.PIPE {
			break
		}
		p.read()
	}
	definition.Position.MergeEndIntoEnd(p.last.TextPosition)
	return definition
}

var validDirectiveLocations = map[string]bool{
	"QUERY":                  true,
	"MUTATION":               true,
	"SUBSCRIPTION":           true,
	"FIELD":                  true,
	"FRAGMENT_DEFINITION":    true,
	"FRAGMENT_SPREAD":        true,
	"INLINE_FRAGMENT":        true,
	"VARIABLE_DEFINITION":    true,
	"SCHEMA":                 true,
	"SCALAR":                 true,
	"OBJECT":                 true,
	"FIELD_DEFINITION":       true,
	"ARGUMENT_DEFINITION":    true,
	"INTERFACE":              true,
	"UNION":                  true,
	"ENUM":                   true,
	"ENUM_VALUE":             true,
	"INPUT_OBJECT":           true,
	"INPUT_FIELD_DEFINITION": true,
}

func (p *Parser) parseTypeExtension() ast.Definition {
	extendTok := p.read()
	none := ast.Description{}

	switch p.peek() {
	case keyword.TYPE:
		definition := p.parseObjectTypeDefinition(none)
		if p.err != nil {
			return nil
		}
		extension := &ast.ObjectTypeExtension{ObjectTypeDefinition: *definition}
		extension.Position.MergeStartIntoStart(extendTok.TextPosition)
		return extension
	case keyword.INTERFACE:
		definition := p.parseInterfaceTypeDefinition(none)
		if p.err != nil {
			return nil
		}
		extension := &ast.InterfaceTypeExtension{InterfaceTypeDefinition: *definition}
		extension.Position.MergeStartIntoStart(extendTok.TextPosition)
		return extension
	case keyword.UNION:
		definition := p.parseUnionTypeDefinition(none)
		if p.err != nil {
			return nil
		}
		extension := &ast.UnionTypeExtension{UnionTypeDefinition: *definition}
		extension.Position.MergeStartIntoStart(extendTok.TextPosition)
		return extension
	case keyword.ENUM:
		definition := p.parseEnumTypeDefinition(none)
		if p.err != nil {
			return nil
		}
		extension := &ast.EnumTypeExtension{EnumTypeDefinition: *definition}
		extension.Position.MergeStartIntoStart(extendTok.TextPosition)
		return extension
	case keyword.SCALAR:
		definition := p.parseScalarTypeDefinition(none)
		if p.err != nil {
			return nil
		}
		extension := &ast.ScalarTypeExtension{ScalarTypeDefinition: *definition}
		extension.Position.MergeStartIntoStart(extendTok.TextPosition)
		return extension
	case keyword.INPUT:
		definition := p.parseInputObjectTypeDefinition(none)
		if p.err != nil {
			return nil
		}
		extension := &ast.InputObjectTypeExtension{InputObjectTypeDefinition: *definition}
		extension.Position.MergeStartIntoStart(extendTok.TextPosition)
		return extension
	default:
		p.errUnexpectedToken(p.read(),
			keyword.TYPE, keyword.INTERFACE, keyword.UNION,
			keyword.ENUM, keyword.SCALAR, keyword.INPUT)
		return nil
	}
}

func (p *Parser) parseFieldDefinitionList() []ast.FieldDefinition {
	p.read() // {
	fields := []ast.FieldDefinition{}
	for {
		if p.err != nil {
			return nil
		}
		switch p.peek() {
		case keyword.CURLYBRACKETCLOSE:
			p.read()
			return fields
		case keyword.EOF:
			p.errUnexpectedToken(p.read(), keyword.CURLYBRACKETCLOSE)
			return nil
		default:
			fields = append(fields, p.parseFieldDefinition())
		}
	}
}

func (p *Parser) parseFieldDefinition() ast.FieldDefinition {
	description, _ := p.parseDescription()
	nameTok := p.mustReadName()
	field := ast.FieldDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    nameTok.TextPosition,
	}
	if p.peek() == keyword.BRACKETOPEN {
		field.ArgumentsDefinition = p.parseInputValueDefinitionList(keyword.BRACKETCLOSE)
	}
	p.mustRead(keyword.COLON)
	field.Type = p.parseType()
	field.Directives = p.parseDirectiveList()
	field.Position.MergeEndIntoEnd(p.last.TextPosition)
	return field
}

// parseInputValueDefinitionList parses argument definitions up to ')' and
// input object fields up to '}'. The caller peeked the opening token. Both
// an empty list and an absent list parse to zero input values.
func (p *Parser) parseInputValueDefinitionList(closing keyword.Keyword) []ast.InputValueDefinition {
	p.read() // ( or {
	list := []ast.InputValueDefinition{}
	for {
		if p.err != nil {
			return nil
		}
		switch p.peek() {
		case closing:
			p.read()
			return list
		case keyword.EOF:
			p.errUnexpectedToken(p.read(), closing)
			return nil
		default:
			list = append(list, p.parseInputValueDefinition())
		}
	}
}

func (p *Parser) parseInputValueDefinition() ast.InputValueDefinition {
	description, _ := p.parseDescription()
	nameTok := p.mustReadName()
	definition := ast.InputValueDefinition{
		Description: description,
		Name:        nameTok.Literal,
		Position:    nameTok.TextPosition,
	}
	p.mustRead(keyword.COLON)
	definition.Type = p.parseType()
	if p.peek() == keyword.EQUALS {
		p.read()
		definition.DefaultValue = ast.DefaultValue{
			IsDefined: true,
			Value:     p.parseValue(),
		}
	}
	definition.Directives = p.parseDirectiveList()
	definition.Position.MergeEndIntoEnd(p.last.TextPosition)
	return definition
}

func (p *Parser) parseDirectiveList() []ast.Directive {
	var directives []ast.Directive
	for p.peek() == keyword.AT {
		atTok := p.read()
		nameTok := p.mustReadName()
		if p.err != nil {
			return nil
		}
		directive := ast.Directive{
			Name:     nameTok.Literal,
			Position: atTok.TextPosition,
		}
		directive.Position.MergeEndIntoEnd(nameTok.TextPosition)
		if p.peek() == keyword.BRACKETOPEN {
			directive.Arguments = p.parseArgumentList()
			directive.Position.MergeEndIntoEnd(p.last.TextPosition)
		}
		if p.err != nil {
			return nil
		}
		directives = append(directives, directive)
	}
	return directives
}

func (p *Parser) parseArgumentList() []ast.Argument {
	p.read() // (
	var arguments []ast.Argument
	for {
		if p.err != nil {
			return nil
		}
		switch p.peek() {
		case keyword.BRACKETCLOSE:
			p.read()
			return arguments
		case keyword.EOF:
			p.errUnexpectedToken(p.read(), keyword.BRACKETCLOSE)
			return nil
		default:
			nameTok := p.mustReadName()
			if p.err != nil {
				return nil
			}
			for i := range arguments {
				if arguments[i].Name == nameTok.Literal {
					p.err = p.parseError("a unique argument name",
						fmt.Sprintf("duplicate argument `%s`", nameTok.Literal), nameTok.TextPosition)
					return nil
				}
			}
			p.mustRead(keyword.COLON)
			argument := ast.Argument{
				Name:     nameTok.Literal,
				Value:    p.parseValue(),
				Position: nameTok.TextPosition,
			}
			argument.Position.MergeEndIntoEnd(p.last.TextPosition)
			arguments = append(arguments, argument)
		}
	}
}

// parseType builds the TypeReference wrapper chain bottom up: innermost named
// or list type first, then the optional non-null suffix. '!!' is invalid.
func (p *Parser) parseType() ast.Type {
	var parsed ast.Type
	if p.peek() == keyword.SQUAREBRACKETOPEN {
		p.read()
		ofType := p.parseType()
		if p.err != nil {
			return nil
		}
		p.mustRead(keyword.SQUAREBRACKETCLOSE)
		parsed = ast.ListType{OfType: ofType}
	} else {
		nameTok := p.mustReadName()
		if p.err != nil {
			return nil
		}
		parsed = ast.NamedType{Name: nameTok.Literal, Position: nameTok.TextPosition}
	}

	if p.peek() == keyword.BANG {
		p.read()
		if p.peek() == keyword.BANG {
			bangTok := p.read()
			if p.err == nil {
				p.err = p.parseError("a nullable type before `!`", "`!`", bangTok.TextPosition)
			}
			return nil
		}
		parsed = ast.NonNullType{OfType: parsed}
	}
	return parsed
}

func (p *Parser) parseValue() ast.Value {
	tok := p.read()
	switch tok.Keyword {
	case keyword.INTEGER:
		return ast.IntValue{Raw: tok.Literal}
	case keyword.FLOAT:
		return ast.FloatValue{Raw: tok.Literal}
	case keyword.STRING:
		return ast.StringValue{Value: tok.Literal}
	case keyword.BLOCKSTRING:
		return ast.StringValue{Value: tok.Literal, BlockString: true}
	case keyword.TRUE:
		return ast.BooleanValue(true)
	case keyword.FALSE:
		return ast.BooleanValue(false)
	case keyword.NULL:
		return ast.NullValue{}
	case keyword.SQUAREBRACKETOPEN:
		return p.parseListValue()
	case keyword.CURLYBRACKETOPEN:
		return p.parseObjectValue()
	default:
		if tok.Keyword.IsName() {
			return ast.EnumValue{Name: tok.Literal}
		}
		if p.err == nil {
			p.err = p.parseError("a value", foundText(tok), tok.TextPosition)
		}
		return nil
	}
}

// parseListValue is entered after '[' has been consumed.
func (p *Parser) parseListValue() ast.Value {
	list := ast.ListValue{Values: []ast.Value{}}
	for {
		if p.err != nil {
			return nil
		}
		switch p.peek() {
		case keyword.SQUAREBRACKETCLOSE:
			p.read()
			return list
		case keyword.EOF:
			p.errUnexpectedToken(p.read(), keyword.SQUAREBRACKETCLOSE)
			return nil
		default:
			list.Values = append(list.Values, p.parseValue())
		}
	}
}

// parseObjectValue is entered after '{' has been consumed.
func (p *Parser) parseObjectValue() ast.Value {
	object := ast.ObjectValue{Fields: []ast.ObjectField{}}
	for {
		if p.err != nil {
			return nil
		}
		switch p.peek() {
		case keyword.CURLYBRACKETCLOSE:
			p.read()
			return object
		case keyword.EOF:
			p.errUnexpectedToken(p.read(), keyword.CURLYBRACKETCLOSE)
			return nil
		default:
			nameTok := p.mustReadName()
			if p.err != nil {
				return nil
			}
			for i := range object.Fields {
				if object.Fields[i].Name == nameTok.Literal {
					p.err = p.parseError("a unique object field name",
						fmt.Sprintf("duplicate field `%s`", nameTok.Literal), nameTok.TextPosition)
					return nil
				}
			}
			p.mustRead(keyword.COLON)
			object.Fields = append(object.Fields, ast.ObjectField{
				Name:  nameTok.Literal,
				Value: p.parseValue(),
			})
		}
	}
}
