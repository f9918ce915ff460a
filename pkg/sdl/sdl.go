// Package sdl is the high level entry point: it turns SDL text into a Schema
// wrapping the parsed document.
package sdl

import (
	"io"

	"github.com/jensneuse/abstractlogger"

	"github.com/gqltools/sdl/pkg/ast"
	"github.com/gqltools/sdl/pkg/astparser"
	"github.com/gqltools/sdl/pkg/astprinter"
)

// Schema is one successfully parsed SDL document together with its raw input.
type Schema struct {
	rawInput string
	document *ast.Document
}

type Option func(*options)

type options struct {
	logger abstractlogger.Logger
}

// WithLogger sets the logger used to report parse failures. The default is
// abstractlogger.NoopLogger.
func WithLogger(logger abstractlogger.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewSchemaFromString parses one SDL document.
func NewSchemaFromString(input string, opts ...Option) (*Schema, error) {
	o := options{logger: abstractlogger.NoopLogger}
	for _, opt := range opts {
		opt(&o)
	}

	document, err := astparser.ParseDocumentString(input)
	if err != nil {
		o.logger.Error("sdl: schema parse failed", abstractlogger.Error(err))
		return nil, err
	}

	return &Schema{
		rawInput: input,
		document: document,
	}, nil
}

// NewSchemaFromReader reads reader fully and parses the content.
func NewSchemaFromReader(reader io.Reader, opts ...Option) (*Schema, error) {
	input, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return NewSchemaFromString(string(input), opts...)
}

// Document returns the parsed document. Callers must not mutate it.
func (s *Schema) Document() *ast.Document {
	return s.document
}

// Input returns the raw text the schema was parsed from.
func (s *Schema) Input() string {
	return s.rawInput
}

// Index builds a name index over the document's definitions.
func (s *Schema) Index() *ast.Index {
	return ast.NewIndex(s.document)
}

// Print writes the canonical form of the schema to out.
func (s *Schema) Print(out io.Writer) error {
	return astprinter.Print(s.document, out)
}
