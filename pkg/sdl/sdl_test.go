package sdl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jensneuse/abstractlogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqltools/sdl/pkg/graphqlerror"
)

const schemaInput = `schema { query: Query }
type Query { hello(name: String = "world"): String! }`

func TestNewSchemaFromString(t *testing.T) {
	schema, err := NewSchemaFromString(schemaInput)
	require.NoError(t, err)

	assert.Equal(t, schemaInput, schema.Input())
	require.Len(t, schema.Document().Definitions, 2)

	index := schema.Index()
	assert.Len(t, index.DefinitionsByName("Query"), 1)
}

func TestNewSchemaFromReader(t *testing.T) {
	schema, err := NewSchemaFromReader(strings.NewReader(schemaInput))
	require.NoError(t, err)
	require.Len(t, schema.Document().Definitions, 2)
}

func TestNewSchemaFromStringParseError(t *testing.T) {
	schema, err := NewSchemaFromString("type Broken {", WithLogger(abstractlogger.NoopLogger))
	require.Nil(t, schema)

	var parseErr *graphqlerror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "EOF", parseErr.Found)
}

func TestSchemaPrint(t *testing.T) {
	schema, err := NewSchemaFromString(schemaInput)
	require.NoError(t, err)

	buf := bytes.Buffer{}
	require.NoError(t, schema.Print(&buf))
	assert.Equal(t, "schema {\n  query: Query\n}\n\ntype Query {\n  hello(name: String = \"world\"): String!\n}\n", buf.String())
}
