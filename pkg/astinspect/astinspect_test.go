package astinspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqltools/sdl/pkg/ast"
	"github.com/gqltools/sdl/pkg/astparser"
)

const fixture = `
schema { query: Query }
type Query {
	user(id: ID!): User
	posts: [Post!]!
}
type User implements Node {
	id: ID
	friends: [User]
}
interface Node { id: ID }
union Feed = Post | Photo
type Post { author: User }
input Filter {
	after: Cursor
	limit: Int
}
scalar Cursor
directive @auth(role: Role) on FIELD_DEFINITION
enum Role { ADMIN }
extend type User { posts: [Post] }
`

func parseFixture(t *testing.T) *ast.Document {
	t.Helper()
	document, err := astparser.ParseDocumentString(fixture)
	require.NoError(t, err)
	return document
}

func TestTypeDependencies(t *testing.T) {
	document := parseFixture(t)

	deps := func(index int) []string {
		return TypeDependencies(document.Definitions[index])
	}

	assert.Equal(t, []string{"Query"}, deps(0), "schema")
	assert.Equal(t, []string{"ID", "User", "Post"}, deps(1), "query, arguments before field types")
	assert.Equal(t, []string{"Node", "ID", "User"}, deps(2), "user, interfaces first, self reference kept")
	assert.Equal(t, []string{"ID"}, deps(3), "node")
	assert.Equal(t, []string{"Post", "Photo"}, deps(4), "feed")
	assert.Equal(t, []string{"User"}, deps(5), "post")
	assert.Equal(t, []string{"Cursor", "Int"}, deps(6), "filter")
	assert.Nil(t, deps(7), "scalars have no dependencies")
	assert.Equal(t, []string{"Role"}, deps(8), "directive definition")
	assert.Nil(t, deps(9), "enums have no dependencies")
	assert.Equal(t, []string{"Post"}, deps(10), "extension")
}

func TestDefinitionID(t *testing.T) {
	document := parseFixture(t)

	assert.Equal(t, "Schema", DefinitionID(document.Definitions[0]))
	assert.Equal(t, "Query", DefinitionID(document.Definitions[1]))
	assert.Equal(t, "auth", DefinitionID(document.Definitions[8]))
	assert.Equal(t, "UserExt", DefinitionID(document.Definitions[10]))
}

func TestDependencyEdges(t *testing.T) {
	document := parseFixture(t)

	edges := DependencyEdges(document)

	assert.Equal(t, []Edge{
		{From: "Schema", To: "Query"},
		{From: "Query", To: "User"},
		{From: "Query", To: "Post"},
		{From: "User", To: "Node"},
		{From: "User", To: "User"},
		{From: "Feed", To: "Post"},
		{From: "Post", To: "User"},
		{From: "Filter", To: "Cursor"},
		{From: "auth", To: "Role"},
		{From: "UserExt", To: "Post"},
	}, edges, "unresolved names like ID, Int and Photo produce no edges")
}
