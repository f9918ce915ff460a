package astprinter

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jensneuse/diffview"
	"github.com/sebdah/goldie"
	"github.com/stretchr/testify/require"

	"github.com/gqltools/sdl/pkg/ast"
	"github.com/gqltools/sdl/pkg/astparser"
	"github.com/gqltools/sdl/pkg/lexing/position"
)

func TestPrint(t *testing.T) {
	run := func(raw string, want string) func(t *testing.T) {
		return func(t *testing.T) {
			document, err := astparser.ParseDocumentString(raw)
			require.NoError(t, err)

			got, err := PrintString(document)
			require.NoError(t, err)
			if want != got {
				t.Fatalf("want:\n%s\ngot:\n%s\n", want, got)
			}
		}
	}

	t.Run("object type", run(
		"type Person {\n\tname: String!\n\tfriends(first: Int = 10): [Person!]\n}",
		"type Person {\n  name: String!\n  friends(first: Int = 10): [Person!]\n}\n"))

	t.Run("type without body", run(
		"type Person",
		"type Person\n"))

	t.Run("empty body", run(
		"type Person {}",
		"type Person {}\n"))

	t.Run("implements and directives", run(
		"type Dog implements Animal & Pet @entity @cached(ttl: 60)",
		"type Dog implements Animal & Pet @entity @cached(ttl: 60)\n"))

	t.Run("union", run(
		"union U = | A | B",
		"union U = A | B\n"))

	t.Run("schema", run(
		"schema { query: Q mutation: M }",
		"schema {\n  query: Q\n  mutation: M\n}\n"))

	t.Run("extension", run(
		"extend enum E { C }",
		"extend enum E {\n  C\n}\n"))

	t.Run("comment description is canonicalized to a string", run(
		"# a person\ntype Person",
		"\"\"\"\na person\n\"\"\"\ntype Person\n"))

	t.Run("description ending in a quote falls back to a single line string", run(
		"\"ends with \\\"\"\nscalar S",
		"\"ends with \\\"\"\nscalar S\n"))
}

func TestPrintGolden(t *testing.T) {
	raw, err := ioutil.ReadFile("./fixtures/starwars.graphql")
	require.NoError(t, err)

	document, err := astparser.ParseDocumentBytes(raw)
	require.NoError(t, err)

	buf := bytes.Buffer{}
	err = Print(document, &buf)
	require.NoError(t, err)

	got := buf.Bytes()
	goldie.Assert(t, "starwars", got)
	if t.Failed() {
		want, err := ioutil.ReadFile("./fixtures/starwars.golden")
		if err != nil {
			panic(err)
		}
		diffview.NewGoland().DiffViewBytes("starwars", want, got)
	}
}

// Printing a document and parsing the output again must yield a structurally
// identical document. Positions differ and descriptions are canonicalized to
// string form, both are ignored.
func TestPrintRoundTrip(t *testing.T) {
	inputs := map[string]string{
		"field types": "type Foo {\n  a: Int\n  b: [String!]!\n  c: [[Float]]\n}",
		"descriptions": "\"\"\"\nthe query root\n\"\"\"\ntype Query {\n  # the version\n  version: String\n}",
		"defaults":     `type T { f(a: Int = 10, b: [Int] = [1, 2], c: P = {x: 0.5, y: null}, d: S = "text", e: E = RED): Int }`,
		"interfaces":   "interface Node { id: ID! }\ntype User implements Node & Entity { id: ID! }",
		"unions":       "union Empty\nunion Pair = A | B",
		"enums":        "enum E { A B @tag C }",
		"inputs":       "input I {\n  x: Int = 0\n  \"docs\"\n  y: String @tag\n}",
		"directives":   `directive @cache(ttl: Int = 300) on FIELD_DEFINITION | OBJECT`,
		"schema":       "schema @tag { query: Q subscription: S }",
		"extensions":   "extend type T { f: Int }\nextend union U = C\nextend scalar S @tag\nextend input I { z: Int }\nextend interface N { v: Int }\nextend enum E { D }",
		"empty bodies": "type A {}\ntype B",
	}

	ignore := cmp.Options{
		cmpopts.IgnoreTypes(position.Position{}),
		cmpopts.IgnoreFields(ast.Description{}, "IsBlockString"),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			first, err := astparser.ParseDocumentString(input)
			require.NoError(t, err)

			printed, err := PrintString(first)
			require.NoError(t, err)

			second, err := astparser.ParseDocumentString(printed)
			require.NoError(t, err, "printed output must parse:\n%s", printed)

			if diff := cmp.Diff(first, second, ignore...); diff != "" {
				t.Fatalf("document changed after print and re-parse (-first +second):\n%s\nprinted:\n%s", diff, printed)
			}
		})
	}
}
