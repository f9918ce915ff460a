// Package astprinter prints an ast.Document back to SDL text.
//
// Output is canonical: two space indentation, one blank line between
// top level definitions, descriptions printed in string form. Printing a
// parsed document and parsing the output again yields a structurally
// identical document.
package astprinter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gqltools/sdl/pkg/ast"
)

// Print writes document to out.
func Print(document *ast.Document, out io.Writer) error {
	p := printer{out: out}
	p.printDocument(document)
	return p.err
}

// PrintString prints document into a string.
func PrintString(document *ast.Document) (string, error) {
	buf := &bytes.Buffer{}
	err := Print(document, buf)
	return buf.String(), err
}

type printer struct {
	out io.Writer
	err error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.out, s)
}

func (p *printer) printDocument(document *ast.Document) {
	for i, definition := range document.Definitions {
		if i != 0 {
			p.write("\n")
		}
		p.printDefinition(definition)
	}
}

func (p *printer) printDefinition(definition ast.Definition) {
	switch d := definition.(type) {
	case *ast.SchemaDefinition:
		p.printSchemaDefinition(d)
	case *ast.ObjectTypeDefinition:
		p.printObjectType(d, false)
	case *ast.ObjectTypeExtension:
		p.printObjectType(&d.ObjectTypeDefinition, true)
	case *ast.InterfaceTypeDefinition:
		p.printInterfaceType(d, false)
	case *ast.InterfaceTypeExtension:
		p.printInterfaceType(&d.InterfaceTypeDefinition, true)
	case *ast.UnionTypeDefinition:
		p.printUnionType(d, false)
	case *ast.UnionTypeExtension:
		p.printUnionType(&d.UnionTypeDefinition, true)
	case *ast.EnumTypeDefinition:
		p.printEnumType(d, false)
	case *ast.EnumTypeExtension:
		p.printEnumType(&d.EnumTypeDefinition, true)
	case *ast.ScalarTypeDefinition:
		p.printScalarType(d, false)
	case *ast.ScalarTypeExtension:
		p.printScalarType(&d.ScalarTypeDefinition, true)
	case *ast.InputObjectTypeDefinition:
		p.printInputObjectType(d, false)
	case *ast.InputObjectTypeExtension:
		p.printInputObjectType(&d.InputObjectTypeDefinition, true)
	case *ast.DirectiveDefinition:
		p.printDirectiveDefinition(d)
	}
}

func (p *printer) printSchemaDefinition(definition *ast.SchemaDefinition) {
	p.printDescription(definition.Description, "")
	p.write("schema")
	p.printDirectives(definition.Directives)
	p.write(" {\n")
	for _, root := range definition.RootOperationTypeDefinitions {
		p.write("  ")
		p.write(root.OperationType.String())
		p.write(": ")
		p.write(root.NamedType.Name)
		p.write("\n")
	}
	p.write("}\n")
}

func (p *printer) printObjectType(definition *ast.ObjectTypeDefinition, extension bool) {
	p.printDescription(definition.Description, "")
	if extension {
		p.write("extend ")
	}
	p.write("type ")
	p.write(definition.Name)
	p.printImplements(definition.ImplementsInterfaces)
	p.printDirectives(definition.Directives)
	if definition.HasFieldDefinitions {
		p.printFieldDefinitions(definition.FieldDefinitions)
	}
	p.write("\n")
}

func (p *printer) printInterfaceType(definition *ast.InterfaceTypeDefinition, extension bool) {
	p.printDescription(definition.Description, "")
	if extension {
		p.write("extend ")
	}
	p.write("interface ")
	p.write(definition.Name)
	p.printImplements(definition.ImplementsInterfaces)
	p.printDirectives(definition.Directives)
	if definition.HasFieldDefinitions {
		p.printFieldDefinitions(definition.FieldDefinitions)
	}
	p.write("\n")
}

func (p *printer) printImplements(interfaces []ast.NamedType) {
	for i, named := range interfaces {
		if i == 0 {
			p.write(" implements ")
		} else {
			p.write(" & ")
		}
		p.write(named.Name)
	}
}

func (p *printer) printFieldDefinitions(fields []ast.FieldDefinition) {
	if len(fields) == 0 {
		p.write(" {}")
		return
	}
	p.write(" {\n")
	for _, field := range fields {
		p.printDescription(field.Description, "  ")
		p.write("  ")
		p.write(field.Name)
		p.printInputValueDefinitionList(field.ArgumentsDefinition)
		p.write(": ")
		p.printType(field.Type)
		p.printDirectives(field.Directives)
		p.write("\n")
	}
	p.write("}")
}

func (p *printer) printInputValueDefinitionList(list []ast.InputValueDefinition) {
	if len(list) == 0 {
		return
	}
	p.write("(")
	for i := range list {
		if i != 0 {
			p.write(", ")
		}
		p.printInputValueDefinition(list[i])
	}
	p.write(")")
}

func (p *printer) printInputValueDefinition(definition ast.InputValueDefinition) {
	if definition.Description.IsDefined {
		p.printStringValue(definition.Description.Content, false)
		p.write(" ")
	}
	p.write(definition.Name)
	p.write(": ")
	p.printType(definition.Type)
	if definition.DefaultValue.IsDefined {
		p.write(" = ")
		p.printValue(definition.DefaultValue.Value)
	}
	p.printDirectives(definition.Directives)
}

func (p *printer) printUnionType(definition *ast.UnionTypeDefinition, extension bool) {
	p.printDescription(definition.Description, "")
	if extension {
		p.write("extend ")
	}
	p.write("union ")
	p.write(definition.Name)
	p.printDirectives(definition.Directives)
	if definition.HasUnionMemberTypes {
		p.write(" = ")
		for i, member := range definition.UnionMemberTypes {
			if i != 0 {
				p.write(" | ")
			}
			p.write(member.Name)
		}
	}
	p.write("\n")
}

func (p *printer) printEnumType(definition *ast.EnumTypeDefinition, extension bool) {
	p.printDescription(definition.Description, "")
	if extension {
		p.write("extend ")
	}
	p.write("enum ")
	p.write(definition.Name)
	p.printDirectives(definition.Directives)
	if definition.HasEnumValuesDefinition {
		if len(definition.EnumValuesDefinition) == 0 {
			p.write(" {}")
		} else {
			p.write(" {\n")
			for _, value := range definition.EnumValuesDefinition {
				p.printDescription(value.Description, "  ")
				p.write("  ")
				p.write(value.EnumValue)
				p.printDirectives(value.Directives)
				p.write("\n")
			}
			p.write("}")
		}
	}
	p.write("\n")
}

func (p *printer) printScalarType(definition *ast.ScalarTypeDefinition, extension bool) {
	p.printDescription(definition.Description, "")
	if extension {
		p.write("extend ")
	}
	p.write("scalar ")
	p.write(definition.Name)
	p.printDirectives(definition.Directives)
	p.write("\n")
}

func (p *printer) printInputObjectType(definition *ast.InputObjectTypeDefinition, extension bool) {
	p.printDescription(definition.Description, "")
	if extension {
		p.write("extend ")
	}
	p.write("input ")
	p.write(definition.Name)
	p.printDirectives(definition.Directives)
	if definition.HasInputFieldsDefinition {
		if len(definition.InputFieldsDefinition) == 0 {
			p.write(" {}")
		} else {
			p.write(" {\n")
			for i := range definition.InputFieldsDefinition {
				field := definition.InputFieldsDefinition[i]
				p.printDescription(field.Description, "  ")
				p.write("  ")
				p.write(field.Name)
				p.write(": ")
				p.printType(field.Type)
				if field.DefaultValue.IsDefined {
					p.write(" = ")
					p.printValue(field.DefaultValue.Value)
				}
				p.printDirectives(field.Directives)
				p.write("\n")
			}
			p.write("}")
		}
	}
	p.write("\n")
}

func (p *printer) printDirectiveDefinition(definition *ast.DirectiveDefinition) {
	p.printDescription(definition.Description, "")
	p.write("directive @")
	p.write(definition.Name)
	p.printInputValueDefinitionList(definition.ArgumentsDefinition)
	p.write(" on ")
	p.write(strings.Join(definition.DirectiveLocations, " | "))
	p.write("\n")
}

func (p *printer) printDirectives(directives []ast.Directive) {
	for _, directive := range directives {
		p.write(" @")
		p.write(directive.Name)
		if len(directive.Arguments) > 0 {
			p.write("(")
			for i, argument := range directive.Arguments {
				if i != 0 {
					p.write(", ")
				}
				p.write(argument.Name)
				p.write(": ")
				p.printValue(argument.Value)
			}
			p.write(")")
		}
	}
}

func (p *printer) printType(t ast.Type) {
	switch v := t.(type) {
	case ast.NamedType:
		p.write(v.Name)
	case ast.ListType:
		p.write("[")
		p.printType(v.OfType)
		p.write("]")
	case ast.NonNullType:
		p.printType(v.OfType)
		p.write("!")
	}
}

func (p *printer) printValue(value ast.Value) {
	switch v := value.(type) {
	case ast.IntValue:
		p.write(v.Raw)
	case ast.FloatValue:
		p.write(v.Raw)
	case ast.StringValue:
		p.printStringValue(v.Value, v.BlockString)
	case ast.BooleanValue:
		if v {
			p.write("true")
		} else {
			p.write("false")
		}
	case ast.NullValue:
		p.write("null")
	case ast.EnumValue:
		p.write(v.Name)
	case ast.ListValue:
		p.write("[")
		for i, item := range v.Values {
			if i != 0 {
				p.write(", ")
			}
			p.printValue(item)
		}
		p.write("]")
	case ast.ObjectValue:
		p.write("{")
		for i, field := range v.Fields {
			if i != 0 {
				p.write(", ")
			}
			p.write(field.Name)
			p.write(": ")
			p.printValue(field.Value)
		}
		p.write("}")
	}
}

// printDescription prints a description in string form, block strings where
// the content survives re-parsing unchanged, a quoted single line string
// otherwise. Comment descriptions are canonicalized to string form.
func (p *printer) printDescription(description ast.Description, indent string) {
	if !description.IsDefined {
		return
	}
	p.write(indent)
	if canPrintBlockString(description.Content) {
		p.write(`"""`)
		p.write("\n")
		for _, line := range strings.Split(description.Content, "\n") {
			p.write(indent)
			p.write(strings.ReplaceAll(line, `"""`, `\"""`))
			p.write("\n")
		}
		p.write(indent)
		p.write(`"""`)
	} else {
		p.printStringValue(description.Content, false)
	}
	p.write("\n")
}

func (p *printer) printStringValue(content string, block bool) {
	if block && canPrintBlockString(content) {
		p.write(`"""`)
		p.write(strings.ReplaceAll(content, `"""`, `\"""`))
		p.write(`"""`)
		return
	}
	p.write(`"`)
	p.write(escapeString(content))
	p.write(`"`)
}

// canPrintBlockString reports whether content printed between triple quotes
// parses back to the identical string: indentation stripping and blank line
// trimming must be no-ops and the closing quotes must not be swallowed.
func canPrintBlockString(content string) bool {
	if content == "" || strings.ContainsRune(content, '\r') {
		return false
	}
	if c := content[len(content)-1]; c == '"' || c == '\\' {
		return false
	}
	lines := strings.Split(content, "\n")
	if blankLine(lines[0]) || blankLine(lines[len(lines)-1]) {
		return false
	}
	for _, line := range lines {
		if blankLine(line) {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			return true
		}
	}
	return false
}

func blankLine(line string) bool {
	return strings.TrimLeft(line, " \t") == ""
}

func escapeString(content string) string {
	var out strings.Builder
	for _, r := range content {
		switch r {
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		case '\b':
			out.WriteString(`\b`)
		case '\f':
			out.WriteString(`\f`)
		default:
			if r < 0x20 {
				out.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				out.WriteRune(r)
			}
		}
	}
	return out.String()
}
