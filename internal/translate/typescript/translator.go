// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/nicholasbishop/rsts/internal/translate"
)

//go:embed typescript.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "typescript.ts.tmpl"))

// Translator renders the translation model as TypeScript declaration text.
type Translator struct{}

// FileExtension returns the file extension for TypeScript source files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// WritePreamble writes the fixed alias used by timestamp renderings. It is
// emitted once per run, before any file's declarations.
func (t *Translator) WritePreamble(w io.Writer) error {
	_, err := fmt.Fprintf(w, "export type %s = string;\n", TimestampAlias)
	return err
}

// WriteFile renders one source file's declarations and writes them to w:
// a comment naming the file, then each union, then each record, in source
// order.
func (t *Translator) WriteFile(w io.Writer, f *translate.SourceFile) error {
	out, err := t.TranslateFile(f)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// TranslateFile renders one source file's declarations.
func (t *Translator) TranslateFile(f *translate.SourceFile) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// %s\n", f.Name)
	for i := range f.Unions {
		out, err := t.TranslateUnion(&f.Unions[i])
		if err != nil {
			return nil, err
		}
		buf.Write(out)
	}
	for i := range f.Records {
		out, err := t.TranslateRecord(&f.Records[i])
		if err != nil {
			return nil, err
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}

// TranslateRecord renders a record. A single unnamed field becomes a type
// alias (the newtype convention); anything else becomes an interface with
// one required member per field. A record with no translatable fields has
// no defined rendering and is an error.
func (t *Translator) TranslateRecord(r *translate.Record) ([]byte, error) {
	if len(r.Fields) == 0 {
		return nil, fmt.Errorf("record %s has no translatable fields", r.Name)
	}

	var buf bytes.Buffer
	if len(r.Fields) == 1 && r.Fields[0].Name == "" {
		data := struct{ Name, Type string }{r.Name, RenderType(r.Fields[0].Type)}
		if err := tmpl.ExecuteTemplate(&buf, "alias", data); err != nil {
			return nil, fmt.Errorf("failed to execute template: %w", err)
		}
		return buf.Bytes(), nil
	}

	type member struct{ Name, Type string }
	data := struct {
		Name   string
		Fields []member
	}{Name: r.Name}
	for _, f := range r.Fields {
		data.Fields = append(data.Fields, member{f.Name, RenderType(f.Type)})
	}
	if err := tmpl.ExecuteTemplate(&buf, "interface", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// TranslateUnion renders a union as a discriminated-union type alias. Unit
// variants become string literals, single-payload variants become object
// literals, and multi-payload variants become object literals holding a
// fixed-length tuple.
func (t *Translator) TranslateUnion(u *translate.Union) ([]byte, error) {
	members := make([]string, 0, len(u.Variants))
	for _, v := range u.Variants {
		switch len(v.Payload) {
		case 0:
			members = append(members, fmt.Sprintf("  %q", v.Name))
		case 1:
			members = append(members, fmt.Sprintf("  { %s: %s }", v.Name, RenderType(v.Payload[0])))
		default:
			rendered := make([]string, len(v.Payload))
			for i, p := range v.Payload {
				rendered[i] = RenderType(p)
			}
			members = append(members, fmt.Sprintf("  { %s: [%s] }", v.Name, strings.Join(rendered, ", ")))
		}
	}

	var buf bytes.Buffer
	data := struct{ Name, Members string }{u.Name, strings.Join(members, " |\n")}
	if err := tmpl.ExecuteTemplate(&buf, "union", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
