// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package rustsyn

import (
	"fmt"
)

// ParseFile parses Rust source text and returns the struct and enum
// declarations it contains. name is a display label carried through to the
// generated output; it is not used to read anything.
func ParseFile(name, src string) (*File, error) {
	toks, err := scanAll(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	file := &File{Name: name}
	for p.peek().Kind != EOF {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		if item != nil {
			file.Items = append(file.Items, item)
		}
	}
	return file, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

// peekAt looks n tokens ahead without consuming.
func (p *parser) peekAt(n int) Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) accept(kind Kind, text string) bool {
	if p.peek().is(kind, text) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(kind Kind, text string) error {
	if !p.accept(kind, text) {
		tok := p.peek()
		return fmt.Errorf("line %d: expected %q, found %q", tok.Line, text, tok.Text)
	}
	return nil
}

func (p *parser) expectIdent() (string, error) {
	tok := p.peek()
	if tok.Kind != Ident {
		return "", fmt.Errorf("line %d: expected identifier, found %q", tok.Line, tok.Text)
	}
	p.pos++
	return tok.Text, nil
}

// parseItem parses one top-level item. It returns (nil, nil) for items the
// translator does not care about.
func (p *parser) parseItem() (Item, error) {
	derives, err := p.parseAttrs()
	if err != nil {
		return nil, err
	}
	p.skipVisibility()

	tok := p.peek()
	if tok.Kind == Ident {
		switch tok.Text {
		case "struct":
			return p.parseStruct(derives)
		case "enum":
			return p.parseEnum()
		}
	}
	if err := p.skipItem(); err != nil {
		return nil, err
	}
	return nil, nil
}

// parseAttrs consumes all leading attributes and returns the derive marker
// names found in them. Inner attributes (#![...]) are consumed and ignored.
// Only bare identifiers inside derive(...) count as markers; path elements
// like serde::Serialize are passed over, matching how derive lists are
// normally written.
func (p *parser) parseAttrs() ([]string, error) {
	var derives []string
	for p.peek().is(Punct, "#") {
		p.next()
		p.accept(Punct, "!")
		if err := p.expect(Punct, "["); err != nil {
			return nil, err
		}
		body, err := p.collectBalanced("[", "]")
		if err != nil {
			return nil, err
		}
		derives = append(derives, deriveNames(body)...)
	}
	return derives, nil
}

// deriveNames extracts marker names from the token body of a
// #[derive(A, B)] attribute. body excludes the surrounding brackets.
func deriveNames(body []Token) []string {
	if len(body) < 3 || body[0].Kind != Ident || body[0].Text != "derive" || !body[1].is(Punct, "(") {
		return nil
	}
	var names []string
	depth := 0
	var elem []Token
	flush := func() {
		if len(elem) == 1 && elem[0].Kind == Ident {
			names = append(names, elem[0].Text)
		}
		elem = elem[:0]
	}
	for _, tok := range body[2:] {
		switch {
		case tok.is(Punct, "(") || tok.is(Punct, "[") || tok.is(Punct, "{"):
			depth++
			elem = append(elem, tok)
		case tok.is(Punct, ")") || tok.is(Punct, "]") || tok.is(Punct, "}"):
			if depth == 0 {
				flush()
				return names
			}
			depth--
			elem = append(elem, tok)
		case tok.is(Punct, ",") && depth == 0:
			flush()
		default:
			elem = append(elem, tok)
		}
	}
	flush()
	return names
}

// skipVisibility consumes pub, pub(crate), pub(in path), ...
func (p *parser) skipVisibility() {
	if !p.peek().is(Ident, "pub") {
		return
	}
	p.next()
	if p.peek().is(Punct, "(") {
		p.next()
		_, _ = p.collectBalanced("(", ")")
	}
}

// collectBalanced consumes tokens until the delimiter opened just before the
// call is closed, returning the enclosed tokens. Nested delimiters of the
// same kind are tracked.
func (p *parser) collectBalanced(open, close string) ([]Token, error) {
	var body []Token
	depth := 1
	for {
		tok := p.next()
		switch {
		case tok.Kind == EOF:
			return nil, fmt.Errorf("unexpected end of file, unclosed %q", open)
		case tok.is(Punct, open):
			depth++
		case tok.is(Punct, close):
			depth--
			if depth == 0 {
				return body, nil
			}
		}
		body = append(body, tok)
	}
}

// skipItem consumes an item the translator ignores: everything up to a
// top-level semicolon, or through a top-level brace block. A brace block
// followed directly by a semicolon (use a::{b, c};) consumes the semicolon
// too.
func (p *parser) skipItem() error {
	for {
		tok := p.next()
		switch {
		case tok.Kind == EOF:
			return fmt.Errorf("unexpected end of file in item starting at line %d", tok.Line)
		case tok.is(Punct, ";"):
			return nil
		case tok.is(Punct, "("):
			if _, err := p.collectBalanced("(", ")"); err != nil {
				return err
			}
		case tok.is(Punct, "["):
			if _, err := p.collectBalanced("[", "]"); err != nil {
				return err
			}
		case tok.is(Punct, "{"):
			if _, err := p.collectBalanced("{", "}"); err != nil {
				return err
			}
			p.accept(Punct, ";")
			return nil
		}
	}
}

// skipGenerics consumes a <...> generic parameter list if one is present.
func (p *parser) skipGenerics() error {
	if !p.accept(Punct, "<") {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok := p.next()
		switch {
		case tok.Kind == EOF:
			return fmt.Errorf("unexpected end of file in generic parameters")
		case tok.is(Punct, "<"):
			depth++
		case tok.is(Punct, ">"):
			depth--
		}
	}
	return nil
}

// skipWhere consumes a where clause, stopping before the token that opens
// the declaration body (or its terminating semicolon).
func (p *parser) skipWhere() error {
	if !p.peek().is(Ident, "where") {
		return nil
	}
	p.next()
	angle := 0
	for {
		tok := p.peek()
		switch {
		case tok.Kind == EOF:
			return fmt.Errorf("unexpected end of file in where clause")
		case tok.is(Punct, "<"):
			angle++
		case tok.is(Punct, ">"):
			if angle > 0 {
				angle--
			}
		case angle == 0 && (tok.is(Punct, "{") || tok.is(Punct, "(") || tok.is(Punct, ";")):
			return nil
		}
		p.next()
	}
}

func (p *parser) parseStruct(derives []string) (*Struct, error) {
	p.next() // struct keyword
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}
	if err := p.skipWhere(); err != nil {
		return nil, err
	}

	item := &Struct{Name: name, Derives: derives}
	switch {
	case p.accept(Punct, ";"):
		// unit struct, no fields
		return item, nil
	case p.accept(Punct, "("):
		for !p.accept(Punct, ")") {
			if _, err := p.parseAttrs(); err != nil {
				return nil, err
			}
			p.skipVisibility()
			ty, err := p.parseType()
			if err != nil {
				return nil, err
			}
			item.Fields = append(item.Fields, FieldDef{Type: ty})
			if !p.accept(Punct, ",") {
				if err := p.expect(Punct, ")"); err != nil {
					return nil, err
				}
				break
			}
		}
		if err := p.skipWhere(); err != nil {
			return nil, err
		}
		if err := p.expect(Punct, ";"); err != nil {
			return nil, err
		}
		return item, nil
	case p.accept(Punct, "{"):
		fields, err := p.parseNamedFields()
		if err != nil {
			return nil, err
		}
		item.Fields = fields
		return item, nil
	default:
		tok := p.peek()
		return nil, fmt.Errorf("line %d: unexpected %q in struct %s", tok.Line, tok.Text, name)
	}
}

// parseNamedFields parses `name: Type, ...` until the closing brace.
func (p *parser) parseNamedFields() ([]FieldDef, error) {
	var fields []FieldDef
	for !p.accept(Punct, "}") {
		if _, err := p.parseAttrs(); err != nil {
			return nil, err
		}
		p.skipVisibility()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expect(Punct, ":"); err != nil {
			return nil, err
		}
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, FieldDef{Name: name, Type: ty})
		if !p.accept(Punct, ",") {
			if err := p.expect(Punct, "}"); err != nil {
				return nil, err
			}
			break
		}
	}
	return fields, nil
}

func (p *parser) parseEnum() (*Enum, error) {
	p.next() // enum keyword
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.skipGenerics(); err != nil {
		return nil, err
	}
	if err := p.skipWhere(); err != nil {
		return nil, err
	}
	if err := p.expect(Punct, "{"); err != nil {
		return nil, err
	}

	item := &Enum{Name: name}
	for !p.accept(Punct, "}") {
		if _, err := p.parseAttrs(); err != nil {
			return nil, err
		}
		vname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		variant := VariantDef{Name: vname}
		switch {
		case p.accept(Punct, "("):
			for !p.accept(Punct, ")") {
				if _, err := p.parseAttrs(); err != nil {
					return nil, err
				}
				p.skipVisibility()
				ty, err := p.parseType()
				if err != nil {
					return nil, err
				}
				variant.Payload = append(variant.Payload, ty)
				if !p.accept(Punct, ",") {
					if err := p.expect(Punct, ")"); err != nil {
						return nil, err
					}
					break
				}
			}
		case p.accept(Punct, "{"):
			fields, err := p.parseNamedFields()
			if err != nil {
				return nil, err
			}
			for _, f := range fields {
				variant.Payload = append(variant.Payload, f.Type)
			}
		}
		// Discriminant values are skipped, not recorded.
		if p.accept(Punct, "=") {
			if err := p.skipDiscriminant(); err != nil {
				return nil, err
			}
		}
		item.Variants = append(item.Variants, variant)
		if !p.accept(Punct, ",") {
			if err := p.expect(Punct, "}"); err != nil {
				return nil, err
			}
			break
		}
	}
	return item, nil
}

// skipDiscriminant consumes a variant discriminant expression, stopping
// before the comma or closing brace that ends the variant.
func (p *parser) skipDiscriminant() error {
	depth := 0
	for {
		tok := p.peek()
		switch {
		case tok.Kind == EOF:
			return fmt.Errorf("unexpected end of file in enum discriminant")
		case tok.is(Punct, "(") || tok.is(Punct, "[") || tok.is(Punct, "{"):
			depth++
		case tok.is(Punct, ")") || tok.is(Punct, "]"):
			depth--
		case tok.is(Punct, "}"):
			if depth == 0 {
				return nil
			}
			depth--
		case tok.is(Punct, ",") && depth == 0:
			return nil
		}
		p.next()
	}
}

// parseType parses one type. Non-path forms are consumed in full but
// collapse to opaque NonPath nodes; only paths keep their structure.
func (p *parser) parseType() (Type, error) {
	tok := p.peek()
	switch {
	case tok.is(Punct, "&"):
		p.next()
		if p.peek().Kind == Lifetime {
			p.next()
		}
		p.accept(Ident, "mut")
		if _, err := p.parseType(); err != nil {
			return nil, err
		}
		return &NonPath{Kind: "reference"}, nil

	case tok.is(Punct, "*"):
		p.next()
		if !p.accept(Ident, "const") {
			p.accept(Ident, "mut")
		}
		if _, err := p.parseType(); err != nil {
			return nil, err
		}
		return &NonPath{Kind: "raw pointer"}, nil

	case tok.is(Punct, "("):
		p.next()
		for !p.accept(Punct, ")") {
			if _, err := p.parseType(); err != nil {
				return nil, err
			}
			if !p.accept(Punct, ",") {
				if err := p.expect(Punct, ")"); err != nil {
					return nil, err
				}
				break
			}
		}
		return &NonPath{Kind: "tuple"}, nil

	case tok.is(Punct, "["):
		p.next()
		if _, err := p.parseType(); err != nil {
			return nil, err
		}
		if p.accept(Punct, ";") {
			if _, err := p.collectBalanced("[", "]"); err != nil {
				return nil, err
			}
			return &NonPath{Kind: "array"}, nil
		}
		if err := p.expect(Punct, "]"); err != nil {
			return nil, err
		}
		return &NonPath{Kind: "slice"}, nil

	case tok.is(Punct, "!"):
		p.next()
		return &NonPath{Kind: "never type"}, nil

	case tok.is(Punct, "<"):
		// Qualified self: <T as Trait>::Assoc
		p.next()
		if _, err := p.collectBalancedAngles(); err != nil {
			return nil, err
		}
		path := &Path{Qualified: true}
		for p.accept(Punct, "::") {
			seg, err := p.parseSegment()
			if err != nil {
				return nil, err
			}
			path.Segments = append(path.Segments, seg)
		}
		if len(path.Segments) == 0 {
			return nil, fmt.Errorf("line %d: qualified type without path segments", tok.Line)
		}
		return path, nil

	case tok.is(Punct, "::"):
		p.next()
		return p.parsePath(true)

	case tok.Kind == Ident:
		switch tok.Text {
		case "dyn", "impl":
			p.next()
			if err := p.skipBounds(); err != nil {
				return nil, err
			}
			return &NonPath{Kind: "trait object"}, nil
		case "fn":
			p.next()
			if err := p.expect(Punct, "("); err != nil {
				return nil, err
			}
			if _, err := p.collectBalanced("(", ")"); err != nil {
				return nil, err
			}
			if p.accept(Punct, "->") {
				if _, err := p.parseType(); err != nil {
					return nil, err
				}
			}
			return &NonPath{Kind: "function pointer"}, nil
		default:
			return p.parsePath(false)
		}

	default:
		return nil, fmt.Errorf("line %d: expected type, found %q", tok.Line, tok.Text)
	}
}

// parsePath parses ident(::ident)* with optional argument lists.
func (p *parser) parsePath(leadingColon bool) (*Path, error) {
	path := &Path{LeadingColon: leadingColon}
	for {
		seg, err := p.parseSegment()
		if err != nil {
			return nil, err
		}
		path.Segments = append(path.Segments, seg)
		if !p.accept(Punct, "::") {
			return path, nil
		}
	}
}

func (p *parser) parseSegment() (Segment, error) {
	name, err := p.expectIdent()
	if err != nil {
		return Segment{}, err
	}
	seg := Segment{Ident: name}
	switch {
	case p.peek().is(Punct, "<"):
		args, err := p.parseAngleArgs()
		if err != nil {
			return Segment{}, err
		}
		seg.Args = args
	case p.peek().is(Punct, "("):
		// Function-call style arguments: Fn(A, B) -> C
		p.next()
		if _, err := p.collectBalanced("(", ")"); err != nil {
			return Segment{}, err
		}
		if p.accept(Punct, "->") {
			if _, err := p.parseType(); err != nil {
				return Segment{}, err
			}
		}
		seg.Args = &Args{Parenthesized: true}
	}
	return seg, nil
}

// parseAngleArgs parses <arg, arg, ...> classifying each argument.
func (p *parser) parseAngleArgs() (*Args, error) {
	p.next() // consume <
	args := &Args{List: []Arg{}}
	for !p.accept(Punct, ">") {
		arg, err := p.parseGenericArg()
		if err != nil {
			return nil, err
		}
		args.List = append(args.List, arg)
		if !p.accept(Punct, ",") {
			if err := p.expect(Punct, ">"); err != nil {
				return nil, err
			}
			break
		}
	}
	return args, nil
}

func (p *parser) parseGenericArg() (Arg, error) {
	tok := p.peek()
	switch {
	case tok.Kind == Lifetime:
		p.next()
		return Arg{Kind: ArgLifetime}, nil

	case tok.Kind == Number || tok.Kind == String || tok.Kind == Char ||
		tok.is(Punct, "-") || tok.is(Ident, "true") || tok.is(Ident, "false"):
		p.next()
		if tok.is(Punct, "-") {
			p.next() // the literal after the sign
		}
		return Arg{Kind: ArgConst}, nil

	case tok.is(Punct, "{"):
		p.next()
		if _, err := p.collectBalanced("{", "}"); err != nil {
			return Arg{}, err
		}
		return Arg{Kind: ArgConst}, nil

	case tok.Kind == Ident && p.peekAt(1).is(Punct, "="):
		// Associated type binding: Item = u32
		p.next()
		p.next()
		if _, err := p.parseType(); err != nil {
			return Arg{}, err
		}
		return Arg{Kind: ArgBinding}, nil

	default:
		ty, err := p.parseType()
		if err != nil {
			return Arg{}, err
		}
		return Arg{Kind: ArgType, Type: ty}, nil
	}
}

// collectBalancedAngles consumes tokens until the < opened just before the
// call is closed.
func (p *parser) collectBalancedAngles() ([]Token, error) {
	var body []Token
	depth := 1
	for {
		tok := p.next()
		switch {
		case tok.Kind == EOF:
			return nil, fmt.Errorf("unexpected end of file, unclosed angle bracket")
		case tok.is(Punct, "<"):
			depth++
		case tok.is(Punct, ">"):
			depth--
			if depth == 0 {
				return body, nil
			}
		}
		body = append(body, tok)
	}
}

// skipBounds consumes a trait bound list: Path (+ Path | + 'a)*.
func (p *parser) skipBounds() error {
	for {
		if p.peek().Kind == Lifetime {
			p.next()
		} else {
			if _, err := p.parseType(); err != nil {
				return err
			}
		}
		if !p.accept(Punct, "+") {
			return nil
		}
	}
}
