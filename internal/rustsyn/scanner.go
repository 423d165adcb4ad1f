// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package rustsyn

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner turns Rust source text into a token stream. Comments (including
// doc comments) and whitespace are dropped; everything else is preserved in
// source order.
type scanner struct {
	src  string
	pos  int
	line int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1}
}

// scanAll tokenizes the whole input.
func scanAll(src string) ([]Token, error) {
	s := newScanner(src)
	var toks []Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

func (s *scanner) next() (Token, error) {
	if err := s.skipTrivia(); err != nil {
		return Token{}, err
	}
	if s.pos >= len(s.src) {
		return Token{Kind: EOF, Line: s.line}, nil
	}

	line := s.line
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])

	switch {
	case isIdentStart(r):
		text := s.scanIdent()
		// Raw and byte string prefixes attach to the following quote.
		if (text == "r" || text == "b" || text == "br") && s.pos < len(s.src) {
			switch s.src[s.pos] {
			case '"':
				var err error
				if text == "b" {
					err = s.scanString()
				} else {
					err = s.scanRawString()
				}
				if err != nil {
					return Token{}, err
				}
				return Token{Kind: String, Line: line}, nil
			case '#':
				if text == "r" || text == "br" {
					// r#ident is a raw identifier, not a raw string.
					if r2, _ := utf8.DecodeRuneInString(s.src[s.pos+1:]); text == "r" && isIdentStart(r2) {
						s.pos++
						return Token{Kind: Ident, Text: s.scanIdent(), Line: line}, nil
					}
					if err := s.scanRawString(); err != nil {
						return Token{}, err
					}
					return Token{Kind: String, Line: line}, nil
				}
			case '\'':
				if text == "b" {
					s.pos++ // opening quote
					if err := s.scanCharBody(line); err != nil {
						return Token{}, err
					}
					return Token{Kind: Char, Line: line}, nil
				}
			}
		}
		return Token{Kind: Ident, Text: text, Line: line}, nil

	case unicode.IsDigit(r):
		return Token{Kind: Number, Text: s.scanNumber(), Line: line}, nil

	case r == '"':
		if err := s.scanString(); err != nil {
			return Token{}, err
		}
		return Token{Kind: String, Line: line}, nil

	case r == '\'':
		return s.scanQuote(line)

	default:
		return s.scanPunct(line), nil
	}
}

// skipTrivia consumes whitespace and comments. Block comments nest, as in
// Rust.
func (s *scanner) skipTrivia() error {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.line++
			s.pos++
		case c == ' ' || c == '\t' || c == '\r':
			s.pos++
		case strings.HasPrefix(s.src[s.pos:], "//"):
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case strings.HasPrefix(s.src[s.pos:], "/*"):
			depth := 0
			for s.pos < len(s.src) {
				if strings.HasPrefix(s.src[s.pos:], "/*") {
					depth++
					s.pos += 2
				} else if strings.HasPrefix(s.src[s.pos:], "*/") {
					depth--
					s.pos += 2
					if depth == 0 {
						break
					}
				} else {
					if s.src[s.pos] == '\n' {
						s.line++
					}
					s.pos++
				}
			}
			if depth != 0 {
				return fmt.Errorf("line %d: unterminated block comment", s.line)
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) scanIdent() string {
	start := s.pos
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isIdentStart(r) && !unicode.IsDigit(r) {
			break
		}
		s.pos += size
	}
	return s.src[start:s.pos]
}

// scanNumber is deliberately loose: it accepts hex/octal/binary prefixes,
// float forms, and type suffixes without validating them. Declarations only
// need the literal consumed, never interpreted.
func (s *scanner) scanNumber() string {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' {
			s.pos++
			continue
		}
		// A dot only continues the literal when followed by a digit, so
		// range expressions like 0..10 stay two tokens apart.
		if c == '.' && s.pos+1 < len(s.src) && s.src[s.pos+1] >= '0' && s.src[s.pos+1] <= '9' {
			s.pos++
			continue
		}
		break
	}
	return s.src[start:s.pos]
}

func (s *scanner) scanString() error {
	startLine := s.line
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case '\n':
			s.line++
			s.pos++
		case '"':
			s.pos++
			return nil
		default:
			s.pos++
		}
	}
	return fmt.Errorf("line %d: unterminated string literal", startLine)
}

// scanRawString consumes r#"..."# with any number of hashes.
func (s *scanner) scanRawString() error {
	startLine := s.line
	hashes := 0
	for s.pos < len(s.src) && s.src[s.pos] == '#' {
		hashes++
		s.pos++
	}
	if s.pos >= len(s.src) || s.src[s.pos] != '"' {
		return fmt.Errorf("line %d: malformed raw string literal", startLine)
	}
	s.pos++
	closer := `"` + strings.Repeat("#", hashes)
	end := strings.Index(s.src[s.pos:], closer)
	if end < 0 {
		return fmt.Errorf("line %d: unterminated raw string literal", startLine)
	}
	s.line += strings.Count(s.src[s.pos:s.pos+end], "\n")
	s.pos += end + len(closer)
	return nil
}

// scanQuote disambiguates lifetimes from character literals. A quote
// followed by an identifier is a lifetime unless the identifier is a single
// character closed by another quote.
func (s *scanner) scanQuote(line int) (Token, error) {
	s.pos++ // opening quote
	if s.pos < len(s.src) {
		r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
		if isIdentStart(r) {
			save := s.pos
			name := s.scanIdent()
			if s.pos < len(s.src) && s.src[s.pos] == '\'' {
				s.pos = save
				if err := s.scanCharBody(line); err != nil {
					return Token{}, err
				}
				return Token{Kind: Char, Line: line}, nil
			}
			return Token{Kind: Lifetime, Text: name, Line: line}, nil
		}
	}
	if err := s.scanCharBody(line); err != nil {
		return Token{}, err
	}
	return Token{Kind: Char, Line: line}, nil
}

// scanCharBody consumes the body and closing quote of a character literal.
// The opening quote has already been consumed.
func (s *scanner) scanCharBody(line int) error {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case '\'':
			s.pos++
			return nil
		default:
			_, size := utf8.DecodeRuneInString(s.src[s.pos:])
			s.pos += size
		}
	}
	return fmt.Errorf("line %d: unterminated character literal", line)
}

func (s *scanner) scanPunct(line int) Token {
	for _, op := range [...]string{"::", "->", "=>"} {
		if strings.HasPrefix(s.src[s.pos:], op) {
			s.pos += len(op)
			return Token{Kind: Punct, Text: op, Line: line}
		}
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	return Token{Kind: Punct, Text: string(r), Line: line}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
