// Package highlight maps token spans to caller-supplied display attributes.
//
// The package is presentation-agnostic: the attribute type is a type
// parameter, so the same spans feed a tcell-backed editor and an ANSI
// presenter without this package knowing about either.
package highlight

import "github.com/bawdo/sqldrill/lex"

// Span pairs a token with the attribute chosen for its kind.
type Span[T any] struct {
	Token lex.Token
	Attr  T
}

// Spans re-tokenizes text and attaches attributes via attr. It recomputes
// from scratch on every call; buffers here are a few hundred characters, so
// full re-lexing stays well under a frame.
func Spans[T any](text string, attr func(lex.Kind) T) []Span[T] {
	tokens := lex.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	spans := make([]Span[T], len(tokens))
	for i, tok := range tokens {
		spans[i] = Span[T]{Token: tok, Attr: attr(tok.Kind)}
	}
	return spans
}

// Text returns the substring a span covers.
func Text[T any](text string, s Span[T]) string {
	return text[s.Token.Start:s.Token.End]
}
