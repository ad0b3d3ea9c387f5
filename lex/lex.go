// Package lex classifies spans of SQL text for syntax highlighting.
//
// The tokenizer is lexical only: it never validates grammar and never fails.
// Incomplete input (an unterminated string, a dangling keyword, a half-typed
// comment) still produces a well-formed token sequence, which is what an
// editor needs while the user is mid-keystroke.
package lex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token for display purposes.
type Kind int

const (
	Whitespace Kind = iota
	Keyword
	String
	Number
	Identifier
	Operator
	Comment
	Other
)

func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case Operator:
		return "operator"
	case Comment:
		return "comment"
	}
	return "other"
}

// Token is a classified span of the input. Start and End are byte offsets;
// consecutive tokens tile the input with no gaps or overlaps.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// keywords is the closed set of reserved words recognized case-insensitively.
// Matching is whole-word only: "selector" is an identifier.
var keywords = map[string]bool{
	"add": true, "all": true, "alter": true, "and": true, "as": true,
	"asc": true, "avg": true, "between": true, "by": true, "case": true,
	"cast": true, "count": true, "create": true, "cross": true,
	"delete": true, "desc": true, "distinct": true, "drop": true,
	"else": true, "end": true, "except": true, "exists": true,
	"false": true, "from": true, "full": true, "group": true,
	"having": true, "in": true, "inner": true, "insert": true,
	"intersect": true, "into": true, "is": true, "join": true,
	"left": true, "like": true, "limit": true, "max": true, "min": true,
	"not": true, "null": true, "offset": true, "on": true, "or": true,
	"order": true, "outer": true, "right": true, "select": true,
	"set": true, "sum": true, "table": true, "then": true, "true": true,
	"union": true, "update": true, "using": true, "values": true,
	"when": true, "where": true, "with": true,
}

// operatorRunes are single characters classified as Operator. Multi-character
// operators (>=, <>, !=, ||) need no merging: adjacent Operator tokens color
// the same either way.
const operatorRunes = "+-*/%=<>!|&(),.;"

// Tokenize splits text into a contiguous token sequence. It is total: every
// byte of the input lands in exactly one token, and any rune that fits no
// class becomes a single-rune Other token.
func Tokenize(text string) []Token {
	var tokens []Token
	pos := 0
	for pos < len(text) {
		start := pos
		r, size := utf8.DecodeRuneInString(text[pos:])
		switch {
		case unicode.IsSpace(r):
			pos = scanWhile(text, pos, unicode.IsSpace)
			tokens = append(tokens, Token{Whitespace, start, pos})
		case r == '-' && peekByte(text, pos+1) == '-':
			pos = scanLineComment(text, pos)
			tokens = append(tokens, Token{Comment, start, pos})
		case r == '/' && peekByte(text, pos+1) == '*':
			pos = scanBlockComment(text, pos)
			tokens = append(tokens, Token{Comment, start, pos})
		case r == '\'' || r == '"':
			pos = scanString(text, pos, byte(r))
			tokens = append(tokens, Token{String, start, pos})
		case r >= '0' && r <= '9':
			pos = scanNumber(text, pos)
			tokens = append(tokens, Token{Number, start, pos})
		case unicode.IsLetter(r) || r == '_':
			pos = scanWord(text, pos)
			kind := Identifier
			if keywords[strings.ToLower(text[start:pos])] {
				kind = Keyword
			}
			tokens = append(tokens, Token{kind, start, pos})
		case strings.ContainsRune(operatorRunes, r):
			pos += size
			tokens = append(tokens, Token{Operator, start, pos})
		default:
			pos += size
			tokens = append(tokens, Token{Other, start, pos})
		}
	}
	return tokens
}

func peekByte(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

func scanWhile(s string, pos int, pred func(rune) bool) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !pred(r) {
			break
		}
		pos += size
	}
	return pos
}

// scanLineComment consumes "--" through end of line (newline excluded, so it
// stays a Whitespace token).
func scanLineComment(s string, pos int) int {
	pos += 2
	for pos < len(s) && s[pos] != '\n' {
		pos++
	}
	return pos
}

// scanBlockComment consumes "/* ... */". An unterminated comment runs to end
// of input.
func scanBlockComment(s string, pos int) int {
	pos += 2
	for pos < len(s) {
		if s[pos] == '*' && peekByte(s, pos+1) == '/' {
			return pos + 2
		}
		pos++
	}
	return pos
}

// scanString consumes a quoted literal. A doubled quote is an escape and
// stays inside the literal; an unterminated literal runs to end of input.
func scanString(s string, pos int, quote byte) int {
	pos++
	for pos < len(s) {
		if s[pos] == quote {
			if peekByte(s, pos+1) == quote {
				pos += 2
				continue
			}
			return pos + 1
		}
		pos++
	}
	return pos
}

// scanNumber consumes an integer or decimal literal (digits, at most one dot).
func scanNumber(s string, pos int) int {
	sawDot := false
	for pos < len(s) {
		c := s[pos]
		if c >= '0' && c <= '9' {
			pos++
			continue
		}
		if c == '.' && !sawDot && pos+1 < len(s) && s[pos+1] >= '0' && s[pos+1] <= '9' {
			sawDot = true
			pos++
			continue
		}
		break
	}
	return pos
}

func scanWord(s string, pos int) int {
	return scanWhile(s, pos, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	})
}
