// Package sqldrill is an interactive terminal SQL trainer.
//
// This package re-exports the commonly used types from subpackages for
// convenience. The subpackages can also be imported directly:
//   - github.com/bawdo/sqldrill/lex (SQL tokenizer)
//   - github.com/bawdo/sqldrill/highlight (token-to-attribute mapping)
//   - github.com/bawdo/sqldrill/editor (multi-line editor)
//   - github.com/bawdo/sqldrill/exercise (exercise records and catalog)
//   - github.com/bawdo/sqldrill/trainer (session state machine)
package sqldrill

import (
	"github.com/bawdo/sqldrill/editor"
	"github.com/bawdo/sqldrill/exercise"
	"github.com/bawdo/sqldrill/lex"
	"github.com/bawdo/sqldrill/trainer"
)

// Token is a classified span of SQL text.
type Token = lex.Token

// Tokenize splits SQL text into classified spans.
func Tokenize(text string) []Token { return lex.Tokenize(text) }

// Exercise is one practice exercise record.
type Exercise = exercise.Record

// Catalog returns the built-in exercise set.
func Catalog() []Exercise { return exercise.Catalog() }

// Buffer is the multi-line editor's text buffer.
type Buffer = editor.Buffer

// Machine is the exercise session state machine.
type Machine = trainer.Machine
