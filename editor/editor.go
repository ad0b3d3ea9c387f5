// Package editor implements the multi-line query editor: a rune buffer with
// cursor and key dispatch, independent of any terminal library. The tcell
// front-end in screen.go translates terminal events into KeyEvents and
// renders the buffer with live highlighting.
package editor

import (
	"strings"
	"unicode"
)

// Key identifies a logical key for the dispatch table.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyCtrlC
	KeyCtrlD
)

// Mod is a set of modifier flags.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent is one key press as produced by the terminal layer.
type KeyEvent struct {
	Key  Key
	Rune rune // set when Key == KeyRune
	Mod  Mod
}

// Result is the terminal outcome of one editor invocation.
type Result struct {
	Text      string
	Cancelled bool
}

type mode int

const (
	modeEditing mode = iota
	modeFinished
)

// Buffer holds the text being edited plus the cursor. One Buffer serves
// exactly one submit-or-cancel cycle; retries get a fresh Buffer seeded with
// the previous text.
type Buffer struct {
	text   []rune
	cursor int
	dirty  bool
	mode   mode
	result Result
}

// NewBuffer creates an editing buffer seeded with text, cursor at the end.
func NewBuffer(seed string) *Buffer {
	runes := []rune(seed)
	return &Buffer{text: runes, cursor: len(runes), dirty: true}
}

// String returns the current buffer contents.
func (b *Buffer) String() string { return string(b.text) }

// Cursor returns the cursor offset in runes, always within [0, length].
func (b *Buffer) Cursor() int { return b.cursor }

// Finished reports whether a submit or cancel has occurred.
func (b *Buffer) Finished() bool { return b.mode == modeFinished }

// Result returns the outcome; only meaningful once Finished is true.
func (b *Buffer) Result() Result { return b.result }

// TakeDirty reports whether the text changed since the last call and resets
// the flag. The render loop uses it to know when to re-highlight.
func (b *Buffer) TakeDirty() bool {
	d := b.dirty
	b.dirty = false
	return d
}

// Handle applies one key event. Unknown keys and events after finishing are
// ignored; the buffer never errors.
func (b *Buffer) Handle(ev KeyEvent) {
	if b.mode == modeFinished {
		return
	}
	switch ev.Key {
	case KeyRune:
		if ev.Mod&(ModCtrl|ModAlt) == 0 && unicode.IsPrint(ev.Rune) {
			b.insert(ev.Rune)
		}
	case KeyEnter:
		if ev.Mod&ModAlt != 0 {
			b.submit()
		} else if ev.Mod == 0 {
			b.insert('\n')
		}
	case KeyCtrlD:
		// Submits whenever the buffer holds non-whitespace anywhere, so a
		// draft ending in spaces or newlines still runs; a blank buffer is
		// a no-op rather than an accidental empty query.
		if strings.TrimSpace(string(b.text)) != "" {
			b.submit()
		}
	case KeyCtrlC:
		b.mode = modeFinished
		b.result = Result{Cancelled: true}
	case KeyBackspace:
		if b.cursor > 0 {
			b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
			b.cursor--
			b.dirty = true
		}
	case KeyDelete:
		if b.cursor < len(b.text) {
			b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
			b.dirty = true
		}
	case KeyLeft:
		if b.cursor > 0 {
			b.cursor--
		}
	case KeyRight:
		if b.cursor < len(b.text) {
			b.cursor++
		}
	case KeyUp:
		b.moveVertical(-1)
	case KeyDown:
		b.moveVertical(1)
	case KeyHome:
		b.cursor = b.lineStart(b.cursor)
	case KeyEnd:
		b.cursor = b.lineEnd(b.cursor)
	}
}

func (b *Buffer) insert(r rune) {
	b.text = append(b.text[:b.cursor], append([]rune{r}, b.text[b.cursor:]...)...)
	b.cursor++
	b.dirty = true
}

func (b *Buffer) submit() {
	b.mode = modeFinished
	b.result = Result{Text: string(b.text)}
}

// lineStart returns the offset just after the previous newline.
func (b *Buffer) lineStart(pos int) int {
	for pos > 0 && b.text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the next newline (or end of buffer).
func (b *Buffer) lineEnd(pos int) int {
	for pos < len(b.text) && b.text[pos] != '\n' {
		pos++
	}
	return pos
}

// moveVertical moves the cursor one line up or down, keeping the column when
// the target line is long enough.
func (b *Buffer) moveVertical(dir int) {
	start := b.lineStart(b.cursor)
	col := b.cursor - start
	if dir < 0 {
		if start == 0 {
			return
		}
		prevStart := b.lineStart(start - 1)
		b.cursor = min(prevStart+col, start-1)
		return
	}
	end := b.lineEnd(b.cursor)
	if end == len(b.text) {
		return
	}
	nextStart := end + 1
	b.cursor = min(nextStart+col, b.lineEnd(nextStart))
}

// Lines splits the buffer for rendering. An empty buffer is one empty line.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.text), "\n")
}

// CursorLineCol converts the cursor offset to a line/column pair in runes.
func (b *Buffer) CursorLineCol() (line, col int) {
	for i := 0; i < b.cursor; i++ {
		if b.text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}
