package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bawdo/sqldrill/highlight"
	"github.com/bawdo/sqldrill/lex"
)

// Theme maps token kinds to display styles for the editor surface.
type Theme map[lex.Kind]tcell.Style

// DefaultTheme is the stock editor color scheme.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		lex.Keyword:    base.Foreground(tcell.ColorAqua).Bold(true),
		lex.String:     base.Foreground(tcell.ColorGreen),
		lex.Number:     base.Foreground(tcell.ColorFuchsia),
		lex.Identifier: base,
		lex.Operator:   base.Foreground(tcell.ColorYellow),
		lex.Comment:    base.Foreground(tcell.ColorGray),
		lex.Whitespace: base,
		lex.Other:      base.Foreground(tcell.ColorRed),
	}
}

func (t Theme) style(k lex.Kind) tcell.Style {
	if s, ok := t[k]; ok {
		return s
	}
	return tcell.StyleDefault
}

const statusText = "Alt+Enter or Ctrl+D: run query   Ctrl+C: cancel   (hint / schema / quit also work)"

// Screen drives one editing cycle on a real terminal. It owns the terminal
// for the duration of Compose and restores it before returning.
type Screen struct {
	theme Theme

	// newScreen is swappable so tests can substitute a simulation screen.
	newScreen func() (tcell.Screen, error)
}

// NewScreen creates a terminal editor front-end with the given theme
// (nil means DefaultTheme).
func NewScreen(theme Theme) *Screen {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Screen{
		theme:     theme,
		newScreen: func() (tcell.Screen, error) { return tcell.NewScreen() },
	}
}

// Compose runs one submit-or-cancel editing cycle. header lines are shown
// above the buffer (the exercise prompt); seed pre-fills the buffer, which
// is how a failed attempt comes back for correction.
func (s *Screen) Compose(header []string, seed string) (Result, error) {
	scr, err := s.newScreen()
	if err != nil {
		return Result{}, fmt.Errorf("editor: open screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return Result{}, fmt.Errorf("editor: init screen: %w", err)
	}
	defer scr.Fini()

	buf := NewBuffer(seed)
	var spans []highlight.Span[tcell.Style]
	for {
		// Re-derive highlighting whenever the text changed, before drawing,
		// so the visual state never lags the logical buffer.
		if buf.TakeDirty() {
			spans = highlight.Spans(buf.String(), s.theme.style)
		}
		s.draw(scr, header, buf, spans)

		switch ev := scr.PollEvent().(type) {
		case *tcell.EventResize:
			scr.Sync()
		case *tcell.EventKey:
			buf.Handle(translateKey(ev))
			if buf.Finished() {
				return buf.Result(), nil
			}
		}
	}
}

// translateKey converts a tcell key event into the editor's KeyEvent.
func translateKey(ev *tcell.EventKey) KeyEvent {
	var mod Mod
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= ModShift
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod}
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace, Mod: mod}
	case tcell.KeyDelete:
		return KeyEvent{Key: KeyDelete, Mod: mod}
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight, Mod: mod}
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp, Mod: mod}
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown, Mod: mod}
	case tcell.KeyHome, tcell.KeyCtrlA:
		return KeyEvent{Key: KeyHome, Mod: mod}
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return KeyEvent{Key: KeyEnd, Mod: mod}
	case tcell.KeyCtrlC:
		return KeyEvent{Key: KeyCtrlC, Mod: ModCtrl}
	case tcell.KeyCtrlD:
		return KeyEvent{Key: KeyCtrlD, Mod: ModCtrl}
	}
	// Anything else reaches the buffer as a rune event with no printable
	// rune, which the dispatch table ignores.
	return KeyEvent{Key: KeyRune, Mod: mod}
}

func (s *Screen) draw(scr tcell.Screen, header []string, buf *Buffer, spans []highlight.Span[tcell.Style]) {
	scr.Clear()
	width, height := scr.Size()

	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for y, line := range header {
		if y >= height-2 {
			break
		}
		drawString(scr, 0, y, width, line, headerStyle)
	}

	top := len(header) + 1
	text := buf.String()
	cursorLine, cursorCol := buf.CursorLineCol()

	// Scroll offsets keep the cursor cell on screen in both axes.
	visible := height - top - 1
	if visible < 1 {
		visible = 1
	}
	scroll := 0
	if cursorLine >= visible {
		scroll = cursorLine - visible + 1
	}
	hscroll := 0
	if width > 0 && cursorCol >= width {
		hscroll = cursorCol - width + 1
	}

	x, line := 0, 0
	for _, span := range spans {
		for _, r := range text[span.Token.Start:span.Token.End] {
			if r == '\n' {
				line++
				x = 0
				continue
			}
			y := top + line - scroll
			cx := x - hscroll
			if line >= scroll && y < height-1 && cx >= 0 && cx < width {
				scr.SetContent(cx, y, r, nil, span.Attr)
			}
			x++
		}
	}

	drawString(scr, 0, height-1, width, statusText, tcell.StyleDefault.Reverse(true))
	scr.ShowCursor(cursorCol-hscroll, top+cursorLine-scroll)
	scr.Show()
}

func drawString(scr tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxWidth {
			return
		}
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}
