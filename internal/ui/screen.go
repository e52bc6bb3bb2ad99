// Package ui draws roomcrawl frames on a tcell terminal.
package ui

import "github.com/gdamore/tcell/v2"

var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the terminal the game draws on. Drawing happens inside Paint so a
// frame is always cleared before and flushed after.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(term)
}

// NewScreenFrom takes over term, e.g. a simulation screen in tests. Mouse
// reporting is enabled for click targeting.
func NewScreenFrom(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(baseStyle)
	term.EnableMouse()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.term.Fini()
}

// PollEvent blocks until the next key, mouse or resize event.
func (s *Screen) PollEvent() tcell.Event {
	return s.term.PollEvent()
}

// Sync repaints every cell, used after the terminal is resized.
func (s *Screen) Sync() {
	s.term.Sync()
}

// Paint clears the buffer, runs draw and shows the result.
func (s *Screen) Paint(draw func()) {
	s.term.Clear()
	draw()
	s.term.Show()
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (width, height int) {
	return s.term.Size()
}

// SetContent puts one glyph at (x, y).
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

// DrawText writes text from (x, y) rightwards, stopping at the right edge.
// It returns the column after the last glyph written.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	width, _ := s.Size()
	for _, ch := range text {
		if x >= width {
			break
		}
		s.SetContent(x, y, ch, style)
		x++
	}
	return x
}
