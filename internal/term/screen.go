// Package term provides a display sink that repaints a terminal in place.
package term

import (
	"fmt"
	"io"
)

const (
	cursorHome  = "\x1b[H"
	clearBelow  = "\x1b[J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
)

// Screen writes each snapshot over the previous one using ANSI cursor
// control, so successive frames repaint in place instead of scrolling.
// With Plain set it appends snapshots sequentially, which suits pipes
// and log files.
type Screen struct {
	w     io.Writer
	Plain bool
}

// NewScreen returns a Screen writing to w.
func NewScreen(w io.Writer) *Screen {
	return &Screen{w: w}
}

// Open clears the terminal and hides the cursor. No-op in plain mode.
func (s *Screen) Open() error {
	if s.Plain {
		return nil
	}
	_, err := io.WriteString(s.w, hideCursor+clearScreen)
	return err
}

// Close restores the cursor. No-op in plain mode.
func (s *Screen) Close() error {
	if s.Plain {
		return nil
	}
	_, err := io.WriteString(s.w, showCursor)
	return err
}

// Replace fully overwrites the displayed content with snapshot.
func (s *Screen) Replace(snapshot string) error {
	if s.Plain {
		_, err := fmt.Fprintln(s.w, snapshot)
		return err
	}
	_, err := io.WriteString(s.w, cursorHome+snapshot+clearBelow)
	return err
}
