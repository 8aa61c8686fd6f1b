package main

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"golang.org/x/crypto/ssh/terminal"
)

// CSI is "\x1b["

// Terminal owns the tty for the life of the process: the saved termios
// state and a buffered ANSI writer. Escape codes accumulate in buf and
// go out in one write per flush, so a frame is never torn across
// partial paints.
type Terminal struct {
	f        *os.File
	buf      []byte
	oldState *terminal.State
	restored sync.Once
}

func newTerminal(f *os.File) (*Terminal, error) {
	if !terminal.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("%s is not a terminal", f.Name())
	}
	return &Terminal{f: f}, nil
}

// setup puts the tty into raw no-echo mode, clears the screen and
// hides the cursor. Every setup must be paired with restore on every
// exit path.
func (t *Terminal) setup() error {
	old, err := terminal.MakeRaw(int(t.f.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = old
	t.buf = append(t.buf, "\x1b[2J\x1b[H\x1b[?25l"...)
	return t.flush()
}

// restore reverses setup: reset attributes, clear, show the cursor,
// leave raw mode. Only the first call acts, so the signal path and the
// normal return path cannot double-restore. Each step is attempted
// even if an earlier one failed; leaving the user's terminal raw is
// the worst outcome.
func (t *Terminal) restore() {
	t.restored.Do(func() {
		t.buf = append(t.buf, "\x1b[0m\x1b[2J\x1b[H\x1b[?25h"...)
		t.flush()
		if t.oldState != nil {
			terminal.Restore(int(t.f.Fd()), t.oldState)
		}
	})
}

func (t *Terminal) moveCursor(x, y int) {
	t.buf = append(t.buf, "\x1b["...)
	t.buf = strconv.AppendInt(t.buf, int64(y)+1, 10)
	t.buf = append(t.buf, ';')
	t.buf = strconv.AppendInt(t.buf, int64(x)+1, 10)
	t.buf = append(t.buf, 'H')
}

// drawFrame repaints the whole board: cursor to origin, then the full
// frame. No diffing; boards are small and the tick rate is low.
func (t *Terminal) drawFrame(frame []byte) error {
	t.buf = append(t.buf, "\x1b[H"...)
	t.buf = append(t.buf, frame...)
	return t.flush()
}

// print places text at a grid position, for overlays drawn outside the
// regular frame path.
func (t *Terminal) print(x, y int, text string) error {
	t.moveCursor(x, y)
	t.buf = append(t.buf, text...)
	return t.flush()
}

func (t *Terminal) flush() error {
	n, err := t.f.Write(t.buf)
	if n == len(t.buf) {
		t.buf = t.buf[:0]
	} else {
		copy(t.buf, t.buf[n:])
		t.buf = t.buf[:len(t.buf)-n]
	}
	return err
}
