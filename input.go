package main

import (
	"time"

	"golang.org/x/sys/unix"
)

type command uint8

const (
	cmdNone command = iota
	cmdTurn
	cmdQuit
)

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// turnFor maps a movement key to its direction.
func turnFor(b byte) (Direction, bool) {
	switch b {
	case 'w', 'W':
		return Up, true
	case 's', 'S':
		return Down, true
	case 'a', 'A':
		return Left, true
	case 'd', 'D':
		return Right, true
	}
	return 0, false
}

// arrowFor maps the final byte of an ESC [ X arrow sequence.
func arrowFor(b byte) (Direction, bool) {
	switch b {
	case 'A':
		return Up, true
	case 'B':
		return Down, true
	case 'C':
		return Right, true
	case 'D':
		return Left, true
	}
	return 0, false
}

// applyTurn filters out reversals: a turn straight back into the body
// is dropped rather than letting the snake fold onto itself.
func applyTurn(cur, d Direction) (command, Direction) {
	if d == cur.opposite() {
		return cmdNone, cur
	}
	return cmdTurn, d
}

// reader samples the keyboard without ever blocking past its timeout
// budget. The fd is the tty in raw mode.
type reader struct {
	fd int
}

// poll waits until the fd is readable or the timeout elapses.
func (r *reader) poll(timeout time.Duration) (bool, error) {
	for {
		fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(timeout.Milliseconds()))
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return false, err
		}
		return n > 0, nil
	}
}

func (r *reader) readByte() (byte, bool, error) {
	var buf [1]byte
	for {
		n, err := unix.Read(r.fd, buf[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, false, err
		}
		if n == 0 {
			return 0, false, nil
		}
		return buf[0], true, nil
	}
}

// readCommand waits up to timeout for one logical keystroke and maps
// it to a command. No key within the timeout is the normal case and
// yields cmdNone; so does any unrecognized byte. Raw mode delivers
// Ctrl-C in-band, so it quits like q.
func (r *reader) readCommand(cur Direction, timeout time.Duration) (command, Direction, error) {
	ready, err := r.poll(timeout)
	if err != nil || !ready {
		return cmdNone, cur, err
	}
	b, ok, err := r.readByte()
	if err != nil || !ok {
		return cmdNone, cur, err
	}
	switch {
	case b == 'q' || b == 'Q' || b == keyCtrlC:
		return cmdQuit, cur, nil
	case b == keyEsc:
		return r.readEscape(cur)
	default:
		if d, ok := turnFor(b); ok {
			cmd, nd := applyTurn(cur, d)
			return cmd, nd, nil
		}
		return cmdNone, cur, nil
	}
}

// readEscape assembles the tail of a 3-byte arrow sequence,
// best-effort. An arrow key usually arrives as one burst, so the
// remaining bytes are either already buffered or land within escWait;
// if not, the partial sequence is dropped and the tick proceeds.
func (r *reader) readEscape(cur Direction) (command, Direction, error) {
	for i := 0; i < 2; i++ {
		ready, err := r.poll(escWait)
		if err != nil {
			return cmdNone, cur, err
		}
		if !ready {
			return cmdNone, cur, nil
		}
		b, ok, err := r.readByte()
		if err != nil || !ok {
			return cmdNone, cur, err
		}
		if i == 0 {
			if b != '[' {
				return cmdNone, cur, nil
			}
			continue
		}
		if d, ok := arrowFor(b); ok {
			cmd, nd := applyTurn(cur, d)
			return cmd, nd, nil
		}
	}
	return cmdNone, cur, nil
}
