package main

import (
	"os"
	"testing"
	"time"
)

func TestTurnFor(t *testing.T) {
	cases := []struct {
		b    byte
		dir  Direction
		want bool
	}{
		{'w', Up, true}, {'W', Up, true},
		{'s', Down, true}, {'S', Down, true},
		{'a', Left, true}, {'A', Left, true},
		{'d', Right, true}, {'D', Right, true},
		{'x', 0, false}, {' ', 0, false}, {'q', 0, false},
	}
	for _, tc := range cases {
		d, ok := turnFor(tc.b)
		if ok != tc.want {
			t.Errorf("Expected turnFor(%q) ok=%v, got %v", tc.b, tc.want, ok)
		}
		if ok && d != tc.dir {
			t.Errorf("Expected turnFor(%q) = %v, got %v", tc.b, tc.dir, d)
		}
	}
}

func TestArrowFor(t *testing.T) {
	cases := []struct {
		b    byte
		dir  Direction
		want bool
	}{
		{'A', Up, true},
		{'B', Down, true},
		{'C', Right, true},
		{'D', Left, true},
		{'E', 0, false}, {'a', 0, false},
	}
	for _, tc := range cases {
		d, ok := arrowFor(tc.b)
		if ok != tc.want {
			t.Errorf("Expected arrowFor(%q) ok=%v, got %v", tc.b, tc.want, ok)
		}
		if ok && d != tc.dir {
			t.Errorf("Expected arrowFor(%q) = %v, got %v", tc.b, tc.dir, d)
		}
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		Up: Down, Down: Up, Left: Right, Right: Left,
	}
	for d, want := range pairs {
		if got := d.opposite(); got != want {
			t.Errorf("Expected opposite of %v to be %v, got %v", d, want, got)
		}
	}
}

// Reversal law: a turn straight back is always dropped, for every
// current direction; any other turn goes through.
func TestApplyTurn(t *testing.T) {
	for _, cur := range []Direction{Up, Down, Left, Right} {
		cmd, d := applyTurn(cur, cur.opposite())
		if cmd != cmdNone || d != cur {
			t.Errorf("Expected reversal from %v to be dropped, got cmd=%v dir=%v", cur, cmd, d)
		}
		cmd, d = applyTurn(cur, cur)
		if cmd != cmdTurn || d != cur {
			t.Errorf("Expected same-direction turn from %v to pass, got cmd=%v", cur, cmd)
		}
	}
	if cmd, d := applyTurn(Right, Up); cmd != cmdTurn || d != Up {
		t.Errorf("Expected perpendicular turn to pass, got cmd=%v dir=%v", cmd, d)
	}
}

func newPipeReader(t *testing.T) (*reader, *os.File) {
	t.Helper()
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		pr.Close()
		pw.Close()
	})
	return &reader{fd: int(pr.Fd())}, pw
}

func TestReadCommand(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		cur     Direction
		wantCmd command
		wantDir Direction
	}{
		{"quit lower", "q", Right, cmdQuit, Right},
		{"quit upper", "Q", Right, cmdQuit, Right},
		{"quit ctrl-c", "\x03", Right, cmdQuit, Right},
		{"wasd turn", "w", Right, cmdTurn, Up},
		{"wasd reversal dropped", "a", Right, cmdNone, Right},
		{"arrow up", "\x1b[A", Right, cmdTurn, Up},
		{"arrow reversal dropped", "\x1b[B", Up, cmdNone, Up},
		{"arrow same direction", "\x1b[C", Right, cmdTurn, Right},
		{"lone escape discarded", "\x1b", Right, cmdNone, Right},
		{"truncated sequence discarded", "\x1b[", Right, cmdNone, Right},
		{"wrong introducer tail", "\x1bx", Right, cmdNone, Right},
		{"unknown final byte", "\x1b[Z", Right, cmdNone, Right},
		{"unrecognized byte", "x", Right, cmdNone, Right},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, pw := newPipeReader(t)
			if _, err := pw.WriteString(tc.input); err != nil {
				t.Fatalf("write: %v", err)
			}
			cmd, dir, err := r.readCommand(tc.cur, 100*time.Millisecond)
			if err != nil {
				t.Fatalf("readCommand: %v", err)
			}
			if cmd != tc.wantCmd {
				t.Errorf("Expected cmd %v, got %v", tc.wantCmd, cmd)
			}
			if dir != tc.wantDir {
				t.Errorf("Expected direction %v, got %v", tc.wantDir, dir)
			}
		})
	}
}

func TestReadCommandTimeout(t *testing.T) {
	r, _ := newPipeReader(t)

	start := time.Now()
	cmd, dir, err := r.readCommand(Right, 30*time.Millisecond)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("readCommand: %v", err)
	}
	if cmd != cmdNone || dir != Right {
		t.Errorf("Expected cmdNone on timeout, got cmd=%v dir=%v", cmd, dir)
	}
	if elapsed < 25*time.Millisecond {
		t.Errorf("Expected the wait to hold for the timeout, returned after %v", elapsed)
	}
	if elapsed > 500*time.Millisecond {
		t.Errorf("Expected the wait to stay bounded, returned after %v", elapsed)
	}
}
