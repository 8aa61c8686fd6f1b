package main

import "time"

const (
	// tickPeriod is the frame cadence. The reader's main wait is
	// bounded by it, so input sampling and the tick rate are the same
	// clock.
	tickPeriod = 120 * time.Millisecond

	// escWait bounds each of the two sub-waits while assembling an
	// arrow-key escape sequence. Long enough for bytes in flight from
	// one burst, far too short to confuse a lone ESC press with a
	// sequence.
	escWait = 10 * time.Millisecond
)

// run drives the game: sample input, advance the simulation, repaint,
// once per tick, until the snake dies or the player quits. Quit
// short-circuits the rest of its tick; a death tick still gets its
// final repaint.
func run(t *Terminal, r *reader, g *Game) error {
	for g.status == Running {
		cmd, dir, err := r.readCommand(g.dir, tickPeriod)
		if err != nil {
			return err
		}
		if cmd == cmdQuit {
			g.status = Over
			break
		}
		if cmd == cmdTurn {
			g.dir = dir
		}
		g.tick()
		if err := t.drawFrame(renderFrame(g, defaultGlyphs)); err != nil {
			return err
		}
	}
	return nil
}
