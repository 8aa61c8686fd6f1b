package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

// overPause is how long the final screen stays up before the terminal
// is handed back.
const overPause = 1500 * time.Millisecond

func main() {
	if err := play(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play() error {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := newTerminal(f)
	if err != nil {
		return err
	}
	if err := t.setup(); err != nil {
		return err
	}
	defer t.restore()

	// Raw mode turns Ctrl-C into an in-band byte the reader handles;
	// this covers the out-of-band terminations.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigCh
		t.restore()
		os.Exit(0)
	}()

	g := newGame(rand.New(rand.NewSource(time.Now().UnixNano())))
	r := &reader{fd: int(f.Fd())}

	if err := t.drawFrame(renderFrame(g, defaultGlyphs)); err != nil {
		return err
	}
	if err := run(t, r, g); err != nil {
		return err
	}
	return gameOver(t, g)
}

// gameOver centers the final message over the grid and holds it
// briefly so the player sees their score before the screen is cleared.
func gameOver(t *Terminal, g *Game) error {
	over := "GAME OVER!"
	score := "Final Score: " + strconv.Itoa(g.score)
	if err := t.print((g.w-len(over))/2, g.h/2-1, over); err != nil {
		return err
	}
	if err := t.print((g.w-len(score))/2, g.h/2+1, score); err != nil {
		return err
	}
	time.Sleep(overPause)
	return nil
}
