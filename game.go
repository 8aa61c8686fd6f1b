package main

import "math/rand"

const (
	gridWidth  = 30
	gridHeight = 20
	initialLen = 3
)

// Cell is a grid coordinate. x grows rightward, y grows downward, both
// 0-indexed. The border rows and columns are wall; a live snake and the
// food only ever occupy the interior.
type Cell struct {
	X, Y int
}

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

type Status uint8

const (
	Running Status = iota
	Over
)

// segring is a ring-buffer deque of snake segments, ordered head to
// tail. Pushing a head and dropping the tail are both O(1), so a move
// never reshuffles the body.
type segring struct {
	cells []Cell
	head  int
	n     int
}

func newSegring(capacity int) *segring {
	if capacity < 1 {
		capacity = 1
	}
	return &segring{cells: make([]Cell, capacity)}
}

func (r *segring) len() int {
	return r.n
}

// at returns the i-th segment counting from the head.
func (r *segring) at(i int) Cell {
	return r.cells[(r.head+i)%len(r.cells)]
}

func (r *segring) pushFront(c Cell) {
	if r.n == len(r.cells) {
		r.grow()
	}
	r.head = (r.head - 1 + len(r.cells)) % len(r.cells)
	r.cells[r.head] = c
	r.n++
}

func (r *segring) pushBack(c Cell) {
	if r.n == len(r.cells) {
		r.grow()
	}
	r.cells[(r.head+r.n)%len(r.cells)] = c
	r.n++
}

func (r *segring) popBack() Cell {
	r.n--
	return r.cells[(r.head+r.n)%len(r.cells)]
}

func (r *segring) contains(c Cell) bool {
	for i := 0; i < r.n; i++ {
		if r.at(i) == c {
			return true
		}
	}
	return false
}

func (r *segring) grow() {
	cells := make([]Cell, 2*len(r.cells))
	for i := 0; i < r.n; i++ {
		cells[i] = r.at(i)
	}
	r.cells = cells
	r.head = 0
}

// Game is the whole mutable state of one session. The loop owns it;
// everything else receives it by reference for the duration of a tick.
type Game struct {
	w, h   int
	snake  *segring
	food   Cell
	score  int
	dir    Direction
	status Status
	rng    *rand.Rand
}

// newGame builds the starting state: a three-segment snake at the
// center of the grid extending leftward, heading right, with food
// already on the board.
func newGame(rng *rand.Rand) *Game {
	return newGameSize(gridWidth, gridHeight, rng)
}

func newGameSize(w, h int, rng *rand.Rand) *Game {
	g := &Game{
		w:     w,
		h:     h,
		snake: newSegring((w - 2) * (h - 2)),
		dir:   Right,
		rng:   rng,
	}
	cx, cy := w/2, h/2
	for i := 0; i < initialLen; i++ {
		g.snake.pushBack(Cell{cx - i, cy})
	}
	g.spawnFood()
	return g
}

// spawnFood places food on a uniformly random free interior cell. The
// retry cap is unreachable while the wall rules hold (the snake dies
// before it can fill the interior); hitting it means the state is
// corrupt and there is nothing sane to continue with.
func (g *Game) spawnFood() {
	maxTries := 64 * (g.w - 2) * (g.h - 2)
	for try := 0; try < maxTries; try++ {
		c := Cell{
			X: 1 + g.rng.Intn(g.w-2),
			Y: 1 + g.rng.Intn(g.h-2),
		}
		if !g.snake.contains(c) {
			g.food = c
			return
		}
	}
	panic("spawnFood: no free interior cell")
}

// tick advances the simulation one step: move the head one cell in the
// current direction, ending the game on any wall or body contact,
// growing by one on food.
func (g *Game) tick() {
	if g.status != Running {
		return
	}
	dx, dy := g.dir.delta()
	head := g.snake.at(0)
	newHead := Cell{head.X + dx, head.Y + dy}

	if newHead.X == 0 || newHead.X == g.w-1 || newHead.Y == 0 || newHead.Y == g.h-1 {
		g.status = Over
		return
	}
	// Checked against the pre-move body, tail included: sliding into
	// the cell the tail is about to vacate still ends the game.
	if g.snake.contains(newHead) {
		g.status = Over
		return
	}

	if newHead == g.food {
		g.score++
		g.snake.pushFront(newHead)
		g.spawnFood()
		return
	}
	g.snake.popBack()
	g.snake.pushFront(newHead)
}
