package main

import "strconv"

// glyphs is the character set a frame is painted with. Single-width
// ASCII only; the frame format promises one column per cell.
type glyphs struct {
	wall  byte
	body  byte
	food  byte
	empty byte
}

var defaultGlyphs = glyphs{wall: '#', body: 'o', food: '*', empty: ' '}

// renderFrame builds the complete text frame for one state: top wall
// row, interior rows bracketed by wall columns, bottom wall row, score
// line. Pure function of the game state; calling it twice on the same
// state yields the same bytes. Lines end in \r\n since raw mode
// disables output post-processing.
func renderFrame(g *Game, gl glyphs) []byte {
	occupied := make(map[Cell]struct{}, g.snake.len())
	for i := 0; i < g.snake.len(); i++ {
		occupied[g.snake.at(i)] = struct{}{}
	}

	buf := make([]byte, 0, (g.w+2)*(g.h+1))
	for x := 0; x < g.w; x++ {
		buf = append(buf, gl.wall)
	}
	buf = append(buf, '\r', '\n')
	for y := 1; y <= g.h-2; y++ {
		buf = append(buf, gl.wall)
		for x := 1; x <= g.w-2; x++ {
			c := Cell{x, y}
			switch {
			case cellIn(occupied, c):
				buf = append(buf, gl.body)
			case c == g.food:
				buf = append(buf, gl.food)
			default:
				buf = append(buf, gl.empty)
			}
		}
		buf = append(buf, gl.wall, '\r', '\n')
	}
	for x := 0; x < g.w; x++ {
		buf = append(buf, gl.wall)
	}
	buf = append(buf, '\r', '\n')
	buf = append(buf, "Score: "...)
	buf = strconv.AppendInt(buf, int64(g.score), 10)
	buf = append(buf, '\r', '\n')
	return buf
}

func cellIn(set map[Cell]struct{}, c Cell) bool {
	_, ok := set[c]
	return ok
}
