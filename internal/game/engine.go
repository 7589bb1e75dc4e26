package game

import "fmt"

// NewGame returns the opening state of a width x height board: every wall
// unclaimed, every square unowned and PlayerOne to move.
func NewGame(width, height int) (State, error) {
	if width < 1 || height < 1 {
		return State{}, fmt.Errorf("new game %dx%d: %w", width, height, ErrInvalidConfiguration)
	}

	walls := make([][]bool, 2*height+1)
	for row := range walls {
		n := width
		if row%2 == 1 {
			n = width + 1
		}
		walls[row] = make([]bool, n)
	}

	return State{
		width:   width,
		height:  height,
		walls:   walls,
		squares: make([]Owner, width*height),
		current: PlayerOne,
	}, nil
}

// ApplyMove claims the wall at (row, cell) for the current player and returns
// the resulting state. Squares closed by the claim go to the mover, who then
// moves again; otherwise the turn passes. s itself is never modified.
func ApplyMove(s State, row, cell int) (State, error) {
	if s.Finished() {
		return s, fmt.Errorf("claim wall (%d,%d): %w", row, cell, ErrGameOver)
	}
	if cell < 0 || cell >= s.RowWidth(row) {
		return s, fmt.Errorf("claim wall (%d,%d): %w", row, cell, ErrInvalidCoordinate)
	}
	if s.walls[row][cell] {
		return s, fmt.Errorf("claim wall (%d,%d): %w", row, cell, ErrAlreadyClaimed)
	}

	next := s
	next.walls = claimWall(s.walls, row, cell)
	next.moves = s.moves + 1

	var taken bool
	next.squares, taken = updateSquares(s, next.walls, row, cell)

	if !taken {
		next.current = s.current.Other()
	}
	return next, nil
}

// claimWall copies the outer slice and the touched row only. Untouched rows
// are shared with the previous snapshot, which is safe since no State ever
// writes to its rows after construction.
func claimWall(walls [][]bool, row, cell int) [][]bool {
	out := make([][]bool, len(walls))
	copy(out, walls)
	out[row] = append([]bool(nil), walls[row]...)
	out[row][cell] = true
	return out
}

// updateSquares awards every square bordering the claimed wall that is now
// closed. Only those (at most two) squares can change, so checking them is
// equivalent to rescanning the whole board.
func updateSquares(s State, walls [][]bool, row, cell int) ([]Owner, bool) {
	squares := append([]Owner(nil), s.squares...)
	taken := false
	for _, idx := range adjacentSquares(s.width, s.height, row, cell) {
		if squares[idx].IsOwned() {
			continue
		}
		if isClosed(walls, idx/s.width, idx%s.width) {
			squares[idx] = OwnedBy(s.current)
			taken = true
		}
	}
	return squares, taken
}

// adjacentSquares returns the indexes of the squares bounded by the wall at
// (row, cell), in row-major order.
func adjacentSquares(width, height, row, cell int) []int {
	var out []int
	if row%2 == 0 {
		// horizontal wall: bottom of the square above, top of the square below
		if r := row/2 - 1; r >= 0 {
			out = append(out, r*width+cell)
		}
		if r := row / 2; r < height {
			out = append(out, r*width+cell)
		}
		return out
	}
	// vertical wall: right of the square to the left, left of the square to the right
	r := (row - 1) / 2
	if cell-1 >= 0 {
		out = append(out, r*width+cell-1)
	}
	if cell < width {
		out = append(out, r*width+cell)
	}
	return out
}

func isClosed(walls [][]bool, r, c int) bool {
	for _, w := range squareWalls(r, c) {
		if !walls[w.Row][w.Cell] {
			return false
		}
	}
	return true
}
