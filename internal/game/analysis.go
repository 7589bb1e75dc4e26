package game

// Scores counts the squares each player owns. Both players are always present.
func (s State) Scores() map[Player]int {
	out := map[Player]int{PlayerOne: 0, PlayerTwo: 0}
	for _, sq := range s.squares {
		if p, ok := sq.Player(); ok {
			out[p]++
		}
	}
	return out
}

// OpenWalls lists every unclaimed wall in row-major order.
func (s State) OpenWalls() []Wall {
	var out []Wall
	for row, cells := range s.walls {
		for cell, claimed := range cells {
			if !claimed {
				out = append(out, Wall{Row: row, Cell: cell})
			}
		}
	}
	return out
}

// Completes returns the indexes of the squares the current player would win by
// claiming (row, cell). It returns nil for walls that cannot be claimed.
func (s State) Completes(row, cell int) []int {
	if s.Finished() || cell < 0 || cell >= s.RowWidth(row) || s.walls[row][cell] {
		return nil
	}

	var out []int
	for _, idx := range adjacentSquares(s.width, s.height, row, cell) {
		if s.squares[idx].IsOwned() {
			continue
		}
		r, c := idx/s.width, idx%s.width
		missing := 0
		for _, w := range squareWalls(r, c) {
			if !s.walls[w.Row][w.Cell] {
				missing++
			}
		}
		// the only missing wall is the one being claimed
		if missing == 1 {
			out = append(out, idx)
		}
	}
	return out
}

// squareWalls returns the top, left, right and bottom walls of square (r, c).
func squareWalls(r, c int) [4]Wall {
	return [4]Wall{
		{Row: 2 * r, Cell: c},
		{Row: 2*r + 1, Cell: c},
		{Row: 2*r + 1, Cell: c + 1},
		{Row: 2*r + 2, Cell: c},
	}
}
