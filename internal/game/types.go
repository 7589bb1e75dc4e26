package game

import (
	"encoding/json"
	"fmt"
)

// Player identifies one of the two seats at the board.
type Player int8

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player1"
	case PlayerTwo:
		return "Player2"
	}
	return fmt.Sprintf("Player(%d)", int8(p))
}

// Owner is the ownership of a single square. The zero value is unowned.
type Owner struct {
	player Player
	owned  bool
}

// Unowned returns the ownership value of a square nobody has completed yet.
func Unowned() Owner { return Owner{} }

// OwnedBy returns the ownership value for a square completed by p.
func OwnedBy(p Player) Owner { return Owner{player: p, owned: true} }

// Player returns the owning player and whether the square is owned at all.
func (o Owner) Player() (Player, bool) { return o.player, o.owned }

func (o Owner) IsOwned() bool { return o.owned }

func (o Owner) String() string {
	if !o.owned {
		return "unowned"
	}
	return o.player.String()
}

// MarshalJSON encodes an unowned square as null and an owned one as the player number.
func (o Owner) MarshalJSON() ([]byte, error) {
	if !o.owned {
		return []byte("null"), nil
	}
	return json.Marshal(int8(o.player))
}

// Wall addresses one cell of the wall grid.
type Wall struct {
	Row  int `json:"row"`
	Cell int `json:"cell"`
}

// State is an immutable game snapshot. Transitions return a new State and
// never touch the receiver, so a State may be shared freely between goroutines.
type State struct {
	width   int
	height  int
	walls   [][]bool
	squares []Owner
	current Player
	moves   int
}

func (s State) Width() int  { return s.width }
func (s State) Height() int { return s.height }

// CurrentPlayer is the player who makes the next claim.
func (s State) CurrentPlayer() Player { return s.current }

// MoveCount is the number of walls claimed so far.
func (s State) MoveCount() int { return s.moves }

// RowWidth returns the number of wall cells in the given wall row, or 0 when
// the row is outside the grid.
func (s State) RowWidth(row int) int {
	if row < 0 || row > 2*s.height {
		return 0
	}
	if row%2 == 0 {
		return s.width
	}
	return s.width + 1
}

// Wall reports whether the wall at (row, cell) is claimed. Out of range
// coordinates read as unclaimed.
func (s State) Wall(row, cell int) bool {
	if cell < 0 || cell >= s.RowWidth(row) {
		return false
	}
	return s.walls[row][cell]
}

// Walls returns a deep copy of the wall grid.
func (s State) Walls() [][]bool {
	out := make([][]bool, len(s.walls))
	for i, row := range s.walls {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Square returns the owner of the square at row r, column c.
func (s State) Square(r, c int) Owner {
	if r < 0 || r >= s.height || c < 0 || c >= s.width {
		return Unowned()
	}
	return s.squares[r*s.width+c]
}

// Squares returns a copy of the square grid in row-major order.
func (s State) Squares() []Owner {
	return append([]Owner(nil), s.squares...)
}

type stateJSON struct {
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	CurrentPlayer Player   `json:"currentPlayer"`
	Walls         [][]bool `json:"walls"`
	Squares       []Owner  `json:"squares"`
	Moves         int      `json:"moves"`
	Finished      bool     `json:"finished"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		Width:         s.width,
		Height:        s.height,
		CurrentPlayer: s.current,
		Walls:         s.walls,
		Squares:       s.squares,
		Moves:         s.moves,
		Finished:      s.Finished(),
	})
}
