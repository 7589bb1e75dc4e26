package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play applies a sequence of claims and fails the test on the first error.
func play(t *testing.T, s State, walls ...Wall) State {
	t.Helper()
	for i, w := range walls {
		next, err := ApplyMove(s, w.Row, w.Cell)
		require.NoErrorf(t, err, "move %d (%d,%d)", i, w.Row, w.Cell)
		s = next
	}
	return s
}

func newGame(t *testing.T, width, height int) State {
	t.Helper()
	s, err := NewGame(width, height)
	require.NoError(t, err)
	return s
}

func TestNewGameShape(t *testing.T) {
	s := newGame(t, 3, 2)

	walls := s.Walls()
	require.Len(t, walls, 5)
	for row, cells := range walls {
		if row%2 == 0 {
			assert.Lenf(t, cells, 3, "row %d", row)
		} else {
			assert.Lenf(t, cells, 4, "row %d", row)
		}
		for _, claimed := range cells {
			assert.False(t, claimed)
		}
	}

	squares := s.Squares()
	require.Len(t, squares, 6)
	for _, sq := range squares {
		assert.False(t, sq.IsOwned())
	}
	assert.Equal(t, PlayerOne, s.CurrentPlayer())
	assert.Equal(t, 0, s.MoveCount())
	assert.False(t, s.Finished())
}

func TestNewGameInvalidConfiguration(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"negative width", -1, 2},
		{"negative both", -4, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGame(tc.width, tc.height)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestApplyMoveInvalidCoordinate(t *testing.T) {
	s := newGame(t, 2, 2)
	cases := []Wall{
		{Row: -1, Cell: 0},
		{Row: 5, Cell: 0},
		{Row: 0, Cell: -1},
		{Row: 0, Cell: 2}, // horizontal rows have width cells
		{Row: 1, Cell: 3}, // vertical rows have width+1 cells
		{Row: 4, Cell: 2},
	}
	for _, w := range cases {
		next, err := ApplyMove(s, w.Row, w.Cell)
		assert.ErrorIsf(t, err, ErrInvalidCoordinate, "wall %+v", w)
		assert.Equal(t, s, next)
	}

	// the last cell of a vertical row is valid
	_, err := ApplyMove(s, 1, 2)
	assert.NoError(t, err)
}

func TestApplyMoveAlreadyClaimed(t *testing.T) {
	s := play(t, newGame(t, 2, 2), Wall{Row: 0, Cell: 1})
	require.Equal(t, PlayerTwo, s.CurrentPlayer())

	next, err := ApplyMove(s, 0, 1)
	require.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Equal(t, PlayerTwo, next.CurrentPlayer(), "turn must not flip on a rejected claim")
	assert.Equal(t, 1, next.MoveCount())
}

func TestApplyMoveDoesNotMutateInput(t *testing.T) {
	s := newGame(t, 2, 2)
	before := s.Walls()
	beforeSquares := s.Squares()

	next := play(t, s, Wall{Row: 2, Cell: 1})

	assert.Equal(t, before, s.Walls())
	assert.Equal(t, beforeSquares, s.Squares())
	assert.Equal(t, PlayerOne, s.CurrentPlayer())
	assert.True(t, next.Wall(2, 1))
	assert.False(t, s.Wall(2, 1))

	// mutating a returned copy must not leak into the snapshot
	walls := next.Walls()
	walls[0][0] = true
	assert.False(t, next.Wall(0, 0))
}

func TestOneByOneScenario(t *testing.T) {
	s := newGame(t, 1, 1)
	walls := s.Walls()
	require.Len(t, walls, 3)
	assert.Len(t, walls[0], 1)
	assert.Len(t, walls[1], 2)
	assert.Len(t, walls[2], 1)

	steps := []struct {
		wall     Wall
		mover    Player
		next     Player
		finished bool
	}{
		{Wall{0, 0}, PlayerOne, PlayerTwo, false}, // top
		{Wall{1, 0}, PlayerTwo, PlayerOne, false}, // left
		{Wall{1, 1}, PlayerOne, PlayerTwo, false}, // right
		{Wall{2, 0}, PlayerTwo, PlayerTwo, true},  // bottom
	}
	for _, st := range steps {
		require.Equal(t, st.mover, s.CurrentPlayer())
		s = play(t, s, st.wall)
		assert.Equal(t, st.next, s.CurrentPlayer())
		assert.Equal(t, st.finished, s.Finished())
	}

	owner, ok := s.Square(0, 0).Player()
	require.True(t, ok)
	assert.Equal(t, PlayerTwo, owner)

	winner, ok := Winner(s)
	require.True(t, ok)
	assert.Equal(t, PlayerTwo, winner)
}

func permutations(ws []Wall) [][]Wall {
	if len(ws) <= 1 {
		return [][]Wall{append([]Wall(nil), ws...)}
	}
	var out [][]Wall
	for i := range ws {
		rest := make([]Wall, 0, len(ws)-1)
		rest = append(rest, ws[:i]...)
		rest = append(rest, ws[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Wall{ws[i]}, p...))
		}
	}
	return out
}

func TestOneByOneAllOrderings(t *testing.T) {
	all := []Wall{{0, 0}, {1, 0}, {1, 1}, {2, 0}}
	orders := permutations(all)
	require.Len(t, orders, 24)

	for _, order := range orders {
		s := newGame(t, 1, 1)
		for i, w := range order {
			mover := s.CurrentPlayer()
			s = play(t, s, w)
			if i < 3 {
				assert.Falsef(t, s.Square(0, 0).IsOwned(), "order %v: owned after claim %d", order, i)
				assert.Equal(t, mover.Other(), s.CurrentPlayer())
				continue
			}
			owner, ok := s.Square(0, 0).Player()
			require.Truef(t, ok, "order %v: square not owned after last claim", order)
			assert.Equal(t, mover, owner)
			assert.Equal(t, mover, s.CurrentPlayer())
		}
	}
}

func TestSharedWallCompletesTwoSquares(t *testing.T) {
	s := newGame(t, 2, 1)
	// every wall except the shared vertical one at row 1 cell 1
	s = play(t, s,
		Wall{0, 0}, Wall{0, 1},
		Wall{1, 0}, Wall{1, 2},
		Wall{2, 0},
	)
	require.False(t, s.Square(0, 0).IsOwned())
	require.False(t, s.Square(0, 1).IsOwned())

	s = play(t, s, Wall{2, 1})
	mover := s.CurrentPlayer()
	assert.Equal(t, []int{0, 1}, s.Completes(1, 1))

	s = play(t, s, Wall{1, 1})
	for c := 0; c < 2; c++ {
		owner, ok := s.Square(0, c).Player()
		require.True(t, ok)
		assert.Equal(t, mover, owner)
	}
	assert.Equal(t, mover, s.CurrentPlayer())
	assert.Equal(t, 2, s.Scores()[mover])

	winner, ok := Winner(s)
	require.True(t, ok)
	assert.Equal(t, mover, winner)
}

func TestGameOverIsTerminal(t *testing.T) {
	s := play(t, newGame(t, 1, 1), Wall{0, 0}, Wall{1, 0}, Wall{1, 1}, Wall{2, 0})
	require.True(t, s.Finished())

	for _, w := range []Wall{{0, 0}, {1, 1}, {9, 9}} {
		next, err := ApplyMove(s, w.Row, w.Cell)
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, s, next)
	}
}

// fullScan recomputes square ownership from scratch, awarding newly closed
// squares to mover.
func fullScan(s State, walls [][]bool, mover Player) ([]Owner, bool) {
	out := append([]Owner(nil), s.squares...)
	taken := false
	for idx := range out {
		if out[idx].IsOwned() {
			continue
		}
		if isClosed(walls, idx/s.width, idx%s.width) {
			out[idx] = OwnedBy(mover)
			taken = true
		}
	}
	return out, taken
}

func TestRandomGamesHoldInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 50; game++ {
		width, height := 1+rng.Intn(4), 1+rng.Intn(4)
		s := newGame(t, width, height)

		for !s.Finished() {
			open := s.OpenWalls()
			require.NotEmpty(t, open)
			w := open[rng.Intn(len(open))]

			hint := s.Completes(w.Row, w.Cell)
			next, err := ApplyMove(s, w.Row, w.Cell)
			require.NoError(t, err)

			// incremental check agrees with a full rescan
			want, taken := fullScan(s, next.walls, s.CurrentPlayer())
			assert.Equal(t, want, next.squares)
			assert.Len(t, hint, countNew(s, next))

			// turn-flip law
			if taken {
				assert.Equal(t, s.CurrentPlayer(), next.CurrentPlayer())
			} else {
				assert.Equal(t, s.CurrentPlayer().Other(), next.CurrentPlayer())
			}

			// monotonicity
			for row, cells := range s.walls {
				for cell, claimed := range cells {
					if claimed {
						assert.True(t, next.walls[row][cell])
					}
				}
			}
			for idx, sq := range s.squares {
				if sq.IsOwned() {
					assert.Equal(t, sq, next.squares[idx])
				}
			}

			s = next
		}

		assert.Empty(t, s.OpenWalls())
		assert.Equal(t, width*(height+1)+height*(width+1), s.MoveCount())
		scores := s.Scores()
		assert.Equal(t, width*height, scores[PlayerOne]+scores[PlayerTwo])
	}
}

func countNew(before, after State) int {
	n := 0
	for idx := range after.squares {
		if after.squares[idx].IsOwned() && !before.squares[idx].IsOwned() {
			n++
		}
	}
	return n
}
