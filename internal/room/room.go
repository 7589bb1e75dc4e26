package room

import (
	"math/rand"
	"sort"
	"time"

	"dots-and-boxes/internal/game"
	"dots-and-boxes/internal/shared"
)

// Winner returns the seated player who won the room's game, once it is over.
func Winner(r *shared.Room) (shared.Player, bool) {
	seat, ok := game.Winner(r.State)
	if !ok {
		return shared.Player{}, false
	}
	for _, p := range r.Players {
		if p.Seat == seat {
			return p, true
		}
	}
	// the winning seat was never filled
	return shared.Player{Seat: seat}, true
}

type RankRow struct {
	PlayerID string      `json:"playerId"`
	Name     string      `json:"name"`
	Seat     game.Player `json:"seat"`
	Squares  int         `json:"squares"`
}

// Rank orders the seated players by squares owned, best first.
func (m *Manager) Rank(r *shared.Room) []RankRow {
	scores := r.State.Scores()
	out := make([]RankRow, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, RankRow{
			PlayerID: p.ID,
			Name:     p.Name,
			Seat:     p.Seat,
			Squares:  scores[p.Seat],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Squares > out[j].Squares })
	return out
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
