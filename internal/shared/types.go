package shared

import (
	"time"

	"dots-and-boxes/internal/game"
)

// Room is a committed snapshot of one hosted game. A Room is never modified
// after it is saved; the manager builds a new one for every change and bumps
// Version.
type Room struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	State     game.State `json:"state"`
	Players   []Player   `json:"players"`
	Version   uint64     `json:"version"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Player struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Seat game.Player `json:"seat"`
}

// Seat returns the player seated under id.
func (r *Room) Seat(id string) (Player, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Clone returns a copy whose Players slice can be appended to without
// touching r.
func (r *Room) Clone() *Room {
	cp := *r
	cp.Players = append([]Player(nil), r.Players...)
	return &cp
}

// Move is a claimed wall as reported to clients.
type Move struct {
	PlayerID  string      `json:"playerId"`
	Seat      game.Player `json:"seat"`
	Row       int         `json:"row"`
	Cell      int         `json:"cell"`
	Completed []int       `json:"completed"`
}
