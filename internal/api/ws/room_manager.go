package ws

import "dots-and-boxes/internal/shared"

type RoomManager interface {
	Get(roomCode string) (*shared.Room, bool)
	ApplyMove(roomCode, playerID string, row, cell int) (*shared.Room, shared.Move, error)
}
