package store

import (
	"errors"
	"sync"

	"dots-and-boxes/internal/shared"
)

// ErrVersionConflict is returned when a room changed between read and commit.
var ErrVersionConflict = errors.New("room was modified concurrently")

type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*shared.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*shared.Room{},
	}
}

func (m *MemoryStore) GetRoom(code string) (*shared.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

// SaveRoom stores r unconditionally, replacing any room with the same code.
func (m *MemoryStore) SaveRoom(r *shared.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.Code] = r
}

// CompareAndSwap commits r only if the stored room is the version r was
// derived from, i.e. stored.Version == r.Version-1.
func (m *MemoryStore) CompareAndSwap(r *shared.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rooms[r.Code]
	if !ok || cur.Version+1 != r.Version {
		return ErrVersionConflict
	}
	m.rooms[r.Code] = r
	return nil
}
