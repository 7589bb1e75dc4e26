package room

import (
	"errors"
	"fmt"
	"time"

	"dots-and-boxes/internal/config"
	"dots-and-boxes/internal/game"
	"dots-and-boxes/internal/shared"
	"dots-and-boxes/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room already has two players")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrUnknownPlayer = errors.New("player is not seated in this room")
	ErrBoardTooLarge = errors.New("board exceeds maximum size")
)

type Store interface {
	GetRoom(code string) (*shared.Room, bool)
	SaveRoom(r *shared.Room)
	CompareAndSwap(r *shared.Room) error
}

// Manager is the single writer for every room. Each change reads the latest
// snapshot, derives the next one with the pure game engine and commits it
// with a compare-and-swap, retrying against fresh state on conflict.
type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
	log   *zap.Logger
}

func NewManager(s Store, cfg config.Config, hub Broadcaster, logger *zap.Logger) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: s, cfg: cfg, hub: hub, log: logger}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

// boardSize resolves requested dimensions: zero falls back to the configured
// default, anything above the configured maximum is refused. Negative values
// are left for game.NewGame to reject.
func (m *Manager) boardSize(width, height int) (int, int, error) {
	if width == 0 {
		width = m.cfg.Board.Width
	}
	if height == 0 {
		height = m.cfg.Board.Height
	}
	if limit := m.cfg.Board.MaxSize; limit > 0 && (width > limit || height > limit) {
		return 0, 0, fmt.Errorf("%dx%d board, max %d: %w", width, height, limit, ErrBoardTooLarge)
	}
	return width, height, nil
}

// CreateRoom opens a room and seats the creator as the first player.
func (m *Manager) CreateRoom(creatorName string, width, height int) (*shared.Room, shared.Player, error) {
	width, height, err := m.boardSize(width, height)
	if err != nil {
		return nil, shared.Player{}, err
	}
	st, err := game.NewGame(width, height)
	if err != nil {
		return nil, shared.Player{}, err
	}
	if creatorName == "" {
		creatorName = "Player 1"
	}

	code := randCode(6)
	for {
		if _, taken := m.store.GetRoom(code); !taken {
			break
		}
		code = randCode(6)
	}

	creator := shared.Player{ID: uuid.NewString(), Name: creatorName, Seat: game.PlayerOne}
	now := time.Now()
	r := &shared.Room{
		ID:        uuid.NewString(),
		Code:      code,
		State:     st,
		Players:   []shared.Player{creator},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.store.SaveRoom(r)

	m.log.Info("room created",
		zap.String("room", code),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("player", creator.ID),
	)
	return r, creator, nil
}

func (m *Manager) Get(code string) (*shared.Room, bool) {
	return m.store.GetRoom(code)
}

// Join seats a second player.
func (m *Manager) Join(code, name string) (*shared.Room, shared.Player, error) {
	var joined shared.Player
	r, err := m.update(code, func(r *shared.Room) error {
		if len(r.Players) >= 2 {
			return ErrRoomFull
		}
		if name == "" {
			name = "Player 2"
		}
		joined = shared.Player{ID: uuid.NewString(), Name: name, Seat: game.PlayerTwo}
		r.Players = append(r.Players, joined)
		return nil
	})
	if err != nil {
		return nil, shared.Player{}, err
	}

	m.log.Info("player joined", zap.String("room", code), zap.String("player", joined.ID))
	m.hub.Broadcast(code, "state-updated", gin.H{"room": r})
	return r, joined, nil
}

// ApplyMove claims the wall at (row, cell) for playerID.
func (m *Manager) ApplyMove(code, playerID string, row, cell int) (*shared.Room, shared.Move, error) {
	var mv shared.Move
	r, err := m.update(code, func(r *shared.Room) error {
		p, ok := r.Seat(playerID)
		if !ok {
			return ErrUnknownPlayer
		}
		if !r.State.Finished() && r.State.CurrentPlayer() != p.Seat {
			return ErrNotYourTurn
		}

		completed := r.State.Completes(row, cell)
		next, err := game.ApplyMove(r.State, row, cell)
		if err != nil {
			return err
		}
		r.State = next
		mv = shared.Move{PlayerID: p.ID, Seat: p.Seat, Row: row, Cell: cell, Completed: completed}
		return nil
	})
	if err != nil {
		m.log.Debug("move rejected",
			zap.String("room", code),
			zap.String("player", playerID),
			zap.Int("row", row),
			zap.Int("cell", cell),
			zap.Error(err),
		)
		return nil, shared.Move{}, err
	}

	m.log.Info("wall claimed",
		zap.String("room", code),
		zap.Stringer("seat", mv.Seat),
		zap.Int("row", row),
		zap.Int("cell", cell),
		zap.Ints("completed", mv.Completed),
	)
	m.hub.Broadcast(code, "wall-claimed", gin.H{
		"move":     mv,
		"room":     r,
		"nextTurn": r.State.CurrentPlayer(),
	})

	if winner, ok := Winner(r); ok {
		m.log.Info("game over", zap.String("room", code), zap.String("winner", winner.ID))
		m.hub.Broadcast(code, "game-over", gin.H{
			"winner": winner,
			"rank":   m.Rank(r),
			"room":   r,
		})
	}
	return r, mv, nil
}

// Reset starts a fresh game in the room, keeping its players. Zero
// dimensions keep the current board size.
func (m *Manager) Reset(code string, width, height int) (*shared.Room, error) {
	r, err := m.update(code, func(r *shared.Room) error {
		w, h := width, height
		if w == 0 {
			w = r.State.Width()
		}
		if h == 0 {
			h = r.State.Height()
		}
		w, h, err := m.boardSize(w, h)
		if err != nil {
			return err
		}
		st, err := game.NewGame(w, h)
		if err != nil {
			return err
		}
		r.State = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Info("room reset",
		zap.String("room", code),
		zap.Int("width", r.State.Width()),
		zap.Int("height", r.State.Height()),
	)
	m.hub.Broadcast(code, "state-updated", gin.H{"room": r})
	return r, nil
}

// update applies fn to a private copy of the latest room and commits it.
// A version conflict means another writer got there first; fn is then run
// again against the fresh snapshot, so its validation always sees the state
// it commits over.
func (m *Manager) update(code string, fn func(r *shared.Room) error) (*shared.Room, error) {
	for {
		cur, ok := m.store.GetRoom(code)
		if !ok {
			return nil, ErrRoomNotFound
		}

		next := cur.Clone()
		if err := fn(next); err != nil {
			return nil, err
		}
		next.Version = cur.Version + 1
		next.UpdatedAt = time.Now()

		err := m.store.CompareAndSwap(next)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return nil, err
		}
		m.log.Debug("room commit conflict, retrying", zap.String("room", code), zap.Uint64("version", cur.Version))
	}
}
