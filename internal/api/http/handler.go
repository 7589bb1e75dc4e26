package http

import (
	"errors"
	"net/http"

	"dots-and-boxes/internal/api/ws"
	"dots-and-boxes/internal/game"
	"dots-and-boxes/internal/room"
	"dots-and-boxes/internal/shared"

	"github.com/gin-gonic/gin"
)

// statusFor maps engine and room errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrUnknownPlayer):
		return http.StatusForbidden
	case errors.Is(err, game.ErrAlreadyClaimed),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, room.ErrRoomFull),
		errors.Is(err, room.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidCoordinate),
		errors.Is(err, game.ErrInvalidConfiguration),
		errors.Is(err, room.ErrBoardTooLarge):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// roomView is the room snapshot plus everything derived from it that a
// client needs to draw the board and decide whether to keep offering moves.
func roomView(rm *room.Manager, r *shared.Room) gin.H {
	out := gin.H{
		"room":   r,
		"scores": rm.Rank(r),
		"winner": nil,
	}
	if w, ok := room.Winner(r); ok {
		out["winner"] = w
	}
	return out
}

// CreateRoomHandler opens a room and seats the caller as the first player.
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		r, p, err := rm.CreateRoom(req.PlayerName, req.Width, req.Height)
		if err != nil {
			fail(c, err)
			return
		}
		view := roomView(rm, r)
		view["roomCode"] = r.Code
		view["player"] = p
		c.JSON(http.StatusCreated, view)
	}
}

// JoinRoomHandler seats the caller as the second player.
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		r, p, err := rm.Join(c.Param("code"), req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		view := roomView(rm, r)
		view["player"] = p
		c.JSON(http.StatusOK, view)
	}
}

func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("code"))
		if !ok {
			fail(c, room.ErrRoomNotFound)
			return
		}
		c.JSON(http.StatusOK, roomView(rm, r))
	}
}

// OpenWallsHandler lists the walls that can still be claimed, with the
// squares each would close for the player to move.
func OpenWallsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("code"))
		if !ok {
			fail(c, room.ErrRoomNotFound)
			return
		}
		out := []OpenWall{}
		if !r.State.Finished() {
			for _, w := range r.State.OpenWalls() {
				out = append(out, OpenWall{Row: w.Row, Cell: w.Cell, Completes: r.State.Completes(w.Row, w.Cell)})
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"walls":         out,
			"currentPlayer": r.State.CurrentPlayer(),
		})
	}
}

// MoveHandler claims a wall for the calling player.
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerId, row and cell are required"})
			return
		}
		r, mv, err := rm.ApplyMove(c.Param("code"), req.PlayerID, *req.Row, *req.Cell)
		if err != nil {
			fail(c, err)
			return
		}
		view := roomView(rm, r)
		view["move"] = mv
		c.JSON(http.StatusOK, view)
	}
}

// ResetHandler starts a new game in the room with the same players.
func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetRequest
		// an empty body keeps the current board
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
				return
			}
		}
		r, err := rm.Reset(c.Param("code"), req.Width, req.Height)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, roomView(rm, r))
	}
}

// SubscribersHandler reports how many sockets are watching a room.
func SubscribersHandler(rm *room.Manager, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if _, ok := rm.Get(code); !ok {
			fail(c, room.ErrRoomNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"subscribers": hub.Subscribers(code)})
	}
}
