package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans room events out to every websocket subscribed to the room and
// forwards wall claims sent over those sockets to the room manager.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
	log         *zap.Logger
}

// client serialises writes; gorilla connections allow one concurrent writer.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(msg interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

type message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type claimWall struct {
	PlayerID string `json:"playerId"`
	Row      int    `json:"row"`
	Cell     int    `json:"cell"`
}

func NewHub(roomManager RoomManager, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
		log:         logger,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	rm, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.String("room", roomCode), zap.Error(err))
		return
	}
	cl := &client{conn: conn}
	h.log.Debug("websocket connected", zap.String("room", roomCode))

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.remove(roomCode, cl)
		_ = conn.Close()
	}()

	// new subscribers start from the current snapshot
	if err := cl.send(envelope("state-updated", gin.H{"room": rm})); err != nil {
		return
	}

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read failed", zap.String("room", roomCode), zap.Error(err))
			}
			break
		}

		switch msg.Action {
		case "claim_wall":
			h.handleClaimWall(roomCode, cl, msg.Data)
		default:
			h.log.Debug("unknown websocket action", zap.String("room", roomCode), zap.String("action", msg.Action))
			_ = cl.send(envelope("error", gin.H{"error": "unknown action " + msg.Action}))
		}
	}
}

// handleClaimWall applies the claim; on success the manager broadcasts the
// result to the whole room, on failure only the sender hears about it.
func (h *Hub) handleClaimWall(roomCode string, cl *client, data json.RawMessage) {
	var req claimWall
	if err := json.Unmarshal(data, &req); err != nil {
		_ = cl.send(envelope("error", gin.H{"error": "invalid claim_wall payload"}))
		return
	}
	if _, _, err := h.roomManager.ApplyMove(roomCode, req.PlayerID, req.Row, req.Cell); err != nil {
		_ = cl.send(envelope("error", gin.H{"error": err.Error()}))
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	msg := envelope(action, data)
	for _, cl := range clients {
		if err := cl.send(msg); err != nil {
			h.log.Warn("websocket send failed", zap.String("room", roomCode), zap.String("action", action), zap.Error(err))
			h.remove(roomCode, cl)
			_ = cl.conn.Close()
		}
	}
}

// Subscribers returns the number of sockets listening on a room.
func (h *Hub) Subscribers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) remove(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[roomCode], cl)
	if len(h.rooms[roomCode]) == 0 {
		delete(h.rooms, roomCode)
	}
}

func envelope(action string, data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"action": action,
		"data":   data,
	}
}
