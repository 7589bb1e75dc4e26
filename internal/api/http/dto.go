package http

// CreateRoomRequest represents the payload for POST /rooms.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// MoveRequest represents a wall claim.
type MoveRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Row      *int   `json:"row" binding:"required"`
	Cell     *int   `json:"cell" binding:"required"`
}

// ResetRequest restarts the game; zero dimensions keep the current board.
type ResetRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// OpenWall is an unclaimed wall plus the squares claiming it would close.
type OpenWall struct {
	Row       int   `json:"row"`
	Cell      int   `json:"cell"`
	Completes []int `json:"completes,omitempty"`
}
