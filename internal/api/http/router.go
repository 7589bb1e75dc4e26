package http

import (
	"time"

	"dots-and-boxes/internal/api/ws"
	"dots-and-boxes/internal/config"
	"dots-and-boxes/internal/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.POST("/rooms/:code/join", JoinRoomHandler(rm))
	r.POST("/rooms/:code/reset", ResetHandler(rm))
	r.GET("/rooms/:code/subscribers", SubscribersHandler(rm, hub))

	// --- GAME ENDPOINTS ---
	r.GET("/rooms/:code/walls", OpenWallsHandler(rm))
	r.POST("/rooms/:code/moves", MoveHandler(rm))

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(cfg)
	r.GET("/config/board", ch.GetBoardHandler)

	return r
}

// RequestLogger logs one line per request through zap.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
