package main

import (
	"net/http"

	httpapi "dots-and-boxes/internal/api/http"
	"dots-and-boxes/internal/api/ws"
	"dots-and-boxes/internal/config"
	"dots-and-boxes/internal/room"
	"dots-and-boxes/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg := config.Get()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, *cfg, nil, logger.Named("room"))
	hub := ws.NewHub(rm, logger.Named("ws"))
	rm.SetHub(hub)
	r := httpapi.SetupRouter(rm, hub, *cfg, logger.Named("http"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	logger.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.Int("boardWidth", cfg.Board.Width),
		zap.Int("boardHeight", cfg.Board.Height),
	)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
