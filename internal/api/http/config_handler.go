package http

import (
	"net/http"

	"dots-and-boxes/internal/config"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// GetBoardHandler returns the default board dimensions new rooms get and the
// largest board a room may ask for.
func (h *ConfigHandler) GetBoardHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"board": h.cfg.Board,
	})
}
