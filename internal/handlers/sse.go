package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/sse"
)

type SSEHandler struct {
	log *logger.Logger
	hub *sse.SSEHub
}

func NewSSEHandler(log *logger.Logger, hub *sse.SSEHub) *SSEHandler {
	return &SSEHandler{
		log: log.With("handler", "SSEHandler"),
		hub: hub,
	}
}

// GET /api/sse/stream
// Admin live feed of computed matches. Every stream is subscribed to the
// match feed channel; the connection blocks until the client goes away.
func (h *SSEHandler) SSEStream(c *gin.Context) {
	client := h.hub.NewSSEClient()
	h.hub.AddChannel(client, sse.MatchFeedChannel)
	defer h.hub.CloseClient(client)

	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
