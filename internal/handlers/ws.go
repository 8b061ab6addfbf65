package handlers

import (
	"log"
	"net/http"

	"lms-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleQuizFeed godoc
// @Summary      WebSocket feed of submitted results for a quiz
// @Description  Connect via WebSocket to receive result.submitted events as students finish
// @Tags         websocket
// @Param        id path string true "Quiz ID"
// @Router       /ws/quizzes/{id} [get]
func (h *WSHandler) HandleQuizFeed(c *gin.Context) {
	quizID := c.Param("id")
	if quizID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(quizID, conn)
	defer h.hub.RemoveConnection(quizID, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
