package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans submitted-result events out to instructor dashboards watching a
// quiz.
type Hub struct {
	mu      sync.RWMutex
	quizzes map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		quizzes: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(quizID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.quizzes[quizID] == nil {
		h.quizzes[quizID] = make(map[*websocket.Conn]bool)
	}
	h.quizzes[quizID][conn] = true
	log.Printf("ws: client connected to quiz %s (total: %d)", quizID, len(h.quizzes[quizID]))
}

func (h *Hub) RemoveConnection(quizID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.quizzes[quizID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.quizzes, quizID)
		}
		log.Printf("ws: client disconnected from quiz %s", quizID)
	}
}

func (h *Hub) Broadcast(quizID string, message WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.quizzes[quizID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
