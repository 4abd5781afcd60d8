package main

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ProgressMessage is pushed to subscribers as matchups resolve.
type ProgressMessage struct {
	Type      string  `json:"type"`
	Candidate string  `json:"candidate,omitempty"`
	Opponent  string  `json:"opponent,omitempty"`
	Winner    string  `json:"winner,omitempty"`
	Turns     int     `json:"turns,omitempty"`
	Remaining float64 `json:"remaining,omitempty"`
}

// Hub broadcasts progress messages to connected WebSocket clients.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			// Progress streaming is read-only, so any origin may subscribe.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// HandleWS upgrades the connection and registers the client.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Printf("[Hub] Upgrade failed: %v\n", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	count := len(h.clients)
	h.mu.Unlock()
	fmt.Printf("[Hub] Client connected (%d total)\n", count)

	// Drain reads so close frames are processed. Clients never send data.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()
}

// Broadcast sends a message to every connected client. Clients that fail
// to receive are dropped.
func (h *Hub) Broadcast(msg ProgressMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
		fmt.Printf("[Hub] Client disconnected (%d remaining)\n", len(h.clients))
	}
}
