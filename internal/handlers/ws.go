package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/vitalog-dev/vitalog/internal/types"
	"github.com/vitalog-dev/vitalog/internal/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// client wraps a websocket connection with a write lock. The ping loop and
// day-update broadcasts run on different goroutines, and the connection
// allows only one concurrent writer.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Hub tracks live dashboard connections per user. Connections register on
// upgrade and unregister on close, so the subscription lives exactly as long
// as the session — there is no ambient global listener.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*client]bool)}
}

func (hub *Hub) register(userID uint, c *client) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if hub.clients[userID] == nil {
		hub.clients[userID] = make(map[*client]bool)
	}
	hub.clients[userID][c] = true
}

func (hub *Hub) unregister(userID uint, c *client) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if clients, exists := hub.clients[userID]; exists {
		delete(clients, c)
		if len(clients) == 0 {
			delete(hub.clients, userID)
		}
	}
}

// BroadcastDayUpdated pushes a freshly reconciled day summary to every live
// connection the user has open.
func (hub *Hub) BroadcastDayUpdated(userID uint, summary DaySummary) {
	hub.mu.RLock()
	clients, exists := hub.clients[userID]
	if !exists || len(clients) == 0 {
		hub.mu.RUnlock()
		return
	}

	// Copy so the lock isn't held while writing to sockets.
	conns := make([]*client, 0, len(clients))
	for c := range clients {
		conns = append(conns, c)
	}
	hub.mu.RUnlock()

	for _, c := range conns {
		err := c.writeJSON(gin.H{
			"type":    "day_updated",
			"summary": summary,
		})

		if err != nil {
			log.Printf("Failed to broadcast day update to client: %v", err)
			hub.unregister(userID, c)
			c.conn.Close()
		}
	}
}

// WebSocket upgrades an authenticated connection and keeps it subscribed to
// the user's day updates until it closes.
func (h *Handler) WebSocket(c *gin.Context) {
	userID, err := utils.GetCurrentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	cl := &client{conn: conn}
	h.hub.register(userID, cl)

	defer func() {
		h.hub.unregister(userID, cl)
		conn.Close()
		log.Printf("WebSocket connection closed for user %d", userID)
	}()

	if err := cl.writeJSON(gin.H{"type": "connected"}); err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := cl.ping(); err != nil {
				log.Printf("Ping failed for user %d: %v", userID, err)
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline for user %d: %v", userID, err)
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for user %d: %v", userID, err)
			}
			break
		}
	}
}
