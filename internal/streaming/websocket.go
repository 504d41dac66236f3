package streaming

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
	maxFrameSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Guardian/family apps connect from arbitrary origins
		return true
	},
}

// WebSocketHub streams protection alerts to connected guardian apps on
// /ws/alerts. Each client carries its own Subscription filter, set from
// query parameters at connect time and updatable by sending a JSON
// Subscription over the socket.
type WebSocketHub struct {
	logger *logger.Logger

	mu      sync.RWMutex
	clients map[*guardianClient]struct{}

	broadcast chan *AlertEvent
}

type guardianClient struct {
	hub    *WebSocketHub
	conn   *websocket.Conn
	send   chan []byte
	logger *logger.Logger

	subMu        sync.RWMutex
	subscription Subscription
}

// NewWebSocketHub creates a new WebSocket hub
func NewWebSocketHub(log *logger.Logger) *WebSocketHub {
	return &WebSocketHub{
		logger:    log.WithComponent("websocket-hub"),
		clients:   make(map[*guardianClient]struct{}),
		broadcast: make(chan *AlertEvent, 256),
	}
}

// Run drains the broadcast channel until the context is cancelled.
func (h *WebSocketHub) Run(ctx context.Context) {
	h.logger.Info().Msg("WebSocket hub started")

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Msg("WebSocket hub stopping")
			h.closeAll()
			return
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

// BroadcastEvent queues an alert for delivery to all matching clients.
// Non-blocking; alerts are dropped when the hub is saturated.
func (h *WebSocketHub) BroadcastEvent(event *AlertEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().Str("alert_type", string(event.Type)).Msg("broadcast channel full, dropping alert")
	}
}

func (h *WebSocketHub) deliver(event *AlertEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal alert")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !client.wants(event) {
			continue
		}
		select {
		case client.send <- data:
		default:
			// Slow client, skip this alert
		}
	}
}

func (h *WebSocketHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}

func (h *WebSocketHub) register(client *guardianClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
	h.logger.Info().Int("clients", len(h.clients)).Msg("guardian client connected")
}

func (h *WebSocketHub) unregister(client *guardianClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Info().Int("clients", len(h.clients)).Msg("guardian client disconnected")
	}
}

// ClientCount returns the number of connected clients
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWebSocket upgrades the connection and starts the client pumps.
// Initial filters come from query parameters, e.g.
// /ws/alerts?min_severity=HIGH&types=document_flagged,intelligence_match
func (h *WebSocketHub) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to upgrade connection")
		return
	}

	client := &guardianClient{
		hub:          h,
		conn:         conn,
		send:         make(chan []byte, 256),
		logger:       h.logger,
		subscription: subscriptionFromQuery(r),
	}

	h.register(client)

	go client.writePump()
	go client.readPump()
}

func subscriptionFromQuery(r *http.Request) Subscription {
	var sub Subscription
	if sev := r.URL.Query().Get("min_severity"); sev != "" {
		sub.MinSeverity = models.RiskLevel(strings.ToUpper(sev))
	}
	if types := r.URL.Query().Get("types"); types != "" {
		for _, t := range strings.Split(types, ",") {
			if t = strings.TrimSpace(t); t != "" {
				sub.Types = append(sub.Types, AlertType(t))
			}
		}
	}
	return sub
}

func (c *guardianClient) wants(event *AlertEvent) bool {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return c.subscription.Matches(event)
}

// readPump reads client messages; any valid JSON Subscription replaces
// the client's filters.
func (c *guardianClient) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameSize)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		var sub Subscription
		if err := json.Unmarshal(message, &sub); err != nil {
			c.logger.Debug().Err(err).Msg("ignoring malformed subscription update")
			continue
		}
		c.subMu.Lock()
		c.subscription = sub
		c.subMu.Unlock()
		c.logger.Debug().Msg("subscription updated")
	}
}

func (c *guardianClient) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
