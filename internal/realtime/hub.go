// Package realtime delivers new messages and presence updates to connected
// clients over websockets. Connections are authenticated once at handshake
// time with the same session validation as the HTTP API, and no connection
// joins the hub before that validation succeeds.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	authusecase "github.com/blazer444/Talkalot/internal/feature/auth/usecase"
	chatentity "github.com/blazer444/Talkalot/internal/feature/chat/domain/entity"
	"github.com/blazer444/Talkalot/internal/platform/presence"
	"github.com/blazer444/Talkalot/internal/platform/token"
)

// event is the wire envelope pushed to clients.
type event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Event names understood by the frontend.
const (
	eventNewMessage  = "newMessage"
	eventOnlineUsers = "getOnlineUsers"
)

// Hub keeps the live connections per user and fans events out to them.
type Hub struct {
	issuer   *token.Issuer
	users    token.UserLoader
	presence *presence.Registry
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[uint]map[*client]struct{}
}

// NewHub creates a Hub. clientURL is the only origin accepted during the
// websocket upgrade.
func NewHub(issuer *token.Issuer, users token.UserLoader, reg *presence.Registry, clientURL string) *Hub {
	return &Hub{
		issuer:   issuer,
		users:    users,
		presence: reg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == clientURL
			},
		},
		clients: make(map[uint]map[*client]struct{}),
	}
}

// Handler returns the gin handler for GET /ws. The session is validated
// before the upgrade; every rejection is logged with its reason and no
// unauthenticated connection is admitted into the hub.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(token.CookieName)
		if err != nil || tok == "" {
			slog.Warn("socket connection rejected - no token provided", "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Acesso negado. Token não fornecido."})
			return
		}

		userID, err := h.issuer.Verify(tok)
		if err != nil {
			slog.Warn("socket connection rejected - invalid token", "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido."})
			return
		}

		user, err := h.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, authusecase.ErrUserNotFound) {
				slog.Warn("socket connection rejected - user not found", "user_id", userID)
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Usuário não encontrado."})
				return
			}
			slog.Error("socket connection rejected - store error", "error", err, "user_id", userID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor."})
			return
		}

		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "error", err, "user_id", user.ID)
			return
		}

		slog.Info("socket authenticated", "user_id", user.ID, "full_name", user.FullName)

		cl := &client{hub: h, conn: conn, userID: user.ID, send: make(chan []byte, sendBuffer)}
		h.register(cl)

		go cl.writePump()
		go cl.readPump()
	}
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	if h.clients[cl.userID] == nil {
		h.clients[cl.userID] = make(map[*client]struct{})
	}
	h.clients[cl.userID][cl] = struct{}{}
	h.mu.Unlock()

	if err := h.presence.SetOnline(context.Background(), cl.userID); err != nil {
		slog.Warn("failed to record presence", "error", err, "user_id", cl.userID)
	}
	h.broadcastOnlineUsers()
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	set, ok := h.clients[cl.userID]
	if ok {
		if _, present := set[cl]; present {
			delete(set, cl)
			close(cl.send)
		}
		if len(set) == 0 {
			delete(h.clients, cl.userID)
			if err := h.presence.SetOffline(context.Background(), cl.userID); err != nil {
				slog.Warn("failed to clear presence", "error", err, "user_id", cl.userID)
			}
		}
	}
	h.mu.Unlock()

	h.broadcastOnlineUsers()
}

// OnlineUserIDs returns the ids of users with at least one live connection
// on this instance.
func (h *Hub) OnlineUserIDs() []uint {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]uint, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// EmitToUser queues an event for every live connection of the given user.
// Connections too slow to drain their queue are skipped.
func (h *Hub) EmitToUser(userID uint, name string, payload any) {
	data, err := json.Marshal(event{Event: name, Data: payload})
	if err != nil {
		slog.Error("failed to encode event", "error", err, "event", name)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clients[userID] {
		select {
		case cl.send <- data:
		default:
			slog.Warn("dropping event, client queue full", "user_id", userID, "event", name)
		}
	}
}

// MessageCreated pushes a freshly persisted message to the receiver if it
// is online. Implements the chat usecase notifier contract.
func (h *Hub) MessageCreated(receiverID uint, msg *chatentity.Message) {
	h.EmitToUser(receiverID, eventNewMessage, msg)
}

func (h *Hub) broadcastOnlineUsers() {
	ids := h.OnlineUserIDs()
	data, err := json.Marshal(event{Event: eventOnlineUsers, Data: ids})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for cl := range set {
			select {
			case cl.send <- data:
			default:
			}
		}
	}
}
