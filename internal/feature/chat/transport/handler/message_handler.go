// Package handler provides the HTTP handlers for the chat feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authentity "github.com/blazer444/Talkalot/internal/feature/auth/domain/entity"
	"github.com/blazer444/Talkalot/internal/feature/chat/domain/entity"
	"github.com/blazer444/Talkalot/internal/feature/chat/usecase"
	"github.com/blazer444/Talkalot/internal/platform/token"
)

// ChatUsecase defines the chat operations the handler depends on.
type ChatUsecase interface {
	Contacts(ctx context.Context, selfID uint) ([]authentity.User, error)
	ChatPartners(ctx context.Context, selfID uint) ([]authentity.User, error)
	MessagesWith(ctx context.Context, selfID, otherID uint) ([]entity.Message, error)
	Send(ctx context.Context, senderID, receiverID uint, text, image string) (*entity.Message, error)
}

// MessageHandler handles the /api/messages endpoints. All routes run behind
// the session middleware, so a validated user is always in the context.
type MessageHandler struct {
	chat ChatUsecase
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(chat ChatUsecase) *MessageHandler {
	return &MessageHandler{chat: chat}
}

type sendMessageRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// GetContacts handles GET /api/messages/contacts.
func (h *MessageHandler) GetContacts(c *gin.Context) {
	user, _ := token.CurrentUser(c)

	contacts, err := h.chat.Contacts(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("failed to list contacts", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// GetChatPartners handles GET /api/messages/chats.
func (h *MessageHandler) GetChatPartners(c *gin.Context) {
	user, _ := token.CurrentUser(c)

	partners, err := h.chat.ChatPartners(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("failed to list chat partners", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		return
	}
	c.JSON(http.StatusOK, partners)
}

// GetMessages handles GET /api/messages/:id.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	user, _ := token.CurrentUser(c)

	otherID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de destinatário inválido"})
		return
	}

	msgs, err := h.chat.MessagesWith(c.Request.Context(), user.ID, otherID)
	if err != nil {
		slog.Error("failed to load messages", "error", err, "user_id", user.ID, "other_id", otherID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// SendMessage handles POST /api/messages/send/:id.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	user, _ := token.CurrentUser(c)

	receiverID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de destinatário inválido"})
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos."})
		return
	}

	msg, err := h.chat.Send(c.Request.Context(), user.ID, receiverID, req.Text, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelfMessage):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Não é possível enviar mensagem para si mesmo"})
		case errors.Is(err, usecase.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Mensagem deve conter texto ou imagem"})
		case errors.Is(err, usecase.ErrReceiverNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Destinatário não encontrado"})
		default:
			slog.Error("failed to send message", "error", err, "user_id", user.ID, "receiver_id", receiverID)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		}
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// parseID parses a decimal user identifier from a path parameter.
func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
