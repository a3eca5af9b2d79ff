package token

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blazer444/Talkalot/internal/feature/auth/domain/entity"
	"github.com/blazer444/Talkalot/internal/feature/auth/usecase"
)

// ContextUserKey is the gin context key under which the authenticated user
// is stored by AuthRequired.
const ContextUserKey = "user"

// UserLoader resolves a decoded user identifier to a live user record.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a gin middleware that reads the session cookie,
// verifies the token and loads the corresponding user (without its password
// hash) into the request context. Every failure is terminal for the request.
func AuthRequired(issuer *Issuer, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(CookieName)
		if err != nil || tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Acesso negado. Token não fornecido."})
			return
		}

		userID, err := issuer.Verify(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido."})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Usuário não encontrado."})
				return
			}
			slog.Error("failed to load session user", "error", err, "user_id", userID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor."})
			return
		}

		c.Set(ContextUserKey, user.Public())
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by
// AuthRequired. The boolean is false on routes without the middleware.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
