// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blazer444/Talkalot/internal/feature/auth/domain/entity"
	"github.com/blazer444/Talkalot/internal/feature/auth/usecase"
	"github.com/blazer444/Talkalot/internal/platform/token"
)

// AuthUsecase defines the auth operations the handler depends on. Following
// Go convention, the interface is defined by the consumer (handler), not the
// provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, fullName, email, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	SendWelcome(ctx context.Context, user *entity.User)
	UpdateProfilePic(ctx context.Context, userID uint, image string) (*entity.User, error)
}

// SessionCookies writes and clears the session cookie on responses.
type SessionCookies interface {
	Attach(w http.ResponseWriter, tok string)
	Clear(w http.ResponseWriter)
}

// AuthHandler handles the /api/auth endpoints.
type AuthHandler struct {
	auth    AuthUsecase
	cookies SessionCookies
}

// NewAuthHandler creates an AuthHandler with injected collaborators.
func NewAuthHandler(auth AuthUsecase, cookies SessionCookies) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

type signupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	ProfilePic string `json:"profilePic"`
}

// userResponse is the public projection of a user. The password hash never
// appears in any response body.
type userResponse struct {
	ID         uint   `json:"_id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
}

func publicUser(u *entity.User) userResponse {
	return userResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}
}

// Signup handles POST /api/auth/signup.
// The session cookie is attached and the 201 response written before the
// best-effort welcome email runs, so a mail failure can never change the
// status already committed to the client.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos."})
		return
	}

	user, tok, err := h.auth.Signup(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		status, msg := signupError(err)
		if status == http.StatusInternalServerError {
			slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		} else {
			slog.Warn("signup rejected", "error", err, "remote_addr", c.ClientIP())
		}
		c.JSON(status, gin.H{"message": msg})
		return
	}

	h.cookies.Attach(c.Writer, tok)
	c.JSON(http.StatusCreated, publicUser(user))

	slog.Info("user signup successful", "email", user.Email, "user_id", user.ID)
	h.auth.SendWelcome(c.Request.Context(), user)
}

func signupError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return http.StatusBadRequest, "Por favor, preencha todos os campos."
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return http.StatusBadRequest, "A senha deve ter pelo menos 6 caracteres."
	case errors.Is(err, usecase.ErrInvalidEmail):
		return http.StatusBadRequest, "Por favor, insira um email válido."
	case errors.Is(err, usecase.ErrEmailTaken):
		return http.StatusBadRequest, "Este email já está em uso."
	default:
		return http.StatusInternalServerError, "Erro no servidor. Por favor, tente novamente mais tarde."
	}
}

// Login handles POST /api/auth/login. Unknown email and wrong password
// produce the identical response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos."})
		return
	}

	user, tok, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login rejected", "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email ou senha inválidos."})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor. Por favor, tente novamente mais tarde."})
		return
	}

	h.cookies.Attach(c.Writer, tok)
	slog.Info("user login successful", "email", user.Email, "user_id", user.ID)
	c.JSON(http.StatusOK, publicUser(user))
}

// Logout handles POST /api/auth/logout. It requires no prior session and
// always clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.Clear(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso."})
}

// Check handles GET /api/auth/check. The session middleware has already
// loaded the user.
func (h *AuthHandler) Check(c *gin.Context) {
	user, ok := token.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Acesso negado. Token não fornecido."})
		return
	}
	c.JSON(http.StatusOK, publicUser(user))
}

// UpdateProfile handles PUT /api/auth/update-profile. The image arrives as
// a base64 data URL and is stored through the object-storage collaborator.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := token.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Acesso negado. Token não fornecido."})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos."})
		return
	}

	updated, err := h.auth.UpdateProfilePic(c.Request.Context(), user.ID, req.ProfilePic)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingImage) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Por favor, forneça uma imagem."})
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor. Por favor, tente novamente mais tarde."})
		return
	}
	c.JSON(http.StatusOK, publicUser(updated))
}
