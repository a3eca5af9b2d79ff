// Package router wires the HTTP surface of the server.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/blazer444/Talkalot/internal/feature/auth/transport/handler"
	chathandler "github.com/blazer444/Talkalot/internal/feature/chat/transport/handler"
	platformhandler "github.com/blazer444/Talkalot/internal/platform/http/handler"
	"github.com/blazer444/Talkalot/internal/platform/token"
	"github.com/blazer444/Talkalot/internal/realtime"
)

// New builds the gin engine with all routes mounted. Only the configured
// frontend origin may make credentialed cross-origin requests.
func New(clientURL string, issuer *token.Issuer, users token.UserLoader,
	authH *authhandler.AuthHandler, msgH *chathandler.MessageHandler, hub *realtime.Hub) *gin.Engine {

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", platformhandler.Health)

	authenticated := token.AuthRequired(issuer, users)

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)

		auth.GET("/check", authenticated, authH.Check)
		auth.PUT("/update-profile", authenticated, authH.UpdateProfile)
	}

	messages := r.Group("/api/messages")
	messages.Use(authenticated)
	{
		messages.GET("/contacts", msgH.GetContacts)
		messages.GET("/chats", msgH.GetChatPartners)
		messages.GET("/:id", msgH.GetMessages)
		messages.POST("/send/:id", msgH.SendMessage)
	}

	// Realtime connections validate the same cookie during the handshake.
	r.GET("/ws", hub.Handler())

	return r
}
