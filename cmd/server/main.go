package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/blazer444/Talkalot/internal/app/router"
	"github.com/blazer444/Talkalot/internal/config"
	authadapters "github.com/blazer444/Talkalot/internal/feature/auth/adapters"
	authhandler "github.com/blazer444/Talkalot/internal/feature/auth/transport/handler"
	authusecase "github.com/blazer444/Talkalot/internal/feature/auth/usecase"
	chatadapters "github.com/blazer444/Talkalot/internal/feature/chat/adapters"
	chathandler "github.com/blazer444/Talkalot/internal/feature/chat/transport/handler"
	chatusecase "github.com/blazer444/Talkalot/internal/feature/chat/usecase"
	"github.com/blazer444/Talkalot/internal/platform/db"
	platformhttp "github.com/blazer444/Talkalot/internal/platform/http"
	"github.com/blazer444/Talkalot/internal/platform/mail"
	"github.com/blazer444/Talkalot/internal/platform/password"
	"github.com/blazer444/Talkalot/internal/platform/presence"
	"github.com/blazer444/Talkalot/internal/platform/storage"
	"github.com/blazer444/Talkalot/internal/platform/token"
	"github.com/blazer444/Talkalot/internal/realtime"
	"github.com/blazer444/Talkalot/internal/shared/ratelimiter"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db (exits the process when unreachable)
	conn := db.Open(cfg)

	// Redis presence registry; the server runs without it
	var rdb *redisv9.Client
	if tmp, err := presence.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without shared presence.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}
	presenceReg := presence.NewRegistry(rdb, 0, "presence")

	// mail provider is mandatory: refuse to start without a key
	mailer, err := mail.NewResendClient(
		cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailFromName,
		platformhttp.NewHTTPClient(10*time.Second),
		ratelimiter.NewRateLimiter(2, time.Second),
	)
	if err != nil {
		log.Fatalf("mail provider misconfigured: %v", err)
	}

	// object storage for image attachments
	uploader, err := storage.NewS3Storage(context.Background(), cfg)
	if err != nil {
		log.Fatalf("object storage misconfigured: %v", err)
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(conn)
	messageRepo := chatadapters.NewMessagePostgres(conn)

	// Token + password collaborators
	issuer := token.NewIssuer(cfg.JWTSecret, token.DefaultTTL, cfg.IsProduction())
	hasher := password.NewBcryptHasher()

	// Realtime hub
	hub := realtime.NewHub(issuer, userRepo, presenceReg, cfg.ClientURL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, issuer, hasher, mailer, uploader, cfg.ClientURL)
	chatUC := chatusecase.NewChatUsecase(messageRepo, userRepo, uploader, hub)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, issuer)
	msgH := chathandler.NewMessageHandler(chatUC)

	engine := router.New(cfg.ClientURL, issuer, userRepo, authH, msgH, hub)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
