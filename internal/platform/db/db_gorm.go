// Package db opens the Postgres connection used by all repositories.
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "github.com/blazer444/Talkalot/internal/feature/auth/domain/entity"
	chatentity "github.com/blazer444/Talkalot/internal/feature/chat/domain/entity"
	"github.com/blazer444/Talkalot/internal/config"
)

// Open connects to Postgres with a bounded retry window and runs the schema
// migration. The process exits with a non-zero status when the database
// cannot be reached, matching the startup contract: no server without a
// working store.
func Open(cfg *config.Config) *gorm.DB {
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(gpostgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if err := conn.AutoMigrate(
		&authentity.User{},
		&chatentity.Message{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return conn
}
