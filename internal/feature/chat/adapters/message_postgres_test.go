package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/blazer444/Talkalot/internal/feature/chat/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Message{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedMessage(t *testing.T, db *gorm.DB, sender, receiver uint, text string, at time.Time) *entity.Message {
	t.Helper()

	m := &entity.Message{SenderID: sender, ReceiverID: receiver, Text: text, CreatedAt: at}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestMessagePostgres_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessagePostgres(db)

	msg := &entity.Message{SenderID: 1, ReceiverID: 2, Text: "oi"}
	err := repo.Create(context.Background(), msg)

	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestMessagePostgres_FindBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessagePostgres(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, db, 1, 2, "first", base)
	seedMessage(t, db, 2, 1, "second", base.Add(time.Minute))
	seedMessage(t, db, 1, 2, "third", base.Add(2*time.Minute))
	// Unrelated conversation must not appear.
	seedMessage(t, db, 1, 3, "other", base)
	seedMessage(t, db, 3, 2, "other", base)

	msgs, err := repo.FindBetween(context.Background(), 1, 2)

	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.Equal(t, "third", msgs[2].Text)

	// Symmetric: same history regardless of argument order.
	rev, err := repo.FindBetween(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, msgs, rev)
}

func TestMessagePostgres_FindByParticipant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessagePostgres(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, db, 1, 2, "sent", base)
	seedMessage(t, db, 3, 1, "received", base.Add(time.Minute))
	seedMessage(t, db, 2, 3, "unrelated", base)

	msgs, err := repo.FindByParticipant(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "sent", msgs[0].Text)
	assert.Equal(t, "received", msgs[1].Text)
}
