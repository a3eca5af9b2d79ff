// Package adapters provides the repository implementations for the chat feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"github.com/blazer444/Talkalot/internal/feature/chat/domain/entity"
	"github.com/blazer444/Talkalot/internal/feature/chat/usecase"
)

// messagePostgres implements the message repository on top of GORM.
type messagePostgres struct {
	db *gorm.DB
}

// Compile-time check that messagePostgres satisfies the usecase contract.
var _ usecase.MessageRepository = (*messagePostgres)(nil)

// NewMessagePostgres creates a messagePostgres bound to the given connection.
func NewMessagePostgres(db *gorm.DB) *messagePostgres {
	return &messagePostgres{db: db}
}

// Create inserts the message and fills in its ID and creation timestamp.
func (r *messagePostgres) Create(ctx context.Context, m *entity.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// FindBetween returns the history between two users in either direction,
// ascending by creation time.
func (r *messagePostgres) FindBetween(ctx context.Context, a, b uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at asc, id asc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// FindByParticipant returns every message where the user appears as sender
// or receiver.
func (r *messagePostgres) FindByParticipant(ctx context.Context, userID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at asc, id asc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
