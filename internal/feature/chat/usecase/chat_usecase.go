package usecase

import (
	"context"
	"errors"

	authentity "github.com/blazer444/Talkalot/internal/feature/auth/domain/entity"
	authusecase "github.com/blazer444/Talkalot/internal/feature/auth/usecase"
	"github.com/blazer444/Talkalot/internal/feature/chat/domain/entity"
)

// MessageRepository abstracts persistence of message records.
type MessageRepository interface {
	// Create persists a new message and fills in its ID and timestamp.
	Create(ctx context.Context, msg *entity.Message) error

	// FindBetween returns all messages exchanged between two users in
	// either direction, ascending by creation time.
	FindBetween(ctx context.Context, a, b uint) ([]entity.Message, error)

	// FindByParticipant returns all messages where the user is sender or
	// receiver.
	FindByParticipant(ctx context.Context, userID uint) ([]entity.Message, error)
}

// UserRepository is the slice of the user store the chat feature needs.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
	FindAllExcept(ctx context.Context, id uint) ([]authentity.User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]authentity.User, error)
}

// ImageUploader stores an image handed in as a base64 data URL and returns
// its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, data string) (string, error)
}

// Notifier pushes a freshly created message to the receiver's live
// connections. Delivery is best-effort; offline receivers read the message
// from history later.
type Notifier interface {
	MessageCreated(receiverID uint, msg *entity.Message)
}

// chatUsecase implements contact listing, chat-partner derivation and
// message read/write.
type chatUsecase struct {
	messages MessageRepository
	users    UserRepository
	uploader ImageUploader
	notifier Notifier
}

// NewChatUsecase creates a chatUsecase. notifier may be nil when no
// realtime layer is wired (messages are then only readable via history).
func NewChatUsecase(messages MessageRepository, users UserRepository, uploader ImageUploader, notifier Notifier) *chatUsecase {
	return &chatUsecase{
		messages: messages,
		users:    users,
		uploader: uploader,
		notifier: notifier,
	}
}

// Contacts returns all users other than the requester, without password hashes.
func (u *chatUsecase) Contacts(ctx context.Context, selfID uint) ([]authentity.User, error) {
	users, err := u.users.FindAllExcept(ctx, selfID)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// ChatPartners returns the distinct users the requester has exchanged at
// least one message with, in either direction.
func (u *chatUsecase) ChatPartners(ctx context.Context, selfID uint) ([]authentity.User, error) {
	msgs, err := u.messages.FindByParticipant(ctx, selfID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{})
	ids := make([]uint, 0)
	for _, m := range msgs {
		partner := m.SenderID
		if m.SenderID == selfID {
			partner = m.ReceiverID
		}
		if _, ok := seen[partner]; ok {
			continue
		}
		seen[partner] = struct{}{}
		ids = append(ids, partner)
	}

	if len(ids) == 0 {
		return []authentity.User{}, nil
	}

	partners, err := u.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range partners {
		partners[i].Password = ""
	}
	return partners, nil
}

// MessagesWith returns the full history between the requester and another
// user, ascending by creation time.
func (u *chatUsecase) MessagesWith(ctx context.Context, selfID, otherID uint) ([]entity.Message, error) {
	return u.messages.FindBetween(ctx, selfID, otherID)
}

// Send validates and persists a new message. When an image is attached its
// bytes are handed to the object-storage collaborator first and the public
// URL is stored on the record. The receiver's live connections are notified
// after the message is persisted.
func (u *chatUsecase) Send(ctx context.Context, senderID, receiverID uint, text, image string) (*entity.Message, error) {
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}
	if text == "" && image == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := u.users.FindByID(ctx, receiverID); err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, err
	}

	var imageURL string
	if image != "" {
		url, err := u.uploader.UploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	msg := &entity.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Image:      imageURL,
	}
	if err := u.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.MessageCreated(receiverID, msg)
	}
	return msg, nil
}
