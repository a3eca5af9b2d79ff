package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "github.com/blazer444/Talkalot/internal/feature/auth/domain/entity"
	authusecase "github.com/blazer444/Talkalot/internal/feature/auth/usecase"
	"github.com/blazer444/Talkalot/internal/feature/chat/domain/entity"
)

// mockMessageRepo is a mock implementation of the MessageRepository interface.
type mockMessageRepo struct {
	CreateFunc            func(ctx context.Context, msg *entity.Message) error
	FindBetweenFunc       func(ctx context.Context, a, b uint) ([]entity.Message, error)
	FindByParticipantFunc func(ctx context.Context, userID uint) ([]entity.Message, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *entity.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	msg.ID = 1
	return nil
}

func (m *mockMessageRepo) FindBetween(ctx context.Context, a, b uint) ([]entity.Message, error) {
	if m.FindBetweenFunc != nil {
		return m.FindBetweenFunc(ctx, a, b)
	}
	return []entity.Message{}, nil
}

func (m *mockMessageRepo) FindByParticipant(ctx context.Context, userID uint) ([]entity.Message, error) {
	if m.FindByParticipantFunc != nil {
		return m.FindByParticipantFunc(ctx, userID)
	}
	return []entity.Message{}, nil
}

// mockUserRepo is a mock implementation of the UserRepository interface.
type mockUserRepo struct {
	FindByIDFunc      func(ctx context.Context, id uint) (*authentity.User, error)
	FindAllExceptFunc func(ctx context.Context, id uint) ([]authentity.User, error)
	FindByIDsFunc     func(ctx context.Context, ids []uint) ([]authentity.User, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*authentity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &authentity.User{ID: id}, nil
}

func (m *mockUserRepo) FindAllExcept(ctx context.Context, id uint) ([]authentity.User, error) {
	if m.FindAllExceptFunc != nil {
		return m.FindAllExceptFunc(ctx, id)
	}
	return []authentity.User{}, nil
}

func (m *mockUserRepo) FindByIDs(ctx context.Context, ids []uint) ([]authentity.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	out := make([]authentity.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, authentity.User{ID: id})
	}
	return out, nil
}

type mockUploader struct {
	url   string
	err   error
	calls int
}

func (m *mockUploader) UploadImage(ctx context.Context, data string) (string, error) {
	m.calls++
	return m.url, m.err
}

// mockNotifier records realtime pushes.
type mockNotifier struct {
	receivers []uint
	messages  []*entity.Message
}

func (m *mockNotifier) MessageCreated(receiverID uint, msg *entity.Message) {
	m.receivers = append(m.receivers, receiverID)
	m.messages = append(m.messages, msg)
}

func TestChatUsecase_Contacts(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		FindAllExceptFunc: func(ctx context.Context, id uint) ([]authentity.User, error) {
			assert.Equal(t, uint(1), id)
			return []authentity.User{
				{ID: 2, FullName: "Alice", Password: "hash"},
				{ID: 3, FullName: "Bob", Password: "hash"},
			}, nil
		},
	}
	uc := NewChatUsecase(&mockMessageRepo{}, users, &mockUploader{}, nil)

	contacts, err := uc.Contacts(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	for _, c := range contacts {
		assert.Empty(t, c.Password, "password hash must be stripped")
	}
}

func TestChatUsecase_ChatPartners(t *testing.T) {
	t.Parallel()

	t.Run("derives distinct partners from both directions", func(t *testing.T) {
		t.Parallel()

		msgs := &mockMessageRepo{
			FindByParticipantFunc: func(ctx context.Context, userID uint) ([]entity.Message, error) {
				return []entity.Message{
					{SenderID: 1, ReceiverID: 2},
					{SenderID: 3, ReceiverID: 1},
					{SenderID: 1, ReceiverID: 2}, // duplicate partner
					{SenderID: 1, ReceiverID: 4},
				}, nil
			},
		}
		var requested []uint
		users := &mockUserRepo{
			FindByIDsFunc: func(ctx context.Context, ids []uint) ([]authentity.User, error) {
				requested = ids
				out := make([]authentity.User, 0, len(ids))
				for _, id := range ids {
					out = append(out, authentity.User{ID: id, Password: "hash"})
				}
				return out, nil
			},
		}
		uc := NewChatUsecase(msgs, users, &mockUploader{}, nil)

		partners, err := uc.ChatPartners(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, []uint{2, 3, 4}, requested)
		require.Len(t, partners, 3)
		for _, p := range partners {
			assert.Empty(t, p.Password)
		}
	})

	t.Run("no messages yields empty list", func(t *testing.T) {
		t.Parallel()

		uc := NewChatUsecase(&mockMessageRepo{}, &mockUserRepo{}, &mockUploader{}, nil)

		partners, err := uc.ChatPartners(context.Background(), 1)

		require.NoError(t, err)
		assert.Empty(t, partners)
	})
}

func TestChatUsecase_Send(t *testing.T) {
	t.Parallel()

	t.Run("rejects message to self", func(t *testing.T) {
		t.Parallel()

		uc := NewChatUsecase(&mockMessageRepo{}, &mockUserRepo{}, &mockUploader{}, nil)
		_, err := uc.Send(context.Background(), 1, 1, "oi", "")
		assert.ErrorIs(t, err, ErrSelfMessage)
	})

	t.Run("rejects message without text or image", func(t *testing.T) {
		t.Parallel()

		uc := NewChatUsecase(&mockMessageRepo{}, &mockUserRepo{}, &mockUploader{}, nil)
		_, err := uc.Send(context.Background(), 1, 2, "", "")
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("rejects unknown receiver", func(t *testing.T) {
		t.Parallel()

		users := &mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*authentity.User, error) {
				return nil, authusecase.ErrUserNotFound
			},
		}
		uc := NewChatUsecase(&mockMessageRepo{}, users, &mockUploader{}, nil)

		_, err := uc.Send(context.Background(), 1, 2, "oi", "")
		assert.ErrorIs(t, err, ErrReceiverNotFound)
	})

	t.Run("text-only message is persisted and pushed", func(t *testing.T) {
		t.Parallel()

		uploader := &mockUploader{}
		notifier := &mockNotifier{}
		uc := NewChatUsecase(&mockMessageRepo{}, &mockUserRepo{}, uploader, notifier)

		msg, err := uc.Send(context.Background(), 1, 2, "oi", "")

		require.NoError(t, err)
		assert.Equal(t, uint(1), msg.SenderID)
		assert.Equal(t, uint(2), msg.ReceiverID)
		assert.Equal(t, "oi", msg.Text)
		assert.Empty(t, msg.Image)
		assert.Zero(t, uploader.calls, "no upload without an image")
		assert.Equal(t, []uint{2}, notifier.receivers)
	})

	t.Run("image-only message succeeds and stores the public URL", func(t *testing.T) {
		t.Parallel()

		uploader := &mockUploader{url: "https://cdn.example.com/img.png"}
		uc := NewChatUsecase(&mockMessageRepo{}, &mockUserRepo{}, uploader, nil)

		msg, err := uc.Send(context.Background(), 1, 2, "", "data:image/png;base64,aGk=")

		require.NoError(t, err)
		assert.Empty(t, msg.Text)
		assert.Equal(t, "https://cdn.example.com/img.png", msg.Image)
		assert.Equal(t, 1, uploader.calls)
	})

	t.Run("upload failure aborts before persistence", func(t *testing.T) {
		t.Parallel()

		upErr := errors.New("bucket unavailable")
		creates := 0
		msgs := &mockMessageRepo{
			CreateFunc: func(ctx context.Context, msg *entity.Message) error {
				creates++
				return nil
			},
		}
		uc := NewChatUsecase(msgs, &mockUserRepo{}, &mockUploader{err: upErr}, nil)

		_, err := uc.Send(context.Background(), 1, 2, "", "data:image/png;base64,aGk=")

		assert.ErrorIs(t, err, upErr)
		assert.Zero(t, creates, "nothing may be persisted when the upload fails")
	})

	t.Run("persist failure is not pushed", func(t *testing.T) {
		t.Parallel()

		notifier := &mockNotifier{}
		msgs := &mockMessageRepo{
			CreateFunc: func(ctx context.Context, msg *entity.Message) error {
				return errors.New("connection reset")
			},
		}
		uc := NewChatUsecase(msgs, &mockUserRepo{}, &mockUploader{}, notifier)

		_, err := uc.Send(context.Background(), 1, 2, "oi", "")

		assert.Error(t, err)
		assert.Empty(t, notifier.receivers)
	})
}
