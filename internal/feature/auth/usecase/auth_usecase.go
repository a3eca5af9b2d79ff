package usecase

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/blazer444/Talkalot/internal/feature/auth/domain/entity"
	"github.com/blazer444/Talkalot/internal/platform/password"
)

// minPasswordLength is the minimum number of characters of a password
// before hashing.
const minPasswordLength = 6

// emailPattern requires a local part, an "@" and a domain with at least one dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserRepository abstracts persistence of user records. Following Go
// convention, the interface is defined by the consumer (usecase), not the
// provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailTaken when a user with
	// the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user with the given email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateProfilePic stores a new avatar URL and returns the updated user.
	UpdateProfilePic(ctx context.Context, id uint, url string) (*entity.User, error)
}

// TokenIssuer mints signed session tokens.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// Mailer delivers transactional email through an external provider.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, email, name, clientURL string) error
}

// ImageUploader stores an image handed in as a base64 data URL and returns
// its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, data string) (string, error)
}

// authUsecase implements the signup/login/profile business logic.
type authUsecase struct {
	users     UserRepository
	issuer    TokenIssuer
	hasher    Hasher
	mailer    Mailer
	uploader  ImageUploader
	clientURL string
}

// NewAuthUsecase creates an authUsecase with explicitly injected
// collaborators so tests can substitute fakes.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer, hasher Hasher, mailer Mailer, uploader ImageUploader, clientURL string) *authUsecase {
	return &authUsecase{
		users:     users,
		issuer:    issuer,
		hasher:    hasher,
		mailer:    mailer,
		uploader:  uploader,
		clientURL: clientURL,
	}
}

// Signup registers a new user and returns the created record together with
// a freshly issued session token. The user is persisted exactly once and
// the token issued exactly once.
func (u *authUsecase) Signup(ctx context.Context, fullName, email, pass string) (*entity.User, string, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if fullName == "" || email == "" || pass == "" {
		return nil, "", ErrMissingFields
	}
	if len(pass) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}
	if !emailPattern.MatchString(email) {
		return nil, "", ErrInvalidEmail
	}

	// Duplicate check before hashing; the unique index on email catches
	// the remaining race and the adapter maps it to ErrEmailTaken too.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, "", err
	}

	hashed, err := u.hasher.Hash(pass)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{FullName: fullName, Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tok, err := u.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// Login authenticates a user and returns the record with a session token.
// Unknown emails and wrong passwords produce the same error, and a dummy
// hash comparison runs when the user is missing so response timing does
// not reveal whether the account exists.
func (u *authUsecase) Login(ctx context.Context, email, pass string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))

	digest := password.DummyDigest
	if err == nil {
		digest = user.Password
	}
	match := u.hasher.Verify(pass, digest)

	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !match {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := u.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// SendWelcome dispatches the welcome email as a best-effort side effect.
// Failures are logged and swallowed; the caller has already committed its
// response by the time this runs.
func (u *authUsecase) SendWelcome(ctx context.Context, user *entity.User) {
	if u.mailer == nil {
		return
	}
	if err := u.mailer.SendWelcomeEmail(ctx, user.Email, user.FullName, u.clientURL); err != nil {
		slog.Error("failed to send welcome email", "error", err, "email", user.Email)
	}
}

// UpdateProfilePic uploads the given base64 image to object storage and
// persists the resulting public URL on the user.
func (u *authUsecase) UpdateProfilePic(ctx context.Context, userID uint, image string) (*entity.User, error) {
	if strings.TrimSpace(image) == "" {
		return nil, ErrMissingImage
	}
	url, err := u.uploader.UploadImage(ctx, image)
	if err != nil {
		return nil, err
	}
	return u.users.UpdateProfilePic(ctx, userID, url)
}
