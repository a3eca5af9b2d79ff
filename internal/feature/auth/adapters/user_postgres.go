// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/blazer444/Talkalot/internal/feature/auth/domain/entity"
	"github.com/blazer444/Talkalot/internal/feature/auth/usecase"
)

// userPostgres implements the user repository on top of GORM.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres satisfies the usecase contract.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a userPostgres bound to the given connection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts the user. A duplicate email maps to usecase.ErrEmailTaken.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailTaken
		}
		// Postgres error 23505: unique_violation, for drivers that do not
		// go through GORM's error translation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return usecase.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByEmail returns the user with the given email, or usecase.ErrUserNotFound.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user with the given ID, or usecase.ErrUserNotFound.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfilePic stores a new avatar URL and returns the updated user.
func (r *userPostgres) UpdateProfilePic(ctx context.Context, id uint, url string) (*entity.User, error) {
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("profile_pic", url)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// FindAllExcept returns every user except the given one, ordered by name.
// Serves the contact list of the chat feature.
func (r *userPostgres) FindAllExcept(ctx context.Context, id uint) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Where("id <> ?", id).Order("full_name asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByIDs returns the users matching the given ids.
func (r *userPostgres) FindByIDs(ctx context.Context, ids []uint) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
