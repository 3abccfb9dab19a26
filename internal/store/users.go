package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cafes-backend/internal/auth"
	"cafes-backend/internal/model"
)

// Users adds registration and login to the users resource.
type Users struct {
	*Resource[model.User]
	hasher *auth.Hasher
}

// NewUsers returns the users resource.
func NewUsers(db *gorm.DB, hasher *auth.Hasher) *Users {
	return &Users{Resource: NewResource[model.User](db, OrderByID), hasher: hasher}
}

func (u *Users) findByName(ctx context.Context, name string) (model.User, error) {
	var user model.User
	if err := u.db.WithContext(ctx).Where("name = ?", name).Take(&user).Error; err != nil {
		return model.User{}, classify(err)
	}
	return user, nil
}

// Register stores a new user with a hashed password. A taken name yields
// ErrConflict and leaves the existing user untouched.
func (u *Users) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	_, err := u.findByName(ctx, req.Name)
	switch {
	case err == nil:
		return model.User{}, fmt.Errorf("%w: user %q already exists", ErrConflict, req.Name)
	case !errors.Is(err, ErrNotFound):
		return model.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	hash, err := u.hasher.Hash(req.Password)
	if errors.Is(err, auth.ErrTooLong) {
		return model.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err != nil {
		return model.User{}, err
	}
	user := model.User{Name: req.Name, PasswordHash: hash, Role: req.Role}
	if err := u.Create(ctx, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Authenticate returns the user when password matches. It fails with
// ErrUnknownUser or ErrWrongPassword, both of which wrap ErrUnauthorized.
func (u *Users) Authenticate(ctx context.Context, name, password string) (model.User, error) {
	user, err := u.findByName(ctx, name)
	if errors.Is(err, ErrNotFound) {
		u.hasher.Burn(password)
		return model.User{}, ErrUnknownUser
	}
	if err != nil {
		return model.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err := u.hasher.Verify(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrMismatch) {
			return model.User{}, ErrWrongPassword
		}
		return model.User{}, fmt.Errorf("password check failed: %w", err)
	}
	return user, nil
}
