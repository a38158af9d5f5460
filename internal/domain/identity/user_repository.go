package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByPhone finds a user by phone number
	FindByPhone(ctx context.Context, phoneNumber string) (*User, error)

	// ExistsByPhone checks whether a phone number is already registered
	ExistsByPhone(ctx context.Context, phoneNumber string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
