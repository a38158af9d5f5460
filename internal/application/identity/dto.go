package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/identity"
)

// RegisterInput is the input for registering a new user
type RegisterInput struct {
	PhoneNumber string
}

// VerifyInput is the input for verifying a phone number with a code
type VerifyInput struct {
	PhoneNumber string
	Code        string
}

// VerifyResult is the outcome of a successful verification
type VerifyResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	PhoneNumber     string    `json:"phone_number"`
	HasPaymentToken bool      `json:"has_payment_token"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain user to its response representation
func ToUserResponse(user *identity.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		PhoneNumber:     user.PhoneNumber,
		HasPaymentToken: user.HasPaymentToken(),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
