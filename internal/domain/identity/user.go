package identity

import (
	"regexp"
	"strings"

	"github.com/walkout/backend/internal/domain/shared"
)

// phoneRegex accepts digits with optional separators, e.g. "555-0100" or "+15550100"
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{2,31}$`)

// User represents a registered shopper.
// It is the aggregate root for identity operations.
type User struct {
	shared.BaseEntity
	PhoneNumber  string
	PaymentToken *string
}

// NewUser creates a new user from a phone number
func NewUser(phoneNumber string) (*User, error) {
	phone := strings.TrimSpace(phoneNumber)
	if err := validatePhoneNumber(phone); err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:  shared.NewBaseEntity(),
		PhoneNumber: phone,
	}, nil
}

// SetPaymentToken attaches or replaces the stored payment token
func (u *User) SetPaymentToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return shared.NewDomainError("INVALID_INPUT", "Payment token cannot be empty")
	}
	if len(token) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Payment token exceeds maximum length")
	}
	u.PaymentToken = &token
	u.Touch()
	return nil
}

// HasPaymentToken reports whether a payment token is on file
func (u *User) HasPaymentToken() bool {
	return u.PaymentToken != nil && *u.PaymentToken != ""
}

func validatePhoneNumber(phone string) error {
	if phone == "" {
		return shared.NewDomainError("INVALID_INPUT", "Phone number cannot be empty")
	}
	if !phoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_INPUT", "Phone number format is invalid")
	}
	return nil
}
