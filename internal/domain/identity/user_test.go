package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("+15550100")

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "+15550100", user.PhoneNumber)
	assert.False(t, user.HasPaymentToken())
}

func TestNewUser_TrimsWhitespace(t *testing.T) {
	user, err := NewUser("  555-0100  ")

	assert.NoError(t, err)
	assert.Equal(t, "555-0100", user.PhoneNumber)
}

func TestNewUser_InvalidPhone(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"12",
		"phone: 555",
	}

	for _, phone := range cases {
		_, err := NewUser(phone)
		assert.Error(t, err, "phone %q should be rejected", phone)
	}
}

func TestUser_SetPaymentToken(t *testing.T) {
	user, _ := NewUser("+15550100")

	err := user.SetPaymentToken("tok_visa_4242")

	assert.NoError(t, err)
	assert.True(t, user.HasPaymentToken())
	assert.Equal(t, "tok_visa_4242", *user.PaymentToken)
}

func TestUser_SetPaymentToken_Replaces(t *testing.T) {
	user, _ := NewUser("+15550100")
	_ = user.SetPaymentToken("tok_old")

	err := user.SetPaymentToken("tok_new")

	assert.NoError(t, err)
	assert.Equal(t, "tok_new", *user.PaymentToken)
}

func TestUser_SetPaymentToken_Empty(t *testing.T) {
	user, _ := NewUser("+15550100")

	err := user.SetPaymentToken("   ")

	assert.Error(t, err)
	assert.False(t, user.HasPaymentToken())
}
