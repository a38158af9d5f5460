// Package otp provides verification-code providers for phone registration.
// The provider is a capability port so a real SMS/OTP integration can be
// substituted without touching identity or checkout logic.
package otp

import "context"

// Provider issues and verifies one-time codes for phone numbers
type Provider interface {
	// Issue creates a verification code for the phone number. Delivery is
	// out of band; the code is returned so the caller can log it.
	Issue(ctx context.Context, phoneNumber string) (string, error)

	// Verify reports whether the code is currently valid for the phone number
	Verify(ctx context.Context, phoneNumber, code string) (bool, error)
}
