package otp

import "context"

// StaticProvider accepts a single fixed code for every phone number.
// It simulates OTP delivery for development and demos.
type StaticProvider struct {
	code string
}

// NewStaticProvider creates a provider that always issues and accepts code
func NewStaticProvider(code string) *StaticProvider {
	return &StaticProvider{code: code}
}

// Issue returns the fixed code
func (p *StaticProvider) Issue(ctx context.Context, phoneNumber string) (string, error) {
	return p.code, nil
}

// Verify accepts only the fixed code
func (p *StaticProvider) Verify(ctx context.Context, phoneNumber, code string) (bool, error) {
	return code != "" && code == p.code, nil
}
