package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/walkout/backend/internal/infrastructure/config"
)

// RedisProvider stores issued codes in Redis with a TTL, keyed by phone
// number. Suitable for distributed deployments where multiple instances
// must agree on which code is outstanding for a phone.
type RedisProvider struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	generate  func() string
}

// NewRedisProvider creates a Redis-backed provider. The generate function
// produces new codes; pass a fixed-code generator to keep the simulated
// behavior while still exercising the store.
func NewRedisProvider(cfg config.RedisConfig, ttl time.Duration, generate func() string) (*RedisProvider, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProvider{
		client:    client,
		keyPrefix: "otp:code:",
		ttl:       ttl,
		generate:  generate,
	}, nil
}

// NewRedisProviderWithClient creates a provider with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisProviderWithClient(client *redis.Client, ttl time.Duration, generate func() string) *RedisProvider {
	return &RedisProvider{
		client:    client,
		keyPrefix: "otp:code:",
		ttl:       ttl,
		generate:  generate,
	}
}

// Issue generates a code for the phone number and stores it with the TTL.
// Reissuing replaces any outstanding code and resets the expiry.
func (p *RedisProvider) Issue(ctx context.Context, phoneNumber string) (string, error) {
	code := p.generate()
	key := p.keyPrefix + phoneNumber

	if err := p.client.Set(ctx, key, code, p.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}
	return code, nil
}

// Verify compares the submitted code against the stored one. An expired or
// never-issued code verifies false, not as an error.
func (p *RedisProvider) Verify(ctx context.Context, phoneNumber, code string) (bool, error) {
	key := p.keyPrefix + phoneNumber

	stored, err := p.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read verification code: %w", err)
	}

	return code != "" && code == stored, nil
}

// Close releases the underlying Redis client
func (p *RedisProvider) Close() error {
	return p.client.Close()
}
