package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedTokenStore records logged-out token ids until their natural expiry.
// Key format: revoked:<jti>
type RevokedTokenStore struct {
	client *redis.Client
}

// NewRevokedTokenStore creates a RevokedTokenStore wrapping the given client.
func NewRevokedTokenStore(client *redis.Client) *RevokedTokenStore {
	return &RevokedTokenStore{client: client}
}

// Revoke marks the token id as revoked for ttl, after which the key expires
// together with the token itself.
func (s *RevokedTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(jti), "1", ttl).Err()
}

// IsRevoked reports whether the token id has been logged out.
func (s *RevokedTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevokedTokenStore) key(jti string) string {
	return "revoked:" + jti
}
