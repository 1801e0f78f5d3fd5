package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps sessions as JSON values with a TTL
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a session store on rdb
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Save stores auth for ttl
func (s *RedisStore) Save(ctx context.Context, auth *Auth, ttl time.Duration) error {
	b, err := json.Marshal(auth)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+auth.SessionID, b, ttl).Err()
}

// Get loads a session; missing or expired sessions return ErrNoSession
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Auth, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var auth Auth
	if err := json.Unmarshal(val, &auth); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &auth, nil
}

// Update overwrites a session and keeps its remaining TTL
func (s *RedisStore) Update(ctx context.Context, auth *Auth) error {
	b, err := json.Marshal(auth)
	if err != nil {
		return err
	}
	ok, err := s.rdb.SetXX(ctx, keyPrefix+auth.SessionID, b, redis.KeepTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSession
	}
	return nil
}

// Delete removes a session
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}
