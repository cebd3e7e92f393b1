package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound means no persisted state exists for the session id.
var ErrSessionNotFound = errors.New("session not found")

// CustomerData is the legacy customer blob that several screens used to read
// raw (role lookup, ledger auto-fill, pre-order auto-login). All reads now go
// through this one typed accessor with a single deserialization point.
type CustomerData struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// Repository is the durable storage contract for sessions. Services depend
// on this interface, not on the concrete Redis implementation, enabling
// clean unit testing via stubs.
type Repository interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error

	// LegacyToken reads the separate storage key older clients kept their
	// auth token under; empty string when absent.
	LegacyToken(ctx context.Context, id string) (string, error)
	ClearLegacyToken(ctx context.Context, id string) error

	CustomerData(ctx context.Context, id string) (*CustomerData, error)
	SaveCustomerData(ctx context.Context, id string, data *CustomerData) error
}

const (
	sessionKeyPrefix      = "session:"
	legacyTokenKeyPrefix  = "auth_token:" // pre-consolidation token key
	customerDataKeyPrefix = "customer_data:"
)

type redisRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisRepository returns the Redis-backed session store. ttl bounds how
// long an idle session survives.
func NewRedisRepository(rdb *redis.Client, ttl time.Duration) Repository {
	return &redisRepository{rdb: rdb, ttl: ttl}
}

func (r *redisRepository) Load(ctx context.Context, id string) (*Session, error) {
	data, err := r.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &s, nil
}

func (r *redisRepository) Save(ctx context.Context, s *Session) error {
	s.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKeyPrefix+s.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

func (r *redisRepository) LegacyToken(ctx context.Context, id string) (string, error) {
	token, err := r.rdb.Get(ctx, legacyTokenKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("legacy token load: %w", err)
	}
	return token, nil
}

func (r *redisRepository) ClearLegacyToken(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, legacyTokenKeyPrefix+id).Err()
}

func (r *redisRepository) CustomerData(ctx context.Context, id string) (*CustomerData, error) {
	data, err := r.rdb.Get(ctx, customerDataKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("customer data load: %w", err)
	}
	var cd CustomerData
	if err := json.Unmarshal(data, &cd); err != nil {
		// A corrupt legacy blob is treated as absent, not fatal.
		return nil, nil
	}
	return &cd, nil
}

func (r *redisRepository) SaveCustomerData(ctx context.Context, id string, cd *CustomerData) error {
	data, err := json.Marshal(cd)
	if err != nil {
		return fmt.Errorf("customer data encode: %w", err)
	}
	return r.rdb.Set(ctx, customerDataKeyPrefix+id, data, r.ttl).Err()
}
