package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"portfolio/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	revokedPrefix  = "session:revoked:"
	throttlePrefix = "contact:throttle:"
)

// Store keeps short-lived session state in Redis. When Redis is down every
// check is bypassed: tokens stay valid until expiry and contact sends are
// not throttled.
type Store struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     strings.TrimSpace(cfg.Addr),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Session] Redis unavailable, bypassing revocation and throttle: %v", err)
		}
		_ = client.Close()
		return &Store{client: nil, logger: logger}
	}

	return &Store{client: client, logger: logger}
}

func (s *Store) isUnavailable() bool {
	return s == nil || s.client == nil
}

func (s *Store) warnUnavailableOnce(err error) {
	if s == nil || s.logger == nil {
		return
	}
	if s.warnedUnavailable.CompareAndSwap(false, true) {
		s.logger.Printf("[Session] Redis unavailable, bypassing: %v", err)
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if s.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	if s.isUnavailable() {
		return nil
	}
	return s.client.Close()
}

// Revoke marks a token id as signed out until its own expiry.
func (s *Store) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.isUnavailable() || strings.TrimSpace(tokenID) == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedPrefix+tokenID, "1", ttl).Err(); err != nil {
		s.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (s *Store) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.isUnavailable() || strings.TrimSpace(tokenID) == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		s.warnUnavailableOnce(err)
		return false, err
	}
	return n > 0, nil
}

// AllowContact reports whether the sender identified by key may submit the
// contact form now. The first call in each ttl window wins.
func (s *Store) AllowContact(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if s.isUnavailable() {
		return true, nil
	}
	ok, err := s.SetIfNotExists(ctx, throttlePrefix+key, "1", ttl)
	if err != nil {
		return true, err
	}
	return ok, nil
}

func (s *Store) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if s.isUnavailable() {
		return false, nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	ok, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		s.warnUnavailableOnce(err)
		return false, err
	}
	return ok, nil
}
