package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCodeNotFound is returned when a confirmation code is absent, expired
// or already consumed.
var ErrCodeNotFound = errors.New("confirmation code not found")

// ConfirmationCodeRepository stores single-use signup confirmation codes,
// keyed by user id. The store enforces the time box; deletion enforces
// single use.
type ConfirmationCodeRepository interface {
	Set(ctx context.Context, userID, codeHash string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}

type confirmationCodeRepository struct {
	client *redis.Client
}

// NewConfirmationCodeRepository creates a Redis-backed code store.
func NewConfirmationCodeRepository(redisAddr, redisPassword string) (ConfirmationCodeRepository, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &confirmationCodeRepository{client: rdb}, nil
}

func codeKey(userID string) string {
	return fmt.Sprintf("auth:confirmation_code:%s", userID)
}

func (r *confirmationCodeRepository) Set(ctx context.Context, userID, codeHash string, ttl time.Duration) error {
	if err := r.client.Set(ctx, codeKey(userID), codeHash, ttl).Err(); err != nil {
		return fmt.Errorf("set confirmation code: %w", err)
	}
	return nil
}

func (r *confirmationCodeRepository) Get(ctx context.Context, userID string) (string, error) {
	hash, err := r.client.Get(ctx, codeKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCodeNotFound
		}
		return "", fmt.Errorf("get confirmation code: %w", err)
	}
	return hash, nil
}

func (r *confirmationCodeRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, codeKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete confirmation code: %w", err)
	}
	return nil
}
