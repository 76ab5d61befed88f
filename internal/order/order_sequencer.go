package order

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/redis/go-redis/v9"
)

// Sequencer hands out order ids of the form PI-<digits>.
type Sequencer interface {
	NextID(ctx context.Context) (string, error)
}

// RandomSequencer draws from [0, 90000). Collisions are possible; the
// service retries when the repository reports a duplicate.
type RandomSequencer struct{}

func (RandomSequencer) NextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("PI-%d", rand.Intn(90000)), nil
}

const (
	sequenceKey    = "order:seq"
	sequenceOffset = 10000
)

// RedisSequencer uses INCR so ids are unique across processes sharing the
// same Redis.
type RedisSequencer struct {
	rdb *redis.Client
}

func NewRedisSequencer(rdb *redis.Client) *RedisSequencer {
	return &RedisSequencer{rdb: rdb}
}

func (s *RedisSequencer) NextID(ctx context.Context) (string, error) {
	n, err := s.rdb.Incr(ctx, sequenceKey).Result()
	if err != nil {
		return "", fmt.Errorf("order sequence: %w", err)
	}
	return fmt.Sprintf("PI-%d", sequenceOffset+n), nil
}

func newTrackingNumber() string {
	return fmt.Sprintf("TRK%d", rand.Intn(100000000))
}
