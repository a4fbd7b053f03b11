package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisHistoryKey holds entered commands, newest at the head
	RedisHistoryKey = "tp:history:commands"

	// Timeout for individual Redis operations
	redisHistoryTimeout = 2 * time.Second

	DefaultHistoryLimit = 100
)

// HistoryStore keeps the most recent command lines entered by the user
type HistoryStore interface {
	Append(ctx context.Context, line string) error
	// Recent returns up to limit lines, most recent first. limit <= 0 means every stored line.
	Recent(ctx context.Context, limit int) ([]string, error)
	Clear(ctx context.Context) error
}

// =============================================================================
// Redis
// =============================================================================

type redisHistoryStore struct {
	client *redis.Client
	log    *logrus.Logger
	key    string
	limit  int
}

// NewRedisHistoryStore stores history in a capped Redis list
func NewRedisHistoryStore(client *redis.Client, log *logrus.Logger, limit int) HistoryStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &redisHistoryStore{
		client: client,
		log:    log,
		key:    RedisHistoryKey,
		limit:  limit,
	}
}

func (s *redisHistoryStore) Append(ctx context.Context, line string) error {
	ctx, cancel := context.WithTimeout(ctx, redisHistoryTimeout)
	defer cancel()

	// push and trim in one MULTI so the list never exceeds the cap
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, s.key, line)
		pipe.LTrim(ctx, s.key, 0, int64(s.limit-1))
		return nil
	})
	if err != nil {
		s.log.Warnf("Failed to append command history: %+v", err)
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (s *redisHistoryStore) Recent(ctx context.Context, limit int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, redisHistoryTimeout)
	defer cancel()

	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	lines, err := s.client.LRange(ctx, s.key, 0, stop).Result()
	if err != nil {
		s.log.Warnf("Failed to read command history: %+v", err)
		return nil, fmt.Errorf("read history: %w", err)
	}
	return lines, nil
}

func (s *redisHistoryStore) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisHistoryTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// =============================================================================
// Memory
// =============================================================================

type memoryHistoryStore struct {
	mu    sync.Mutex
	lines []string // oldest first
	limit int
}

// NewMemoryHistoryStore keeps history for the lifetime of the process only
func NewMemoryHistoryStore(limit int) HistoryStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &memoryHistoryStore{limit: limit}
}

func (s *memoryHistoryStore) Append(_ context.Context, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
	if over := len(s.lines) - s.limit; over > 0 {
		s.lines = slices.Delete(s.lines, 0, over)
	}
	return nil
}

func (s *memoryHistoryStore) Recent(_ context.Context, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.lines)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]string, 0, n)
	for i := len(s.lines) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.lines[i])
	}
	return out, nil
}

func (s *memoryHistoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return nil
}
