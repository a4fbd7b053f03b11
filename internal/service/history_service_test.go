package service

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newRedisStore(t *testing.T, limit int) (HistoryStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisHistoryStore(client, discardLogger(), limit), mr
}

func TestHistoryStores(t *testing.T) {
	stores := map[string]func(t *testing.T) HistoryStore{
		"memory": func(*testing.T) HistoryStore { return NewMemoryHistoryStore(3) },
		"redis": func(t *testing.T) HistoryStore {
			s, _ := newRedisStore(t, 3)
			return s
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			empty, err := store.Recent(ctx, 0)
			require.NoError(t, err)
			assert.Empty(t, empty)

			for i := 1; i <= 5; i++ {
				require.NoError(t, store.Append(ctx, fmt.Sprintf("delete %d", i)))
			}

			all, err := store.Recent(ctx, 0)
			require.NoError(t, err)
			assert.Equal(t, []string{"delete 5", "delete 4", "delete 3"}, all)

			two, err := store.Recent(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, []string{"delete 5", "delete 4"}, two)

			require.NoError(t, store.Clear(ctx))
			all, err = store.Recent(ctx, 0)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestRedisHistoryStoreUsesCappedList(t *testing.T) {
	store, mr := newRedisStore(t, 2)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "list"))
	require.NoError(t, store.Append(ctx, "help"))
	require.NoError(t, store.Append(ctx, "exit"))

	stored, err := mr.List(RedisHistoryKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"exit", "help"}, stored)
}

func TestRedisHistoryStoreUnavailable(t *testing.T) {
	store, mr := newRedisStore(t, 2)
	mr.Close()

	assert.Error(t, store.Append(context.Background(), "list"))
	_, err := store.Recent(context.Background(), 0)
	assert.Error(t, err)
}
