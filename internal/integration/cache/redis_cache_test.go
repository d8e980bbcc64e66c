package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client), mini
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a value", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.Set(ctx, "dashboard:overview", []byte(`{"total_farmers":4}`), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		value, found, err := cache.Get(ctx, "dashboard:overview")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected key to be present")
		}
		if string(value) != `{"total_farmers":4}` {
			t.Errorf("unexpected value: %s", value)
		}
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		cache, _ := newTestCache(t)

		value, found, err := cache.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found || value != nil {
			t.Error("expected miss for unknown key")
		}
	})

	t.Run("expired key is a miss", func(t *testing.T) {
		cache, mini := newTestCache(t)

		if err := cache.Set(ctx, "dashboard:overview", []byte("{}"), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mini.FastForward(2 * time.Minute)

		_, found, err := cache.Get(ctx, "dashboard:overview")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected expired key to be gone")
		}
	})

	t.Run("delete removes the key", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.Set(ctx, "dashboard:overview", []byte("{}"), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Delete(ctx, "dashboard:overview"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, found, err := cache.Get(ctx, "dashboard:overview")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected key to be deleted")
		}
	})
}
