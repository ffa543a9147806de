package redis

import (
	"context"
	"os"
	"testing"
	"time"
)

// These tests need a live server; set TEST_REDIS_ADDR to run them.
func newTestStore(t *testing.T, ttl time.Duration) *PersistedQueryStore {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client, err := Connect(context.Background(), Config{Addr: addr, DB: 15})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		_ = client.Close()
	})
	return NewPersistedQueryStore(client, ttl)
}

func TestPersistedQueryStore_Miss(t *testing.T) {
	store := newTestStore(t, time.Minute)

	_, ok, err := store.Get(context.Background(), "deadbeef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unknown hash")
	}
}

func TestPersistedQueryStore_PutThenGet(t *testing.T) {
	store := newTestStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, "abc", "{ cats { id } }"); err != nil {
		t.Fatalf("put: %v", err)
	}
	q, ok, err := store.Get(ctx, "abc")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if q != "{ cats { id } }" {
		t.Fatalf("unexpected query %q", q)
	}

	ttl := store.client.TTL(ctx, "apq:abc").Val()
	if ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected ttl within a minute, got %v", ttl)
	}
}

func TestNewPersistedQueryStore_DefaultTTL(t *testing.T) {
	store := NewPersistedQueryStore(nil, 0)
	if store.ttl != defaultQueryTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultQueryTTL, store.ttl)
	}
	if got := store.key("abc"); got != "apq:abc" {
		t.Fatalf("unexpected key %q", got)
	}
}
