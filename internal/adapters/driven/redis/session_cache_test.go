package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// setupTestSessionCache creates a test Redis client and SessionCache
func setupTestSessionCache(t *testing.T) (*SessionCache, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewSessionCache(client)

	return cache, mr, func() {
		client.Close()
		mr.Close()
	}
}

func TestSessionCache_SetAndGet(t *testing.T) {
	cache, _, cleanup := setupTestSessionCache(t)
	defer cleanup()

	ctx := context.Background()

	if err := cache.SetLoggedIn(ctx, "user-1", true); err != nil {
		t.Fatalf("unexpected error setting flag: %v", err)
	}

	flag, err := cache.GetLoggedIn(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error getting flag: %v", err)
	}
	if !flag {
		t.Error("expected logged-in flag to be true")
	}

	if err := cache.SetLoggedIn(ctx, "user-1", false); err != nil {
		t.Fatalf("unexpected error setting flag: %v", err)
	}

	flag, err = cache.GetLoggedIn(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error getting flag: %v", err)
	}
	if flag {
		t.Error("expected logged-in flag to be false")
	}
}

func TestSessionCache_GetMiss(t *testing.T) {
	cache, _, cleanup := setupTestSessionCache(t)
	defer cleanup()

	if _, err := cache.GetLoggedIn(context.Background(), "ghost"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionCache_Invalidate(t *testing.T) {
	cache, _, cleanup := setupTestSessionCache(t)
	defer cleanup()

	ctx := context.Background()

	if err := cache.SetLoggedIn(ctx, "user-1", true); err != nil {
		t.Fatalf("unexpected error setting flag: %v", err)
	}

	if err := cache.Invalidate(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error invalidating: %v", err)
	}

	if _, err := cache.GetLoggedIn(ctx, "user-1"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after invalidation, got %v", err)
	}

	// Invalidating an absent key is not an error.
	if err := cache.Invalidate(ctx, "ghost"); err != nil {
		t.Errorf("unexpected error invalidating absent key: %v", err)
	}
}

func TestSessionCache_EntriesExpire(t *testing.T) {
	cache, mr, cleanup := setupTestSessionCache(t)
	defer cleanup()

	ctx := context.Background()

	if err := cache.SetLoggedIn(ctx, "user-1", true); err != nil {
		t.Fatalf("unexpected error setting flag: %v", err)
	}

	mr.FastForward(defaultTTL + 1)

	if _, err := cache.GetLoggedIn(ctx, "user-1"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after TTL, got %v", err)
	}
}
