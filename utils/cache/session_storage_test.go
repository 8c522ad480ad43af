package cache

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

var _ fiber.Storage = (*SessionStorage)(nil)

func newTestStorage(t *testing.T) *SessionStorage {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/15"
	}
	redisCache, err := NewRedisCache(url)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	storage := NewSessionStorage(redisCache, "test-sess:")
	t.Cleanup(func() {
		_ = storage.Reset()
		_ = storage.Close()
	})
	return storage
}

func TestSessionStorageRoundTrip(t *testing.T) {
	storage := newTestStorage(t)

	if err := storage.Set("abc", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := storage.Get("abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("payload")) {
		t.Errorf("Get = %q", got)
	}

	if err := storage.Delete("abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = storage.Get("abc")
	if err != nil || got != nil {
		t.Errorf("after delete Get = %q, %v", got, err)
	}
}

func TestSessionStorageMissingKey(t *testing.T) {
	storage := newTestStorage(t)

	got, err := storage.Get("does-not-exist")
	if err != nil || got != nil {
		t.Errorf("Get = %q, %v; want nil, nil", got, err)
	}
}
