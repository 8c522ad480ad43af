package cache

import (
	"context"
	"errors"
	"time"
)

const defaultSessionPrefix = "sess:"

// SessionStorage stores fiber sessions in Redis. It satisfies fiber.Storage.
type SessionStorage struct {
	cache   *RedisCache
	prefix  string
	timeout time.Duration
}

// NewSessionStorage creates a session store on top of an open RedisCache
func NewSessionStorage(cache *RedisCache, prefix string) *SessionStorage {
	if prefix == "" {
		prefix = defaultSessionPrefix
	}
	return &SessionStorage{
		cache:   cache,
		prefix:  prefix,
		timeout: 3 * time.Second,
	}
}

func (s *SessionStorage) key(id string) string {
	return s.prefix + id
}

// Get returns nil, nil when the session does not exist
func (s *SessionStorage) Get(id string) ([]byte, error) {
	if id == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	val, err := s.cache.GetBytes(ctx, s.key(id))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return val, err
}

func (s *SessionStorage) Set(id string, val []byte, exp time.Duration) error {
	if id == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	return s.cache.Set(ctx, s.key(id), val, exp)
}

func (s *SessionStorage) Delete(id string) error {
	if id == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	return s.cache.Delete(ctx, s.key(id))
}

// Reset drops every stored session
func (s *SessionStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.cache.DeletePattern(ctx, s.prefix+"*")
}

func (s *SessionStorage) Close() error {
	return s.cache.Close()
}
