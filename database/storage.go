package database

import (
	"github.com/gofiber/fiber/v2/log"
)

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// Repositories exposes one repository per collection
	Repositories() *Repositories
}

// MemoryStore keeps everything in process memory. Data is lost on restart;
// it serves local development (DB_DRIVER=memory) and tests.
type MemoryStore struct {
	repos *Repositories
}

// StartMemory creates an empty in-memory store
func StartMemory() *MemoryStore {
	log.Warn("Using in-memory storage; content will not survive a restart")
	return &MemoryStore{repos: NewMemoryRepositories()}
}

func (s *MemoryStore) Init() error { return nil }
func (s *MemoryStore) Close() error { return nil }
func (s *MemoryStore) HealthCheck() error { return nil }
func (s *MemoryStore) Repositories() *Repositories { return s.repos }
