package mcp

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"sportlog/internal/domain"
)

// resultTTL bounds how long a rendered tool result is reused. Default date
// ranges follow the clock, so results cannot be kept forever.
const resultTTL = 5 * time.Minute

// Session guards the loaded logbook; tool calls may arrive concurrently
// while the domain model is not safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	book    *domain.Logbook
	logger  *slog.Logger
	results *cache.Cache
}

// NewSession wraps a loaded logbook. The server never modifies it, so
// rendered results are cached per tool and arguments.
func NewSession(book *domain.Logbook, logger *slog.Logger) *Session {
	return &Session{
		book:    book,
		logger:  logger,
		results: cache.New(resultTTL, resultTTL*2),
	}
}

// with runs fn while holding the logbook lock
func (s *Session) with(fn func(book *domain.Logbook) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.book)
}

// render returns the cached output for tool and args or computes it with fn.
// Errors are not cached.
func (s *Session) render(tool string, args any, fn func(book *domain.Logbook) (string, error)) (string, error) {
	key := fmt.Sprintf("%s:%+v", tool, args)
	if cached, found := s.results.Get(key); found {
		s.logger.Debug("tool result from cache", "tool", tool)
		return cached.(string), nil
	}

	var out string
	err := s.with(func(book *domain.Logbook) error {
		var err error
		out, err = fn(book)
		return err
	})
	if err != nil {
		s.logger.Debug("tool failed", "tool", tool, "error", err)
		return "", err
	}

	s.results.Set(key, out, cache.DefaultExpiration)
	return out, nil
}
