package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

type entry struct {
	wizard     *wizard.Service
	lastAccess time.Time
}

// Store хранит сессии визарда в памяти.
// Сессия живет ttl с момента последнего обращения, просроченные удаляет janitor (Run).
type Store struct {
	ttl         time.Duration
	maxSessions int
	metrics     MetricsRecorder
	logger      Logger
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewStore создает хранилище. maxSessions = 0 означает без ограничения
func NewStore(ttl time.Duration, maxSessions int, metrics MetricsRecorder, logger Logger) *Store {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Store{
		ttl:         ttl,
		maxSessions: maxSessions,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
		sessions:    make(map[string]*entry),
	}
}

// Create регистрирует визард и возвращает id новой сессии
func (s *Store) Create(w *wizard.Service) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		// перед отказом пробуем освободить место от просроченных
		if s.evictLocked() == 0 {
			s.logger.Warn("SessionStore.Create: limit of %d sessions reached", s.maxSessions)
			return "", ErrTooManySessions
		}
	}

	id := uuid.NewString()
	s.sessions[id] = &entry{wizard: w, lastAccess: s.now()}
	s.metrics.SetActiveSessions(len(s.sessions))
	return id, nil
}

// Get возвращает визард сессии и продлевает ее жизнь
func (s *Store) Get(id string) (*wizard.Service, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := s.now()
	if s.expired(e, now) {
		delete(s.sessions, id)
		s.metrics.SetActiveSessions(len(s.sessions))
		return nil, ErrSessionExpired
	}

	e.lastAccess = now
	return e.wizard, nil
}

// Delete удаляет сессию, отсутствие сессии не ошибка
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	s.metrics.SetActiveSessions(len(s.sessions))
}

// Len количество сессий, включая еще не удаленные просроченные
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictExpired удаляет просроченные сессии и возвращает их количество
func (s *Store) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked()
}

// Run запускает периодическую очистку до отмены контекста
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictExpired(); n > 0 {
				s.logger.Info("SessionStore.Run: evicted %d expired sessions", n)
			}
		}
	}
}

func (s *Store) evictLocked() int {
	now := s.now()
	evicted := 0
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.metrics.SetActiveSessions(len(s.sessions))
	}
	return evicted
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastAccess) > s.ttl
}
