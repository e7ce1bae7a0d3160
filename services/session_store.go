package services

import (
	"sync"
	"time"

	"resort-backend/models"
)

// SessionStore keeps the last completed booking per checkout reference so
// the confirmation view renders without another trip to the bookings table.
// Entries expire; this is session storage, not a cache of record.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string]sessionEntry
	ttl     time.Duration
}

type sessionEntry struct {
	booking *models.Booking
	savedAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionStore{
		entries: make(map[string]sessionEntry),
		ttl:     ttl,
	}
}

func (s *SessionStore) Put(reference string, booking *models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for ref, e := range s.entries {
		if now.Sub(e.savedAt) > s.ttl {
			delete(s.entries, ref)
		}
	}
	s.entries[reference] = sessionEntry{booking: booking, savedAt: now}
}

func (s *SessionStore) Get(reference string) (*models.Booking, bool) {
	s.mu.RLock()
	e, ok := s.entries[reference]
	s.mu.RUnlock()
	if !ok || time.Since(e.savedAt) > s.ttl {
		return nil, false
	}
	return e.booking, true
}
