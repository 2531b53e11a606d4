package storage

import (
	"slices"
	"sync"

	"github.com/mercalabs/shelfscan/internal/models"
)

type SessionStore struct {
	sessions map[string]*models.ScanSession
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.ScanSession),
	}
}

func (s *SessionStore) Get(sessionID string) (*models.ScanSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *models.ScanSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
}

// List returns the sessions sorted newest first.
func (s *SessionStore) List() []*models.ScanSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.ScanSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, session)
	}
	slices.SortFunc(result, func(a, b *models.ScanSession) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
