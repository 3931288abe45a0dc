package repository

import (
	"sync"
	"time"

	"github.com/Stephan2025u/FMS-NEW/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore keeps in-progress assessment sessions in memory. Sessions are
// ephemeral: they become durable only through CreateTestResult, and stale
// ones are discarded without persistence. The mutex guards the map; each
// session is still owned by exactly one flow.
type SessionStore struct {
	log *zap.Logger
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionStore(log *zap.Logger, ttl time.Duration) *SessionStore {
	return &SessionStore{
		log:      log,
		ttl:      ttl,
		sessions: make(map[string]*models.Session),
	}
}

// Start seeds a new session for the client from the catalog and registers it
// under a fresh id.
func (s *SessionStore) Start(clientID string, catalog *models.Catalog) *models.Session {
	session := models.NewSession(clientID, catalog)
	session.ID = uuid.NewString()

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get returns the session or ErrNotFound if it never existed, was submitted,
// was abandoned, or has been swept.
func (s *SessionStore) Get(id string) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, models.ErrNotFound
	}
	return session, nil
}

// Remove discards a session. Called after successful submission and on
// explicit abandonment.
func (s *SessionStore) Remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// StartSweeper runs a background loop that discards sessions untouched for
// longer than the TTL.
func (s *SessionStore) StartSweeper() {
	s.log.Info("Starting assessment session sweeper", zap.Duration("ttl", s.ttl))
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.sweep(time.Now().UTC())
		}
	}()
}

func (s *SessionStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if now.Sub(session.UpdatedAt) > s.ttl {
			s.log.Debug("Discarding abandoned assessment session",
				zap.String("sessionID", id),
				zap.String("clientID", session.ClientID),
			)
			delete(s.sessions, id)
		}
	}
}
