package redis

import (
	"context"
	"sync"
	"time"

	"AutoPartsBot/internal/entity"
)

// memoryStore is an ISessionStore backed by a map. It exists for tests and
// for running without a Redis instance.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func NewMemoryStore() ISessionStore {
	return &memoryStore{sessions: make(map[string][]byte)}
}

func (m *memoryStore) Get(ctx context.Context, sessionID string) (*entity.SessionContext, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, ok := m.sessions[sessionID]
	if !ok {
		return entity.NewSessionContext(sessionID), nil
	}

	session := new(entity.SessionContext)
	if err := json.Unmarshal(blob, session); err != nil {
		return entity.NewSessionContext(sessionID), nil
	}
	return session, nil
}

func (m *memoryStore) Save(ctx context.Context, session *entity.SessionContext) error {
	session.UpdatedAt = time.Now()

	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = blob
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
