package session

import (
	"sync"

	"chat-with-search/internal/model"
)

// Store owns all conversation memories, keyed by session id.
// Memories live for the process lifetime unless explicitly cleared.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Memory
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Memory),
	}
}

// GetOrCreate returns the memory for the given session id, creating and
// registering an empty one if none exists. Racing creators on the same id
// converge on a single Memory.
func (s *Store) GetOrCreate(sessionID string) *Memory {
	s.mu.RLock()
	mem, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return mem
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if mem, ok := s.sessions[sessionID]; ok {
		return mem
	}
	mem = &Memory{}
	s.sessions[sessionID] = mem
	return mem
}

// Clear removes the memory for the given session id entirely.
// Unknown ids are a no-op, not an error.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Append appends a turn to the session's memory, creating the session
// first if it does not exist yet.
func (s *Store) Append(sessionID string, role model.Role, content string) {
	s.GetOrCreate(sessionID).Append(role, content)
}

// History returns a copy of the session's turns, or nil for unknown ids.
func (s *Store) History(sessionID string) []model.Turn {
	s.mu.RLock()
	mem, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return mem.History()
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Memory is the ordered conversation history of one session.
//
// Two locks with distinct roles: reqMu serializes whole same-session
// requests (held across upstream calls), mu guards the turn slice for
// short reads and writes. Distinct sessions never contend.
type Memory struct {
	reqMu sync.Mutex
	mu    sync.RWMutex
	turns []model.Turn
}

// Acquire takes the per-session request lock and returns its release
// function. Callers hold it for the duration of one orchestration pass.
func (m *Memory) Acquire() func() {
	m.reqMu.Lock()
	return m.reqMu.Unlock
}

// Append adds a turn to the conversation history.
func (m *Memory) Append(role model.Role, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, model.Turn{Role: role, Content: content})
}

// History returns a copy of the turns in order.
func (m *Memory) History() []model.Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Len returns the number of stored turns.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.turns)
}
