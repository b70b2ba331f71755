package game

import (
	"math/rand"
	"sync"
)

// Manager keeps one session per chat.
type Manager struct {
	games map[int64]*Session
	mu    sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		games: make(map[int64]*Session),
	}
}

func (m *Manager) Get(chatID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.games[chatID]
}

func (m *Manager) Set(chatID int64, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[chatID] = s
}

// Start deals a new session for the chat, replacing any previous one, and
// runs fn on it before releasing the lock. fn may be nil. Sessions created
// here share r, which the manager lock protects.
func (m *Manager) Start(chatID int64, playerCount int, r *rand.Rand, fn func(s *Session)) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := NewSession(playerCount, r)
	m.games[chatID] = s
	if fn != nil {
		fn(s)
	}
	return s
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, chatID)
}

// Do runs fn on the chat's session while holding the manager lock, so
// actions never interleave. It returns false without calling fn when the
// chat has no session.
func (m *Manager) Do(chatID int64, fn func(s *Session)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.games[chatID]
	if !ok {
		return false
	}
	fn(s)
	return true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
