package game

import (
	"sync"
	"testing"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	if m.Get(1) != nil {
		t.Fatal("expected no session for a new chat")
	}
	if m.Do(1, func(*Session) { t.Fatal("fn called without a session") }) {
		t.Fatal("expected Do to report a missing session")
	}

	s := NewSession(2, nil)
	m.Set(1, s)
	if m.Get(1) != s || m.Len() != 1 {
		t.Fatal("expected stored session")
	}

	m.Delete(1)
	if m.Get(1) != nil || m.Len() != 0 {
		t.Fatal("expected session to be removed")
	}
}

func TestManagerDoSerializes(t *testing.T) {
	m := NewManager()
	m.Set(7, NewSession(2, nil))

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Do(7, func(s *Session) {
				s.Players[0].Hand = append(s.Players[0].Hand, NewCard(Joker, JokerB))
			})
		}()
	}
	wg.Wait()

	if n := len(m.Get(7).Players[0].Hand); n != 2+workers {
		t.Fatalf("expected %d cards, got %d", 2+workers, n)
	}
}

func TestManagerStart(t *testing.T) {
	m := NewManager()
	first := m.Start(3, 4, nil, nil)
	if m.Get(3) != first || first.PlayerCount() != 4 {
		t.Fatal("expected started session to be stored")
	}

	var seen *Session
	second := m.Start(3, 2, nil, func(s *Session) {
		seen = s
		// the lock is held, so the round cannot have moved on
		if s.Current != 0 || len(s.Players[0].Hand) != 2 {
			t.Fatal("expected a freshly dealt session inside fn")
		}
	})
	if m.Get(3) != second || second == first {
		t.Fatal("expected restart to replace the session")
	}
	if seen != second {
		t.Fatal("expected fn to run on the new session")
	}
}
