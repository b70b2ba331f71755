package game

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	MinPlayers = 2
	MaxPlayers = 6

	initialCards = 2
)

// ClampPlayers forces a player count into [MinPlayers, MaxPlayers].
func ClampPlayers(n int) int {
	if n < MinPlayers {
		return MinPlayers
	}
	if n > MaxPlayers {
		return MaxPlayers
	}
	return n
}

type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "in progress"
}

// Session holds one round of play. It is not safe for concurrent use.
type Session struct {
	ID      string
	Deck    *Deck
	Players []*Player
	Current int
	Ended   bool

	rng *rand.Rand
}

// NewSession deals a fresh round for playerCount players. r seeds the
// shuffles of this and every later round; nil uses the global source.
func NewSession(playerCount int, r *rand.Rand) *Session {
	s := &Session{rng: r}
	s.Reset(playerCount)
	return s
}

// Reset throws away the current round and deals a new one.
func (s *Session) Reset(playerCount int) {
	playerCount = ClampPlayers(playerCount)

	s.ID = uuid.New().String()
	s.Deck = NewDeck(s.rng)
	s.Players = make([]*Player, 0, playerCount)
	s.Current = 0
	s.Ended = false

	for i := 0; i < playerCount; i++ {
		p := NewPlayer()
		for j := 0; j < initialCards; j++ {
			if card, ok := s.Deck.Draw(); ok {
				p.Hand = append(p.Hand, card)
			}
		}
		s.Players = append(s.Players, p)
	}
}

func (s *Session) player(index int) *Player {
	if index < 0 || index >= len(s.Players) {
		return nil
	}
	return s.Players[index]
}

// Draw gives the player the front card of the deck, stops them if they
// bust and passes the turn. A stopped player, an empty deck or an unknown
// index make it a no-op and it returns false.
func (s *Session) Draw(index int) bool {
	p := s.player(index)
	if p == nil || p.Stopped {
		return false
	}

	card, ok := s.Deck.Draw()
	if !ok {
		return false
	}

	p.Hand = append(p.Hand, card)
	if p.Score() > BlackjackScore {
		p.Stopped = true
	}

	s.advanceTurn()
	return true
}

// Stop marks the player as done and passes the turn. It returns false only
// for an unknown index.
func (s *Session) Stop(index int) bool {
	p := s.player(index)
	if p == nil {
		return false
	}

	p.Stopped = true
	s.advanceTurn()
	return true
}

// CurrentPlayer returns the player whose turn it is, or nil once the round
// has ended.
func (s *Session) CurrentPlayer() *Player {
	if s.Ended {
		return nil
	}
	return s.player(s.Current)
}

func (s *Session) PlayerCount() int {
	return len(s.Players)
}

func (s *Session) Phase() Phase {
	if s.Ended {
		return PhaseEnded
	}
	return PhaseInProgress
}

// Results ranks the players. Only meaningful once the round has ended but
// safe to call at any time.
func (s *Session) Results() []Result {
	return Rank(s.Players)
}
