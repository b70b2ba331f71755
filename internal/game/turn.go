package game

// ActiveCount returns how many players have not stopped.
func (s *Session) ActiveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Active() {
			n++
		}
	}
	return n
}

// advanceTurn moves Current to the next active player after it, wrapping
// around. With nobody left to play it ends the round and leaves Current
// where it was.
func (s *Session) advanceTurn() {
	if s.ActiveCount() == 0 {
		s.Ended = true
		return
	}

	n := len(s.Players)
	next := (s.Current + 1) % n
	for s.Players[next].Stopped {
		next = (next + 1) % n
	}
	s.Current = next
}
