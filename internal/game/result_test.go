package game

import (
	"slices"
	"testing"
)

func players(hands ...[]Card) []*Player {
	ps := make([]*Player, 0, len(hands))
	for _, h := range hands {
		ps = append(ps, NewPlayer(h...))
	}
	return ps
}

func outcomes(results []Result) []Outcome {
	out := make([]Outcome, 0, len(results))
	for _, r := range results {
		out = append(out, r.Outcome)
	}
	return out
}

func TestRank(t *testing.T) {
	tests := []struct {
		name    string
		players []*Player
		want    []Outcome
	}{
		{
			name:    "highest wins",
			players: players(hand(Ten, Eight), hand(Ten, Seven)),
			want:    []Outcome{OutcomeWinner, OutcomeNone},
		},
		{
			name:    "tie gives two winners",
			players: players(hand(Ten, Nine), hand(Nine, Queen), hand(Two, Three)),
			want:    []Outcome{OutcomeWinner, OutcomeWinner, OutcomeNone},
		},
		{
			name:    "blackjack outranks winner",
			players: players(hand(Ace, King), hand(Seven, Seven, Seven)),
			want:    []Outcome{OutcomeBlackjack, OutcomeWinner},
		},
		{
			name:    "everyone bust",
			players: players(hand(Ten, Ten, Five), hand(King, Queen, Two)),
			want:    []Outcome{OutcomeBust, OutcomeBust},
		},
		{
			name:    "bust caps best at 21",
			players: players(hand(Ten, Ten, Five), hand(Ten, Eight)),
			want:    []Outcome{OutcomeBust, OutcomeNone},
		},
		{
			name:    "three card 21 is a plain win",
			players: players(hand(Ace, Ace, Nine), hand(Ten, Ten, Two)),
			want:    []Outcome{OutcomeWinner, OutcomeBust},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outcomes(Rank(tt.players))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRankScoresAndIndexes(t *testing.T) {
	results := Rank(players(hand(Ace, Ace, Nine), hand(Ten, Ten, Five)))

	if results[0].Index != 0 || results[0].Score != 21 {
		t.Fatalf("unexpected first result %+v", results[0])
	}
	if results[1].Index != 1 || results[1].Score != 25 {
		t.Fatalf("unexpected second result %+v", results[1])
	}
}

func TestBestScore(t *testing.T) {
	if got := BestScore(players(hand(Ten, Eight), hand(Six, Six))); got != 18 {
		t.Fatalf("expected 18, got %d", got)
	}
	if got := BestScore(players(hand(Ten, Ten, Five))); got != 21 {
		t.Fatalf("expected bust capped to 21, got %d", got)
	}
	if got := BestScore(nil); got != 0 {
		t.Fatalf("expected 0 for no players, got %d", got)
	}
}

func TestWinners(t *testing.T) {
	results := Rank(players(hand(Ace, King), hand(Ten, Ten, Ace), hand(Two, Two)))
	if got := Winners(results); !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("expected winners [0 1], got %v", got)
	}
}

func TestSessionResults(t *testing.T) {
	s := table(nil, hand(Ten, Nine), hand(Ten, Seven))
	s.Stop(0)
	s.Stop(1)

	got := outcomes(s.Results())
	if !slices.Equal(got, []Outcome{OutcomeWinner, OutcomeNone}) {
		t.Fatalf("unexpected outcomes %v", got)
	}
}
