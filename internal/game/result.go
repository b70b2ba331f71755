package game

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWinner
	OutcomeBlackjack
	OutcomeBust
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWinner:
		return "winner"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeBust:
		return "bust"
	default:
		return "none"
	}
}

type Result struct {
	Index   int
	Score   int
	Outcome Outcome
}

// BestScore is the highest score at the table with every score capped at
// 21. A bust therefore counts as 21 here.
func BestScore(players []*Player) int {
	best := 0
	for _, p := range players {
		best = max(best, min(p.Score(), BlackjackScore))
	}
	return best
}

// Rank labels every player. Winners are the players who did not bust and
// hold BestScore; ties all win. Blackjack outranks a plain win.
func Rank(players []*Player) []Result {
	best := BestScore(players)

	results := make([]Result, 0, len(players))
	for i, p := range players {
		score := p.Score()

		outcome := OutcomeNone
		switch {
		case p.IsBlackjack():
			outcome = OutcomeBlackjack
		case score <= BlackjackScore && score == best:
			outcome = OutcomeWinner
		case score > BlackjackScore:
			outcome = OutcomeBust
		}

		results = append(results, Result{Index: i, Score: score, Outcome: outcome})
	}
	return results
}

// Winners returns the indexes of players who won or hit blackjack.
func Winners(results []Result) []int {
	var idx []int
	for _, r := range results {
		if r.Outcome == OutcomeWinner || r.Outcome == OutcomeBlackjack {
			idx = append(idx, r.Index)
		}
	}
	return idx
}
