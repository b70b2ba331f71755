package game

const BlackjackScore = 21

func CalculateScore(hand []Card) int {
	score := 0
	aces := 0

	for _, card := range hand {
		score += card.Value()
		if card.Face == Ace {
			aces++
		}
	}

	for score > BlackjackScore && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

func IsBlackjack(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}

	if CalculateScore(cards) != BlackjackScore {
		return false
	}

	hasAce, hasTen := false, false
	for _, card := range cards {
		if card.Face == Ace {
			hasAce = true
		}
		if card.Face.IsTen() {
			hasTen = true
		}
	}

	return hasAce && hasTen
}

func IsBust(cards []Card) bool {
	return CalculateScore(cards) > BlackjackScore
}
