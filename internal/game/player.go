package game

// Player is one seat at the table.
type Player struct {
	Hand    []Card
	Stopped bool
}

func NewPlayer(cards ...Card) *Player {
	p := &Player{
		Hand: make([]Card, 0, 10),
	}
	p.Hand = append(p.Hand, cards...)
	return p
}

func (p *Player) Score() int {
	return CalculateScore(p.Hand)
}

func (p *Player) IsBust() bool {
	return IsBust(p.Hand)
}

func (p *Player) IsBlackjack() bool {
	return IsBlackjack(p.Hand)
}

// Active reports whether the player still takes turns.
func (p *Player) Active() bool {
	return !p.Stopped
}
