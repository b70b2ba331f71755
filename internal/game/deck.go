package game

import "math/rand"

const DeckSize = 54

var (
	deckSuits = []Suit{Spade, Heart, Club, Diamond}
	deckFaces = []Face{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

type Deck struct {
	cards []Card
}

// NewDeck builds the 52 standard cards plus two jokers and shuffles them.
// A nil r shuffles with the global source.
func NewDeck(r *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
	}

	for _, suit := range deckSuits {
		for _, face := range deckFaces {
			d.cards = append(d.cards, NewCard(suit, face))
		}
	}
	d.cards = append(d.cards, NewCard(Joker, JokerB), NewCard(Joker, JokerC))

	d.Shuffle(r)
	return d
}

func (d *Deck) Shuffle(r *rand.Rand) {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if r == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	r.Shuffle(len(d.cards), swap)
}

// Draw takes the front card. It reports false once the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns the remaining cards front first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
