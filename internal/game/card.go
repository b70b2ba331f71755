package game

type Suit int

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
	Joker
)

var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "◆",
	Joker:   "🃏",
}

func (s Suit) String() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

type Face int

const (
	Ace Face = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	JokerB
	JokerC
)

var faceNames = map[Face]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K",
	JokerB: "JOKER-B", JokerC: "JOKER-C",
}

func (f Face) String() string {
	if name, ok := faceNames[f]; ok {
		return name
	}
	return "?"
}

// IsTen reports whether the face counts as ten: 10, J, Q or K.
func (f Face) IsTen() bool {
	return f >= Ten && f <= King
}

// Card is passed by value. Use WithAltValue rather than setting AltValue.
type Card struct {
	Suit Suit
	Face Face
	// AltValue overrides the value of an Ace. Nothing in the game sets it.
	AltValue *int
}

func NewCard(suit Suit, face Face) Card {
	return Card{Suit: suit, Face: face}
}

// WithAltValue returns a copy of the card with its Ace value overridden.
func (c Card) WithAltValue(v int) Card {
	c.AltValue = &v
	return c
}

func (c Card) IsJoker() bool {
	return c.Face == JokerB || c.Face == JokerC
}

// Value is the card's soft value: Ace 11 unless overridden, jokers 0.
func (c Card) Value() int {
	switch {
	case c.IsJoker():
		return 0
	case c.Face == Ace:
		if c.AltValue != nil {
			return *c.AltValue
		}
		return 11
	case c.Face.IsTen():
		return 10
	default:
		return int(c.Face)
	}
}

func (c Card) String() string {
	return c.Suit.String() + c.Face.String()
}
