package game

import (
	"errors"
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// ErrEmptyDeck is returned by Draw once every card has been dispensed.
var ErrEmptyDeck = errors.New("no cards are left in the deck")

// ErrUnsupportedSize is returned by NewDeck for an unrecognized deck size.
var ErrUnsupportedSize = errors.New("this deck size is not supported")

// DeckSize selects the deck composition for a game mode.
type DeckSize int

const (
	// DeckSizeNormal is the composition used in a standard game.
	DeckSizeNormal DeckSize = iota
)

// Deck is the ordered collection of cards for one round. The composition
// for a given size is deterministic; shuffling, when wanted, is the
// caller's job.
type Deck struct {
	cards []card.Card
}

func NewDeck(size DeckSize) (*Deck, error) {
	switch size {
	case DeckSizeNormal:
		cards, err := buildNormalDeck()
		if err != nil {
			return nil, err
		}
		return &Deck{cards: cards}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
}

// buildNormalDeck lays out, per colour: two zeros, two of each number 1-9,
// two each of skip, draw-two and reverse, then four wilds and four wild
// draw-fours. The wild block sits inside the colour loop, so the full deck
// holds sixteen of each wild kind, 136 cards in all.
func buildNormalDeck() ([]card.Card, error) {
	cards := make([]card.Card, 0, 136)
	for _, cardColor := range color.All() {
		zeroCard, err := card.NewNumberCard(cardColor, 0)
		if err != nil {
			return nil, err
		}
		cards = append(cards, zeroCard, zeroCard)

		for number := 1; number <= 9; number++ {
			numberCard, err := card.NewNumberCard(cardColor, number)
			if err != nil {
				return nil, err
			}
			cards = append(cards, numberCard, numberCard)
		}

		skipCard := card.NewSkipCard(cardColor)
		drawTwoCard := card.NewDrawTwoCard(cardColor)
		reverseCard := card.NewReverseCard(cardColor)
		cards = append(cards,
			skipCard, skipCard,
			drawTwoCard, drawTwoCard,
			reverseCard, reverseCard,
		)

		for i := 0; i < 4; i++ {
			cards = append(cards, card.NewWildCard())
		}
		for i := 0; i < 4; i++ {
			cards = append(cards, card.NewWildDrawFourCard())
		}
	}
	return cards, nil
}

// Draw removes and returns the top card, the most recently appended one.
func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmptyDeck
	}
	topCard := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return topCard, nil
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}
