package game

import (
	"errors"
	"fmt"

	"github.com/ratel-online/uno/card"
)

// ErrIndexOutOfRange is returned by Card for a position outside the hand.
var ErrIndexOutOfRange = errors.New("no card at that position in the hand")

// Hand holds a player's cards in the order they were picked up.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

// Cards returns a copy of the held cards in pick-up order.
func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Card returns the card at the given position.
func (h *Hand) Card(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, fmt.Errorf("%w: index %d, hand size %d", ErrIndexOutOfRange, index, len(h.cards))
	}
	return h.cards[index], nil
}

// PickUp draws one card from the deck and appends it to the hand.
func (h *Hand) PickUp(deck *Deck) error {
	drawnCard, err := deck.Draw()
	if err != nil {
		return err
	}
	h.cards = append(h.cards, drawnCard)
	return nil
}

// CanPlayOn returns the cards that may legally be placed on the current
// top-of-stack card, preserving hand order.
func (h *Hand) CanPlayOn(current card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, current) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes the first card equal to the given one, keeping the
// order of the rest.
func (h *Hand) RemoveCard(card card.Card) {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(card) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return
		}
	}
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}
