package game

import (
	"github.com/ratel-online/uno/card"
)

// Playable reports whether candidate may legally be placed on current. A
// card is playable when it equals the current card, shares its kind, shares
// its colour, shares its number, or is a wild of either kind.
func Playable(candidate card.Card, current card.Card) bool {
	if candidate.Equal(current) {
		return true
	}
	if candidate.Kind() == current.Kind() {
		return true
	}
	if candidateColor := candidate.Color(); candidateColor != nil && candidateColor == current.Color() {
		return true
	}
	if candidateNumber, ok := cardNumber(candidate); ok {
		if currentNumber, ok := cardNumber(current); ok && candidateNumber == currentNumber {
			return true
		}
	}
	switch candidate.Kind() {
	case card.KindWild, card.KindWildDrawFour:
		return true
	}
	return false
}

func cardNumber(c card.Card) (int, bool) {
	numberCard, ok := c.(card.NumberCard)
	if !ok {
		return 0, false
	}
	return numberCard.Number(), true
}
