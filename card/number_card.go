package card

import (
	"fmt"

	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// NumberCard is a coloured card with a digit from 0 to 9.
type NumberCard struct {
	color  color.Color
	number int
}

func NewNumberCard(cardColor color.Color, number int) (NumberCard, error) {
	if cardColor == nil {
		return NumberCard{}, fmt.Errorf("%w: a number card requires a colour", ErrMissingField)
	}
	if !color.Valid(cardColor) {
		return NumberCard{}, fmt.Errorf("%w: '%s' is not a card colour", ErrTypeMismatch, cardColor.Name())
	}
	if number < 0 || number > 9 {
		return NumberCard{}, fmt.Errorf("%w: got %d", ErrNumberRange, number)
	}
	return NumberCard{color: cardColor, number: number}, nil
}

func (c NumberCard) Kind() Kind {
	return KindNumber
}

func (c NumberCard) Actions() []action.Action {
	return []action.Action{}
}

func (c NumberCard) Color() color.Color {
	return c.color
}

func (c NumberCard) Number() int {
	return c.number
}

func (c NumberCard) Equal(other Card) bool {
	otherNumberCard, kindMatched := other.(NumberCard)
	return kindMatched && c.color == other.Color() && c.number == otherNumberCard.number
}

func (c NumberCard) Hash() uint64 {
	return hashFields(KindNumber, c.color, c.number)
}

func (c NumberCard) String() string {
	return c.color.Paintf("[%d]", c.number)
}
