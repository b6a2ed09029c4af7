package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// ColoredCard wraps a wild card with the colour its player picked, so the
// play rules can match the chosen colour. Equality and hashing ignore the
// picked colour and follow the wrapped card.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Kind() Kind {
	return c.card.Kind()
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

func (c ColoredCard) Hash() uint64 {
	return c.card.Hash()
}

func (c ColoredCard) String() string {
	return c.color.Paint(c.card.String())
}
