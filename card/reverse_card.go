package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// ReverseCard reverses the direction of play. The colour may be nil.
type ReverseCard struct {
	color color.Color
}

func NewReverseCard(cardColor color.Color) ReverseCard {
	return ReverseCard{color: cardColor}
}

func (c ReverseCard) Kind() Kind {
	return KindReverse
}

func (c ReverseCard) Actions() []action.Action {
	return []action.Action{
		action.NewReverseTurnsAction(),
	}
}

func (c ReverseCard) Color() color.Color {
	return c.color
}

func (c ReverseCard) Equal(other Card) bool {
	_, kindMatched := other.(ReverseCard)
	return kindMatched && c.color == other.Color()
}

func (c ReverseCard) Hash() uint64 {
	return hashFields(KindReverse, c.color, noNumber)
}

func (c ReverseCard) String() string {
	if c.color == nil {
		return "<=>"
	}
	return c.color.Paint("<=>")
}
