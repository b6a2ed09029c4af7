package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// SkipCard makes the next player lose their turn. The colour may be nil.
type SkipCard struct {
	color color.Color
}

func NewSkipCard(cardColor color.Color) SkipCard {
	return SkipCard{color: cardColor}
}

func (c SkipCard) Kind() Kind {
	return KindSkip
}

func (c SkipCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
	}
}

func (c SkipCard) Color() color.Color {
	return c.color
}

func (c SkipCard) Equal(other Card) bool {
	_, kindMatched := other.(SkipCard)
	return kindMatched && c.color == other.Color()
}

func (c SkipCard) Hash() uint64 {
	return hashFields(KindSkip, c.color, noNumber)
}

func (c SkipCard) String() string {
	if c.color == nil {
		return "(/)"
	}
	return c.color.Paint("(/)")
}
