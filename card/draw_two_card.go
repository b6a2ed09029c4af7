package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// DrawTwoCard makes the next player draw two cards and lose their turn.
// The colour may be nil.
type DrawTwoCard struct {
	color color.Color
}

func NewDrawTwoCard(cardColor color.Color) DrawTwoCard {
	return DrawTwoCard{color: cardColor}
}

func (c DrawTwoCard) Kind() Kind {
	return KindDrawTwo
}

func (c DrawTwoCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(2),
	}
}

func (c DrawTwoCard) Color() color.Color {
	return c.color
}

func (c DrawTwoCard) Equal(other Card) bool {
	_, kindMatched := other.(DrawTwoCard)
	return kindMatched && c.color == other.Color()
}

func (c DrawTwoCard) Hash() uint64 {
	return hashFields(KindDrawTwo, c.color, noNumber)
}

func (c DrawTwoCard) String() string {
	if c.color == nil {
		return "+2!"
	}
	return c.color.Paint("+2!")
}
