package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// WildDrawFourCard is colourless; the player who lays it picks the next
// colour and the next player draws four cards and loses their turn.
type WildDrawFourCard struct{}

func NewWildDrawFourCard() WildDrawFourCard {
	return WildDrawFourCard{}
}

func (c WildDrawFourCard) Kind() Kind {
	return KindWildDrawFour
}

func (c WildDrawFourCard) Actions() []action.Action {
	return []action.Action{
		action.NewPickColorAction(),
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(4),
	}
}

func (c WildDrawFourCard) Color() color.Color {
	return nil
}

func (c WildDrawFourCard) Equal(other Card) bool {
	_, kindMatched := other.(WildDrawFourCard)
	return kindMatched
}

func (c WildDrawFourCard) Hash() uint64 {
	return hashFields(KindWildDrawFour, nil, noNumber)
}

func (c WildDrawFourCard) String() string {
	return "+4!"
}
