package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// WildCard is colourless; the player who lays it picks the next colour.
type WildCard struct{}

func NewWildCard() WildCard {
	return WildCard{}
}

func (c WildCard) Kind() Kind {
	return KindWild
}

func (c WildCard) Actions() []action.Action {
	return []action.Action{
		action.NewPickColorAction(),
	}
}

func (c WildCard) Color() color.Color {
	return nil
}

func (c WildCard) Equal(other Card) bool {
	_, kindMatched := other.(WildCard)
	return kindMatched
}

func (c WildCard) Hash() uint64 {
	return hashFields(KindWild, nil, noNumber)
}

func (c WildCard) String() string {
	return "(*)"
}
