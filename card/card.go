package card

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// Kind enumerates the closed set of card kinds.
type Kind int

const (
	KindNumber Kind = iota
	KindSkip
	KindDrawTwo
	KindReverse
	KindWild
	KindWildDrawFour
)

// Valid reports whether k is a known card kind.
func (k Kind) Valid() bool {
	return k >= KindNumber && k <= KindWildDrawFour
}

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSkip:
		return "skip"
	case KindDrawTwo:
		return "drawTwo"
	case KindReverse:
		return "reverse"
	case KindWild:
		return "wild"
	case KindWildDrawFour:
		return "wildDrawFour"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindByName returns the Kind with the given String form.
func KindByName(name string) (Kind, error) {
	for kind := KindNumber; kind <= KindWildDrawFour; kind++ {
		if kind.String() == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown card kind '%s'", ErrTypeMismatch, name)
}

// Card is a single immutable playing card. Color returns nil when the card
// carries no colour. Equal and Hash agree: equal cards hash identically.
type Card interface {
	Kind() Kind
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	Hash() uint64
	String() string
}

// Equals compares two arbitrary values as cards. It fails with
// ErrIncompatibleComparison when either value is not a Card.
func Equals(a, b interface{}) (bool, error) {
	cardA, okA := a.(Card)
	cardB, okB := b.(Card)
	if !okA || !okB {
		return false, fmt.Errorf("%w: got %T and %T", ErrIncompatibleComparison, a, b)
	}
	return cardA.Equal(cardB), nil
}

const noNumber = -1

// hashFields folds the identifying (kind, colour, number) triple of a card.
// Kinds without a number pass noNumber.
func hashFields(kind Kind, cardColor color.Color, number int) uint64 {
	h := fnv.New64a()
	h.Write([]byte(kind.String()))
	h.Write([]byte{'/'})
	if cardColor != nil {
		h.Write([]byte(cardColor.Name()))
	}
	h.Write([]byte{'/'})
	h.Write([]byte(strconv.Itoa(number)))
	return h.Sum64()
}
