package card

import (
	"fmt"

	"github.com/ratel-online/uno/card/color"
)

// Option sets an optional field on a card blueprint passed to New.
type Option func(*blueprint)

type blueprint struct {
	color     color.Color
	number    int
	hasNumber bool
}

func WithColor(cardColor color.Color) Option {
	return func(b *blueprint) {
		b.color = cardColor
	}
}

func WithNumber(number int) Option {
	return func(b *blueprint) {
		b.number = number
		b.hasNumber = true
	}
}

// New builds a card of the given kind from optional colour and number
// fields, validating the combination once. Each kind constrains which
// fields must be present:
//
//	number cards require both a colour and a number;
//	skip, draw-two and reverse cards take an optional colour and no number;
//	wild cards take neither a colour nor a number.
func New(kind Kind, opts ...Option) (Card, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown card kind %d", ErrTypeMismatch, kind)
	}

	var b blueprint
	for _, opt := range opts {
		opt(&b)
	}

	if b.color != nil && !color.Valid(b.color) {
		return nil, fmt.Errorf("%w: '%s' is not a card colour", ErrTypeMismatch, b.color.Name())
	}
	if b.hasNumber && (b.number < 0 || b.number > 9) {
		return nil, fmt.Errorf("%w: got %d", ErrNumberRange, b.number)
	}

	switch kind {
	case KindNumber:
		if b.color == nil {
			return nil, fmt.Errorf("%w: a number card requires a colour", ErrMissingField)
		}
		if !b.hasNumber {
			return nil, fmt.Errorf("%w: a number card requires a number", ErrMissingField)
		}
		return NewNumberCard(b.color, b.number)
	case KindSkip:
		if b.hasNumber {
			return nil, fmt.Errorf("%w: a skip card takes no number", ErrUnexpectedField)
		}
		return NewSkipCard(b.color), nil
	case KindDrawTwo:
		if b.hasNumber {
			return nil, fmt.Errorf("%w: a draw-two card takes no number", ErrUnexpectedField)
		}
		return NewDrawTwoCard(b.color), nil
	case KindReverse:
		if b.hasNumber {
			return nil, fmt.Errorf("%w: a reverse card takes no number", ErrUnexpectedField)
		}
		return NewReverseCard(b.color), nil
	case KindWild:
		if b.color != nil {
			return nil, fmt.Errorf("%w: a wild card takes no colour", ErrUnexpectedField)
		}
		if b.hasNumber {
			return nil, fmt.Errorf("%w: a wild card takes no number", ErrUnexpectedField)
		}
		return NewWildCard(), nil
	case KindWildDrawFour:
		if b.color != nil {
			return nil, fmt.Errorf("%w: a wild draw-four card takes no colour", ErrUnexpectedField)
		}
		if b.hasNumber {
			return nil, fmt.Errorf("%w: a wild draw-four card takes no number", ErrUnexpectedField)
		}
		return NewWildDrawFourCard(), nil
	}
	return nil, fmt.Errorf("%w: unknown card kind %d", ErrTypeMismatch, kind)
}
