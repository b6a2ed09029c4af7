package card

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/uno/card/color"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type cardJSON struct {
	Kind   string `json:"kind"`
	Color  string `json:"color,omitempty"`
	Number *int   `json:"number,omitempty"`
}

// Marshal encodes a card as JSON.
func Marshal(c Card) ([]byte, error) {
	payload := cardJSON{Kind: c.Kind().String()}
	if cardColor := c.Color(); cardColor != nil {
		payload.Color = cardColor.Name()
	}
	if numberCard, ok := c.(NumberCard); ok {
		number := numberCard.Number()
		payload.Number = &number
	}
	return json.Marshal(payload)
}

// Unmarshal decodes a card encoded by Marshal. The payload passes through
// New, so invalid field combinations fail with the construction errors.
// A wild kind carrying a colour decodes as a ColoredCard.
func Unmarshal(data []byte) (Card, error) {
	var payload cardJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	kind, err := KindByName(payload.Kind)
	if err != nil {
		return nil, err
	}

	var cardColor color.Color
	if payload.Color != "" {
		cardColor, err = color.ByName(payload.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' is not a card colour", ErrTypeMismatch, payload.Color)
		}
	}

	if kind == KindWild || kind == KindWildDrawFour {
		wild, err := New(kind, numberOption(payload.Number)...)
		if err != nil {
			return nil, err
		}
		if cardColor != nil {
			return NewColoredCard(wild, cardColor), nil
		}
		return wild, nil
	}

	opts := numberOption(payload.Number)
	if cardColor != nil {
		opts = append(opts, WithColor(cardColor))
	}
	return New(kind, opts...)
}

func numberOption(number *int) []Option {
	if number == nil {
		return nil
	}
	return []Option{WithNumber(*number)}
}
