package card_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("builds_every_valid_number_card", func(t *testing.T) {
		for _, cardColor := range color.All() {
			for number := 0; number <= 9; number++ {
				built, err := card.New(card.KindNumber, card.WithColor(cardColor), card.WithNumber(number))
				require.NoError(t, err)
				require.Equal(t, card.KindNumber, built.Kind())
				require.Equal(t, cardColor, built.Color())
				require.Equal(t, number, built.(card.NumberCard).Number())
			}
		}
	})

	t.Run("builds_action_cards_with_or_without_colour", func(t *testing.T) {
		for _, kind := range []card.Kind{card.KindSkip, card.KindDrawTwo, card.KindReverse} {
			colored, err := card.New(kind, card.WithColor(color.Green))
			require.NoError(t, err)
			require.Equal(t, kind, colored.Kind())
			require.Equal(t, color.Green, colored.Color())

			colorless, err := card.New(kind)
			require.NoError(t, err)
			require.Nil(t, colorless.Color())
		}
	})

	t.Run("builds_colourless_wild_cards", func(t *testing.T) {
		wild, err := card.New(card.KindWild)
		require.NoError(t, err)
		require.Equal(t, card.KindWild, wild.Kind())
		require.Nil(t, wild.Color())

		wildDrawFour, err := card.New(card.KindWildDrawFour)
		require.NoError(t, err)
		require.Equal(t, card.KindWildDrawFour, wildDrawFour.Kind())
		require.Nil(t, wildDrawFour.Color())
	})

	scenarios := []struct {
		description string
		kind        card.Kind
		opts        []card.Option
		expectedErr error
	}{
		{
			description: "number_card_without_colour",
			kind:        card.KindNumber,
			opts:        []card.Option{card.WithNumber(5)},
			expectedErr: card.ErrMissingField,
		},
		{
			description: "number_card_without_number",
			kind:        card.KindNumber,
			opts:        []card.Option{card.WithColor(color.Red)},
			expectedErr: card.ErrMissingField,
		},
		{
			description: "number_card_with_number_ten",
			kind:        card.KindNumber,
			opts:        []card.Option{card.WithColor(color.Red), card.WithNumber(10)},
			expectedErr: card.ErrNumberRange,
		},
		{
			description: "number_card_with_negative_number",
			kind:        card.KindNumber,
			opts:        []card.Option{card.WithColor(color.Red), card.WithNumber(-1)},
			expectedErr: card.ErrNumberRange,
		},
		{
			description: "skip_card_with_number",
			kind:        card.KindSkip,
			opts:        []card.Option{card.WithColor(color.Blue), card.WithNumber(3)},
			expectedErr: card.ErrUnexpectedField,
		},
		{
			description: "draw_two_card_with_number",
			kind:        card.KindDrawTwo,
			opts:        []card.Option{card.WithNumber(3)},
			expectedErr: card.ErrUnexpectedField,
		},
		{
			description: "reverse_card_with_number",
			kind:        card.KindReverse,
			opts:        []card.Option{card.WithNumber(3)},
			expectedErr: card.ErrUnexpectedField,
		},
		{
			description: "wild_card_with_colour",
			kind:        card.KindWild,
			opts:        []card.Option{card.WithColor(color.Yellow)},
			expectedErr: card.ErrUnexpectedField,
		},
		{
			description: "wild_card_with_number",
			kind:        card.KindWild,
			opts:        []card.Option{card.WithNumber(4)},
			expectedErr: card.ErrUnexpectedField,
		},
		{
			description: "wild_draw_four_card_with_colour",
			kind:        card.KindWildDrawFour,
			opts:        []card.Option{card.WithColor(color.Yellow)},
			expectedErr: card.ErrUnexpectedField,
		},
		{
			description: "wild_draw_four_card_with_number",
			kind:        card.KindWildDrawFour,
			opts:        []card.Option{card.WithNumber(4)},
			expectedErr: card.ErrUnexpectedField,
		},
		{
			description: "unknown_kind",
			kind:        card.Kind(42),
			expectedErr: card.ErrTypeMismatch,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := card.New(scenario.kind, scenario.opts...)
			require.ErrorIs(t, err, scenario.expectedErr)
		})
	}
}

func TestNewNumberCard(t *testing.T) {
	t.Run("rejects_out_of_range_numbers", func(t *testing.T) {
		_, err := card.NewNumberCard(color.Red, 10)
		require.ErrorIs(t, err, card.ErrNumberRange)
		_, err = card.NewNumberCard(color.Red, -1)
		require.ErrorIs(t, err, card.ErrNumberRange)
	})

	t.Run("rejects_a_missing_colour", func(t *testing.T) {
		_, err := card.NewNumberCard(nil, 5)
		require.ErrorIs(t, err, card.ErrMissingField)
	})
}

func TestEqual(t *testing.T) {
	redFive := numberCard(t, color.Red, 5)

	t.Run("cards_with_identical_fields_are_equal", func(t *testing.T) {
		require.True(t, redFive.Equal(numberCard(t, color.Red, 5)))
		require.True(t, card.NewSkipCard(color.Blue).Equal(card.NewSkipCard(color.Blue)))
		require.True(t, card.NewWildCard().Equal(card.NewWildCard()))
	})

	t.Run("cards_differing_in_any_field_are_unequal", func(t *testing.T) {
		require.False(t, redFive.Equal(numberCard(t, color.Blue, 5)))
		require.False(t, redFive.Equal(numberCard(t, color.Red, 6)))
		require.False(t, redFive.Equal(card.NewSkipCard(color.Red)))
		require.False(t, card.NewSkipCard(color.Blue).Equal(card.NewSkipCard(color.Green)))
		require.False(t, card.NewWildCard().Equal(card.NewWildDrawFourCard()))
	})
}

func TestEquals(t *testing.T) {
	redFive := numberCard(t, color.Red, 5)

	t.Run("compares_two_cards", func(t *testing.T) {
		equal, err := card.Equals(redFive, numberCard(t, color.Red, 5))
		require.NoError(t, err)
		require.True(t, equal)

		equal, err = card.Equals(redFive, card.NewWildCard())
		require.NoError(t, err)
		require.False(t, equal)
	})

	t.Run("fails_against_non_card_values", func(t *testing.T) {
		_, err := card.Equals(redFive, "red five")
		require.ErrorIs(t, err, card.ErrIncompatibleComparison)

		_, err = card.Equals(42, redFive)
		require.ErrorIs(t, err, card.ErrIncompatibleComparison)
	})
}

func TestHash(t *testing.T) {
	t.Run("equal_cards_hash_equal", func(t *testing.T) {
		require.Equal(t, numberCard(t, color.Red, 5).Hash(), numberCard(t, color.Red, 5).Hash())
		require.Equal(t, card.NewSkipCard(color.Blue).Hash(), card.NewSkipCard(color.Blue).Hash())
		require.Equal(t, card.NewWildCard().Hash(), card.NewWildCard().Hash())
	})

	t.Run("differing_cards_hash_differently", func(t *testing.T) {
		redFive := numberCard(t, color.Red, 5)
		require.NotEqual(t, redFive.Hash(), numberCard(t, color.Blue, 5).Hash())
		require.NotEqual(t, redFive.Hash(), numberCard(t, color.Red, 6).Hash())
		require.NotEqual(t, redFive.Hash(), card.NewSkipCard(color.Red).Hash())
		require.NotEqual(t, card.NewWildCard().Hash(), card.NewWildDrawFourCard().Hash())
	})

	t.Run("a_colored_wild_hashes_as_its_wrapped_card", func(t *testing.T) {
		wild := card.NewWildCard()
		require.Equal(t, wild.Hash(), card.NewColoredCard(wild, color.Blue).Hash())
	})
}

func TestKindByName(t *testing.T) {
	for kind := card.KindNumber; kind <= card.KindWildDrawFour; kind++ {
		found, err := card.KindByName(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, found)
	}

	_, err := card.KindByName("banana")
	require.ErrorIs(t, err, card.ErrTypeMismatch)
}

func numberCard(t *testing.T, cardColor color.Color, number int) card.NumberCard {
	t.Helper()
	built, err := card.NewNumberCard(cardColor, number)
	require.NoError(t, err)
	return built
}
