package color_test

import (
	"testing"

	"github.com/ratel-online/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	t.Run("finds_every_card_colour", func(t *testing.T) {
		for _, cardColor := range color.All() {
			found, err := color.ByName(cardColor.Name())
			require.NoError(t, err)
			require.Equal(t, cardColor, found)
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := color.ByName("purple")
		require.Error(t, err)
	})
}

func TestValid(t *testing.T) {
	for _, cardColor := range color.All() {
		require.True(t, color.Valid(cardColor))
	}
	require.False(t, color.Valid(nil))
}

func TestAll(t *testing.T) {
	require.Equal(t, []color.Color{color.Red, color.Green, color.Yellow, color.Blue}, color.All())
}
