package card

import "errors"

var (
	// ErrTypeMismatch is returned when a supplied value is not a member of
	// its declared domain: an unknown Kind or a colour outside the four
	// card colours.
	ErrTypeMismatch = errors.New("value is not a member of its domain")

	// ErrNumberRange is returned when a card number falls outside 0-9.
	ErrNumberRange = errors.New("card number must be a single digit between 0 and 9")

	// ErrMissingField is returned when a field required by the card kind is
	// absent.
	ErrMissingField = errors.New("missing required field for card kind")

	// ErrUnexpectedField is returned when a field forbidden by the card
	// kind is present.
	ErrUnexpectedField = errors.New("unexpected field for card kind")

	// ErrIncompatibleComparison is returned by Equals when either operand
	// is not a Card.
	ErrIncompatibleComparison = errors.New("card cannot be compared with a non-card value")
)
