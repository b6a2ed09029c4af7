package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Color is one of the four card colours. The package exposes exactly four
// values (Red, Green, Yellow, Blue); any other implementation is not a valid
// card colour.
type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction(text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// All returns the four colours in deck-building order.
func All() []Color {
	return []Color{Red, Green, Yellow, Blue}
}

// Valid reports whether c is one of the four package colours.
func Valid(c Color) bool {
	switch c {
	case Red, Green, Yellow, Blue:
		return true
	}
	return false
}

var colors = map[string]Color{
	Red.name:    Red,
	Green.name:  Green,
	Yellow.name: Yellow,
	Blue.name:   Blue,
}

func ByName(name string) (Color, error) {
	color := colors[name]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}
