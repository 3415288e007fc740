// Package mewa converts a sexagenary cycle position into the three
// role-tagged Mewa numbers (Life, Body, Power) with their derived
// color and element.
//
// Only the closed-form rotation is implemented. The explicit 60-row
// tables the tradition publishes for each role are one instantiation
// of it; the tests regenerate those tables from the formula and check
// the documented anchor years.
package mewa

import (
	"fmt"

	"jungtsi/internal/cycle"
)

// Color is one of the six Mewa colors.
type Color string

const (
	White  Color = "White"
	Black  Color = "Black"
	Blue   Color = "Blue"
	Green  Color = "Green"
	Yellow Color = "Yellow"
	Red    Color = "Red"
)

// anchorLife is the Life number assigned to cycle position 0. The Life
// sequence descends 9→1 as the position advances, so position 1 is 9.
const anchorLife = 1

// colors maps Mewa numbers 1..9 (index 0 unused) to their color.
var colors = [10]Color{
	1: White, 2: Black, 3: Blue, 4: Green, 5: Yellow,
	6: White, 7: Red, 8: White, 9: Red,
}

// colorElements maps each color to its element.
var colorElements = map[Color]cycle.Element{
	White:  cycle.Metal,
	Black:  cycle.Water,
	Blue:   cycle.Water,
	Green:  cycle.Wood,
	Yellow: cycle.Earth,
	Red:    cycle.Fire,
}

// Value is a single Mewa number with its derived attributes.
type Value struct {
	Number  int           `json:"number"`
	Color   Color         `json:"color"`
	Element cycle.Element `json:"element"`
}

// Profile holds the three role-tagged Mewa values of one cycle position.
type Profile struct {
	Life  Value `json:"life"`
	Body  Value `json:"body"`
	Power Value `json:"power"`
}

// ColorOf returns the color of a Mewa number. Panics outside 1..9;
// the domain is closed and callers never hold an out-of-range number.
func ColorOf(number int) Color {
	if number < 1 || number > 9 {
		panic(fmt.Sprintf("mewa number %d outside 1..9", number))
	}
	return colors[number]
}

// ElementOf returns the element derived from a Mewa color.
func ElementOf(c Color) cycle.Element {
	return colorElements[c]
}

// Rotate advances a Mewa number by d steps on the 1..9 ring.
func Rotate(x, d int) int {
	return ((x-1+d)%9+9)%9 + 1
}

// valueOf completes a bare number into a full Value.
func valueOf(number int) Value {
	c := ColorOf(number)
	return Value{Number: number, Color: c, Element: ElementOf(c)}
}

// FromPosition derives the Mewa profile of a cycle position in [0,59].
// Life descends one step per position from the anchor; Body and Power
// are +3 rotations of their predecessor.
func FromPosition(position int) Profile {
	life := Rotate(anchorLife, -position)
	body := Rotate(life, 3)
	power := Rotate(body, 3)
	return Profile{
		Life:  valueOf(life),
		Body:  valueOf(body),
		Power: valueOf(power),
	}
}
