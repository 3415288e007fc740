// Package cycle resolves a Gregorian year to its position in the
// sexagenary cycle and the attributes that position carries.
//
// The 60-entry cycle table is the single source of truth for the
// (animal, element, polarity) triple. The classic mod-12 animal and
// mod-10 stem views of the same data are consistency projections and
// live in the tests, not here.
package cycle

import "fmt"

// Epoch anchors position 0 of the cycle. 1984 is a Wood-Yang-Rat year.
const Epoch = 1984

// Animal is one of the twelve branch animals.
type Animal string

const (
	Rat     Animal = "Rat"
	Ox      Animal = "Ox"
	Tiger   Animal = "Tiger"
	Rabbit  Animal = "Rabbit"
	Dragon  Animal = "Dragon"
	Snake   Animal = "Snake"
	Horse   Animal = "Horse"
	Sheep   Animal = "Sheep"
	Monkey  Animal = "Monkey"
	Rooster Animal = "Rooster"
	Dog     Animal = "Dog"
	Pig     Animal = "Pig"
)

// Element is one of the five elements shared by the stem cycle and the
// Mewa color derivations.
type Element string

const (
	Wood  Element = "Wood"
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Metal Element = "Metal"
	Water Element = "Water"
)

// Polarity is the yang/yin half of a heavenly stem.
type Polarity string

const (
	Yang Polarity = "Yang"
	Yin  Polarity = "Yin"
)

// animals lists the twelve branch animals in cycle order from position 0.
var animals = [12]Animal{
	Rat, Ox, Tiger, Rabbit, Dragon, Snake,
	Horse, Sheep, Monkey, Rooster, Dog, Pig,
}

// stems lists the ten heavenly stems in cycle order from position 0.
// Each element appears twice, yang then yin.
var stems = [10]struct {
	Element  Element
	Polarity Polarity
}{
	{Wood, Yang}, {Wood, Yin},
	{Fire, Yang}, {Fire, Yin},
	{Earth, Yang}, {Earth, Yin},
	{Metal, Yang}, {Metal, Yin},
	{Water, Yang}, {Water, Yin},
}

// entry is one row of the sexagenary table.
type entry struct {
	Animal   Animal
	Element  Element
	Polarity Polarity
}

// table is the authoritative 60-entry cycle, built once at process
// start by advancing the stem and branch cycles together.
var table = buildTable()

func buildTable() [60]entry {
	var t [60]entry
	for i := 0; i < 60; i++ {
		s := stems[i%10]
		t[i] = entry{
			Animal:   animals[i%12],
			Element:  s.Element,
			Polarity: s.Polarity,
		}
	}
	return t
}

// Profile is the sexagenary attribution of a single year.
type Profile struct {
	Year     int      `json:"year"`
	Position int      `json:"position"`
	Animal   Animal   `json:"animal"`
	Element  Element  `json:"element"`
	Polarity Polarity `json:"polarity"`
}

// Label composes the traditional name, e.g. "Wood-Yang-Rat".
func (p Profile) Label() string {
	return fmt.Sprintf("%s-%s-%s", p.Element, p.Polarity, p.Animal)
}

// Position maps a year to its cycle position in [0,59]. Defined for
// any integer year; years 60 apart share a position.
func Position(year int) int {
	return ((year-Epoch)%60 + 60) % 60
}

// Resolve returns the full sexagenary profile for a year. Total over
// all integers; the operational 1900-2100 window is enforced upstream
// by the report builder, not here.
func Resolve(year int) Profile {
	pos := Position(year)
	e := table[pos]
	return Profile{
		Year:     year,
		Position: pos,
		Animal:   e.Animal,
		Element:  e.Element,
		Polarity: e.Polarity,
	}
}

// Destroys reports whether a destroys b on the destructive cycle
// Wood→Earth→Water→Fire→Metal→Wood.
func Destroys(a, b Element) bool {
	return destructive[a] == b
}

var destructive = map[Element]Element{
	Wood:  Earth,
	Earth: Water,
	Water: Fire,
	Fire:  Metal,
	Metal: Wood,
}

// Generates reports whether a generates b on the generative cycle
// Wood→Fire→Earth→Metal→Water→Wood.
func Generates(a, b Element) bool {
	return generative[a] == b
}

var generative = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}
