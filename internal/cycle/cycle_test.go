package cycle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// animalByMod12 is the classic mod-12 projection of the cycle table
// (1984 mod 12 = 4 → Rat). Test-only cross-check.
var animalByMod12 = map[int]Animal{
	4: Rat, 5: Ox, 6: Tiger, 7: Rabbit, 8: Dragon, 9: Snake,
	10: Horse, 11: Sheep, 0: Monkey, 1: Rooster, 2: Dog, 3: Pig,
}

// stemByMod10 is the classic mod-10 projection (1984 mod 10 = 4 →
// Wood-Yang, 1990 mod 10 = 0 → Metal-Yang). Test-only cross-check.
var stemByMod10 = map[int]struct {
	Element  Element
	Polarity Polarity
}{
	4: {Wood, Yang}, 5: {Wood, Yin},
	6: {Fire, Yang}, 7: {Fire, Yin},
	8: {Earth, Yang}, 9: {Earth, Yin},
	0: {Metal, Yang}, 1: {Metal, Yin},
	2: {Water, Yang}, 3: {Water, Yin},
}

func TestResolve_Anchors(t *testing.T) {
	tests := []struct {
		year     int
		position int
		label    string
	}{
		{1984, 0, "Wood-Yang-Rat"},
		{1990, 6, "Metal-Yang-Horse"},
		{2024, 40, "Wood-Yang-Dragon"},
		{1924, 0, "Wood-Yang-Rat"},
		{2044, 0, "Wood-Yang-Rat"},
	}
	for _, tt := range tests {
		p := Resolve(tt.year)
		if p.Position != tt.position {
			t.Errorf("Resolve(%d).Position = %d, want %d", tt.year, p.Position, tt.position)
		}
		if p.Label() != tt.label {
			t.Errorf("Resolve(%d).Label() = %q, want %q", tt.year, p.Label(), tt.label)
		}
	}
}

func TestResolve_Periodicity(t *testing.T) {
	for year := 1900; year <= 2040; year++ {
		a, b := Resolve(year), Resolve(year+60)
		a.Year, b.Year = 0, 0
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("Resolve(%d) vs Resolve(%d) mismatch (-a +b):\n%s", year, year+60, diff)
		}
	}
}

func TestPosition_NeverNegative(t *testing.T) {
	for _, year := range []int{-500, 0, 1, 1899, 1983, 1984, 2100, 9999} {
		pos := Position(year)
		if pos < 0 || pos > 59 {
			t.Errorf("Position(%d) = %d, want within [0,59]", year, pos)
		}
	}
}

// TestResolve_AgreesWithModularProjections asserts that the table-driven
// attributes match the independent mod-12 and mod-10 derivations over
// the full supported window.
func TestResolve_AgreesWithModularProjections(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		p := Resolve(year)
		if want := animalByMod12[year%12]; p.Animal != want {
			t.Fatalf("year %d: table animal %s, mod-12 projection %s", year, p.Animal, want)
		}
		s := stemByMod10[year%10]
		if p.Element != s.Element || p.Polarity != s.Polarity {
			t.Fatalf("year %d: table stem %s-%s, mod-10 projection %s-%s",
				year, p.Element, p.Polarity, s.Element, s.Polarity)
		}
	}
}

func TestDestroys_Cycle(t *testing.T) {
	pairs := []struct{ a, b Element }{
		{Wood, Earth}, {Earth, Water}, {Water, Fire}, {Fire, Metal}, {Metal, Wood},
	}
	for _, p := range pairs {
		if !Destroys(p.a, p.b) {
			t.Errorf("Destroys(%s, %s) = false, want true", p.a, p.b)
		}
		if Destroys(p.b, p.a) {
			t.Errorf("Destroys(%s, %s) = true, want false", p.b, p.a)
		}
	}
	// Every element destroys exactly one other and is destroyed by exactly one.
	for _, e := range []Element{Wood, Fire, Earth, Metal, Water} {
		var out, in int
		for _, f := range []Element{Wood, Fire, Earth, Metal, Water} {
			if Destroys(e, f) {
				out++
			}
			if Destroys(f, e) {
				in++
			}
		}
		if out != 1 || in != 1 {
			t.Errorf("element %s: %d outgoing, %d incoming destructive edges, want 1 and 1", e, out, in)
		}
	}
}

func TestGenerates_Cycle(t *testing.T) {
	pairs := []struct{ a, b Element }{
		{Wood, Fire}, {Fire, Earth}, {Earth, Metal}, {Metal, Water}, {Water, Wood},
	}
	for _, p := range pairs {
		if !Generates(p.a, p.b) {
			t.Errorf("Generates(%s, %s) = false, want true", p.a, p.b)
		}
	}
}
