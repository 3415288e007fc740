package mewa

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"jungtsi/internal/cycle"
)

func TestFromPosition_Anchors(t *testing.T) {
	// Position 0 is the Wood-Yang-Rat year (1984); position 6 is the
	// Metal-Yang-Horse year (1990). Both are worked examples in the
	// source tradition.
	tests := []struct {
		position string
		pos      int
		want     Profile
	}{
		{"wood-yang-rat", 0, Profile{
			Life:  Value{Number: 1, Color: White, Element: cycle.Metal},
			Body:  Value{Number: 4, Color: Green, Element: cycle.Wood},
			Power: Value{Number: 7, Color: Red, Element: cycle.Fire},
		}},
		{"metal-yang-horse", 6, Profile{
			Life:  Value{Number: 4, Color: Green, Element: cycle.Wood},
			Body:  Value{Number: 7, Color: Red, Element: cycle.Fire},
			Power: Value{Number: 1, Color: White, Element: cycle.Metal},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			got := FromPosition(tt.pos)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromPosition(%d) mismatch (-want +got):\n%s", tt.pos, diff)
			}
		})
	}
}

func TestFromPosition_RotationConsistency(t *testing.T) {
	for pos := 0; pos < 60; pos++ {
		p := FromPosition(pos)
		if want := Rotate(p.Life.Number, 3); p.Body.Number != want {
			t.Errorf("position %d: body %d, want rotate(life,3) = %d", pos, p.Body.Number, want)
		}
		if want := Rotate(p.Body.Number, 3); p.Power.Number != want {
			t.Errorf("position %d: power %d, want rotate(body,3) = %d", pos, p.Power.Number, want)
		}
	}
}

// TestFromPosition_MatchesExplicitTables regenerates the traditional
// 60-row rotation tables (each role descending 9→1 from its anchor)
// and checks the closed form against every row.
func TestFromPosition_MatchesExplicitTables(t *testing.T) {
	descending := func(start int) [60]int {
		var seq [60]int
		cur := start
		for i := 0; i < 60; i++ {
			seq[i] = cur
			cur--
			if cur < 1 {
				cur = 9
			}
		}
		return seq
	}
	life := descending(1)
	body := descending(4)
	power := descending(7)

	for pos := 0; pos < 60; pos++ {
		p := FromPosition(pos)
		if p.Life.Number != life[pos] {
			t.Errorf("position %d: life %d, table %d", pos, p.Life.Number, life[pos])
		}
		if p.Body.Number != body[pos] {
			t.Errorf("position %d: body %d, table %d", pos, p.Body.Number, body[pos])
		}
		if p.Power.Number != power[pos] {
			t.Errorf("position %d: power %d, table %d", pos, p.Power.Number, power[pos])
		}
	}
}

func TestColorTables_Total(t *testing.T) {
	for n := 1; n <= 9; n++ {
		c := ColorOf(n)
		if c == "" {
			t.Fatalf("ColorOf(%d) undefined", n)
		}
		if e := ElementOf(c); e == "" {
			t.Fatalf("ElementOf(%s) undefined (number %d)", c, n)
		}
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		x, d int
		want int
	}{
		{"plus three", 1, 3, 4},
		{"wrap high", 7, 3, 1},
		{"wrap exact", 9, 3, 3},
		{"identity", 5, 0, 5},
		{"minus one from one", 1, -1, 9},
		{"full circle", 2, 9, 2},
		{"large negative", 1, -60, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rotate(tt.x, tt.d); got != tt.want {
				t.Errorf("Rotate(%d, %d) = %d, want %d", tt.x, tt.d, got, tt.want)
			}
		})
	}
}
