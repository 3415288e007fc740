package prosperity

import (
	"testing"
	"time"

	"jungtsi/internal/cycle"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestHourAnimal(t *testing.T) {
	tests := []struct {
		hour int
		want cycle.Animal
	}{
		{0, cycle.Rat},
		{1, cycle.Rat},
		{23, cycle.Rat}, // Rat period wraps midnight
		{2, cycle.Ox},
		{11, cycle.Snake},
		{12, cycle.Horse},
		{22, cycle.Pig},
	}
	for _, tt := range tests {
		got, err := HourAnimal(tt.hour)
		if err != nil {
			t.Fatalf("HourAnimal(%d): %v", tt.hour, err)
		}
		if got != tt.want {
			t.Errorf("HourAnimal(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
	for _, hour := range []int{-1, 24} {
		if _, err := HourAnimal(hour); err == nil {
			t.Errorf("HourAnimal(%d): expected error", hour)
		}
	}
}

func TestHourAnimals_CoverAllTwelve(t *testing.T) {
	seen := map[cycle.Animal]bool{}
	for h := 0; h < 24; h++ {
		a, _ := HourAnimal(h)
		seen[a] = true
	}
	if len(seen) != 12 {
		t.Errorf("hour map covers %d animals, want 12", len(seen))
	}
}

func TestParseEventType(t *testing.T) {
	for _, e := range EventTypes {
		if _, err := ParseEventType(string(e)); err != nil {
			t.Errorf("ParseEventType(%s): %v", e, err)
		}
	}
	if _, err := ParseEventType("wedding"); err == nil {
		t.Error("ParseEventType(wedding): expected error")
	}
}

func TestAssess_Verdicts(t *testing.T) {
	// 1984 is a Wood year. Wood generates Fire, so a Snake/Horse hour
	// (Fire) is the auspicious pairing; Wood destroys Earth, so an Ox
	// hour (Earth) is the inauspicious one.
	tests := []struct {
		name  string
		event EventType
		year  int
		hour  int
		want  Verdict
	}{
		{"favorable event, generating hour", Birthday, 1984, 12, HighlyAuspicious},
		{"neutral event, generating hour", Undertaking, 1984, 12, ModeratelyAuspicious},
		{"favorable event, clashing hour", Birthday, 1984, 2, Inauspicious},
		{"unfavorable event, generating hour", Death, 1984, 12, Inauspicious},
		{"funeral is neutral in the catalog", Funeral, 1984, 12, ModeratelyAuspicious},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Assess(tt.event, date(tt.year, 6, 15), tt.hour)
			if err != nil {
				t.Fatalf("Assess: %v", err)
			}
			if a.Verdict != tt.want {
				t.Errorf("verdict = %s, want %s (reasoning: %v)", a.Verdict, tt.want, a.Reasoning)
			}
			if len(a.Reasoning) < 2 {
				t.Errorf("reasoning = %v, want element factor and event factor", a.Reasoning)
			}
		})
	}
}

func TestAssess_ModeratePath(t *testing.T) {
	// 1984 day element Wood; a Rat hour is Water, and Water generates
	// Wood: the hour side generates the day side.
	a, err := Assess(Undertaking, date(1984, 3, 1), 0)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if a.Verdict != ModeratelyAuspicious {
		t.Errorf("verdict = %s, want %s", a.Verdict, ModeratelyAuspicious)
	}
	if a.HourAnimal != cycle.Rat || a.HourElement != cycle.Water {
		t.Errorf("hour = %s/%s, want Rat/Water", a.HourAnimal, a.HourElement)
	}
}

func TestAssess_RejectsBadInput(t *testing.T) {
	if _, err := Assess("wedding", date(1984, 1, 1), 10); err == nil {
		t.Error("unknown event type accepted")
	}
	if _, err := Assess(Birthday, date(1984, 1, 1), 24); err == nil {
		t.Error("hour 24 accepted")
	}
}
