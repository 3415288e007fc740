package report

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jungtsi/internal/obstacle"
)

func validInput() Input {
	return Input{
		BirthYear:     1984,
		ReferenceYear: 2026,
		Age:           42,
		Gender:        "male",
		Status:        "general",
	}
}

func TestBuild_ScenarioWoodYangRat(t *testing.T) {
	r, err := Build(validInput())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.SubjectLabel != "Wood-Yang-Rat" {
		t.Errorf("subject label = %q, want Wood-Yang-Rat", r.SubjectLabel)
	}
	if got := [3]int{r.SubjectMewas.Life.Number, r.SubjectMewas.Body.Number, r.SubjectMewas.Power.Number}; got != [3]int{1, 4, 7} {
		t.Errorf("subject mewas = %v, want [1 4 7]", got)
	}
	if len(r.Findings) != 4 {
		t.Fatalf("findings = %d, want 4", len(r.Findings))
	}
}

func TestBuild_ScenarioMetalYangHorse(t *testing.T) {
	in := validInput()
	in.BirthYear = 1990
	r, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.SubjectLabel != "Metal-Yang-Horse" {
		t.Errorf("subject label = %q, want Metal-Yang-Horse", r.SubjectLabel)
	}
	if got := [3]int{r.SubjectMewas.Life.Number, r.SubjectMewas.Body.Number, r.SubjectMewas.Power.Number}; got != [3]int{4, 7, 1} {
		t.Errorf("subject mewas = %v, want [4 7 1]", got)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	in := Input{BirthYear: 1975, ReferenceYear: 2031, Age: 56, Gender: "female", Status: "official"}
	a, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Errorf("repeated Build not byte-identical:\n%s\n%s", aj, bj)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated Build differs (-a +b):\n%s", diff)
	}
}

func TestBuild_DefaultStatus(t *testing.T) {
	in := validInput()
	in.Status = ""
	r, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.Demographics.Status != obstacle.General {
		t.Errorf("status = %s, want general", r.Demographics.Status)
	}
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Input)
		wantCode string
	}{
		{"birth year low", func(in *Input) { in.BirthYear = 1899 }, CodeInvalidBirthYear},
		{"birth year high", func(in *Input) { in.BirthYear = 2101 }, CodeInvalidBirthYear},
		{"reference year low", func(in *Input) { in.ReferenceYear = 1500 }, CodeInvalidReferenceYear},
		{"negative age", func(in *Input) { in.Age = -1 }, CodeInvalidAge},
		{"implausible age", func(in *Input) { in.Age = 151 }, CodeInvalidAge},
		{"bad gender", func(in *Input) { in.Gender = "unknown" }, CodeInvalidGender},
		{"bad status", func(in *Input) { in.Status = "farmer" }, CodeInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			r, err := Build(in)
			if r != nil {
				t.Fatal("partial report returned alongside validation failure")
			}
			ve, ok := AsValidation(err)
			if !ok {
				t.Fatalf("error %v is not a ValidationError", err)
			}
			if ve.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", ve.Code, tt.wantCode)
			}
			if ve.Field == "" || ve.Constraint == "" {
				t.Errorf("validation error missing field/constraint: %+v", ve)
			}
		})
	}
}

func TestBuild_BoundaryYearsAccepted(t *testing.T) {
	for _, year := range []int{1900, 2100} {
		in := validInput()
		in.BirthYear = year
		in.ReferenceYear = year
		if _, err := Build(in); err != nil {
			t.Errorf("Build with year %d: %v", year, err)
		}
	}
}

func TestTriggeredFindings_Filter(t *testing.T) {
	// 1984 subject vs 1984 reference: identical profiles trigger Home
	// (same body number) and Bedding (same body color) at minimum.
	in := validInput()
	in.ReferenceYear = 1984
	r, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	triggered := r.TriggeredFindings()
	if len(triggered) == 0 {
		t.Fatal("identical profiles produced no triggered findings")
	}
	for _, f := range triggered {
		if !f.Triggered {
			t.Errorf("TriggeredFindings returned untriggered %s", f.Kind)
		}
	}
	kinds := map[obstacle.Kind]bool{}
	for _, f := range triggered {
		kinds[f.Kind] = true
	}
	if !kinds[obstacle.Home] || !kinds[obstacle.Bedding] {
		t.Errorf("expected Home and Bedding among triggered, got %v", kinds)
	}
}
