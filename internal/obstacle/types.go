// Package obstacle evaluates the four obstacle conditions that compare
// a subject's natal Mewa profile against a reference year's profile,
// modulated by the subject's demographics.
package obstacle

import (
	"fmt"

	"jungtsi/internal/cycle"
	"jungtsi/internal/mewa"
)

// Kind identifies one of the four obstacle conditions.
type Kind string

const (
	Regional Kind = "RO"
	Home     Kind = "HO"
	Bedding  Kind = "BO"
	Door     Kind = "DO"
)

// Kinds lists the four obstacle kinds in evaluation order. The order
// is cosmetic; the findings are mutually independent.
var Kinds = [4]Kind{Regional, Home, Bedding, Door}

// kindNames are the display names attached to findings.
var kindNames = map[Kind]string{
	Regional: "Regional Obstacle",
	Home:     "Home Obstacle",
	Bedding:  "Bedding Obstacle",
	Door:     "Door Obstacle",
}

// Name returns the display name of a kind.
func (k Kind) Name() string { return kindNames[k] }

// Gender is the subject's gender token.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

var validGenders = map[Gender]bool{
	Male:   true,
	Female: true,
}

// ParseGender validates a gender token.
func ParseGender(s string) (Gender, error) {
	g := Gender(s)
	if !validGenders[g] {
		return "", fmt.Errorf("invalid gender %q: must be one of: male, female", s)
	}
	return g, nil
}

// Status is the subject's social status. It only affects which
// darkness rule the Regional classifier selects.
type Status string

const (
	General         Status = "general"
	Official        Status = "official"
	Monastic        Status = "monastic"
	LayPractitioner Status = "lay_practitioner"
	SexWorker       Status = "sex_worker"
)

var validStatuses = map[Status]bool{
	General:         true,
	Official:        true,
	Monastic:        true,
	LayPractitioner: true,
	SexWorker:       true,
}

// ParseStatus validates a status token. The empty string defaults to
// general, matching the API contract.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return General, nil
	}
	st := Status(s)
	if !validStatuses[st] {
		return "", fmt.Errorf("invalid status %q: must be one of: general, official, monastic, lay_practitioner, sex_worker", s)
	}
	return st, nil
}

// Demographics carries the inputs that modulate obstacle evaluation.
type Demographics struct {
	Age    int    `json:"age"`
	Gender Gender `json:"gender"`
	Status Status `json:"status"`
}

// Finding is the verdict for one obstacle kind. A finding is produced
// for every kind on every evaluation; untriggered findings are
// returned, not omitted.
type Finding struct {
	Kind           Kind     `json:"kind"`
	Name           string   `json:"name"`
	Triggered      bool     `json:"triggered"`
	Interpretation string   `json:"interpretation,omitempty"`
	Evidence       Evidence `json:"evidence"`
}

// Evidence records the comparison that produced a verdict. Exactly
// the section matching the finding's kind is populated.
type Evidence struct {
	Regional *RegionalEvidence `json:"regional,omitempty"`
	Home     *HomeEvidence     `json:"home,omitempty"`
	Bedding  *BeddingEvidence  `json:"bedding,omitempty"`
	Door     *DoorEvidence     `json:"door,omitempty"`
}

// RegionalEvidence records the classifier outcome and the body-number
// comparison of the Regional condition.
type RegionalEvidence struct {
	Rule          string `json:"rule"`
	Target        int    `json:"target"`
	ReferenceBody int    `json:"reference_body"`
}

// HomeEvidence records the body-number comparison of the Home condition.
type HomeEvidence struct {
	ReferenceBody int `json:"reference_body"`
	SubjectBody   int `json:"subject_body"`
}

// BeddingEvidence records the body-color comparison of the Bedding
// condition. InterpretationDefined is false for the White match, whose
// text the source rule set leaves undefined.
type BeddingEvidence struct {
	ReferenceColor        mewa.Color `json:"reference_color"`
	SubjectColor          mewa.Color `json:"subject_color"`
	InterpretationDefined bool       `json:"interpretation_defined"`
}

// DoorEvidence records which of the two Door sub-conditions matched.
type DoorEvidence struct {
	ElementClash *ClashEvidence   `json:"element_clash,omitempty"`
	UniformColor *UniformEvidence `json:"uniform_color,omitempty"`
}

// ClashEvidence records the direction of a destructive-cycle match.
type ClashEvidence struct {
	ReferenceElement cycle.Element `json:"reference_element"`
	SubjectElement   cycle.Element `json:"subject_element"`
	Direction        string        `json:"direction"`
}

// Clash directions.
const (
	ReferenceDestroysSubject = "reference_destroys_subject"
	SubjectDestroysReference = "subject_destroys_reference"
)

// UniformEvidence records the common color of a uniform-natal-color match.
type UniformEvidence struct {
	Color mewa.Color `json:"color"`
}
