// Package report composes the calculation pipeline: validate inputs,
// resolve both years, derive both Mewa profiles, evaluate obstacles.
// It owns the one entry point and the one result shape the transports
// share.
package report

import (
	"jungtsi/internal/cycle"
	"jungtsi/internal/mewa"
	"jungtsi/internal/obstacle"
)

// Operational bounds enforced before any table lookup. The resolver
// itself is total over all integers; the window is a product decision.
const (
	MinYear = 1900
	MaxYear = 2100
	MaxAge  = 150
)

// Input carries the five caller-supplied fields. Gender and Status are
// raw tokens; Build validates them against the closed sets.
type Input struct {
	BirthYear     int    `json:"birth_year"`
	ReferenceYear int    `json:"reference_year"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Status        string `json:"status"`
}

// Report is the complete result of one evaluation: both sexagenary
// profiles, both Mewa profiles, and the four obstacle findings.
type Report struct {
	SubjectProfile   cycle.Profile         `json:"subject_profile"`
	SubjectLabel     string                `json:"subject_label"`
	SubjectMewas     mewa.Profile          `json:"subject_mewas"`
	ReferenceProfile cycle.Profile         `json:"reference_profile"`
	ReferenceLabel   string                `json:"reference_label"`
	ReferenceMewas   mewa.Profile          `json:"reference_mewas"`
	Demographics     obstacle.Demographics `json:"demographics"`
	Findings         [4]obstacle.Finding   `json:"findings"`
}

// TriggeredFindings filters the findings to the triggered ones. The
// full set is always computed and carried; this is a view for callers
// that render a "problems found" summary.
func (r *Report) TriggeredFindings() []obstacle.Finding {
	var out []obstacle.Finding
	for _, f := range r.Findings {
		if f.Triggered {
			out = append(out, f)
		}
	}
	return out
}

// Build validates the input and runs the full pipeline. Validation is
// all-or-nothing: on any violation no partial report is produced.
// Once validation passes, the pipeline cannot fail.
func Build(in Input) (*Report, error) {
	demo, err := validate(in)
	if err != nil {
		return nil, err
	}

	subjectProfile := cycle.Resolve(in.BirthYear)
	referenceProfile := cycle.Resolve(in.ReferenceYear)
	subjectMewas := mewa.FromPosition(subjectProfile.Position)
	referenceMewas := mewa.FromPosition(referenceProfile.Position)

	return &Report{
		SubjectProfile:   subjectProfile,
		SubjectLabel:     subjectProfile.Label(),
		SubjectMewas:     subjectMewas,
		ReferenceProfile: referenceProfile,
		ReferenceLabel:   referenceProfile.Label(),
		ReferenceMewas:   referenceMewas,
		Demographics:     demo,
		Findings:         obstacle.Evaluate(subjectMewas, referenceMewas, demo),
	}, nil
}

// validate checks every field before any computation and returns the
// parsed demographics.
func validate(in Input) (obstacle.Demographics, error) {
	var demo obstacle.Demographics

	if in.BirthYear < MinYear || in.BirthYear > MaxYear {
		return demo, &ValidationError{
			Field:      "birth_year",
			Code:       CodeInvalidBirthYear,
			Constraint: yearConstraint,
		}
	}
	if in.ReferenceYear < MinYear || in.ReferenceYear > MaxYear {
		return demo, &ValidationError{
			Field:      "reference_year",
			Code:       CodeInvalidReferenceYear,
			Constraint: yearConstraint,
		}
	}
	if in.Age < 0 || in.Age > MaxAge {
		return demo, &ValidationError{
			Field:      "age",
			Code:       CodeInvalidAge,
			Constraint: "must be between 0 and 150",
		}
	}

	gender, err := obstacle.ParseGender(in.Gender)
	if err != nil {
		return demo, &ValidationError{
			Field:      "gender",
			Code:       CodeInvalidGender,
			Constraint: `must be either "male" or "female"`,
		}
	}
	status, err := obstacle.ParseStatus(in.Status)
	if err != nil {
		return demo, &ValidationError{
			Field:      "status",
			Code:       CodeInvalidStatus,
			Constraint: "must be one of: general, official, monastic, lay_practitioner, sex_worker",
		}
	}

	demo = obstacle.Demographics{Age: in.Age, Gender: gender, Status: status}
	return demo, nil
}
