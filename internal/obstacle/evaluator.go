package obstacle

import (
	"strings"

	"jungtsi/internal/cycle"
	"jungtsi/internal/mewa"
)

// Evaluate compares a subject's natal Mewa profile against a reference
// year's profile and returns exactly four findings, one per kind, in
// the order Regional, Home, Bedding, Door. Pure: no side effects, no
// failure modes once the demographics are validated.
func Evaluate(subject, reference mewa.Profile, demo Demographics) [4]Finding {
	return [4]Finding{
		evalRegional(reference, demo),
		evalHome(subject, reference),
		evalBedding(subject, reference),
		evalDoor(subject, reference),
	}
}

// evalRegional triggers when the reference year's Body number equals
// the darkness-body target selected for the subject's demographics.
func evalRegional(reference mewa.Profile, demo Demographics) Finding {
	rule, target := classifyDarkness(demo)
	triggered := reference.Body.Number == target

	f := Finding{
		Kind:      Regional,
		Name:      Regional.Name(),
		Triggered: triggered,
		Evidence: Evidence{Regional: &RegionalEvidence{
			Rule:          rule,
			Target:        target,
			ReferenceBody: reference.Body.Number,
		}},
	}
	if triggered {
		f.Interpretation = regionalInterpretation
	}
	return f
}

// evalHome triggers when the two Body numbers coincide.
func evalHome(subject, reference mewa.Profile) Finding {
	triggered := reference.Body.Number == subject.Body.Number

	f := Finding{
		Kind:      Home,
		Name:      Home.Name(),
		Triggered: triggered,
		Evidence: Evidence{Home: &HomeEvidence{
			ReferenceBody: reference.Body.Number,
			SubjectBody:   subject.Body.Number,
		}},
	}
	if triggered {
		f.Interpretation = homeInterpretation
	}
	return f
}

// evalBedding triggers when the two Body colors coincide. The
// interpretation is color-specific; a White match triggers with no
// text, which the evidence makes explicit.
func evalBedding(subject, reference mewa.Profile) Finding {
	triggered := reference.Body.Color == subject.Body.Color

	interpretation, defined := "", false
	if triggered {
		interpretation, defined = beddingInterpretations[subject.Body.Color], true
		if interpretation == "" {
			defined = false
		}
	}

	return Finding{
		Kind:           Bedding,
		Name:           Bedding.Name(),
		Triggered:      triggered,
		Interpretation: interpretation,
		Evidence: Evidence{Bedding: &BeddingEvidence{
			ReferenceColor:        reference.Body.Color,
			SubjectColor:          subject.Body.Color,
			InterpretationDefined: defined,
		}},
	}
}

// evalDoor triggers on either of two independent sub-conditions: a
// destructive-cycle clash between the Body elements (in either
// direction), or all three natal colors being equal. Both may fire at
// once, in which case both interpretations are attached.
func evalDoor(subject, reference mewa.Profile) Finding {
	ev := &DoorEvidence{}
	var interpretations []string

	refElem, subElem := reference.Body.Element, subject.Body.Element
	switch {
	case cycle.Destroys(refElem, subElem):
		ev.ElementClash = &ClashEvidence{
			ReferenceElement: refElem,
			SubjectElement:   subElem,
			Direction:        ReferenceDestroysSubject,
		}
	case cycle.Destroys(subElem, refElem):
		ev.ElementClash = &ClashEvidence{
			ReferenceElement: refElem,
			SubjectElement:   subElem,
			Direction:        SubjectDestroysReference,
		}
	}
	if ev.ElementClash != nil {
		interpretations = append(interpretations, clashInterpretation)
	}

	if subject.Life.Color == subject.Body.Color && subject.Body.Color == subject.Power.Color {
		ev.UniformColor = &UniformEvidence{Color: subject.Life.Color}
		if text, ok := uniformColorInterpretations[subject.Life.Color]; ok {
			interpretations = append(interpretations, text)
		}
	}

	triggered := ev.ElementClash != nil || ev.UniformColor != nil

	return Finding{
		Kind:           Door,
		Name:           Door.Name(),
		Triggered:      triggered,
		Interpretation: strings.Join(interpretations, " | "),
		Evidence:       Evidence{Door: ev},
	}
}
