package obstacle

import "jungtsi/internal/mewa"

// Interpretation texts carried over from the source rule set,
// English renderings only.

const (
	regionalInterpretation = "Disease, theft, and encounters with troublesome non-human entities"
	homeInterpretation     = "A powerful hunting ghost (tsen) comes to the home"
	clashInterpretation    = "Decline for people and livestock, not prosperous"
)

// beddingInterpretations is keyed by the matched body color. White has
// no defined interpretation in the source rule set; the finding still
// triggers, with the gap recorded in its evidence.
var beddingInterpretations = map[mewa.Color]string{
	mewa.Black:  "Meeting with a demon (dud): unease of mind",
	mewa.Blue:   "Meeting with a ghost (dre): internal illness",
	mewa.Green:  "Meeting with a dragon spirit (lu): skin disease",
	mewa.Yellow: "Meeting with a hunting ghost (ngur tsen) and land-owner spirit: unstable house, business not smooth",
	mewa.Red:    "Contention of mouth and tongue",
}

// uniformColorInterpretations is keyed by the common natal color of a
// uniform-color Door match. Black never occurs as a uniform natal
// color and has no entry.
var uniformColorInterpretations = map[mewa.Color]string{
	mewa.White:  "Guardian spirits flee; protection must be strengthened and the soul pacified",
	mewa.Blue:   "Disputes and water disasters",
	mewa.Green:  "Meeting with a dragon spirit (lu): skin disease, not suitable to break ground",
	mewa.Yellow: "A powerful hunting ghost (tsen)",
	mewa.Red:    "Injury and illness, depleted energy",
}
