package obstacle

// darknessRule is one row of the Regional classifier. Rules are tried
// in order; the first match wins.
type darknessRule struct {
	Name   string
	Target int
	Match  func(Demographics) bool
}

// darknessRules encodes the darkness-body selection with strict
// precedence. Age bands come first, the elderly rule overrides every
// status and gender rule, and the bare gender rules close the chain.
var darknessRules = []darknessRule{
	{"under_9", 1, func(d Demographics) bool { return d.Age < 9 }},
	{"9_to_18", 3, func(d Demographics) bool { return d.Age >= 9 && d.Age <= 18 }},
	{"elderly_60_over", 9, func(d Demographics) bool { return d.Age >= 60 }},
	{"official", 8, func(d Demographics) bool { return d.Status == Official }},
	{"female_sex_worker", 4, func(d Demographics) bool { return d.Gender == Female && d.Status == SexWorker }},
	{"female", 7, func(d Demographics) bool { return d.Gender == Female }},
	{"male_monastic", 5, func(d Demographics) bool { return d.Gender == Male && d.Status == Monastic }},
	{"male_lay_practitioner", 6, func(d Demographics) bool { return d.Gender == Male && d.Status == LayPractitioner }},
	{"male", 2, func(d Demographics) bool { return d.Gender == Male }},
}

// classifyDarkness selects the darkness-body target number for the
// Regional condition. Total over validated demographics: the two
// gender rules guarantee a match.
func classifyDarkness(d Demographics) (rule string, target int) {
	for _, r := range darknessRules {
		if r.Match(d) {
			return r.Name, r.Target
		}
	}
	// Unreachable for a validated Gender; kept as a hard failure so a
	// broken caller is caught in tests rather than silently scored.
	panic("darkness classifier: no rule matched")
}
