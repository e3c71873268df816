package optimizer

// Violation records a duplicated antinomy code within a single class.
type Violation struct {
	ClassName string
	Code      string
	Count     int
	Students  []string // display names, in class member order
}

// Validate runs the post-run duplication audit: for each class, count
// occurrences of each non-empty antinomy code; any code appearing more than
// once is a violation.
//
// The second return value reports whether antinomy was actually checked. A
// student with HasAntinomyAttr false means the antinomy column was absent
// from the source data entirely, so its class can't be trusted to be free of
// duplicates -- fail closed and report validated=false rather than letting
// an empty violation list read as "clean".
func Validate(snap *Snapshot) ([]Violation, bool) {
	var violations []Violation
	validated := true

	for _, c := range snap.Classes {
		byCode := make(map[string][]string)
		var codeOrder []string
		for _, id := range c.Members {
			st := snap.Students[id]
			if st == nil {
				continue
			}
			if !st.HasAntinomyAttr {
				validated = false
				continue
			}
			if st.Antinomy == "" {
				continue
			}
			if _, seen := byCode[st.Antinomy]; !seen {
				codeOrder = append(codeOrder, st.Antinomy)
			}
			byCode[st.Antinomy] = append(byCode[st.Antinomy], st.DisplayName())
		}
		for _, code := range codeOrder {
			names := byCode[code]
			if len(names) > 1 {
				violations = append(violations, Violation{
					ClassName: c.Name,
					Code:      code,
					Count:     len(names),
					Students:  names,
				})
			}
		}
	}

	return violations, validated
}
