package optimizer

// CanSwap is the feasibility oracle: true iff moving a into cb's class
// and b into ca's class would violate none of the seven rules. Pure function,
// never errors -- infeasible is an ordinary false.
func CanSwap(snap *Snapshot, cfg *Config, ca *Class, a *Student, cb *Class, b *Student) bool {
	// Rule 7: fail-closed if the antinomy attribute is absent from the model.
	if !a.HasAntinomyAttr || !b.HasAntinomyAttr {
		return false
	}

	// Rule 1: mobility.
	if a.IsFixed() || b.IsFixed() {
		return false
	}

	// Rule 2: antinomy exclusion, checked against the destination class
	// excluding the partner being swapped out.
	if a.Antinomy != "" && classHasAntinomy(snap, cb, a.Antinomy, b.ID) {
		return false
	}
	if b.Antinomy != "" && classHasAntinomy(snap, ca, b.Antinomy, a.ID) {
		return false
	}

	// Rule 3: affinity integrity -- a must be last/alone of its affinity
	// group in its origin class before leaving (and symmetrically for b).
	if a.Affinity != "" && classHasAffinity(snap, ca, a.Affinity, a.ID) {
		return false
	}
	if b.Affinity != "" && classHasAffinity(snap, cb, b.Affinity, b.ID) {
		return false
	}

	// Rule 4: LV2 offering.
	if !destinationOffersLV2(&cb.Offering, &snap.Offerings, a) {
		return false
	}
	if !destinationOffersLV2(&ca.Offering, &snap.Offerings, b) {
		return false
	}

	// Rule 5: OPT offering.
	if a.OPT != "" && IsKnownOPT(a.OPT) && !cb.Offering.OffersOPT(a.OPT) {
		return false
	}
	if b.OPT != "" && IsKnownOPT(b.OPT) && !ca.Offering.OffersOPT(b.OPT) {
		return false
	}

	// Rule 6: specialization preservation.
	if !respectsSpecialization(cfg, &cb.Offering, a) {
		return false
	}
	if !respectsSpecialization(cfg, &ca.Offering, b) {
		return false
	}

	return true
}

// classHasAntinomy reports whether any member of c other than excludeID
// carries the given antinomy code.
func classHasAntinomy(snap *Snapshot, c *Class, code, excludeID string) bool {
	for _, id := range c.Members {
		if id == excludeID {
			continue
		}
		if st := snap.Students[id]; st != nil && st.Antinomy == code {
			return true
		}
	}
	return false
}

// classHasAffinity reports whether any member of c other than excludeID
// carries the given affinity code.
func classHasAffinity(snap *Snapshot, c *Class, code, excludeID string) bool {
	for _, id := range c.Members {
		if id == excludeID {
			continue
		}
		if st := snap.Students[id]; st != nil && st.Affinity == code {
			return true
		}
	}
	return false
}

// destinationOffersLV2 applies rule 4: a student's LV2 code only obligates
// the destination when the code is known and not universally offered.
func destinationOffersLV2(dest *Offering, offerings *Offerings, st *Student) bool {
	if st.LV2 == "" || !IsKnownLV2(st.LV2) || offerings.IsUniversalLV2(st.LV2) {
		return true
	}
	return dest.OffersLV2(st.LV2)
}

// respectsSpecialization applies rule 6: a destination offering a scarce
// option must not accept a student carrying none of those options and whose
// LV2 is not the configured default.
func respectsSpecialization(cfg *Config, dest *Offering, st *Student) bool {
	if !offersSpecializedOption(dest) {
		return true
	}
	if st.OPT != "" && IsSpecializedOPT(st.OPT) {
		return true
	}
	return st.LV2 == cfg.DefaultLV2
}

func offersSpecializedOption(o *Offering) bool {
	return o.OffersOPT("LATIN") || o.OffersOPT("CHAV")
}
