package optimizer

// ClassQuota is one destination class's raw quota table, keyed by elective
// code, as ingestion would hand it to BuildOfferings. A quota <= 0 means the
// class does not offer that code at all.
type ClassQuota struct {
	ClassName string
	LV2Quota  map[string]int
	OPTQuota  map[string]int
	Target    int
}

// BuildOfferings derives the per-class Offering table and the universal-LV2
// set. The universal set contains every LV2 code that has positive quota in
// *every* class passed in; with zero classes it is empty by definition.
func BuildOfferings(quotas []ClassQuota) Offerings {
	byClass := make(map[string]*Offering, len(quotas))
	lv2Counts := make(map[string]int)

	for _, q := range quotas {
		off := &Offering{
			LV2Quota: copyPositiveQuota(q.LV2Quota),
			OPTQuota: copyPositiveQuota(q.OPTQuota),
			Target:   q.Target,
		}
		byClass[q.ClassName] = off
		for code := range off.LV2Quota {
			lv2Counts[code]++
		}
	}

	universal := make(map[string]bool)
	for code, count := range lv2Counts {
		if count == len(quotas) && len(quotas) > 0 {
			universal[code] = true
		}
	}

	return Offerings{ByClass: byClass, UniversalLV2: universal}
}

// copyPositiveQuota copies only the entries with quota > 0, so downstream
// lookups can treat map presence as "offered" without re-checking the value.
func copyPositiveQuota(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for code, qty := range src {
		if qty > 0 {
			dst[code] = qty
		}
	}
	return dst
}

// IsUniversalLV2 reports whether code is offered by every destination class.
func (o *Offerings) IsUniversalLV2(code string) bool {
	return code != "" && o.UniversalLV2[code]
}
