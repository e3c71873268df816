package optimizer

// QuotaDeviation reports how a class's realized elective headcount compares
// to the ingestion-provided quota for one offered code.
type QuotaDeviation struct {
	ClassName string
	Code      string
	Expected  int
	Realized  int
}

// ClassReport is the per-class section of an audit.
type ClassReport struct {
	ClassName      string
	Total          int
	Females, Males int
	LV2Histogram   map[string]int
	OPTHistogram   map[string]int
	Fixed, Movable int
}

// Report is the full audit result.
type Report struct {
	Classes            []ClassReport
	LV2Violations      []Violation
	OPTViolations      []Violation
	QuotaDeviations    []QuotaDeviation
}

// Audit computes the per-class totals, F/M split, LV2/OPT histograms,
// mobility split, and the three violation lists.
func Audit(snap *Snapshot) Report {
	report := Report{Classes: make([]ClassReport, 0, len(snap.Classes))}

	for _, c := range snap.Classes {
		cr := ClassReport{
			ClassName:    c.Name,
			LV2Histogram: make(map[string]int),
			OPTHistogram: make(map[string]int),
		}

		lv2Bad := make(map[string][]string)
		var lv2Order []string
		optBad := make(map[string][]string)
		var optOrder []string

		for _, id := range c.Members {
			st := snap.Students[id]
			if st == nil {
				continue
			}
			cr.Total++
			if st.Gender == GenderF {
				cr.Females++
			} else if st.Gender == GenderM {
				cr.Males++
			}
			if st.IsFixed() {
				cr.Fixed++
			} else {
				cr.Movable++
			}

			if st.LV2 != "" {
				cr.LV2Histogram[st.LV2]++
				if IsKnownLV2(st.LV2) && !snap.Offerings.IsUniversalLV2(st.LV2) && !c.Offering.OffersLV2(st.LV2) {
					if _, seen := lv2Bad[st.LV2]; !seen {
						lv2Order = append(lv2Order, st.LV2)
					}
					lv2Bad[st.LV2] = append(lv2Bad[st.LV2], st.DisplayName())
				}
			}
			if st.OPT != "" {
				cr.OPTHistogram[st.OPT]++
				if IsKnownOPT(st.OPT) && !c.Offering.OffersOPT(st.OPT) {
					if _, seen := optBad[st.OPT]; !seen {
						optOrder = append(optOrder, st.OPT)
					}
					optBad[st.OPT] = append(optBad[st.OPT], st.DisplayName())
				}
			}
		}

		for _, code := range lv2Order {
			names := lv2Bad[code]
			report.LV2Violations = append(report.LV2Violations, Violation{
				ClassName: c.Name, Code: code, Count: len(names), Students: names,
			})
		}
		for _, code := range optOrder {
			names := optBad[code]
			report.OPTViolations = append(report.OPTViolations, Violation{
				ClassName: c.Name, Code: code, Count: len(names), Students: names,
			})
		}

		for _, code := range sortedKeys(c.Offering.LV2Quota) {
			report.QuotaDeviations = append(report.QuotaDeviations, QuotaDeviation{
				ClassName: c.Name, Code: code,
				Expected: c.Offering.LV2Quota[code],
				Realized: cr.LV2Histogram[code],
			})
		}
		for _, code := range sortedKeys(c.Offering.OPTQuota) {
			report.QuotaDeviations = append(report.QuotaDeviations, QuotaDeviation{
				ClassName: c.Name, Code: code,
				Expected: c.Offering.OPTQuota[code],
				Realized: cr.OPTHistogram[code],
			})
		}

		report.Classes = append(report.Classes, cr)
	}

	return report
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	insertionSort(keys)
	return keys
}

func insertionSort(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
