package optimizer

import (
	"fmt"
	"strings"
)

// FormatResult produces a human-readable run summary: one line per phase
// plus a violation list, built with strings.Builder and fmt.Fprintf.
func FormatResult(res Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "two-way swaps: %d\n", res.SwapsApplied)
	fmt.Fprintf(&b, "three-way swaps: %d\n", res.Swaps3Way)
	if res.Exhausted {
		b.WriteString("status: exhausted (max_swaps reached without convergence)\n")
	} else {
		b.WriteString("status: converged\n")
	}

	if res.OK {
		b.WriteString("validation: ok\n")
		return b.String()
	}

	if !res.AntinomyValidated {
		b.WriteString("validation: antinomy not validated (no antinomy column in source data)\n")
	}
	if len(res.Violations) > 0 {
		fmt.Fprintf(&b, "validation: %d violation(s)\n", len(res.Violations))
		for _, v := range res.Violations {
			fmt.Fprintf(&b, "  %s: antinomy code %s appears %d times (%s)\n",
				v.ClassName, v.Code, v.Count, strings.Join(v.Students, ", "))
		}
	}
	return b.String()
}

// FormatReport renders an audit Report as a per-class text summary.
func FormatReport(report Report) string {
	var b strings.Builder

	for i, cr := range report.Classes {
		if i > 0 {
			b.WriteString("===================\n")
		}
		fmt.Fprintf(&b, "%s: %d students (%d F / %d M), %d fixed / %d movable\n",
			cr.ClassName, cr.Total, cr.Females, cr.Males, cr.Fixed, cr.Movable)

		if len(cr.LV2Histogram) > 0 {
			fmt.Fprintf(&b, "  LV2: %s\n", formatHistogram(cr.LV2Histogram))
		}
		if len(cr.OPTHistogram) > 0 {
			fmt.Fprintf(&b, "  OPT: %s\n", formatHistogram(cr.OPTHistogram))
		}
	}

	if len(report.QuotaDeviations) > 0 {
		b.WriteString("quota deviations:\n")
		for _, d := range report.QuotaDeviations {
			fmt.Fprintf(&b, "  %s/%s: expected %d, realized %d (%+d)\n",
				d.ClassName, d.Code, d.Expected, d.Realized, d.Realized-d.Expected)
		}
	}

	for _, v := range report.LV2Violations {
		fmt.Fprintf(&b, "LV2 offering violation: %s/%s (%s)\n", v.ClassName, v.Code, strings.Join(v.Students, ", "))
	}
	for _, v := range report.OPTViolations {
		fmt.Fprintf(&b, "OPT offering violation: %s/%s (%s)\n", v.ClassName, v.Code, strings.Join(v.Students, ", "))
	}

	return b.String()
}

func formatHistogram(h map[string]int) string {
	codes := sortedKeys(h)
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, fmt.Sprintf("%s(%d)", code, h[code]))
	}
	return strings.Join(parts, ", ")
}
