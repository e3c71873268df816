package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAudit_HistogramsAndTotals(t *testing.T) {
	a := &Student{ID: "a", LastName: "a", Gender: GenderF, LV2: "ESP"}
	b := &Student{ID: "b", LastName: "b", Gender: GenderM, LV2: "ESP", OPT: "LATIN", Mobility: Fixed}
	c := &Class{
		Name:     "6A",
		Offering: Offering{LV2Quota: map[string]int{"ESP": 2}, OPTQuota: map[string]int{"LATIN": 1}},
		Members:  []string{"a", "b"},
	}
	snap := &Snapshot{
		Students:  map[string]*Student{"a": a, "b": b},
		Classes:   []*Class{c},
		Offerings: Offerings{ByClass: map[string]*Offering{"6A": &c.Offering}, UniversalLV2: map[string]bool{}},
	}

	report := Audit(snap)
	require.Len(t, report.Classes, 1)
	cr := report.Classes[0]
	require.Equal(t, 2, cr.Total)
	require.Equal(t, 1, cr.Females)
	require.Equal(t, 1, cr.Males)
	require.Equal(t, 1, cr.Fixed)
	require.Equal(t, 1, cr.Movable)
	require.Equal(t, 2, cr.LV2Histogram["ESP"])
	require.Equal(t, 1, cr.OPTHistogram["LATIN"])
	require.Empty(t, report.LV2Violations)
	require.Empty(t, report.OPTViolations)
}

func TestAudit_FlagsUnofferedElective(t *testing.T) {
	a := &Student{ID: "a", LastName: "a", LV2: "ITA"}
	c := &Class{Name: "6A", Offering: Offering{}, Members: []string{"a"}}
	snap := &Snapshot{
		Students:  map[string]*Student{"a": a},
		Classes:   []*Class{c},
		Offerings: Offerings{ByClass: map[string]*Offering{"6A": &c.Offering}, UniversalLV2: map[string]bool{}},
	}

	report := Audit(snap)
	require.Len(t, report.LV2Violations, 1)
	require.Equal(t, "ITA", report.LV2Violations[0].Code)
}

func TestAudit_QuotaDeviations(t *testing.T) {
	a := &Student{ID: "a", LastName: "a", LV2: "ESP"}
	b := &Student{ID: "b", LastName: "b", LV2: "ESP"}
	c := &Class{
		Name:     "6A",
		Offering: Offering{LV2Quota: map[string]int{"ESP": 5}},
		Members:  []string{"a", "b"},
	}
	snap := &Snapshot{
		Students:  map[string]*Student{"a": a, "b": b},
		Classes:   []*Class{c},
		Offerings: Offerings{ByClass: map[string]*Offering{"6A": &c.Offering}, UniversalLV2: map[string]bool{}},
	}

	report := Audit(snap)
	require.Len(t, report.QuotaDeviations, 1)
	require.Equal(t, 5, report.QuotaDeviations[0].Expected)
	require.Equal(t, 2, report.QuotaDeviations[0].Realized)
}
