package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore_EmptyClassIsSentinel(t *testing.T) {
	snap := &Snapshot{Students: map[string]*Student{}}
	cfg := Default()
	stats := CohortStats{}
	require.Equal(t, emptyClassPenalty, Score(snap, &cfg, &stats, nil, 24))
}

func TestScore_PerfectClassIsCheap(t *testing.T) {
	students := map[string]*Student{}
	var members []string
	for i := 0; i < 24; i++ {
		id := string(rune('a' + i%26))
		if i >= 26 {
			id += string(rune('0' + i/26))
		}
		students[id] = &Student{ID: id, COM: 2.5, TRA: 2.5, PART: 2.5, Gender: GenderF, HasAntinomyAttr: true}
		members = append(members, id)
	}
	snap := &Snapshot{Students: students}
	cfg := Default()
	stats := CohortStats{RatioF: 1.0, MeanCOM: 2.5, MeanTRA: 2.5, MeanPART: 2.5}

	score := Score(snap, &cfg, &stats, members, 24)
	require.Less(t, score, 1.0, "a class matching every cohort baseline at target size should cost near zero")
}

func TestScore_HeadcountDeltaPenalized(t *testing.T) {
	students := map[string]*Student{
		"a": {ID: "a", COM: 2.5, TRA: 2.5, PART: 2.5, HasAntinomyAttr: true},
	}
	snap := &Snapshot{Students: students}
	cfg := Default()
	stats := CohortStats{}

	under := Score(snap, &cfg, &stats, []string{"a"}, 24)
	exact := Score(snap, &cfg, &stats, []string{"a"}, 1)
	require.Greater(t, under, exact)
}

func TestScore_LowTierExcessPenalized(t *testing.T) {
	students := map[string]*Student{}
	var members []string
	for i := 0; i < 6; i++ {
		id := string(rune('a' + i))
		students[id] = &Student{ID: id, COM: 0.5, TRA: 0.5, PART: 2.5, HasAntinomyAttr: true}
		members = append(members, id)
	}
	snap := &Snapshot{Students: students}
	cfg := Default()
	stats := CohortStats{}

	score := Score(snap, &cfg, &stats, members, 6)
	// niv1_max=4; 6 low-tier students -> excess=2 -> 2^3*100 = 800 from the
	// low-tier term, added to the head-deficit and academic terms.
	require.Greater(t, score, 700.0)
}

func TestTotalScore_SumsAllClasses(t *testing.T) {
	a := &Student{ID: "a", COM: 2.5, TRA: 2.5, PART: 2.5, HasAntinomyAttr: true}
	b := &Student{ID: "b", COM: 2.5, TRA: 2.5, PART: 2.5, HasAntinomyAttr: true}
	c1 := &Class{Name: "1", Offering: Offering{Target: 1}, Members: []string{"a"}}
	c2 := &Class{Name: "2", Offering: Offering{Target: 1}, Members: []string{"b"}}
	snap := &Snapshot{Students: map[string]*Student{"a": a, "b": b}, Classes: []*Class{c1, c2}}
	cfg := Default()
	stats := CohortStats{}

	total := TotalScore(snap, &cfg, &stats)
	require.Equal(t, ScoreClass(snap, &cfg, &stats, c1)+ScoreClass(snap, &cfg, &stats, c2), total)
}

func TestWorstClass_PicksHighestScore(t *testing.T) {
	a := &Student{ID: "a", COM: 2.5, TRA: 2.5, PART: 2.5, HasAntinomyAttr: true}
	b := &Student{ID: "b", COM: 2.5, TRA: 2.5, PART: 2.5, HasAntinomyAttr: true}
	good := &Class{Name: "good", Offering: Offering{Target: 1}, Members: []string{"a"}}
	bad := &Class{Name: "bad", Offering: Offering{Target: 10}, Members: []string{"b"}}
	snap := &Snapshot{Students: map[string]*Student{"a": a, "b": b}, Classes: []*Class{good, bad}}
	cfg := Default()
	stats := CohortStats{}

	worst := WorstClass(snap, &cfg, &stats)
	require.Equal(t, bad, worst)
}
