package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeMobility_AffinityAndAntinomyFixStudent(t *testing.T) {
	students := map[string]*Student{
		"a": {ID: "a", Affinity: "A1"},
		"b": {ID: "b", Antinomy: "D1"},
		"c": {ID: "c"},
	}
	offerings := BuildOfferings([]ClassQuota{
		{ClassName: "X", Target: 10}, {ClassName: "Y", Target: 10},
	})

	result := ComputeMobility(students, &offerings)
	require.Equal(t, Fixed, result["a"])
	require.Equal(t, Fixed, result["b"])
	require.Equal(t, Movable, result["c"])
}

func TestComputeMobility_SingletonAdmissibleClassIsFixed(t *testing.T) {
	students := map[string]*Student{
		"a": {ID: "a", OPT: "LATIN"},
	}
	offerings := BuildOfferings([]ClassQuota{
		{ClassName: "X", OPTQuota: map[string]int{"LATIN": 5}, Target: 10},
		{ClassName: "Y", Target: 10},
	})

	result := ComputeMobility(students, &offerings)
	require.Equal(t, Fixed, result["a"], "only X offers LATIN, so a has a single admissible destination")
}

func TestComputeMobility_UnknownCodesDoNotConstrain(t *testing.T) {
	students := map[string]*Student{
		"a": {ID: "a", LV2: "ZZZ"},
	}
	offerings := BuildOfferings([]ClassQuota{
		{ClassName: "X", Target: 10}, {ClassName: "Y", Target: 10},
	})

	result := ComputeMobility(students, &offerings)
	require.Equal(t, Movable, result["a"], "an unrecognized LV2 code imposes no elective obligation")
}
