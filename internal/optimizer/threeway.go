package optimizer

import "math/rand/v2"

// Rotation is a proposed three-way cycle swap: a leaves c1 for c2, b leaves
// c2 for c3, c leaves c3 for c1.
type Rotation struct {
	C1, C2, C3          *Class
	StudentA, StudentB, StudentC string
	Gain                float64
}

// FindThreeWayRotation runs the three-way cycle search: up to
// ThreeWayOuterIterations outer iterations, each sampling up to
// ThreeWayTriplesPerIteration random ordered class triples and, within each,
// up to ThreeWayStudentTriplesPerTriple student triples. Feasibility is
// checked pairwise on (a,b) and (b,c) only; the third leg follows by
// construction (a deliberate simplification, not an oversight). Stops at the
// first outer iteration with no improving rotation and returns the best one
// found, or nil.
func FindThreeWayRotation(snap *Snapshot, cfg *Config, stats *CohortStats, rng *rand.Rand) *Rotation {
	if len(snap.Classes) < 3 {
		return nil
	}

	var best *Rotation
	for outer := 0; outer < cfg.ThreeWayOuterIterations; outer++ {
		found := false
		for t := 0; t < cfg.ThreeWayTriplesPerIteration; t++ {
			c1, c2, c3 := sampleDistinctClasses(snap.Classes, rng)
			if c1 == nil {
				continue
			}
			r := bestRotationInTriple(snap, cfg, stats, c1, c2, c3, rng)
			if r != nil {
				found = true
				if best == nil || r.Gain > best.Gain {
					best = r
				}
			}
		}
		if !found {
			break
		}
	}
	return best
}

func bestRotationInTriple(snap *Snapshot, cfg *Config, stats *CohortStats, c1, c2, c3 *Class, rng *rand.Rand) *Rotation {
	if len(c1.Members) == 0 || len(c2.Members) == 0 || len(c3.Members) == 0 {
		return nil
	}

	scoreBefore := ScoreClass(snap, cfg, stats, c1) + ScoreClass(snap, cfg, stats, c2) + ScoreClass(snap, cfg, stats, c3)

	var best *Rotation
	for i := 0; i < cfg.ThreeWayStudentTriplesPerTriple; i++ {
		aID := randomMember(c1.Members, rng)
		bID := randomMember(c2.Members, rng)
		cID := randomMember(c3.Members, rng)

		a, b, c := snap.Students[aID], snap.Students[bID], snap.Students[cID]
		if a == nil || b == nil || c == nil || a.IsFixed() || b.IsFixed() || c.IsFixed() {
			continue
		}
		if !CanSwap(snap, cfg, c1, a, c2, b) {
			continue
		}
		if !CanSwap(snap, cfg, c2, b, c3, c) {
			continue
		}

		m1 := rotatedMembers(c1.Members, aID, cID)
		m2 := rotatedMembers(c2.Members, bID, aID)
		m3 := rotatedMembers(c3.Members, cID, bID)

		scoreAfter := Score(snap, cfg, stats, m1, c1.Offering.Target) +
			Score(snap, cfg, stats, m2, c2.Offering.Target) +
			Score(snap, cfg, stats, m3, c3.Offering.Target)

		gain := scoreBefore - scoreAfter
		if gain > 0 && (best == nil || gain > best.Gain) {
			best = &Rotation{C1: c1, C2: c2, C3: c3, StudentA: aID, StudentB: bID, StudentC: cID, Gain: gain}
		}
	}
	return best
}

// rotatedMembers returns c's membership with outID removed and inID added.
func rotatedMembers(members []string, outID, inID string) []string {
	out := make([]string, 0, len(members))
	for _, id := range members {
		if id == outID {
			continue
		}
		out = append(out, id)
	}
	return append(out, inID)
}

// ApplyRotation performs the three-way cycle in place: a->c2, b->c3, c->c1.
func ApplyRotation(r *Rotation) {
	replaceMember(r.C1, r.StudentA, r.StudentC)
	replaceMember(r.C2, r.StudentB, r.StudentA)
	replaceMember(r.C3, r.StudentC, r.StudentB)
}

func sampleDistinctClasses(classes []*Class, rng *rand.Rand) (a, b, c *Class) {
	if len(classes) < 3 {
		return nil, nil, nil
	}
	idx := rng.Perm(len(classes))[:3]
	return classes[idx[0]], classes[idx[1]], classes[idx[2]]
}

func randomMember(members []string, rng *rand.Rand) string {
	return members[rng.IntN(len(members))]
}
