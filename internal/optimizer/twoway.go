package optimizer

import "math/rand/v2"

// Move is a proposed or applied two-way swap: student A (currently in ClassA)
// trades places with student B (currently in ClassB).
type Move struct {
	ClassA, ClassB *Class
	StudentA, StudentB string
	Gain           float64
}

// FindTwoWaySwap searches for the best feasible two-way swap between ca and
// cb: up to SampleSize candidates sampled from each side, skipping fixed
// students and infeasible pairs, keeping the maximum positive gain. Returns
// nil if no improving swap is found.
func FindTwoWaySwap(snap *Snapshot, cfg *Config, stats *CohortStats, ca, cb *Class, rng *rand.Rand) *Move {
	if ca == cb || len(ca.Members) == 0 || len(cb.Members) == 0 {
		return nil
	}

	sampleA := sampleMembers(ca.Members, cfg.SampleSize, rng)
	sampleB := sampleMembers(cb.Members, cfg.SampleSize, rng)

	scoreBefore := ScoreClass(snap, cfg, stats, ca) + ScoreClass(snap, cfg, stats, cb)

	var best *Move
	for _, aID := range sampleA {
		a := snap.Students[aID]
		if a == nil || a.IsFixed() {
			continue
		}
		for _, bID := range sampleB {
			b := snap.Students[bID]
			if b == nil || b.IsFixed() {
				continue
			}
			if !CanSwap(snap, cfg, ca, a, cb, b) {
				continue
			}

			scoreAfter := scoreAfterSwap(snap, cfg, stats, ca, aID, bID) +
				scoreAfterSwap(snap, cfg, stats, cb, bID, aID)
			gain := scoreBefore - scoreAfter

			if gain > 0 && (best == nil || gain > best.Gain) {
				best = &Move{ClassA: ca, ClassB: cb, StudentA: aID, StudentB: bID, Gain: gain}
			}
		}
	}
	return best
}

// scoreAfterSwap scores c as it would be after removing outID and adding
// inID, without mutating c.
func scoreAfterSwap(snap *Snapshot, cfg *Config, stats *CohortStats, c *Class, outID, inID string) float64 {
	members := make([]string, 0, len(c.Members))
	for _, id := range c.Members {
		if id == outID {
			continue
		}
		members = append(members, id)
	}
	members = append(members, inID)
	return Score(snap, cfg, stats, members, c.Offering.Target)
}

// ApplyMove performs a two-way swap in place on the two classes' membership
// lists.
func ApplyMove(m *Move) {
	replaceMember(m.ClassA, m.StudentA, m.StudentB)
	replaceMember(m.ClassB, m.StudentB, m.StudentA)
}

func replaceMember(c *Class, oldID, newID string) {
	for i, id := range c.Members {
		if id == oldID {
			c.Members[i] = newID
			return
		}
	}
}

// sampleMembers returns up to n members drawn without replacement; if
// len(members) <= n the full (shuffled) slice is returned.
func sampleMembers(members []string, n int, rng *rand.Rand) []string {
	pool := make([]string, len(members))
	copy(pool, members)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n < len(pool) {
		pool = pool[:n]
	}
	return pool
}
