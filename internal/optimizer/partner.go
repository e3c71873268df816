package optimizer

import "math/rand/v2"

// SelectPartner picks a partner class for worst class w: the class
// with the highest complementarity score against w, or with probability
// cfg.ExplorationRate a uniformly random other class. Returns nil if snap
// has fewer than two classes (no partner possible).
func SelectPartner(snap *Snapshot, cfg *Config, stats *CohortStats, w *Class, rng *rand.Rand) *Class {
	others := otherClasses(snap, w)
	if len(others) == 0 {
		return nil
	}

	if rng.Float64() < cfg.ExplorationRate {
		return others[rng.IntN(len(others))]
	}

	wProfile := buildClassProfile(snap, w.Members)
	best := others[0]
	bestScore := complementarity(snap, cfg, stats, &wProfile, best)
	for _, c := range others[1:] {
		s := complementarity(snap, cfg, stats, &wProfile, c)
		if s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best
}

func otherClasses(snap *Snapshot, w *Class) []*Class {
	others := make([]*Class, 0, len(snap.Classes))
	for _, c := range snap.Classes {
		if c != w {
			others = append(others, c)
		}
	}
	return others
}

// complementarity scores how well class c's deficits/excesses offset w's,
// relative to the cohort baseline.
func complementarity(snap *Snapshot, cfg *Config, stats *CohortStats, wProfile *classProfile, c *Class) float64 {
	cProfile := buildClassProfile(snap, c.Members)

	wHeadDelta := float64(wProfile.heads - cfg.HeadMin)
	cHeadDelta := float64(cProfile.heads - cfg.HeadMin)
	wLowDelta := float64(wProfile.lowTier - cfg.Niv1Max)
	cLowDelta := float64(cProfile.lowTier - cfg.Niv1Max)

	score := 3*absF(wHeadDelta-cHeadDelta) + 3*absF(wLowDelta-cLowDelta)

	wRatioF := ratioOf(wProfile)
	cRatioF := ratioOf(&cProfile)
	if straddles(wRatioF, cRatioF, stats.RatioF) {
		score += 2
	}

	if straddles(wProfile.meanCOM, cProfile.meanCOM, stats.MeanCOM) {
		score += 2 * absF(wProfile.meanCOM-cProfile.meanCOM)
	}

	return score
}

func ratioOf(p *classProfile) float64 {
	if p.n == 0 {
		return 0
	}
	return float64(p.females) / float64(p.n)
}

// straddles reports whether a and b lie on opposite sides of mid.
func straddles(a, b, mid float64) bool {
	return (a-mid)*(b-mid) < 0
}
