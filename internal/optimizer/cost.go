package optimizer

// emptyClassPenalty is the sentinel cost for a class with zero members.
const emptyClassPenalty = 10000.0

// classProfile summarizes the counts and means the cost function needs,
// computed once per Score call from the class's current membership.
type classProfile struct {
	n        int
	heads    int
	lowTier  int
	females  int
	meanCOM  float64
	meanTRA  float64
	meanPART float64
}

func buildClassProfile(snap *Snapshot, members []string) classProfile {
	p := classProfile{n: len(members)}
	if p.n == 0 {
		return p
	}
	var sumCOM, sumTRA, sumPART float64
	for _, id := range members {
		st := snap.Students[id]
		if st.IsHead() {
			p.heads++
		}
		if st.IsLowTier() {
			p.lowTier++
		}
		if st.Gender == GenderF {
			p.females++
		}
		sumCOM += st.COM
		sumTRA += st.TRA
		sumPART += st.PART
	}
	p.meanCOM = sumCOM / float64(p.n)
	p.meanTRA = sumTRA / float64(p.n)
	p.meanPART = sumPART / float64(p.n)
	return p
}

// Score computes the class-level scalar cost: lower is better, and a
// zero-member class is maximally penalized via the empty-class sentinel.
func Score(snap *Snapshot, cfg *Config, stats *CohortStats, members []string, target int) float64 {
	p := buildClassProfile(snap, members)
	if p.n == 0 {
		return emptyClassPenalty
	}

	total := 0.0

	// Headcount term.
	delta := float64(p.n - target)
	total += delta * delta * 800

	// Heads-min / heads-max terms: asymmetric, quadratic deficit, linear excess.
	if p.heads < cfg.HeadMin {
		deficit := float64(cfg.HeadMin - p.heads)
		total += deficit * deficit * 500
	}
	if p.heads > cfg.HeadMax {
		total += float64(p.heads-cfg.HeadMax) * 200
	}

	// Low-tier term (cubic excess).
	if p.lowTier > cfg.Niv1Max {
		excess := float64(p.lowTier - cfg.Niv1Max)
		total += excess * excess * excess * 100
	}

	// Gender term.
	ratioF := float64(p.females) / float64(p.n)
	total += absF(ratioF-stats.RatioF) * 1000 * cfg.WParity

	// Academic term: COM, TRA use weight*100; PART uses weight*50.
	total += absF(p.meanCOM-stats.MeanCOM) * 100 * cfg.WDistrib
	total += absF(p.meanTRA-stats.MeanTRA) * 100 * cfg.WDistrib
	total += absF(p.meanPART-stats.MeanPART) * 50 * cfg.WDistrib

	return total
}

// ScoreClass is a convenience wrapper scoring a Class's current membership.
func ScoreClass(snap *Snapshot, cfg *Config, stats *CohortStats, c *Class) float64 {
	return Score(snap, cfg, stats, c.Members, c.Offering.Target)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TotalScore sums Score across every class in the snapshot, the quantity
// that a run is expected to monotonically drive down across applied swaps.
func TotalScore(snap *Snapshot, cfg *Config, stats *CohortStats) float64 {
	total := 0.0
	for _, c := range snap.Classes {
		total += ScoreClass(snap, cfg, stats, c)
	}
	return total
}

// WorstClass returns the class with the highest (worst) score, using stable
// iteration order to break ties. Returns nil if there are no classes.
func WorstClass(snap *Snapshot, cfg *Config, stats *CohortStats) *Class {
	var worst *Class
	var worstScore float64
	for _, c := range snap.Classes {
		s := ScoreClass(snap, cfg, stats, c)
		if worst == nil || s > worstScore {
			worst = c
			worstScore = s
		}
	}
	return worst
}
