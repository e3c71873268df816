package optimizer

import "math/rand/v2"

// Phase names the optimizer's run phase, used by the logging hook.
type Phase int

const (
	PhaseTwoWay Phase = iota
	PhaseThreeWay
)

// SwapLogger receives a notification for the first 5 applied swaps of each
// phase and for every 10th one after that, so a caller can log progress
// without the driver depending on any particular logging package. Callers
// that don't need logging may pass nil.
type SwapLogger func(phase Phase, swapIndex int, gain float64)

// Result is optimize's external return value. AntinomyValidated is false
// when the source data had no antinomy column to check in the first place,
// so OK reflects "validated and clean", never "unchecked but assumed clean".
type Result struct {
	OK                bool
	SwapsApplied      int
	Swaps3Way         int
	Exhausted         bool
	Violations        []Violation
	AntinomyValidated bool
}

const minGain = 1e-4

// Optimize runs the full driver: two-way swap climbing to convergence,
// followed by the three-way cycle phase, followed by the duplication
// validator. It mutates snap's class membership in place.
func Optimize(snap *Snapshot, cfg *Config, seed uint64, logger SwapLogger) Result {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	stats := ComputeCohortStats(snap)

	swaps, exhausted := runTwoWayPhase(snap, cfg, &stats, rng, logger)
	swaps3 := runThreeWayPhase(snap, cfg, &stats, rng, logger)

	violations, antinomyValidated := Validate(snap)

	return Result{
		OK:                len(violations) == 0 && antinomyValidated,
		SwapsApplied:      swaps,
		Swaps3Way:         swaps3,
		Exhausted:         exhausted,
		Violations:        violations,
		AntinomyValidated: antinomyValidated,
	}
}

// runTwoWayPhase is the main climbing loop: pick the worst class, pick a
// partner, search for an improving swap, apply it, and repeat until
// convergence or the iteration cap.
func runTwoWayPhase(snap *Snapshot, cfg *Config, stats *CohortStats, rng *rand.Rand, logger SwapLogger) (swaps int, exhausted bool) {
	stagnation := 0

	for iter := 0; iter < cfg.MaxSwaps; iter++ {
		worst := WorstClass(snap, cfg, stats)
		if worst == nil || ScoreClass(snap, cfg, stats, worst) == 0 {
			return swaps, false
		}

		partner := SelectPartner(snap, cfg, stats, worst, rng)
		if partner == nil {
			if stagnation > 10 {
				return swaps, false
			}
			stagnation++
			continue
		}

		best := FindTwoWaySwap(snap, cfg, stats, worst, partner, rng)
		if best != nil && best.Gain > minGain {
			ApplyMove(best)
			stagnation = 0
			swaps++
			if logger != nil && (swaps <= 5 || swaps%10 == 0) {
				logger(PhaseTwoWay, swaps, best.Gain)
			}
			continue
		}

		stagnation++
		if stagnation >= cfg.StagnationLimit {
			return swaps, false
		}
	}
	return swaps, true
}

// runThreeWayPhase runs after two-way convergence.
func runThreeWayPhase(snap *Snapshot, cfg *Config, stats *CohortStats, rng *rand.Rand, logger SwapLogger) int {
	swaps := 0
	for {
		r := FindThreeWayRotation(snap, cfg, stats, rng)
		if r == nil || r.Gain <= minGain {
			return swaps
		}
		ApplyRotation(r)
		swaps++
		if logger != nil && (swaps <= 5 || swaps%10 == 0) {
			logger(PhaseThreeWay, swaps, r.Gain)
		}
	}
}
