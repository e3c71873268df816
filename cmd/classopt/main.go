//go:build !lambda

// Command classopt runs the class-placement optimizer over a cohort loaded
// from a JSON document, prints a run summary, and exits non-zero if the
// post-run validation does not pass (duplication violations, or antinomy
// not validated).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"classopt/internal/config"
	"classopt/internal/ingest"
	"classopt/internal/log"
	"classopt/internal/optimizer"
)

// RunResult is the JSON-serializable shape of one optimize run.
type RunResult struct {
	Date              string                `json:"date"`
	SwapsApplied      int                   `json:"swapsApplied"`
	Swaps3Way         int                   `json:"swaps3Way"`
	Exhausted         bool                  `json:"exhausted"`
	OK                bool                  `json:"ok"`
	AntinomyValidated bool                  `json:"antinomyValidated"`
	Violations        []optimizer.Violation `json:"violations,omitempty"`
	TimeMs            int64                 `json:"timeMs"`
}

const usage = `Usage: classopt -input <cohort.json> [flags]

Flags:
`

func main() {
	inputPath := flag.String("input", "", "Path to cohort JSON document")
	configPath := flag.String("config", "", "Path to a configuration overlay JSON file")
	seedFlag := flag.Uint64("seed", 0, "PRNG seed (default: derived from current time)")
	jsonOut := flag.Bool("json", false, "Print the run result as JSON instead of text")
	verbose := flag.Bool("verbose", false, "Print detailed search progress to stderr")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	log.Verbose = *verbose

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	doc, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", *inputPath, err)
		os.Exit(1)
	}

	snap, err := ingest.FromJSON(string(doc))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log.Phase("init", "loaded %d students across %d classes", len(snap.Students), len(snap.Classes))

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger := func(phase optimizer.Phase, swapIndex int, gain float64) {
		tag := "swap"
		if phase == optimizer.PhaseThreeWay {
			tag = "3way"
		}
		log.Verbosef(tag, "#%d gain=%.2f", swapIndex, gain)
	}

	start := time.Now()
	res := optimizer.Optimize(snap, &cfg, seed, logger)
	elapsed := time.Since(start)

	log.Phase("done", "swaps=%d 3way=%d ok=%v", res.SwapsApplied, res.Swaps3Way, res.OK)

	if *jsonOut {
		out := RunResult{
			Date:              time.Now().UTC().Format(time.RFC3339),
			SwapsApplied:      res.SwapsApplied,
			Swaps3Way:         res.Swaps3Way,
			Exhausted:         res.Exhausted,
			OK:                res.OK,
			AntinomyValidated: res.AntinomyValidated,
			Violations:        res.Violations,
			TimeMs:            elapsed.Milliseconds(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
	} else {
		fmt.Print(optimizer.FormatResult(res))
		report := optimizer.Audit(snap)
		fmt.Print(optimizer.FormatReport(report))
	}

	if !res.OK {
		os.Exit(1)
	}
}
