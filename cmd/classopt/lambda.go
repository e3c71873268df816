//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"classopt/internal/ingest"
	"classopt/internal/optimizer"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// optimizeRequest is the Function URL request body: a cohort document plus
// an optional configuration overlay and PRNG seed.
type optimizeRequest struct {
	Cohort json.RawMessage `json:"cohort"`
	Config *overlayFields  `json:"config"`
	Seed   uint64          `json:"seed"`
}

// overlayFields is a subset of internal/config's file-based overlay, inlined
// here since the Lambda body carries JSON directly rather than a file path.
// Only max_swaps, stagnation_limit and exploration_rate are read; every
// other option keeps its optimizer.Default() value.
type overlayFields struct {
	MaxSwaps        *int     `json:"max_swaps"`
	StagnationLimit *int     `json:"stagnation_limit"`
	ExplorationRate *float64 `json:"exploration_rate"`
}

type optimizeResponse struct {
	OK                bool                  `json:"ok"`
	SwapsApplied      int                   `json:"swapsApplied"`
	Swaps3Way         int                   `json:"swaps3Way"`
	AntinomyValidated bool                  `json:"antinomyValidated"`
	Violations        []optimizer.Violation `json:"violations,omitempty"`
	TimeMs            int64                 `json:"timeMs"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req optimizeRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if len(req.Cohort) == 0 {
		return errResp(400, "missing cohort field")
	}

	snap, err := ingest.FromJSON(string(req.Cohort))
	if err != nil {
		return errResp(400, "cohort: "+err.Error())
	}

	cfg := optimizer.Default()
	if req.Config != nil {
		if req.Config.MaxSwaps != nil {
			cfg.MaxSwaps = *req.Config.MaxSwaps
		}
		if req.Config.StagnationLimit != nil {
			cfg.StagnationLimit = *req.Config.StagnationLimit
		}
		if req.Config.ExplorationRate != nil {
			cfg.ExplorationRate = *req.Config.ExplorationRate
		}
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	start := time.Now()
	res := optimizer.Optimize(snap, &cfg, seed, nil)
	elapsed := time.Since(start)

	resp := optimizeResponse{
		OK: res.OK, SwapsApplied: res.SwapsApplied, Swaps3Way: res.Swaps3Way,
		AntinomyValidated: res.AntinomyValidated,
		Violations:        res.Violations, TimeMs: elapsed.Milliseconds(),
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
