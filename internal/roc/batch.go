package roc

import (
	"context"
	"sync"

	"github.com/san-kum/roclab/internal/system"
)

// Outcome bundles the full analysis of one model.
type Outcome struct {
	Verdict Verdict
	Region  Region
	Curves  []Curve
}

// Analyze runs classification and region derivation in one call.
func Analyze(m system.Model) (Outcome, error) {
	v, err := Classify(m)
	if err != nil {
		return Outcome{}, err
	}
	region, curves, err := DeriveRegion(m, v)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Verdict: v, Region: region, Curves: curves}, nil
}

// AnalyzeAll classifies a batch of models concurrently. Results keep the
// input order. The first model error aborts the batch.
func AnalyzeAll(ctx context.Context, models []system.Model) ([]Outcome, error) {
	outcomes := make([]Outcome, len(models))
	errs := make([]error, len(models))

	var wg sync.WaitGroup
	for i := range models {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if ctx.Err() != nil {
				errs[idx] = ctx.Err()
				return
			}
			outcomes[idx], errs[idx] = Analyze(models[idx])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return outcomes, nil
}
