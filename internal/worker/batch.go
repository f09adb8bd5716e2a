package worker

import (
	"context"
	"sort"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// Evaluator processes a single claim. The pipeline implements this.
type Evaluator interface {
	Process(ctx context.Context, claim *model.Claim, confidence model.FieldConfidence) (*model.Evaluation, error)
}

// Item is one batch input: a claim record plus its extraction confidence
type Item struct {
	Claim      *model.Claim
	Confidence model.FieldConfidence
}

// ItemResult is one batch output, tagged success or failure. Exactly one
// of Evaluation and Err is set.
type ItemResult struct {
	Index      int
	ClaimID    string
	Evaluation *model.Evaluation
	Err        error
}

// GetError returns the item's failure, if any
func (r *ItemResult) GetError() error {
	return r.Err
}

// claimJob carries the input index so the batch output can be restored
// to input order
type claimJob struct {
	index     int
	item      Item
	evaluator Evaluator
}

// Execute runs the claim through the evaluator
func (j *claimJob) Execute(ctx context.Context) Result {
	result := &ItemResult{Index: j.index}
	if j.item.Claim != nil {
		result.ClaimID = j.item.Claim.ClaimID
	}

	eval, err := j.evaluator.Process(ctx, j.item.Claim, j.item.Confidence)
	if err != nil {
		result.Err = err
		return result
	}
	result.Evaluation = eval
	return result
}

// BatchRunner applies the pipeline over a collection of claims. Items
// are processed concurrently but independently: one claim's failure
// never aborts the rest, and the output sequence preserves input order.
type BatchRunner struct {
	evaluator Evaluator
	workers   int
}

// NewBatchRunner creates a batch runner
func NewBatchRunner(evaluator Evaluator, workers int) *BatchRunner {
	if workers <= 0 {
		workers = 1
	}
	return &BatchRunner{evaluator: evaluator, workers: workers}
}

// Run processes all items and returns one result per input, in input
// order, each tagged success or failure.
func (b *BatchRunner) Run(ctx context.Context, items []Item) []*ItemResult {
	if len(items) == 0 {
		return []*ItemResult{}
	}

	pool := NewPool(ctx, b.workers, len(items))
	pool.Start()

	for i, item := range items {
		pool.Submit(&claimJob{index: i, item: item, evaluator: b.evaluator})
	}

	raw := pool.Wait()

	results := make([]*ItemResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*ItemResult))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	return results
}
