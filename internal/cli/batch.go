package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
	"github.com/PyBADR/SmartFormsGPT/internal/pipeline"
	"github.com/PyBADR/SmartFormsGPT/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <claims.json>",
	Short: "Evaluate multiple claims from a file in parallel",
	Long: `Batch processes an ordered JSON array of claim inputs:
- Each claim is evaluated independently; one malformed record never
  aborts the rest
- Results come back in input order, one entry per input claim
- Reports are written per claim, plus a summary of verdicts

Example:
  smartforms batch claims.json
  smartforms batch claims.json --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./claim-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Output.Dir = outputDir
	cfg.Output.IncludeFooter = !noFooter
	cfg.Concurrency.Workers = concurrency

	log := newLogger()

	items, err := readBatchFile(args[0])
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %d claims with %d workers...\n", len(items), cfg.Concurrency.Workers)

	runner := worker.NewBatchRunner(p, cfg.Concurrency.Workers)
	results := runner.Run(ctx, items)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	counts := map[model.Verdict]int{}
	failed := 0

	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ item %d (%s): %v\n", result.Index, result.ClaimID, result.Err)
			continue
		}

		eval := result.Evaluation
		counts[eval.Decision.Verdict]++

		jsonPath := filepath.Join(cfg.Output.Dir, eval.Decision.ClaimID+".json")
		mdPath := filepath.Join(cfg.Output.Dir, eval.Decision.ClaimID+".md")
		if err := renderer.RenderJSON(eval, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write JSON: %v\n", eval.Decision.ClaimID, err)
			continue
		}
		if err := renderer.RenderMarkdown(eval, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write Markdown: %v\n", eval.Decision.ClaimID, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s: %s\n", eval.Decision.ClaimID, eval.Decision.Verdict)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:          %d\n", len(results))
	fmt.Fprintf(os.Stderr, "  Approved:       %d\n", counts[model.VerdictApproved])
	fmt.Fprintf(os.Stderr, "  Rejected:       %d\n", counts[model.VerdictRejected])
	fmt.Fprintf(os.Stderr, "  Manual review:  %d\n", counts[model.VerdictManualReview])
	fmt.Fprintf(os.Stderr, "  Failed:         %d\n", failed)
	fmt.Fprintf(os.Stderr, "  Output:         %s\n", cfg.Output.Dir)

	return nil
}
