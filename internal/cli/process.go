package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/PyBADR/SmartFormsGPT/internal/pipeline"
)

var (
	outputDir      string
	processTimeout time.Duration
	noFooter       bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <claim.json>",
	Short: "Evaluate a single claim and write its decision report",
	Long: `Runs one claim through the full pipeline: field validation, business
rules, and the decision engine. Writes a JSON report with the complete
audit trail and a Markdown explanation.

The input file holds the claim record plus the extractor's per-field
confidence:
  {"claim": {...}, "confidence": {"patient_name": 0.97, ...}}

Example:
  smartforms process claim.json
  smartforms process claim.json --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&outputDir, "output-dir", "./claim-reports", "output directory for reports")
	processCmd.Flags().DurationVar(&processTimeout, "timeout", time.Minute, "processing timeout")
	processCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Output.Dir = outputDir
	cfg.Output.IncludeFooter = !noFooter

	log := newLogger()

	claim, confidence, err := readClaimFile(args[0])
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, log)
	if err != nil {
		return err
	}

	eval, err := p.Process(ctx, claim, confidence)
	if err != nil {
		return fmt.Errorf("process claim: %w", err)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	jsonPath := filepath.Join(cfg.Output.Dir, eval.Decision.ClaimID+".json")
	mdPath := filepath.Join(cfg.Output.Dir, eval.Decision.ClaimID+".md")

	if err := renderer.RenderJSON(eval, jsonPath); err != nil {
		return err
	}
	if err := renderer.RenderMarkdown(eval, mdPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ %s: %s (confidence %.2f)\n",
		eval.Decision.ClaimID, eval.Decision.Verdict, eval.Decision.OverallConfidence)
	for _, reason := range eval.Decision.Rationale {
		fmt.Fprintf(os.Stderr, "  - %s\n", reason)
	}
	fmt.Fprintf(os.Stderr, "  Reports: %s, %s\n", jsonPath, mdPath)

	return nil
}
