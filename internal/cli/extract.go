package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/PyBADR/SmartFormsGPT/internal/extract"
	"github.com/PyBADR/SmartFormsGPT/internal/pipeline"
)

var (
	extractTimeout time.Duration
	extractDecide  bool
	extractOut     string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <document.txt>",
	Short: "Extract a structured claim from document text via the AI service",
	Long: `Sends document text to the configured AI extraction provider and
writes the structured claim record plus per-field confidence scores.
With --decide, the extracted claim is immediately evaluated by the
pipeline as well.

Requires OPENAI_API_KEY (or extractor.api_key in the config file).

Example:
  smartforms extract claim-form.txt
  smartforms extract claim-form.txt --decide`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 2*time.Minute, "extraction timeout")
	extractCmd.Flags().BoolVar(&extractDecide, "decide", false, "evaluate the extracted claim immediately")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "write extracted claim JSON to this file (default stdout)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger()

	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	extractor, err := extract.NewExtractor(cfg.Extractor, log)
	if err != nil {
		return err
	}

	claim, confidence, err := extractor.ExtractClaim(ctx, string(text))
	if err != nil {
		return fmt.Errorf("extract claim: %w", err)
	}

	output := claimInput{Claim: claim, Confidence: confidence}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal claim: %w", err)
	}

	if extractOut != "" {
		if err := os.WriteFile(extractOut, data, 0644); err != nil {
			return fmt.Errorf("write claim: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Extracted claim written to %s\n", extractOut)
	} else {
		fmt.Println(string(data))
	}

	if !extractDecide {
		return nil
	}

	p, err := pipeline.NewPipeline(cfg, log)
	if err != nil {
		return err
	}
	eval, err := p.Process(ctx, claim, confidence)
	if err != nil {
		return fmt.Errorf("process claim: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ %s: %s (confidence %.2f)\n",
		eval.Decision.ClaimID, eval.Decision.Verdict, eval.Decision.OverallConfidence)
	for _, reason := range eval.Decision.Rationale {
		fmt.Fprintf(os.Stderr, "  - %s\n", reason)
	}

	return nil
}
