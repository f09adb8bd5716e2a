package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// Renderer writes evaluation reports to disk
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full evaluation (decision + audit trail) as JSON
func (r *Renderer) RenderJSON(eval *model.Evaluation, path string) error {
	data, err := json.MarshalIndent(eval, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal evaluation: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable decision explanation
func (r *Renderer) RenderMarkdown(eval *model.Evaluation, path string) error {
	var b strings.Builder

	d := eval.Decision
	fmt.Fprintf(&b, "# Claim Decision: %s\n\n", strings.ToUpper(string(d.Verdict)))
	fmt.Fprintf(&b, "- **Claim ID**: %s\n", d.ClaimID)
	fmt.Fprintf(&b, "- **Confidence**: %.0f%%\n", d.OverallConfidence*100)
	fmt.Fprintf(&b, "- **Decided at**: %s\n", d.Timestamp.Format("2006-01-02 15:04:05 UTC"))
	if d.Supersedes != "" {
		fmt.Fprintf(&b, "- **Supersedes**: %s\n", d.Supersedes)
	}

	b.WriteString("\n## Rationale\n\n")
	for i, reason := range d.Rationale {
		fmt.Fprintf(&b, "%d. %s\n", i+1, reason)
	}

	b.WriteString("\n## Rule Outcomes\n\n")
	b.WriteString("| Rule | Passed | Detail |\n")
	b.WriteString("|------|--------|--------|\n")
	for _, outcome := range eval.Rules {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", outcome.Rule, passedMark(outcome.Passed), outcome.Detail)
	}

	if len(eval.Validation.Issues) > 0 {
		b.WriteString("\n## Validation Issues\n\n")
		for _, issue := range eval.Validation.Issues {
			fmt.Fprintf(&b, "- `%s` [%s] %s: %s\n", issue.Code, issue.Severity, issue.Field, issue.Message)
		}
	}
	fmt.Fprintf(&b, "\nDocumentation score: %.2f\n", eval.Validation.DocumentationScore)

	if r.includeFooter {
		b.WriteString("\n---\n")
		b.WriteString("Generated by SmartFormsGPT. Decisions are reproducible from the recorded thresholds and inputs.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write Markdown report: %w", err)
	}
	return nil
}

func passedMark(passed bool) string {
	if passed {
		return "✓"
	}
	return "✗"
}
