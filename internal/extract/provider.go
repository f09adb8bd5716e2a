// Package extract integrates the upstream AI extraction service that
// turns raw document text into a structured claim record with per-field
// confidence scores. The pipeline itself never calls out here; this is
// the collaborator that produces its input.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// Provider defines an AI extraction backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a prompt and returns the raw model output
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is the input for one extraction call
type CompletionRequest struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int
}

// CompletionResponse is the raw model output
type CompletionResponse struct {
	Content    string
	Model      string
	TokensUsed int
}

// extractionPayload is the JSON shape the model is instructed to emit
type extractionPayload struct {
	Claim      model.Claim        `json:"claim"`
	Confidence map[string]float64 `json:"confidence"`
}

const systemPrompt = `You are an insurance claim data extraction service.
Given the text of a claim form, extract a structured claim record.
Respond with JSON only, no prose, in this shape:
{"claim": {...}, "confidence": {"<field>": 0.0-1.0, ...}}
Every field you fill in the claim must have a confidence entry.
Use ISO 8601 timestamps for dates. Leave fields you cannot find empty.`

// BuildPrompt constructs the extraction prompt for a document. Long
// documents are truncated; claim forms front-load the relevant fields.
func BuildPrompt(documentText string) string {
	const maxChars = 6000
	if len(documentText) > maxChars {
		documentText = documentText[:maxChars]
	}
	return fmt.Sprintf(`Extract the claim record from this document.

Recognized claim types: medical, dental, vision, prescription, hospital.
Claim fields: claim_id, claim_type, patient_name, patient_id, provider_name,
provider_npi, service_date, total_amount, description, diagnosis_codes (ICD-10),
procedure_codes (CPT), documents, plus type-specific details.

Document text:
%s`, documentText)
}

// ParseExtraction decodes the model output into a claim and its
// confidence map. Markdown code fences around the JSON are tolerated.
func ParseExtraction(content string) (*model.Claim, model.FieldConfidence, error) {
	content = stripFences(content)

	var payload extractionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, nil, fmt.Errorf("parse extraction output: %w", err)
	}

	confidence := make(model.FieldConfidence, len(payload.Confidence))
	for field, score := range payload.Confidence {
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		confidence[field] = score
	}

	return &payload.Claim, confidence, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
