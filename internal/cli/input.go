package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
	"github.com/PyBADR/SmartFormsGPT/internal/worker"
)

// claimInput is the file format for pipeline inputs: the claim record
// plus the extractor's per-field confidence
type claimInput struct {
	Claim      *model.Claim          `json:"claim"`
	Confidence model.FieldConfidence `json:"confidence"`
}

// readClaimFile reads a single claim input. A bare claim object without
// the {claim, confidence} wrapper is accepted; its confidence defaults
// to empty (every field then counts as confidence 0).
func readClaimFile(path string) (*model.Claim, model.FieldConfidence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read claim file: %w", err)
	}

	var input claimInput
	if err := decodeStrict(data, &input); err == nil && input.Claim != nil {
		return input.Claim, input.Confidence, nil
	}

	var claim model.Claim
	if err := json.Unmarshal(data, &claim); err != nil {
		return nil, nil, fmt.Errorf("parse claim file: %w", err)
	}
	return &claim, nil, nil
}

// readBatchFile reads an ordered JSON array of claim inputs
func readBatchFile(path string) ([]worker.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var inputs []claimInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parse batch file: %w", err)
	}

	items := make([]worker.Item, len(inputs))
	for i, input := range inputs {
		items[i] = worker.Item{Claim: input.Claim, Confidence: input.Confidence}
	}
	return items, nil
}

func decodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
