package model

import "fmt"

// SchemaError marks a claim record the pipeline cannot process at all:
// unrecognized claim type or structurally absent required fields. It is
// fatal for that single claim and caught at the batch boundary.
type SchemaError struct {
	ClaimID string
	Reason  string
}

func (e *SchemaError) Error() string {
	if e.ClaimID == "" {
		return fmt.Sprintf("schema error: %s", e.Reason)
	}
	return fmt.Sprintf("schema error: claim %s: %s", e.ClaimID, e.Reason)
}

// ConfigurationError marks an engine constructed with out-of-range
// thresholds. It is never caught downstream; construction must fail.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Option, e.Reason)
}
