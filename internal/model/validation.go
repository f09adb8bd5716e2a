package model

// Severity classifies a validation issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue codes emitted by the field validator
const (
	CodeInvalidNPI            = "INVALID_NPI"
	CodeInvalidCodeFormat     = "INVALID_CODE_FORMAT"
	CodeServiceDateOutOfRange = "SERVICE_DATE_OUT_OF_RANGE"
	CodeAmountOutOfRange      = "AMOUNT_OUT_OF_RANGE"
	CodeMissingField          = "MISSING_FIELD"
	CodeLowConfidenceField    = "LOW_CONFIDENCE_FIELD"
	CodeUnknownClaimType      = "UNKNOWN_CLAIM_TYPE"
	CodeInvalidPatientID      = "INVALID_PATIENT_ID"
	CodeInvalidDateRange      = "INVALID_DATE_RANGE"
)

// ValidationIssue describes one problem found on one field.
// A field may carry multiple issues.
type ValidationIssue struct {
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// ValidationResult is the ordered outcome of field validation plus the
// documentation-completeness score in [0,1]
type ValidationResult struct {
	Issues             []ValidationIssue `json:"issues"`
	DocumentationScore float64           `json:"documentation_score"`
}

// Valid reports whether no issue has severity error
func (r ValidationResult) Valid() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return false
		}
	}
	return true
}

// ErrorCodes returns the codes of all error-severity issues, in order
func (r ValidationResult) ErrorCodes() []string {
	var codes []string
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			codes = append(codes, issue.Code)
		}
	}
	return codes
}

// Warnings returns all warning-severity issues, in order
func (r ValidationResult) Warnings() []ValidationIssue {
	var warnings []ValidationIssue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			warnings = append(warnings, issue)
		}
	}
	return warnings
}
