package validate

import (
	"fmt"
	"time"

	"github.com/PyBADR/SmartFormsGPT/internal/model"
)

// highValueAmount is the billed amount above which a claim is expected to
// carry both diagnosis and procedure codes to count as fully documented
const highValueAmount = 5000

// Validator checks format and range correctness of individual claim
// fields, independent of business context. It performs no I/O.
type Validator struct {
	confidenceFloor float64
	windowDays      int
	maxAmount       float64
	now             func() time.Time // injectable for tests
}

// NewValidator creates a validator from the pipeline configuration
func NewValidator(cfg *model.Config) *Validator {
	return &Validator{
		confidenceFloor: cfg.Validation.ConfidenceFloor,
		windowDays:      cfg.Rules.ServiceDateWindowDays,
		maxAmount:       cfg.Rules.MaxClaimAmount,
		now:             time.Now,
	}
}

// Validate checks every field of the claim and returns the ordered issue
// list plus the documentation-completeness score. A claim of an
// unrecognized type fails immediately with a single issue; no further
// checks run.
func (v *Validator) Validate(claim *model.Claim, confidence model.FieldConfidence) model.ValidationResult {
	var issues []model.ValidationIssue

	if !model.KnownClaimType(claim.ClaimType) {
		issues = append(issues, model.ValidationIssue{
			Field:    "claim_type",
			Severity: model.SeverityError,
			Code:     model.CodeUnknownClaimType,
			Message:  fmt.Sprintf("unrecognized claim type %q", claim.ClaimType),
		})
		return model.ValidationResult{Issues: issues}
	}

	issues = append(issues, v.checkRequiredFields(claim)...)
	issues = append(issues, v.checkIdentifiers(claim)...)
	issues = append(issues, v.checkCodes(claim)...)
	issues = append(issues, v.checkServiceDate(claim)...)
	issues = append(issues, v.checkAmount(claim)...)
	issues = append(issues, v.checkDateRanges(claim)...)
	issues = append(issues, v.checkConfidence(claim, confidence)...)

	return model.ValidationResult{
		Issues:             issues,
		DocumentationScore: v.documentationScore(claim),
	}
}

// requiredFields returns the required field names and their values for
// the claim's type. The type tag determines the per-variant extras.
func requiredFields(claim *model.Claim) []struct{ name, value string } {
	fields := []struct{ name, value string }{
		{"patient_name", claim.PatientName},
		{"patient_id", claim.PatientID},
		{"provider_name", claim.ProviderName},
	}

	switch claim.ClaimType {
	case model.ClaimTypePrescription:
		p := claim.Prescription
		if p == nil {
			p = &model.PrescriptionDetails{}
		}
		fields = append(fields,
			struct{ name, value string }{"prescription.medication_name", p.MedicationName},
			struct{ name, value string }{"prescription.dosage", p.Dosage},
			struct{ name, value string }{"prescription.pharmacy_name", p.PharmacyName},
		)
	case model.ClaimTypeHospital:
		m := claim.Medical
		if m == nil || m.AdmissionDate == nil {
			fields = append(fields, struct{ name, value string }{"medical.admission_date", ""})
		}
	}

	return fields
}

func (v *Validator) checkRequiredFields(claim *model.Claim) []model.ValidationIssue {
	var issues []model.ValidationIssue

	for _, f := range requiredFields(claim) {
		if f.value == "" {
			issues = append(issues, model.ValidationIssue{
				Field:    f.name,
				Severity: model.SeverityError,
				Code:     model.CodeMissingField,
				Message:  fmt.Sprintf("required field %s is empty", f.name),
			})
		}
	}

	if claim.ServiceDate.IsZero() {
		issues = append(issues, model.ValidationIssue{
			Field:    "service_date",
			Severity: model.SeverityError,
			Code:     model.CodeMissingField,
			Message:  "required field service_date is empty",
		})
	}

	return issues
}

func (v *Validator) checkIdentifiers(claim *model.Claim) []model.ValidationIssue {
	var issues []model.ValidationIssue

	if claim.PatientID != "" && !ValidPatientID(claim.PatientID) {
		issues = append(issues, model.ValidationIssue{
			Field:    "patient_id",
			Severity: model.SeverityError,
			Code:     model.CodeInvalidPatientID,
			Message:  "patient ID must be 6-20 characters of letters, digits, and hyphens",
		})
	}

	if claim.ProviderNPI != "" && !ValidNPI(claim.ProviderNPI) {
		issues = append(issues, model.ValidationIssue{
			Field:    "provider_npi",
			Severity: model.SeverityError,
			Code:     model.CodeInvalidNPI,
			Message:  fmt.Sprintf("provider NPI %q failed the 10-digit checksum", claim.ProviderNPI),
		})
	}

	if claim.Prescription != nil && claim.Prescription.PharmacyNPI != "" && !ValidNPI(claim.Prescription.PharmacyNPI) {
		issues = append(issues, model.ValidationIssue{
			Field:    "prescription.pharmacy_npi",
			Severity: model.SeverityError,
			Code:     model.CodeInvalidNPI,
			Message:  fmt.Sprintf("pharmacy NPI %q failed the 10-digit checksum", claim.Prescription.PharmacyNPI),
		})
	}

	return issues
}

func (v *Validator) checkCodes(claim *model.Claim) []model.ValidationIssue {
	var issues []model.ValidationIssue

	for _, code := range claim.DiagnosisCodes {
		if !ValidICD10(code) {
			issues = append(issues, model.ValidationIssue{
				Field:    "diagnosis_codes",
				Severity: model.SeverityError,
				Code:     model.CodeInvalidCodeFormat,
				Message:  fmt.Sprintf("%q is not a valid ICD-10 code (e.g. A00, A00.1)", code),
			})
		}
	}

	for _, code := range claim.ProcedureCodes {
		if !ValidCPT(code) {
			issues = append(issues, model.ValidationIssue{
				Field:    "procedure_codes",
				Severity: model.SeverityError,
				Code:     model.CodeInvalidCodeFormat,
				Message:  fmt.Sprintf("%q is not a valid CPT code (5 digits)", code),
			})
		}
	}

	return issues
}

func (v *Validator) checkServiceDate(claim *model.Claim) []model.ValidationIssue {
	if claim.ServiceDate.IsZero() {
		return nil // already reported as missing
	}

	now := v.now()
	oldest := now.AddDate(0, 0, -v.windowDays)

	var issues []model.ValidationIssue
	if claim.ServiceDate.After(now) {
		issues = append(issues, model.ValidationIssue{
			Field:    "service_date",
			Severity: model.SeverityError,
			Code:     model.CodeServiceDateOutOfRange,
			Message:  "service date is in the future",
		})
	} else if claim.ServiceDate.Before(oldest) {
		issues = append(issues, model.ValidationIssue{
			Field:    "service_date",
			Severity: model.SeverityError,
			Code:     model.CodeServiceDateOutOfRange,
			Message:  fmt.Sprintf("service date is older than %d days", v.windowDays),
		})
	}
	return issues
}

func (v *Validator) checkAmount(claim *model.Claim) []model.ValidationIssue {
	if claim.TotalAmount <= 0 {
		return []model.ValidationIssue{{
			Field:    "total_amount",
			Severity: model.SeverityError,
			Code:     model.CodeAmountOutOfRange,
			Message:  fmt.Sprintf("billed amount %.2f must be positive", claim.TotalAmount),
		}}
	}
	if claim.TotalAmount > v.maxAmount {
		return []model.ValidationIssue{{
			Field:    "total_amount",
			Severity: model.SeverityError,
			Code:     model.CodeAmountOutOfRange,
			Message:  fmt.Sprintf("billed amount %.2f exceeds ceiling %.2f", claim.TotalAmount, v.maxAmount),
		}}
	}
	return nil
}

func (v *Validator) checkDateRanges(claim *model.Claim) []model.ValidationIssue {
	m := claim.Medical
	if m == nil || m.AdmissionDate == nil || m.DischargeDate == nil {
		return nil
	}
	if m.DischargeDate.Before(*m.AdmissionDate) {
		return []model.ValidationIssue{{
			Field:    "medical.discharge_date",
			Severity: model.SeverityError,
			Code:     model.CodeInvalidDateRange,
			Message:  "discharge date precedes admission date",
		}}
	}
	return nil
}

// checkConfidence flags low-confidence extractions as warnings. Warnings
// never invalidate a claim on their own; they feed the review decision.
func (v *Validator) checkConfidence(claim *model.Claim, confidence model.FieldConfidence) []model.ValidationIssue {
	var issues []model.ValidationIssue
	for _, field := range claim.PopulatedFields() {
		score := confidence.Get(field)
		if score < v.confidenceFloor {
			issues = append(issues, model.ValidationIssue{
				Field:    field,
				Severity: model.SeverityWarning,
				Code:     model.CodeLowConfidenceField,
				Message:  fmt.Sprintf("extraction confidence %.2f below floor %.2f", score, v.confidenceFloor),
			})
		}
	}
	return issues
}

// documentationScore is the fraction of expected supporting evidence
// actually present, computed independently of pass/fail. High-value
// claims additionally expect both code lists.
func (v *Validator) documentationScore(claim *model.Claim) float64 {
	type component struct {
		weight  float64
		present bool
	}

	components := []component{
		{1.0, len(claim.Description) > 10},
		{1.5, len(claim.DiagnosisCodes) > 0},
		{1.5, len(claim.ProcedureCodes) > 0},
		{0.5, claim.ProviderNPI != ""},
		{0.5, len(claim.Documents) > 0},
	}

	if claim.TotalAmount > highValueAmount {
		components = append(components, component{
			1.0, len(claim.DiagnosisCodes) > 0 && len(claim.ProcedureCodes) > 0,
		})
	}

	expected, earned := 0.0, 0.0
	for _, c := range components {
		expected += c.weight
		if c.present {
			earned += c.weight
		}
	}
	return earned / expected
}
