package model

import "time"

// ClaimType tags the claim union and determines which extra fields are required
type ClaimType string

const (
	ClaimTypeMedical      ClaimType = "medical"
	ClaimTypeDental       ClaimType = "dental"
	ClaimTypeVision       ClaimType = "vision"
	ClaimTypePrescription ClaimType = "prescription"
	ClaimTypeHospital     ClaimType = "hospital"
)

// KnownClaimType reports whether t is one of the recognized claim types
func KnownClaimType(t ClaimType) bool {
	switch t {
	case ClaimTypeMedical, ClaimTypeDental, ClaimTypeVision, ClaimTypePrescription, ClaimTypeHospital:
		return true
	}
	return false
}

// Claim is a structured claim record as produced by the extraction service.
// The pipeline only reads it; ownership stays with the caller.
type Claim struct {
	ClaimID   string    `json:"claim_id" yaml:"claim_id"`
	ClaimType ClaimType `json:"claim_type" yaml:"claim_type"`

	// Patient information
	PatientName string    `json:"patient_name" yaml:"patient_name"`
	PatientID   string    `json:"patient_id" yaml:"patient_id"`
	DateOfBirth time.Time `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`

	// Provider information
	ProviderName string `json:"provider_name" yaml:"provider_name"`
	ProviderNPI  string `json:"provider_npi,omitempty" yaml:"provider_npi,omitempty"`

	// Service details
	ServiceDate time.Time `json:"service_date" yaml:"service_date"`
	TotalAmount float64   `json:"total_amount" yaml:"total_amount"`
	Currency    string    `json:"currency,omitempty" yaml:"currency,omitempty"`

	// Documentation
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	DiagnosisCodes []string `json:"diagnosis_codes,omitempty" yaml:"diagnosis_codes,omitempty"` // ICD-10
	ProcedureCodes []string `json:"procedure_codes,omitempty" yaml:"procedure_codes,omitempty"` // CPT
	Documents      []string `json:"documents,omitempty" yaml:"documents,omitempty"`

	// Type-specific extensions; at most the one matching ClaimType is set
	Medical      *MedicalDetails      `json:"medical,omitempty" yaml:"medical,omitempty"`
	Dental       *DentalDetails       `json:"dental,omitempty" yaml:"dental,omitempty"`
	Prescription *PrescriptionDetails `json:"prescription,omitempty" yaml:"prescription,omitempty"`

	SubmittedAt time.Time `json:"submitted_at,omitempty" yaml:"submitted_at,omitempty"`
}

// MedicalDetails extends Claim for medical and hospital claims
type MedicalDetails struct {
	AdmissionDate      *time.Time `json:"admission_date,omitempty" yaml:"admission_date,omitempty"`
	DischargeDate      *time.Time `json:"discharge_date,omitempty" yaml:"discharge_date,omitempty"`
	RoomType           string     `json:"room_type,omitempty" yaml:"room_type,omitempty"`
	AttendingPhysician string     `json:"attending_physician,omitempty" yaml:"attending_physician,omitempty"`
	TreatmentType      string     `json:"treatment_type,omitempty" yaml:"treatment_type,omitempty"`
	Medications        []string   `json:"medications,omitempty" yaml:"medications,omitempty"`
	LabTests           []string   `json:"lab_tests,omitempty" yaml:"lab_tests,omitempty"`
}

// DentalDetails extends Claim for dental claims
type DentalDetails struct {
	ToothNumber   string `json:"tooth_number,omitempty" yaml:"tooth_number,omitempty"`
	ProcedureType string `json:"procedure_type,omitempty" yaml:"procedure_type,omitempty"`
	IsEmergency   bool   `json:"is_emergency,omitempty" yaml:"is_emergency,omitempty"`
	XRaysTaken    bool   `json:"x_rays_taken,omitempty" yaml:"x_rays_taken,omitempty"`
}

// PrescriptionDetails extends Claim for prescription claims
type PrescriptionDetails struct {
	MedicationName string `json:"medication_name" yaml:"medication_name"`
	Dosage         string `json:"dosage" yaml:"dosage"`
	Quantity       int    `json:"quantity" yaml:"quantity"`
	DaysSupply     int    `json:"days_supply" yaml:"days_supply"`
	PharmacyName   string `json:"pharmacy_name" yaml:"pharmacy_name"`
	PharmacyNPI    string `json:"pharmacy_npi,omitempty" yaml:"pharmacy_npi,omitempty"`
	IsGeneric      bool   `json:"is_generic,omitempty" yaml:"is_generic,omitempty"`
	RefillNumber   int    `json:"refill_number,omitempty" yaml:"refill_number,omitempty"`
}

// PopulatedFields lists the claim's populated fields in a fixed order so
// confidence aggregation and validation output are deterministic
func (c *Claim) PopulatedFields() []string {
	var fields []string
	add := func(name string, present bool) {
		if present {
			fields = append(fields, name)
		}
	}
	add("patient_name", c.PatientName != "")
	add("patient_id", c.PatientID != "")
	add("provider_name", c.ProviderName != "")
	add("provider_npi", c.ProviderNPI != "")
	add("service_date", !c.ServiceDate.IsZero())
	add("total_amount", c.TotalAmount != 0)
	add("description", c.Description != "")
	add("diagnosis_codes", len(c.DiagnosisCodes) > 0)
	add("procedure_codes", len(c.ProcedureCodes) > 0)
	return fields
}

// FieldConfidence maps field names to extraction confidence scores in [0,1].
// A field without an entry is treated as confidence 0.
type FieldConfidence map[string]float64

// Get returns the confidence for a field, 0 when absent
func (fc FieldConfidence) Get(field string) float64 {
	if fc == nil {
		return 0
	}
	return fc[field]
}

// MeanOver returns the mean confidence across the given fields. A field
// without an entry counts as 0; entries for fields not listed are
// ignored, so a sparse map can only lower the mean, never raise it.
func (fc FieldConfidence) MeanOver(fields []string) float64 {
	if len(fields) == 0 {
		return 0
	}
	sum := 0.0
	for _, field := range fields {
		sum += fc.Get(field)
	}
	return sum / float64(len(fields))
}
