package validate

import (
	"regexp"
	"strings"
)

var (
	// CPT: 5 numeric digits, optionally with a two-character modifier
	cptPattern = regexp.MustCompile(`^\d{5}(?:-[A-Z0-9]{2})?$`)

	// ICD-10: letter, two digits, optional dot plus up to 4 alphanumerics
	icd10Pattern = regexp.MustCompile(`^[A-Z]\d{2}(?:\.[A-Z0-9]{1,4})?$`)

	// Patient IDs are 6-20 characters: letters, digits, hyphens
	patientIDPattern = regexp.MustCompile(`^[A-Z0-9-]{6,20}$`)
)

// ValidCPT reports whether code is a well-formed CPT procedure code
func ValidCPT(code string) bool {
	return cptPattern.MatchString(strings.ToUpper(strings.TrimSpace(code)))
}

// ValidICD10 reports whether code is a well-formed ICD-10 diagnosis code
func ValidICD10(code string) bool {
	return icd10Pattern.MatchString(strings.ToUpper(strings.TrimSpace(code)))
}

// ValidPatientID reports whether id is a well-formed patient identifier
func ValidPatientID(id string) bool {
	return patientIDPattern.MatchString(strings.ToUpper(strings.TrimSpace(id)))
}
