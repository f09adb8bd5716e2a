package model

import "time"

// Config is the single configuration structure for the whole pipeline.
// It is read-only once constructed; changing thresholds means building a
// new engine, never mutating a shared one.
type Config struct {
	Rules       RulesConfig       `yaml:"rules" mapstructure:"rules"`
	Validation  ValidationConfig  `yaml:"validation" mapstructure:"validation"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Extractor   ExtractorConfig   `yaml:"extractor" mapstructure:"extractor"`
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// RulesConfig carries the business-rule thresholds
type RulesConfig struct {
	MaxClaimAmount              float64 `yaml:"max_claim_amount" mapstructure:"max_claim_amount"`
	AutoApprovalAmountCeiling   float64 `yaml:"auto_approval_amount_ceiling" mapstructure:"auto_approval_amount_ceiling"`
	AutoApprovalConfidenceFloor float64 `yaml:"auto_approval_confidence_floor" mapstructure:"auto_approval_confidence_floor"`
	MinDocumentationScore       float64 `yaml:"min_documentation_score" mapstructure:"min_documentation_score"`
	ServiceDateWindowDays       int     `yaml:"service_date_window_days" mapstructure:"service_date_window_days"`
}

// ValidationConfig carries field-validator thresholds
type ValidationConfig struct {
	ConfidenceFloor float64 `yaml:"confidence_floor" mapstructure:"confidence_floor"`
}

// ConcurrencyConfig controls the batch runner
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ExtractorConfig configures the AI extraction collaborator
type ExtractorConfig struct {
	Provider          string        `yaml:"provider" mapstructure:"provider"`
	Model             string        `yaml:"model" mapstructure:"model"`
	APIKey            string        `yaml:"-" mapstructure:"api_key"`
	BaseURL           string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens         int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
}

// StoreConfig configures decision persistence
type StoreConfig struct {
	Backend string        `yaml:"backend" mapstructure:"backend"` // "memory" or "disk"
	Dir     string        `yaml:"dir,omitempty" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Dir           string `yaml:"dir" mapstructure:"dir"`
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool   `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			MaxClaimAmount:              100000,
			AutoApprovalAmountCeiling:   1000,
			AutoApprovalConfidenceFloor: 0.8,
			MinDocumentationScore:       0.5,
			ServiceDateWindowDays:       365,
		},
		Validation: ValidationConfig{
			ConfidenceFloor: 0.6,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Extractor: ExtractorConfig{
			Provider:          "openai",
			Model:             "gpt-4o-mini",
			Timeout:           30 * time.Second,
			MaxTokens:         2000,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Store: StoreConfig{
			Backend: "memory",
			TTL:     24 * time.Hour,
		},
		Output: OutputConfig{
			Dir:           "./claim-reports",
			IncludeFooter: true,
		},
	}
}

// Validate fails fast on out-of-range thresholds so a misconfigured
// engine can never process a claim
func (c *Config) Validate() error {
	r := c.Rules
	if r.MaxClaimAmount <= 0 {
		return &ConfigurationError{Option: "max_claim_amount", Reason: "must be positive"}
	}
	if r.AutoApprovalAmountCeiling < 0 {
		return &ConfigurationError{Option: "auto_approval_amount_ceiling", Reason: "must not be negative"}
	}
	if r.AutoApprovalAmountCeiling > r.MaxClaimAmount {
		return &ConfigurationError{Option: "auto_approval_amount_ceiling", Reason: "must not exceed max_claim_amount"}
	}
	if r.AutoApprovalConfidenceFloor < 0 || r.AutoApprovalConfidenceFloor > 1 {
		return &ConfigurationError{Option: "auto_approval_confidence_floor", Reason: "must be within [0,1]"}
	}
	if r.MinDocumentationScore < 0 || r.MinDocumentationScore > 1 {
		return &ConfigurationError{Option: "min_documentation_score", Reason: "must be within [0,1]"}
	}
	if r.ServiceDateWindowDays <= 0 {
		return &ConfigurationError{Option: "service_date_window_days", Reason: "must be positive"}
	}
	if c.Validation.ConfidenceFloor < 0 || c.Validation.ConfidenceFloor > 1 {
		return &ConfigurationError{Option: "confidence_floor", Reason: "must be within [0,1]"}
	}
	if c.Concurrency.Workers < 0 {
		return &ConfigurationError{Option: "workers", Reason: "must not be negative"}
	}
	return nil
}
