// Package types defines the result and context types shared by the kupu
// correction engine, its validator, and its scorers.
//
// These types are the contract between the engine and its callers: the
// transcription layer that submits raw text, and the marketing-copy layer
// that gates generated content on safety and relevance.
package types

import "github.com/MrWong99/kupu/pkg/lexicon"

// UserLevel describes the expertise of the person the engine is serving. It
// decides which optional lexicon tiers are active.
type UserLevel string

const (
	UserLevelTourist  UserLevel = "tourist"
	UserLevelBusiness UserLevel = "business"
	UserLevelExpert   UserLevel = "expert"
)

// IsValid reports whether l is a recognised user level.
func (l UserLevel) IsValid() bool {
	switch l {
	case UserLevelTourist, UserLevelBusiness, UserLevelExpert:
		return true
	}
	return false
}

// DemoMode selects the confidence threshold used to auto-apply corrections.
type DemoMode string

const (
	// DemoModeGeneral is ordinary operation. Threshold 90.
	DemoModeGeneral DemoMode = "general"

	// DemoModeCurated is used for sales demonstrations where only
	// near-certain corrections may be applied. Threshold 97.
	DemoModeCurated DemoMode = "curated"

	// DemoModeAdvanced is used with expert reviewers. Threshold 95.
	DemoModeAdvanced DemoMode = "advanced"
)

// IsValid reports whether m is a recognised demo mode.
func (m DemoMode) IsValid() bool {
	switch m {
	case DemoModeGeneral, DemoModeCurated, DemoModeAdvanced:
		return true
	}
	return false
}

// Confidence thresholds per demo mode.
const (
	ThresholdGeneral  = 90
	ThresholdAdvanced = 95
	ThresholdCurated  = 97
)

// EngineContext scopes one logical session of the engine. All fields are
// optional; the zero value activates every tier with the general threshold.
type EngineContext struct {
	Region    lexicon.Region `yaml:"region" json:"region,omitempty"`
	UserLevel UserLevel      `yaml:"user_level" json:"user_level,omitempty"`
	DemoMode  DemoMode       `yaml:"demo_mode" json:"demo_mode,omitempty"`

	// ConfidenceThreshold is derived by the loader from DemoMode and
	// UserLevel. Values set by callers are overwritten.
	ConfidenceThreshold int `yaml:"-" json:"confidence_threshold"`
}

// Span is a half-open byte range into the text submitted for correction.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// CorrectionRecord describes one applied (or suggested) correction.
type CorrectionRecord struct {
	// Original is the text that was replaced, as it appeared in the input.
	Original string `json:"original"`

	// Corrected is the replacement.
	Corrected string `json:"corrected"`

	// Confidence is the engine's certainty (0–100) that the correction
	// reflects the writer's intent. It says nothing about whether the rest
	// of the text is correct.
	Confidence int `json:"confidence"`

	// SourceTier is the lexicon tier whose rule produced the correction.
	SourceTier lexicon.Tier `json:"source_tier"`

	// Reason is a short human-readable explanation.
	Reason string `json:"reason"`

	// Span locates Original in the input text.
	Span Span `json:"span"`

	// Entry is the matched lexicon entry, without its variant list.
	Entry lexicon.Entry `json:"-"`
}

// Match records a recognised lexicon term, whether or not it needed fixing.
type Match struct {
	// Text is the final text of the recognised span.
	Text string `json:"text"`

	// Tier is the tier whose rule recognised the span.
	Tier lexicon.Tier `json:"tier"`

	// Corrected reports whether the span was rewritten.
	Corrected bool `json:"corrected"`

	Span  Span          `json:"span"`
	Entry lexicon.Entry `json:"-"`
}

// CorrectionResult is the outcome of one correction run.
type CorrectionResult struct {
	// Text is the corrected text. Text outside corrected spans is returned
	// byte for byte as submitted.
	Text string `json:"text"`

	// Records lists the applied corrections in the order they were made.
	Records []CorrectionRecord `json:"records"`

	// Suggestions lists corrections that were found but not applied because
	// their confidence fell below Threshold.
	Suggestions []CorrectionRecord `json:"suggestions,omitempty"`

	// Matches lists every recognised lexicon span in the final text.
	Matches []Match `json:"matches,omitempty"`

	// Threshold is the confidence threshold in effect for the run.
	Threshold int `json:"threshold"`
}

// Severity classifies a cultural safety violation.
type Severity string

const (
	SeveritySevere   Severity = "severe"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// Penalty returns the protection-score deduction for one violation of
// severity s.
func (s Severity) Penalty() int {
	switch s {
	case SeveritySevere:
		return 20
	case SeverityModerate:
		return 15
	case SeverityMinor:
		return 8
	}
	return 0
}

// Violation is one finding of the cultural safety validator.
type Violation struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Span     Span     `json:"span"`
}

// ValidationResult is the outcome of a cultural safety check.
type ValidationResult struct {
	// IsSafe is true when there are no violations and ProtectionScore is at
	// or above the configured safety floor.
	IsSafe bool `json:"is_safe"`

	// Violations holds one human-readable message per finding.
	Violations []string `json:"violations"`

	// ProtectionScore starts at 100 and loses a fixed penalty per
	// violation, floored at 0.
	ProtectionScore int `json:"protection_score"`

	// Details carries the structured findings behind Violations.
	Details []Violation `json:"details,omitempty"`
}

// CulturalScore is the authenticity score derived from a correction run.
type CulturalScore struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// CommercialTier ranks the commercial relevance of a text.
type CommercialTier string

const (
	CommercialTierA CommercialTier = "A"
	CommercialTierB CommercialTier = "B"
	CommercialTierC CommercialTier = "C"
)

// CommercialScore is the business relevance derived from a correction run.
type CommercialScore struct {
	Score     int            `json:"score"`
	Tier      CommercialTier `json:"tier"`
	Reasoning []string       `json:"reasoning"`
}

// Clamp100 limits v to [0, 100].
func Clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
