// Package lexicon holds the tiered reference tables that drive Māori term
// correction: iwi and governance names, place names, tourism businesses,
// generic vocabulary, and the phonetic-pattern rules used by the early
// correction passes.
//
// Tables are assembled into an immutable [Store] once per process and shared
// read-only by every caller. Built-in tables ship as Go literals
// ([Builtin]); additional entries can be supplied as flat YAML records
// ([DecodeRecords]) and merged at construction time.
package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// Tier names a partition of the lexicon. The tier decides which correction
// pass consults an entry and its priority during tiered lookup.
type Tier string

const (
	// TierPhoneticLegality holds rules that replace words containing letters
	// absent from the Māori alphabet when they appear in cultural context.
	TierPhoneticLegality Tier = "phonetic_legality"

	// TierSilentSound holds rules that restore a dropped "ng" or "wh" sound
	// when a neighbouring token makes the intended word unambiguous.
	TierSilentSound Tier = "silent_sound"

	// TierComplexPlaceName holds tolerant multi-token place-name patterns.
	TierComplexPlaceName Tier = "complex_place_name"

	// TierComplexIwiName holds tolerant multi-token iwi and hapū patterns.
	TierComplexIwiName Tier = "complex_iwi_name"

	// TierIdentity holds iwi, hapū and governance-body names.
	TierIdentity Tier = "identity"

	// TierPlaceName holds place names.
	TierPlaceName Tier = "place_name"

	// TierTourismBusiness holds tourism operator and attraction names.
	TierTourismBusiness Tier = "tourism_business"

	// TierCulturalContext holds advanced cultural concepts, enabled for
	// expert users only.
	TierCulturalContext Tier = "cultural_context"

	// TierGenericVocabulary holds everyday Māori vocabulary.
	TierGenericVocabulary Tier = "generic_vocabulary"
)

// LookupOrder is the fixed priority of the tiers consulted by whole-word
// lookup. Earlier tiers win when the same variant appears in several tiers.
var LookupOrder = []Tier{
	TierIdentity,
	TierPlaceName,
	TierTourismBusiness,
	TierCulturalContext,
	TierGenericVocabulary,
}

// AllTiers lists every tier in pass order.
var AllTiers = []Tier{
	TierPhoneticLegality,
	TierSilentSound,
	TierComplexPlaceName,
	TierComplexIwiName,
	TierIdentity,
	TierPlaceName,
	TierTourismBusiness,
	TierCulturalContext,
	TierGenericVocabulary,
}

// IsValid reports whether t is a recognised tier.
func (t Tier) IsValid() bool {
	switch t {
	case TierPhoneticLegality, TierSilentSound, TierComplexPlaceName, TierComplexIwiName,
		TierIdentity, TierPlaceName, TierTourismBusiness, TierCulturalContext, TierGenericVocabulary:
		return true
	}
	return false
}

// ErrUnknownTier is returned when a caller names a tier that does not exist.
var ErrUnknownTier = errors.New("lexicon: unknown tier")

// ParseTier returns the tier named s.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", fmt.Errorf("%w %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Priority returns the tie-break rank of t for whole-word lookup. Lower is
// stronger. Tiers outside [LookupOrder] rank after all lookup tiers.
func (t Tier) Priority() int {
	for i, lt := range LookupOrder {
		if lt == t {
			return i
		}
	}
	return len(LookupOrder)
}

// Category classifies what kind of term an entry describes.
type Category string

const (
	CategoryIwi             Category = "iwi"
	CategoryGovernance      Category = "governance"
	CategoryPlace           Category = "place"
	CategoryBusiness        Category = "business"
	CategoryVocabulary      Category = "vocabulary"
	CategoryPhoneticPattern Category = "phonetic_pattern"
)

// IsValid reports whether c is a recognised category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryIwi, CategoryGovernance, CategoryPlace, CategoryBusiness,
		CategoryVocabulary, CategoryPhoneticPattern:
		return true
	}
	return false
}

// IsIdentity reports whether c names an iwi or a governance body.
func (c Category) IsIdentity() bool {
	return c == CategoryIwi || c == CategoryGovernance
}

// Significance weights an entry during cultural scoring.
type Significance string

const (
	SignificanceHighest Significance = "highest"
	SignificanceHigh    Significance = "high"
	SignificanceMedium  Significance = "medium"
)

// IsValid reports whether s is a recognised significance level.
func (s Significance) IsValid() bool {
	switch s {
	case SignificanceHighest, SignificanceHigh, SignificanceMedium:
		return true
	}
	return false
}

// Region scopes place-name and business entries. [RegionAll] matches every
// region.
type Region string

const (
	RegionAll        Region = "all"
	RegionCanterbury Region = "canterbury"
	RegionRotorua    Region = "rotorua"
	RegionOtago      Region = "otago"
	RegionKaikoura   Region = "kaikoura"
	RegionWestCoast  Region = "west_coast"
	RegionSouthland  Region = "southland"
)

// Regions lists every named region, excluding the wildcard.
var Regions = []Region{
	RegionCanterbury,
	RegionRotorua,
	RegionOtago,
	RegionKaikoura,
	RegionWestCoast,
	RegionSouthland,
}

// IsValid reports whether r is a named region or the wildcard.
func (r Region) IsValid() bool {
	if r == RegionAll {
		return true
	}
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

// Matches reports whether an entry scoped to r applies when the caller is
// focused on region want. An empty want means no regional focus.
func (r Region) Matches(want Region) bool {
	return want == "" || want == RegionAll || r == RegionAll || r == want
}

// BusinessTier is the commercial prestige of a tourism business entry.
type BusinessTier string

const (
	BusinessTierNone BusinessTier = ""
	BusinessTierA    BusinessTier = "A"
	BusinessTierB    BusinessTier = "B"
	BusinessTierC    BusinessTier = "C"
)

// IsValid reports whether b is a recognised business tier or empty.
func (b BusinessTier) IsValid() bool {
	switch b {
	case BusinessTierNone, BusinessTierA, BusinessTierB, BusinessTierC:
		return true
	}
	return false
}

// Entry maps one or more incorrect surface forms to a canonical spelling.
//
// Entries are values. The [Store] keeps its own copies and hands out copies,
// so a caller holding an Entry cannot alter the shared tables.
type Entry struct {
	// Tier is the lexicon partition the entry belongs to.
	Tier Tier `yaml:"tier" json:"tier"`

	// Variants are the known-wrong surface forms. Matching is
	// case-insensitive and macron-insensitive. Multi-word variants are
	// matched as whole phrases.
	Variants []string `yaml:"variants" json:"variants"`

	// Pattern is an optional regular expression matched against a
	// lower-cased, macron-folded phrase of two to four words. Only used by
	// the complex multi-token tiers.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Correct is the canonical form, with all required macrons.
	Correct string `yaml:"correct" json:"correct"`

	// Meaning is a short English gloss.
	Meaning string `yaml:"meaning" json:"meaning"`

	Category     Category     `yaml:"category" json:"category"`
	Confidence   int          `yaml:"confidence" json:"confidence"`
	Significance Significance `yaml:"significance" json:"significance"`
	Region       Region       `yaml:"region,omitempty" json:"region,omitempty"`

	// RequiresContext restricts a rule to tokens that sit next to a
	// cultural trigger word. Used by the phonetic-legality and silent-sound
	// tiers.
	RequiresContext bool `yaml:"requires_context,omitempty" json:"requires_context,omitempty"`

	// BusinessTier and PerfectDemo are commercial metadata consumed by
	// scoring only.
	BusinessTier BusinessTier `yaml:"business_tier,omitempty" json:"business_tier,omitempty"`
	PerfectDemo  bool         `yaml:"perfect_demo,omitempty" json:"perfect_demo,omitempty"`

	// Demos names the sales demonstrations this entry is relevant to.
	Demos []string `yaml:"demos,omitempty" json:"demos,omitempty"`
}

// IsProperNoun reports whether the canonical form is a name whose
// capitalisation must be enforced.
func (e Entry) IsProperNoun() bool {
	switch e.Category {
	case CategoryIwi, CategoryGovernance, CategoryPlace, CategoryBusiness:
		return true
	}
	return false
}

// clone returns a deep copy of e.
func (e Entry) clone() Entry {
	e.Variants = append([]string(nil), e.Variants...)
	e.Demos = append([]string(nil), e.Demos...)
	return e
}

// Ref returns e without its variant and demo lists. Correction records carry
// a Ref so they stay small and detached from the shared tables.
func (e Entry) Ref() Entry {
	e.Variants = nil
	e.Demos = nil
	return e
}
