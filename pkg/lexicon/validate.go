package lexicon

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MrWong99/kupu/internal/textnorm"
)

// ErrInvalidEntry wraps every validation failure reported by [Validate].
var ErrInvalidEntry = errors.New("lexicon: invalid entry")

// Validate checks an [Entry] for required fields and legal values.
//
// Rules:
//   - Correct must be non-empty and every Māori word in it must use only
//     letters of the Māori alphabet.
//   - Tier, Category and Significance must be recognised values.
//   - Confidence must lie in [0, 100].
//   - At least one variant or a pattern is required; a pattern must compile.
//   - Region and BusinessTier must be recognised when set.
func Validate(e Entry) error {
	var errs []error

	if strings.TrimSpace(e.Correct) == "" {
		errs = append(errs, errors.New("correct must not be empty"))
	} else if bad := illegalCanonicalWords(e.Correct); len(bad) > 0 {
		errs = append(errs, fmt.Errorf("correct %q contains illegal letters in %q", e.Correct, bad))
	}

	if !e.Tier.IsValid() {
		errs = append(errs, fmt.Errorf("tier %q is not a recognised tier", e.Tier))
	}
	if !e.Category.IsValid() {
		errs = append(errs, fmt.Errorf("category %q is not a recognised category", e.Category))
	}
	if !e.Significance.IsValid() {
		errs = append(errs, fmt.Errorf("significance %q is invalid; valid values: highest, high, medium", e.Significance))
	}
	if e.Confidence < 0 || e.Confidence > 100 {
		errs = append(errs, fmt.Errorf("confidence %d is out of range [0, 100]", e.Confidence))
	}
	if e.Region != "" && !e.Region.IsValid() {
		errs = append(errs, fmt.Errorf("region %q is not a recognised region", e.Region))
	}
	if !e.BusinessTier.IsValid() {
		errs = append(errs, fmt.Errorf("business_tier %q is invalid; valid values: A, B, C", e.BusinessTier))
	}

	if len(e.Variants) == 0 && e.Pattern == "" {
		errs = append(errs, errors.New("at least one variant or a pattern is required"))
	}
	for i, v := range e.Variants {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("variants[%d] must not be empty", i))
		}
	}
	if e.Pattern != "" {
		if _, err := regexp.Compile(e.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("pattern: %w", err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidEntry, e.Correct, errors.Join(errs...))
}

// illegalCanonicalWords returns the words of a canonical form that are
// neither legal Māori nor known English words.
func illegalCanonicalWords(correct string) []string {
	var bad []string
	for _, w := range strings.Fields(correct) {
		if textnorm.IsEnglishWord(w) {
			continue
		}
		if len(textnorm.IllegalLetters(w)) > 0 {
			bad = append(bad, w)
		}
	}
	return bad
}
