// Package safety certifies text as culturally safe. The [Validator] never
// changes the text it checks; it reports what it finds and derives a
// protection score from it.
//
// Findings fall into three classes:
//
//   - Severe: an illegal letter inside a cultural-context phrase, or a known
//     appropriation-risk construction such as "fake Māori style".
//   - Moderate: a silent-sound omission that was never restored.
//   - Minor: a recognised name or word written without its macrons.
package safety

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MrWong99/kupu/internal/legality"
	"github.com/MrWong99/kupu/internal/textnorm"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

// DefaultSafetyFloor is the lowest protection score that still counts as
// safe.
const DefaultSafetyFloor = 80

// appropriationPatterns match phrases that dress up imitation or costume use
// of Māori culture as a selling point.
var appropriationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:fake|faux|pseudo|imitation|knock[\s-]?off)[\s-]+(?:m[aā]ori|polynesian|tribal|native|indigenous)(?:[\s-]+(?:style|themed))?\b`),
	regexp.MustCompile(`(?i)\b(?:m[aā]ori|polynesian|tribal)[\s-]+(?:style|themed)[\s-]+(?:costumes?|party|parties|dress[\s-]?ups?|tattoos?)\b`),
	regexp.MustCompile(`(?i)\b(?:tribal|m[aā]ori)[\s-]+(?:face[\s-]?paint|war[\s-]?paint)\b`),
	regexp.MustCompile(`(?i)\b(?:stick[\s-]?on|temporary|fake)[\s-]+(?:moko|ta[\s-]?moko|tā[\s-]?moko)\b`),
	regexp.MustCompile(`(?i)\bmoko[\s-]+(?:stickers?|transfers?|decals?)\b`),
}

// Option configures a [Validator].
type Option func(*Validator)

// WithSafetyFloor sets the minimum protection score for a safe verdict.
// Values outside [0, 100] are clamped. Default: [DefaultSafetyFloor].
func WithSafetyFloor(floor int) Option {
	return func(v *Validator) {
		v.floor = types.Clamp100(floor)
	}
}

// WithDetector shares a prebuilt legality detector with the validator, so
// it reports exactly what the correction pipeline repairs.
func WithDetector(d *legality.Detector) Option {
	return func(v *Validator) {
		v.detector = d
	}
}

// Validator checks text for cultural safety violations. It is read-only
// after construction and safe for concurrent use.
type Validator struct {
	store    *lexicon.Store
	detector *legality.Detector
	floor    int
	maxWords int
}

// New returns a Validator over store.
func New(store *lexicon.Store, opts ...Option) *Validator {
	v := &Validator{
		store: store,
		floor: DefaultSafetyFloor,
	}
	for _, o := range opts {
		o(v)
	}
	if v.detector == nil {
		v.detector = legality.New(store)
	}
	for _, t := range lexicon.LookupOrder {
		v.maxWords = max(v.maxWords, store.MaxWords(t))
	}
	return v
}

// Floor returns the configured safety floor.
func (v *Validator) Floor() int { return v.floor }

// Validate checks text. The result is safe when there are no violations and
// the protection score is at or above the safety floor.
func (v *Validator) Validate(text string) types.ValidationResult {
	tokens := textnorm.Tokenize(text)
	covered := make([]bool, len(tokens))

	var details []types.Violation
	for _, f := range v.detector.Scan(text) {
		details = append(details, types.Violation{
			Severity: types.SeveritySevere,
			Message:  f.Message(),
			Span:     f.Span,
		})
		for i := f.Start; i < f.End; i++ {
			covered[i] = true
		}
	}
	details = append(details, appropriation(text)...)
	details = append(details, v.silentSounds(text, tokens, covered)...)
	details = append(details, v.missingMacrons(text, tokens, covered)...)

	score := 100
	violations := make([]string, 0, len(details))
	for _, d := range details {
		score -= d.Severity.Penalty()
		violations = append(violations, d.Message)
	}
	score = types.Clamp100(score)

	return types.ValidationResult{
		IsSafe:          len(details) == 0 && score >= v.floor,
		Violations:      violations,
		ProtectionScore: score,
		Details:         details,
	}
}

func appropriation(text string) []types.Violation {
	var out []types.Violation
	for _, re := range appropriationPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			out = append(out, types.Violation{
				Severity: types.SeveritySevere,
				Message:  fmt.Sprintf("appropriation-risk phrase: %q", text[loc[0]:loc[1]]),
				Span:     types.Span{Start: loc[0], End: loc[1]},
			})
		}
	}
	return out
}

// silentSounds reports silent-sound variants left in the text, longest
// phrase first. Context-dependent rules only count next to a trigger word
// or when they make up the whole text.
func (v *Validator) silentSounds(text string, tokens []textnorm.Token, covered []bool) []types.Violation {
	maxN := v.store.MaxWords(lexicon.TierSilentSound)
	var out []types.Violation
	for i := 0; i < len(tokens); i++ {
		for n := min(maxN, len(tokens)-i); n >= 1; n-- {
			phrase, ok := phraseAt(text, tokens, covered, i, n)
			if !ok {
				continue
			}
			e, ok := v.silentEntry(tokens, i, n, phrase)
			if !ok {
				continue
			}
			span := types.Span{Start: tokens[i].Start, End: tokens[i+n-1].End}
			out = append(out, types.Violation{
				Severity: types.SeverityModerate,
				Message:  fmt.Sprintf("possible dropped sound: %q (did you mean %q?)", text[span.Start:span.End], e.Correct),
				Span:     span,
			})
			for k := i; k < i+n; k++ {
				covered[k] = true
			}
			i += n - 1
			break
		}
	}
	return out
}

func (v *Validator) silentEntry(tokens []textnorm.Token, i, n int, phrase string) (lexicon.Entry, bool) {
	for _, e := range v.store.Lookup(lexicon.TierSilentSound, phrase) {
		if e.RequiresContext && !v.detector.RuleInContext(tokens, i, i+n) {
			continue
		}
		return e, true
	}
	return lexicon.Entry{}, false
}

// missingMacrons reports canonical names and words written without the
// macrons they require.
func (v *Validator) missingMacrons(text string, tokens []textnorm.Token, covered []bool) []types.Violation {
	var out []types.Violation
	for i := 0; i < len(tokens); i++ {
		for n := min(v.maxWords, len(tokens)-i); n >= 1; n-- {
			phrase, ok := phraseAt(text, tokens, covered, i, n)
			if !ok {
				continue
			}
			e, ok := v.canonical(phrase)
			if !ok {
				continue
			}
			if !strings.EqualFold(strings.Join(strings.Fields(phrase), " "), e.Correct) {
				span := types.Span{Start: tokens[i].Start, End: tokens[i+n-1].End}
				out = append(out, types.Violation{
					Severity: types.SeverityMinor,
					Message:  fmt.Sprintf("missing macron: %q should be %q", text[span.Start:span.End], e.Correct),
					Span:     span,
				})
			}
			i += n - 1
			break
		}
	}
	return out
}

func (v *Validator) canonical(phrase string) (lexicon.Entry, bool) {
	for _, t := range lexicon.LookupOrder {
		if found := v.store.LookupCanonical(t, phrase); len(found) > 0 {
			return found[0], true
		}
	}
	return lexicon.Entry{}, false
}

// phraseAt returns the text of tokens [i, i+n) when none is covered and
// they are separated only by whitespace.
func phraseAt(text string, tokens []textnorm.Token, covered []bool, i, n int) (string, bool) {
	for k := i; k < i+n; k++ {
		if covered[k] {
			return "", false
		}
	}
	if !legality.Contiguous(text, tokens[i:i+n]) {
		return "", false
	}
	return text[tokens[i].Start:tokens[i+n-1].End], true
}
