// Package legality detects words that contain letters absent from the Māori
// alphabet while sitting in a cultural context.
//
// A single [Detector] serves both the first correction pass, which replaces
// what it finds, and the safety validator, which reports it. Every finding
// is a severe violation; only findings with a replacement are repaired.
package legality

import (
	"fmt"
	"math"
	"strings"

	"github.com/MrWong99/kupu/internal/phonetic"
	"github.com/MrWong99/kupu/internal/textnorm"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

// nearestTermWeight scales a phonetic similarity in [0, 1] to a confidence.
// Nearest-term guesses never reach the general auto-apply threshold.
const nearestTermWeight = 80

// Finding is one illegal-letter span in cultural context, together with the
// legal term it should become.
type Finding struct {
	// Start and End are token indices, half-open, into [textnorm.Tokenize]
	// of the scanned text.
	Start, End int

	// Span is the byte range of the finding in the scanned text.
	Span types.Span

	// Text is the finding as it appears in the scanned text.
	Text string

	// Letters are the distinct illegal letters, in order of appearance.
	Letters []rune

	// Entry is the replacement. For rule matches it is the lexicon entry;
	// for nearest-term matches it is synthesised from the term. It is the
	// zero Entry when no cultural term sounds close enough.
	Entry lexicon.Entry

	// Confidence is the certainty of the replacement, 0 without one.
	Confidence int

	// Rule is true when a phonetic-legality rule matched, false when the
	// replacement is the phonetically nearest cultural term.
	Rule bool
}

// HasReplacement reports whether f carries a term to replace it with.
func (f Finding) HasReplacement() bool {
	return f.Entry.Correct != ""
}

// Message renders f as a violation message.
func (f Finding) Message() string {
	quoted := make([]string, len(f.Letters))
	for i, r := range f.Letters {
		quoted[i] = fmt.Sprintf("%q", string(r))
	}
	noun := "letter"
	if len(quoted) > 1 {
		noun = "letters"
	}
	msg := fmt.Sprintf("illegal %s %s in cultural context: %q", noun, strings.Join(quoted, ", "), f.Text)
	if !f.HasReplacement() {
		return msg
	}
	return fmt.Sprintf("%s (did you mean %q?)", msg, f.Entry.Correct)
}

// Option configures a [Detector].
type Option func(*Detector)

// WithMatcher overrides the phonetic matcher used for nearest-term
// replacements.
func WithMatcher(m *phonetic.Matcher) Option {
	return func(d *Detector) {
		d.matcher = m
	}
}

// Detector finds illegal letters in cultural context. It is read-only after
// construction and safe for concurrent use.
type Detector struct {
	store   *lexicon.Store
	matcher *phonetic.Matcher
	terms   []string
}

// New returns a Detector over the phonetic-legality rules and cultural
// terms of store.
func New(store *lexicon.Store, opts ...Option) *Detector {
	d := &Detector{
		store:   store,
		matcher: phonetic.New(),
	}
	for _, o := range opts {
		o(d)
	}
	for _, key := range store.CulturalTerms() {
		if term, ok := store.TermFor(key); ok {
			d.terms = append(d.terms, term)
		}
	}
	return d
}

// Scan returns the findings in text, ordered and non-overlapping.
//
// At each token the longest phonetic-legality rule wins. A rule marked
// RequiresContext only applies when [Detector.RuleInContext] holds for the
// matched phrase. When no rule applies, a single token that has an illegal
// letter, is not a known English word and sits next to a trigger is
// reported with the phonetically nearest cultural term as its replacement.
// If no term sounds close enough the token is still reported, without a
// replacement, unless it is a common English word.
func (d *Detector) Scan(text string) []Finding {
	tokens := textnorm.Tokenize(text)
	maxWords := d.store.MaxWords(lexicon.TierPhoneticLegality)

	var out []Finding
	for i := 0; i < len(tokens); {
		if f, ok := d.ruleAt(text, tokens, i, maxWords); ok {
			out = append(out, f)
			i = f.End
			continue
		}
		if f, ok := d.nearestAt(text, tokens, i); ok {
			out = append(out, f)
		}
		i++
	}
	return out
}

func (d *Detector) ruleAt(text string, tokens []textnorm.Token, i, maxWords int) (Finding, bool) {
	for n := min(maxWords, len(tokens)-i); n >= 1; n-- {
		if !Contiguous(text, tokens[i:i+n]) {
			continue
		}
		phrase := joinTokens(tokens[i : i+n])
		for _, e := range d.store.Lookup(lexicon.TierPhoneticLegality, phrase) {
			if e.RequiresContext && !d.RuleInContext(tokens, i, i+n) {
				continue
			}
			return d.finding(text, tokens, i, i+n, e, e.Confidence, true), true
		}
	}
	return Finding{}, false
}

func (d *Detector) nearestAt(text string, tokens []textnorm.Token, i int) (Finding, bool) {
	w := tokens[i].Text
	if !textnorm.HasIllegalLetter(w) || textnorm.IsEnglishWord(w) || !d.InContext(tokens, i, i+1) {
		return Finding{}, false
	}
	term, score, ok := d.matcher.Match(w, d.terms)
	if !ok {
		if textnorm.IsCommonEnglish(w) {
			return Finding{}, false
		}
		return d.finding(text, tokens, i, i+1, lexicon.Entry{}, 0, false), true
	}
	conf := types.Clamp100(int(math.Round(score * nearestTermWeight)))
	e := lexicon.Entry{
		Tier:         lexicon.TierPhoneticLegality,
		Correct:      term,
		Meaning:      "nearest cultural term",
		Category:     lexicon.CategoryPhoneticPattern,
		Confidence:   conf,
		Significance: lexicon.SignificanceHigh,
		Region:       lexicon.RegionAll,
	}
	return d.finding(text, tokens, i, i+1, e, conf, false), true
}

func (d *Detector) finding(text string, tokens []textnorm.Token, start, end int, e lexicon.Entry, conf int, rule bool) Finding {
	var letters []rune
	for _, tok := range tokens[start:end] {
		for _, r := range textnorm.IllegalLetters(tok.Text) {
			if !strings.ContainsRune(string(letters), r) {
				letters = append(letters, r)
			}
		}
	}
	span := types.Span{Start: tokens[start].Start, End: tokens[end-1].End}
	return Finding{
		Start:      start,
		End:        end,
		Span:       span,
		Text:       text[span.Start:span.End],
		Letters:    letters,
		Entry:      e,
		Confidence: conf,
		Rule:       rule,
	}
}

// InContext reports whether the token just before start or just at end is
// a cultural trigger word.
func (d *Detector) InContext(tokens []textnorm.Token, start, end int) bool {
	if start > 0 && d.store.IsTrigger(tokens[start-1].Text) {
		return true
	}
	return end < len(tokens) && d.store.IsTrigger(tokens[end].Text)
}

// RuleInContext reports whether a context-restricted rule may apply to
// tokens[start:end]: the phrase is in context, or it is the whole text.
func (d *Detector) RuleInContext(tokens []textnorm.Token, start, end int) bool {
	return (start == 0 && end == len(tokens)) || d.InContext(tokens, start, end)
}

// Contiguous reports whether tokens are separated only by whitespace in
// text, so they can be matched as one phrase.
func Contiguous(text string, tokens []textnorm.Token) bool {
	for k := 1; k < len(tokens); k++ {
		if strings.TrimSpace(text[tokens[k-1].End:tokens[k].Start]) != "" {
			return false
		}
	}
	return true
}

func joinTokens(tokens []textnorm.Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return strings.Join(words, " ")
}
