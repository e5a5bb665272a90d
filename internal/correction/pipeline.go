// Package correction implements the five-pass Māori term correction
// pipeline.
//
// The passes run in a fixed order, from the most specific rules to the
// loosest:
//
//  1. Phonetic legality: words with letters absent from the Māori alphabet,
//     in cultural context, are replaced by the legal term they stand for.
//  2. Silent sound: dropped "ng" and "wh" sounds are restored.
//  3. Complex multi-token: corrupted phrases of two to four words are mapped
//     to multi-word place and iwi names in one step.
//  4. Tiered lookup: whole-phrase lookup against the active lexicon tiers in
//     priority order, longest phrase first.
//  5. Capitalisation: proper nouns recognised by passes 1 to 4 get their
//     canonical capitalisation.
//
// Every pass sees the output of the previous one. A span matched by an
// earlier pass is locked and never re-examined by a later one, so a
// correction is never undone or applied twice. Text outside matched spans
// is returned byte for byte.
package correction

import (
	"log/slog"
	"strings"

	"github.com/MrWong99/kupu/internal/legality"
	"github.com/MrWong99/kupu/internal/loader"
	"github.com/MrWong99/kupu/internal/phonetic"
	"github.com/MrWong99/kupu/internal/textnorm"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

// Pass names one stage of the pipeline.
type Pass string

const (
	PassPhoneticLegality  Pass = "phonetic_legality"
	PassSilentSound       Pass = "silent_sound"
	PassComplexMultiToken Pass = "complex_multi_token"
	PassTieredLookup      Pass = "tiered_lookup"
	PassCapitalisation    Pass = "capitalisation"
)

// Passes lists every pass in execution order.
var Passes = []Pass{
	PassPhoneticLegality,
	PassSilentSound,
	PassComplexMultiToken,
	PassTieredLookup,
	PassCapitalisation,
}

const (
	maxComplexWords = 4
	minComplexWords = 2
	maxExtendWords  = 3

	// phraseMatchWeight scales a phonetic phrase similarity to a confidence.
	phraseMatchWeight = 85
)

// Correction reasons.
const (
	ReasonIllegalLetter    = "illegal letter replaced"
	ReasonNearestTerm      = "illegal letter replaced with nearest cultural term"
	ReasonSilentSound      = "silent sound restored"
	ReasonMultiToken       = "multi-token name restored"
	ReasonPhoneticPhrase   = "phonetic match to multi-word name"
	ReasonKnownMisspelling = "known misspelling"
	ReasonMacronRestored   = "macron restored"
	ReasonCapitalisation   = "capitalisation restored"
)

// Option is a functional option for configuring a [Pipeline].
type Option func(*Pipeline)

// WithAutoApplyOnly controls whether corrections below the loader's
// confidence threshold are applied. When enabled they are returned as
// suggestions and the text is left unchanged. Default: false.
func WithAutoApplyOnly(enabled bool) Option {
	return func(p *Pipeline) {
		p.autoApplyOnly = enabled
	}
}

// WithObserver attaches an [Observer] that is told about every correction,
// suggestion and recognition. Default: none.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithLogger is shorthand for WithObserver(LogObserver{Logger: l}).
func WithLogger(l *slog.Logger) Option {
	return WithObserver(LogObserver{Logger: l})
}

// WithDetector shares a prebuilt legality detector. Building one walks the
// store's cultural terms, so long-lived callers should build it once.
func WithDetector(d *legality.Detector) Option {
	return func(p *Pipeline) {
		p.detector = d
	}
}

// WithMatcher overrides the phonetic matcher used by the multi-token pass.
func WithMatcher(m *phonetic.Matcher) Option {
	return func(p *Pipeline) {
		p.matcher = m
	}
}

// Pipeline corrects text against the tiers activated by a [loader.Loader].
// A Pipeline is safe for concurrent use as long as its Loader is not
// reconfigured during a call.
type Pipeline struct {
	loader        *loader.Loader
	store         *lexicon.Store
	detector      *legality.Detector
	matcher       *phonetic.Matcher
	observer      Observer
	autoApplyOnly bool
}

// New returns a Pipeline over the tiers activated by l.
func New(l *loader.Loader, opts ...Option) *Pipeline {
	p := &Pipeline{
		loader:   l,
		store:    l.Store(),
		observer: nopObserver{},
	}
	for _, o := range opts {
		o(p)
	}
	if p.matcher == nil {
		p.matcher = phonetic.New()
	}
	if p.detector == nil {
		p.detector = legality.New(p.store, legality.WithMatcher(p.matcher))
	}
	return p
}

// Correct runs all passes over text. Empty or whitespace-only input yields
// an empty result. Correct never fails: text with nothing to correct is
// returned unchanged with no records.
func (p *Pipeline) Correct(text string) types.CorrectionResult {
	threshold := p.loader.Threshold()
	if strings.TrimSpace(text) == "" {
		return types.CorrectionResult{Threshold: threshold}
	}

	r := newRun(p, text)
	r.phoneticLegality()
	r.silentSound()
	r.complexMultiToken()
	r.tieredLookup()
	r.capitalisation()

	r.res.Text = r.render()
	r.res.Threshold = threshold
	return r.res
}

// segment is a word, or a run of words merged by a match, of the input.
// Unlocked segments are always single untouched input tokens.
type segment struct {
	text       string
	start, end int
	locked     bool
	pending    bool
	entry      lexicon.Entry
	tier       lexicon.Tier
	match      int
}

// hit is a candidate correction for a window of segments.
type hit struct {
	entry      lexicon.Entry
	tier       lexicon.Tier
	confidence int
	reason     string
}

type run struct {
	p     *Pipeline
	input string
	segs  []segment
	res   types.CorrectionResult
}

func newRun(p *Pipeline, text string) *run {
	tokens := textnorm.Tokenize(text)
	segs := make([]segment, len(tokens))
	for i, t := range tokens {
		segs[i] = segment{text: t.Text, start: t.Start, end: t.End, match: -1}
	}
	return &run{p: p, input: text, segs: segs}
}

// render rebuilds the text, copying everything between segments from the
// input.
func (r *run) render() string {
	var b strings.Builder
	b.Grow(len(r.input))
	prev := 0
	for _, s := range r.segs {
		b.WriteString(r.input[prev:s.start])
		b.WriteString(s.text)
		prev = s.end
	}
	b.WriteString(r.input[prev:])
	return b.String()
}

// window returns the input text of segments [i, i+n) when they are all
// unlocked and separated only by whitespace.
func (r *run) window(i, n int) (string, bool) {
	if i < 0 || n < 1 || i+n > len(r.segs) {
		return "", false
	}
	for k := i; k < i+n; k++ {
		if r.segs[k].locked {
			return "", false
		}
		if k > i && strings.TrimSpace(r.input[r.segs[k-1].end:r.segs[k].start]) != "" {
			return "", false
		}
	}
	return r.input[r.segs[i].start:r.segs[i+n-1].end], true
}

// adjacent reports whether segments a and a+1 are separated only by
// whitespace.
func (r *run) adjacent(a int) bool {
	return strings.TrimSpace(r.input[r.segs[a].end:r.segs[a+1].start]) == ""
}

// inContext reports whether the word just before segment i or just after
// segment j-1 is a cultural trigger.
func (r *run) inContext(i, j int) bool {
	if i > 0 {
		words := strings.Fields(r.segs[i-1].text)
		if len(words) > 0 && r.p.store.IsTrigger(words[len(words)-1]) {
			return true
		}
	}
	if j < len(r.segs) {
		words := strings.Fields(r.segs[j].text)
		if len(words) > 0 && r.p.store.IsTrigger(words[0]) {
			return true
		}
	}
	return false
}

// whole reports whether segments [i, j) make up the entire input.
func (r *run) whole(i, j int) bool {
	return i == 0 && j == len(r.segs)
}

// apply resolves hit h over segments [i, i+n) and merges them into one
// locked segment. Text already equal to the canonical form is recognised
// without a record; text differing only in case is recognised and, for
// proper nouns, left for the capitalisation pass.
func (r *run) apply(pass Pass, i, n int, h hit) {
	start, end := r.segs[i].start, r.segs[i+n-1].end
	orig := r.input[start:end]
	span := types.Span{Start: start, End: end}
	merged := segment{
		text:   orig,
		start:  start,
		end:    end,
		locked: true,
		entry:  h.entry,
		tier:   h.tier,
		match:  -1,
	}

	spaced := strings.Join(strings.Fields(orig), " ")
	switch {
	case spaced == h.entry.Correct:
		merged.match = r.recognise(pass, orig, span, h)
	case strings.EqualFold(spaced, h.entry.Correct):
		merged.match = r.recognise(pass, orig, span, h)
		merged.pending = h.entry.IsProperNoun()
	default:
		reason := h.reason
		if textnorm.FoldPhrase(orig) == textnorm.FoldPhrase(h.entry.Correct) {
			reason = ReasonMacronRestored
		}
		rec := types.CorrectionRecord{
			Original:   orig,
			Corrected:  h.entry.Correct,
			Confidence: types.Clamp100(h.confidence),
			SourceTier: h.tier,
			Reason:     reason,
			Span:       span,
			Entry:      h.entry,
		}
		if r.record(pass, rec) {
			merged.text = h.entry.Correct
			merged.match = r.addMatch(types.Match{
				Text: h.entry.Correct, Tier: h.tier, Corrected: true, Span: span, Entry: h.entry,
			})
		}
	}

	r.segs = append(r.segs[:i], append([]segment{merged}, r.segs[i+n:]...)...)
}

// record applies rec, or withholds it as a suggestion when auto-apply-only
// is enabled and rec is below the threshold. It reports whether rec was
// applied.
func (r *run) record(pass Pass, rec types.CorrectionRecord) bool {
	if r.p.autoApplyOnly && rec.Confidence < r.p.loader.Threshold() {
		r.res.Suggestions = append(r.res.Suggestions, rec)
		r.p.observer.Suggested(pass, rec)
		return false
	}
	r.res.Records = append(r.res.Records, rec)
	r.p.observer.Corrected(pass, rec)
	return true
}

func (r *run) recognise(pass Pass, text string, span types.Span, h hit) int {
	m := types.Match{Text: text, Tier: h.tier, Span: span, Entry: h.entry}
	r.p.observer.Recognised(pass, m)
	return r.addMatch(m)
}

func (r *run) addMatch(m types.Match) int {
	r.res.Matches = append(r.res.Matches, m)
	return len(r.res.Matches) - 1
}
