package correction

import (
	"math"
	"strings"

	"github.com/MrWong99/kupu/internal/textnorm"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

// phoneticLegality replaces the legality detector's findings. It always runs
// on the untouched input, so every segment is still a single token. Findings
// without a replacement are left for the validator to report.
func (r *run) phoneticLegality() {
	if !r.p.loader.IsActive(lexicon.TierPhoneticLegality) {
		return
	}
	for _, f := range r.p.detector.Scan(r.input) {
		if !f.HasReplacement() || !r.p.loader.InRegion(f.Entry) {
			continue
		}
		i, n, ok := r.locate(f.Span)
		if !ok {
			continue
		}
		reason := ReasonIllegalLetter
		if !f.Rule {
			reason = ReasonNearestTerm
		}
		r.applyExtended(PassPhoneticLegality, i, n, hit{
			entry:      f.Entry,
			tier:       lexicon.TierPhoneticLegality,
			confidence: f.Confidence,
			reason:     reason,
		})
	}
}

// silentSound applies the silent-sound rules, longest phrase first.
func (r *run) silentSound() {
	t := lexicon.TierSilentSound
	if !r.p.loader.IsActive(t) {
		return
	}
	maxN := r.p.store.MaxWords(t)
	for i := 0; i < len(r.segs); i++ {
		for n := min(maxN, len(r.segs)-i); n >= 1; n-- {
			phrase, ok := r.window(i, n)
			if !ok {
				continue
			}
			h, ok := r.silentHit(i, n, phrase)
			if !ok {
				continue
			}
			if r.coveredByLookup(i, n, false) {
				break
			}
			r.applyExtended(PassSilentSound, i, n, h)
			break
		}
	}
}

func (r *run) silentHit(i, n int, phrase string) (hit, bool) {
	for _, e := range r.p.store.Lookup(lexicon.TierSilentSound, phrase) {
		if e.RequiresContext && !r.inContext(i, i+n) && !r.whole(i, i+n) {
			continue
		}
		if !r.p.loader.InRegion(e) {
			continue
		}
		return hit{entry: e, tier: lexicon.TierSilentSound, confidence: e.Confidence, reason: ReasonSilentSound}, true
	}
	return hit{}, false
}

// complexMultiToken maps windows of two to four words to multi-word iwi and
// place names: first through the complex tiers' variants and patterns, then
// through a phonetic comparison with the multi-word names of the identity
// and place tiers.
func (r *run) complexMultiToken() {
	var tiers []lexicon.Tier
	for _, t := range []lexicon.Tier{lexicon.TierComplexIwiName, lexicon.TierComplexPlaceName} {
		if r.p.loader.IsActive(t) {
			tiers = append(tiers, t)
		}
	}
	if len(tiers) == 0 {
		return
	}
	names, byName := r.phraseCandidates()

	for i := 0; i < len(r.segs); i++ {
		for n := min(maxComplexWords, len(r.segs)-i); n >= minComplexWords; n-- {
			phrase, ok := r.window(i, n)
			if !ok {
				continue
			}
			if h, ok := r.complexHit(phrase, tiers); ok {
				if r.coveredByLookup(i, n, false) {
					break
				}
				r.apply(PassComplexMultiToken, i, n, h)
				break
			}
			if h, ok := r.phraseHit(phrase, names, byName); ok {
				if r.coveredByLookup(i, n, true) {
					continue
				}
				r.apply(PassComplexMultiToken, i, n, h)
				break
			}
		}
	}
}

func (r *run) complexHit(phrase string, tiers []lexicon.Tier) (hit, bool) {
	for _, t := range tiers {
		found := r.p.store.Lookup(t, phrase)
		found = append(found, r.p.store.MatchPattern(t, phrase)...)
		for _, e := range found {
			if !r.p.loader.InRegion(e) {
				continue
			}
			return hit{entry: e, tier: t, confidence: e.Confidence, reason: ReasonMultiToken}, true
		}
	}
	return hit{}, false
}

// phraseCandidates returns the multi-word canonical names of the active
// identity and place tiers under the current region focus.
func (r *run) phraseCandidates() ([]string, map[string]lexicon.Entry) {
	var names []string
	byName := make(map[string]lexicon.Entry)
	for _, t := range []lexicon.Tier{lexicon.TierIdentity, lexicon.TierPlaceName} {
		if !r.p.loader.IsActive(t) {
			continue
		}
		for _, e := range r.p.store.EntriesForTier(t) {
			if len(strings.Fields(e.Correct)) < minComplexWords || !r.p.loader.InRegion(e) {
				continue
			}
			if _, dup := byName[e.Correct]; dup {
				continue
			}
			names = append(names, e.Correct)
			byName[e.Correct] = e.Ref()
		}
	}
	return names, byName
}

func (r *run) phraseHit(phrase string, names []string, byName map[string]lexicon.Entry) (hit, bool) {
	name, score, ok := r.p.matcher.MatchPhrase(phrase, names)
	if !ok {
		return hit{}, false
	}
	e := byName[name]
	t := lexicon.TierComplexPlaceName
	if e.Category.IsIdentity() {
		t = lexicon.TierComplexIwiName
	}
	if !r.p.loader.IsActive(t) {
		return hit{}, false
	}
	conf := int(math.Round(score * phraseMatchWeight))
	return hit{entry: e, tier: t, confidence: conf, reason: ReasonPhoneticPhrase}, true
}

// tieredLookup matches the longest window first. For one window the tiers
// are tried in priority order, and within a tier the most confident entry
// wins.
func (r *run) tieredLookup() {
	maxN := r.maxLookupWords()
	for i := 0; i < len(r.segs); i++ {
		for n := min(maxN, len(r.segs)-i); n >= 1; n-- {
			phrase, ok := r.window(i, n)
			if !ok {
				continue
			}
			if h, ok := r.lookup(phrase); ok {
				r.apply(PassTieredLookup, i, n, h)
				break
			}
		}
	}
}

func (r *run) lookup(phrase string) (hit, bool) {
	for _, t := range r.p.loader.LookupTiers() {
		for _, e := range r.p.store.Lookup(t, phrase) {
			if r.p.loader.InRegion(e) {
				return hit{entry: e, tier: t, confidence: e.Confidence, reason: ReasonKnownMisspelling}, true
			}
		}
		for _, e := range r.p.store.LookupCanonical(t, phrase) {
			if r.p.loader.InRegion(e) {
				return hit{entry: e, tier: t, confidence: e.Confidence, reason: ReasonKnownMisspelling}, true
			}
		}
	}
	return hit{}, false
}

func (r *run) maxLookupWords() int {
	n := 0
	for _, t := range r.p.loader.LookupTiers() {
		n = max(n, r.p.store.MaxWords(t))
	}
	return n
}

// coveredByLookup reports whether a strictly longer unlocked window
// containing [i, i+n) is known to the lookup tiers. With allowEqual, the
// window [i, i+n) itself also counts. A longer or exact lookup match is
// more specific than a pattern or phonetic guess over part of it.
func (r *run) coveredByLookup(i, n int, allowEqual bool) bool {
	maxW := r.maxLookupWords()
	for j := max(0, i-maxW+1); j <= i; j++ {
		for k := i + n; k <= min(len(r.segs), j+maxW); k++ {
			if k-j == n && !allowEqual {
				continue
			}
			phrase, ok := r.window(j, k-j)
			if !ok {
				continue
			}
			if _, ok := r.lookup(phrase); ok {
				return true
			}
		}
	}
	return false
}

// capitalisation rewrites recognised proper nouns that were typed entirely
// in lower case.
func (r *run) capitalisation() {
	for i := range r.segs {
		s := &r.segs[i]
		if !s.pending {
			continue
		}
		s.pending = false
		if !textnorm.IsAllLower(s.text) {
			continue
		}
		rec := types.CorrectionRecord{
			Original:   s.text,
			Corrected:  s.entry.Correct,
			Confidence: s.entry.Confidence,
			SourceTier: s.tier,
			Reason:     ReasonCapitalisation,
			Span:       types.Span{Start: s.start, End: s.end},
			Entry:      s.entry,
		}
		if !r.record(PassCapitalisation, rec) {
			continue
		}
		s.text = s.entry.Correct
		if s.match >= 0 {
			r.res.Matches[s.match].Text = s.entry.Correct
			r.res.Matches[s.match].Corrected = true
		}
	}
}

// locate returns the unlocked segments that exactly cover span.
func (r *run) locate(span types.Span) (i, n int, ok bool) {
	for i = range r.segs {
		if r.segs[i].start == span.Start {
			break
		}
	}
	if i >= len(r.segs) || r.segs[i].start != span.Start {
		return 0, 0, false
	}
	for j := i; j < len(r.segs); j++ {
		if r.segs[j].locked {
			return 0, 0, false
		}
		if r.segs[j].end == span.End {
			return i, j - i + 1, true
		}
	}
	return 0, 0, false
}

// applyExtended applies h over [i, i+n) after trying to grow it into a
// multi-word name with its neighbours. Restoring "Ngāti" in "naughty mamoe"
// yields "ngāti mamoe", which the identity tier knows as "Ngāti Māmoe".
func (r *run) applyExtended(pass Pass, i, n int, h hit) {
	if left, right, e, ok := r.extend(i, n, h.entry.Correct); ok {
		h.entry = e
		h.confidence = min(h.confidence, e.Confidence)
		r.apply(pass, i-left, n+left+right, h)
		return
	}
	r.apply(pass, i, n, h)
}

// extend looks for up to maxExtendWords unlocked neighbours on one side of
// [i, i+n) that, joined with replacement, name an identity or place entry.
func (r *run) extend(i, n int, replacement string) (left, right int, e lexicon.Entry, ok bool) {
	for k := maxExtendWords; k >= 1; k-- {
		if words, ok := r.window(i+n, k); ok && r.adjacent(i+n-1) {
			if e, ok := r.resolveName(replacement + " " + words); ok {
				return 0, k, e, true
			}
		}
		if words, ok := r.window(i-k, k); ok && r.adjacent(i-1) {
			if e, ok := r.resolveName(words + " " + replacement); ok {
				return k, 0, e, true
			}
		}
	}
	return 0, 0, lexicon.Entry{}, false
}

func (r *run) resolveName(phrase string) (lexicon.Entry, bool) {
	for _, t := range []lexicon.Tier{lexicon.TierIdentity, lexicon.TierPlaceName} {
		if !r.p.loader.IsActive(t) {
			continue
		}
		found := r.p.store.Lookup(t, phrase)
		found = append(found, r.p.store.LookupCanonical(t, phrase)...)
		for _, e := range found {
			if r.p.loader.InRegion(e) {
				return e, true
			}
		}
	}
	return lexicon.Entry{}, false
}
