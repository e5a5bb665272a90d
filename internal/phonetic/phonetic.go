// Package phonetic finds the cultural term a mangled word or phrase most
// likely stands for, using Double Metaphone phonetic encoding combined with
// Jaro-Winkler string similarity.
//
// The algorithm proceeds in two stages:
//
//  1. Phonetic candidate filtering: Double Metaphone codes are computed for
//     the input and for each candidate. A candidate survives only if at
//     least one code overlaps. For phrases the check is made word by word,
//     so every input word must sound like the candidate word in the same
//     position.
//
//  2. Jaro-Winkler ranking: among the surviving candidates, the one with the
//     highest Jaro-Winkler similarity on the folded, space-stripped strings
//     wins, provided its score reaches the configured threshold.
//
// Unlike a general fuzzy matcher there is no similarity-only fallback. A
// candidate that does not sound alike is never returned, because a wrong
// cultural correction is worse than none.
package phonetic

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/MrWong99/kupu/internal/textnorm"
)

const (
	defaultWordThreshold   = 0.88
	defaultPhraseThreshold = 0.85
)

// Option is a functional option for configuring a [Matcher].
type Option func(*Matcher)

// WithWordThreshold sets the minimum Jaro-Winkler score for single-word
// matches. Default: 0.88.
func WithWordThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.wordThreshold = threshold
	}
}

// WithPhraseThreshold sets the minimum Jaro-Winkler score for multi-word
// matches. Default: 0.85.
func WithPhraseThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.phraseThreshold = threshold
	}
}

// Matcher is a phonetic term matcher. All methods are safe for concurrent
// use; the Matcher is read-only after construction.
type Matcher struct {
	wordThreshold   float64
	phraseThreshold float64
}

// New returns a new [Matcher] configured with the supplied options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		wordThreshold:   defaultWordThreshold,
		phraseThreshold: defaultPhraseThreshold,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Match returns the candidate that word most plausibly mis-spells. word must
// be a single word. Candidates are compared after folding, and the returned
// string is the candidate exactly as supplied.
//
// When matched is false, best is empty and score is 0.
func (m *Matcher) Match(word string, candidates []string) (best string, score float64, matched bool) {
	in := textnorm.Fold(strings.TrimSpace(word))
	if in == "" || strings.ContainsRune(in, ' ') {
		return "", 0, false
	}
	inCodes := codes(in)

	for _, c := range candidates {
		key := textnorm.Fold(strings.TrimSpace(c))
		if key == "" || key == in || !overlap(inCodes, codes(key)) {
			continue
		}
		s := matchr.JaroWinkler(in, key, false)
		if s >= m.wordThreshold && s > score {
			best, score = c, s
		}
	}
	return best, score, best != ""
}

// MatchPhrase returns the multi-word candidate that phrase most plausibly
// mis-spells. Only candidates with the same number of words are considered,
// and every word of phrase must share a Double Metaphone code with the
// candidate word in the same position. Ranking uses Jaro-Winkler on the
// words joined without spaces.
//
// A candidate that folds to phrase itself is not a mis-spelling and is
// skipped. When matched is false, best is empty and score is 0.
func (m *Matcher) MatchPhrase(phrase string, candidates []string) (best string, score float64, matched bool) {
	words := strings.Fields(textnorm.FoldPhrase(phrase))
	if len(words) < 2 {
		return "", 0, false
	}
	joined := strings.Join(words, "")

	for _, c := range candidates {
		cw := strings.Fields(textnorm.FoldPhrase(c))
		if len(cw) != len(words) || strings.Join(cw, " ") == strings.Join(words, " ") {
			continue
		}
		if !alignedCodes(words, cw) {
			continue
		}
		s := matchr.JaroWinkler(joined, strings.Join(cw, ""), false)
		if s >= m.phraseThreshold && s > score {
			best, score = c, s
		}
	}
	return best, score, best != ""
}

// alignedCodes reports whether every word in a shares a phonetic code with
// the word at the same position in b.
func alignedCodes(a, b []string) bool {
	for i := range a {
		if !overlap(codes(a[i]), codes(b[i])) {
			return false
		}
	}
	return true
}

// codes returns the non-empty Double Metaphone codes of word.
func codes(word string) []string {
	p, s := matchr.DoubleMetaphone(word)
	out := make([]string, 0, 2)
	if p != "" {
		out = append(out, p)
	}
	if s != "" && s != p {
		out = append(out, s)
	}
	return out
}

func overlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
