package lexicon

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/MrWong99/kupu/internal/textnorm"
)

// stopWords never act as cultural triggers even when they appear inside an
// iwi or governance name.
var stopWords = map[string]struct{}{
	"te": {}, "o": {}, "a": {}, "i": {}, "ki": {}, "me": {}, "ko": {},
	"nga": {}, "he": {}, "e": {}, "the": {}, "of": {}, "and": {},
}

// baseTriggers are cultural-context words that are not themselves names.
var baseTriggers = []string{
	"iwi", "hapu", "marae", "whanau", "runanga", "tangata", "whenua",
	"maori", "rohe", "papatipu", "kaumatua", "tupuna", "tipuna", "waka",
	"whakapapa", "tikanga", "karakia", "haka", "powhiri", "wharenui",
}

type pattern struct {
	re  *regexp.Regexp
	idx int
}

// Store is an immutable, tiered collection of lexicon entries. It is safe
// for concurrent use by any number of goroutines; nothing mutates it after
// [NewStore] returns.
type Store struct {
	entries  map[Tier][]Entry
	variants map[Tier]map[string][]int
	canon    map[Tier]map[string][]int
	patterns map[Tier][]pattern
	maxWords map[Tier]int
	triggers map[string]struct{}
	terms    map[string]string
}

// NewStore validates and indexes the supplied tables. Later tables extend
// earlier ones; when the same variant appears more than once in a tier the
// entry with the higher confidence wins, then the one defined first.
//
// NewStore rejects a table set in which a variant of one entry equals the
// canonical form of a different entry, since correcting such text twice
// would not converge.
func NewStore(tables ...[]Entry) (*Store, error) {
	s := &Store{
		entries:  make(map[Tier][]Entry),
		variants: make(map[Tier]map[string][]int),
		canon:    make(map[Tier]map[string][]int),
		patterns: make(map[Tier][]pattern),
		maxWords: make(map[Tier]int),
		triggers: make(map[string]struct{}),
		terms:    make(map[string]string),
	}

	var errs []error
	for ti, table := range tables {
		for ei, e := range table {
			if e.Region == "" {
				e.Region = RegionAll
			}
			if err := Validate(e); err != nil {
				errs = append(errs, fmt.Errorf("table %d entry %d: %w", ti, ei, err))
				continue
			}
			if err := validateTierRules(e); err != nil {
				errs = append(errs, fmt.Errorf("table %d entry %d: %w", ti, ei, err))
				continue
			}
			s.add(e.clone())
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	s.sortIndexes()
	if err := s.checkCycles(); err != nil {
		return nil, err
	}
	s.buildTriggers()
	return s, nil
}

// NewBuiltinStore returns a [Store] holding the built-in tables plus any
// overlay tables.
func NewBuiltinStore(overlays ...[]Entry) (*Store, error) {
	return NewStore(append([][]Entry{Builtin()}, overlays...)...)
}

// validateTierRules enforces constraints that depend on the tier.
func validateTierRules(e Entry) error {
	switch e.Tier {
	case TierPhoneticLegality:
		for _, v := range e.Variants {
			if !phraseHasIllegalLetter(v) {
				return fmt.Errorf("%w %q: phonetic_legality variant %q has no illegal letter", ErrInvalidEntry, e.Correct, v)
			}
		}
	case TierComplexPlaceName, TierComplexIwiName:
		if n := len(strings.Fields(e.Correct)); n < 1 {
			return fmt.Errorf("%w %q: complex entry needs a canonical phrase", ErrInvalidEntry, e.Correct)
		}
	}
	return nil
}

func phraseHasIllegalLetter(p string) bool {
	for _, w := range strings.Fields(p) {
		if textnorm.HasIllegalLetter(w) {
			return true
		}
	}
	return false
}

func (s *Store) add(e Entry) {
	t := e.Tier
	idx := len(s.entries[t])
	s.entries[t] = append(s.entries[t], e)

	if s.variants[t] == nil {
		s.variants[t] = make(map[string][]int)
		s.canon[t] = make(map[string][]int)
	}
	for _, v := range e.Variants {
		key := textnorm.FoldPhrase(v)
		if !slices.Contains(s.variants[t][key], idx) {
			s.variants[t][key] = append(s.variants[t][key], idx)
		}
		if n := len(strings.Fields(key)); n > s.maxWords[t] {
			s.maxWords[t] = n
		}
	}
	ckey := textnorm.FoldPhrase(e.Correct)
	s.canon[t][ckey] = append(s.canon[t][ckey], idx)
	if n := len(strings.Fields(ckey)); n > s.maxWords[t] {
		s.maxWords[t] = n
	}
	if e.Pattern != "" {
		// Validate has already compiled the pattern once.
		s.patterns[t] = append(s.patterns[t], pattern{re: regexp.MustCompile(e.Pattern), idx: idx})
	}
}

// sortIndexes orders every key's candidates by confidence, highest first,
// keeping definition order for ties.
func (s *Store) sortIndexes() {
	for t, byKey := range s.variants {
		entries := s.entries[t]
		for _, idxs := range byKey {
			slices.SortStableFunc(idxs, func(a, b int) int {
				return cmp.Compare(entries[b].Confidence, entries[a].Confidence)
			})
		}
	}
	for t, byKey := range s.canon {
		entries := s.entries[t]
		for _, idxs := range byKey {
			slices.SortStableFunc(idxs, func(a, b int) int {
				return cmp.Compare(entries[b].Confidence, entries[a].Confidence)
			})
		}
	}
}

// checkCycles rejects variants that are the canonical form of a different
// term in any tier consulted by the correction passes.
func (s *Store) checkCycles() error {
	canonicals := make(map[string]string)
	for _, t := range AllTiers {
		for _, e := range s.entries[t] {
			canonicals[textnorm.FoldPhrase(e.Correct)] = e.Correct
		}
	}
	var errs []error
	for _, t := range AllTiers {
		for _, e := range s.entries[t] {
			own := textnorm.FoldPhrase(e.Correct)
			for _, v := range e.Variants {
				key := textnorm.FoldPhrase(v)
				if key == own {
					continue
				}
				if other, ok := canonicals[key]; ok && textnorm.FoldPhrase(other) != own {
					errs = append(errs, fmt.Errorf("%w %q: variant %q is the canonical form of %q", ErrInvalidEntry, e.Correct, v, other))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// buildTriggers collects the cultural-context trigger words and the single
// word cultural terms used as nearest-term candidates.
func (s *Store) buildTriggers() {
	for _, w := range baseTriggers {
		s.triggers[w] = struct{}{}
	}
	addWords := func(phrase string, asTerm bool) {
		for _, w := range strings.Fields(phrase) {
			key := textnorm.Fold(w)
			if _, stop := stopWords[key]; stop || len(key) < 3 {
				continue
			}
			if textnorm.HasIllegalLetter(w) || textnorm.IsEnglishWord(w) {
				continue
			}
			s.triggers[key] = struct{}{}
			if asTerm {
				if _, seen := s.terms[key]; !seen {
					s.terms[key] = w
				}
			}
		}
	}
	for _, e := range s.entries[TierIdentity] {
		addWords(e.Correct, true)
		for _, v := range e.Variants {
			addWords(v, false)
		}
	}
}

// EntriesForTier returns copies of the entries in tier t in definition
// order. An unknown or empty tier yields nil.
func (s *Store) EntriesForTier(t Tier) []Entry {
	src := s.entries[t]
	if len(src) == 0 {
		return nil
	}
	out := make([]Entry, len(src))
	for i, e := range src {
		out[i] = e.clone()
	}
	return out
}

// Tiers returns the tiers that hold at least one entry, in pass order.
func (s *Store) Tiers() []Tier {
	var out []Tier
	for _, t := range AllTiers {
		if len(s.entries[t]) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the total number of entries.
func (s *Store) Len() int {
	n := 0
	for _, es := range s.entries {
		n += len(es)
	}
	return n
}

// Lookup returns the entries of tier t that list phrase as an incorrect
// variant, highest confidence first. Matching ignores case, macrons and
// extra whitespace. Returned entries are [Entry.Ref] copies.
func (s *Store) Lookup(t Tier, phrase string) []Entry {
	return s.refs(t, s.variants[t][textnorm.FoldPhrase(phrase)])
}

// LookupCanonical returns the entries of tier t whose canonical form equals
// phrase once case and macrons are ignored.
func (s *Store) LookupCanonical(t Tier, phrase string) []Entry {
	return s.refs(t, s.canon[t][textnorm.FoldPhrase(phrase)])
}

// MatchPattern returns the entries of tier t whose pattern matches phrase.
// The phrase is folded before matching.
func (s *Store) MatchPattern(t Tier, phrase string) []Entry {
	key := textnorm.FoldPhrase(phrase)
	var idxs []int
	for _, p := range s.patterns[t] {
		if p.re.MatchString(key) {
			idxs = append(idxs, p.idx)
		}
	}
	slices.SortStableFunc(idxs, func(a, b int) int {
		return cmp.Compare(s.entries[t][b].Confidence, s.entries[t][a].Confidence)
	})
	return s.refs(t, idxs)
}

func (s *Store) refs(t Tier, idxs []int) []Entry {
	if len(idxs) == 0 {
		return nil
	}
	out := make([]Entry, len(idxs))
	for i, idx := range idxs {
		out[i] = s.entries[t][idx].Ref()
	}
	return out
}

// Resolve finds the entry that should correct variant when it is listed in
// more than one of tiers. Tiers are ranked by [Tier.Priority] and then by
// entry confidence. The second result is false when no tier lists variant.
func (s *Store) Resolve(variant string, tiers ...Tier) (Entry, bool) {
	ordered := slices.Clone(tiers)
	slices.SortStableFunc(ordered, func(a, b Tier) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	for _, t := range ordered {
		if found := s.Lookup(t, variant); len(found) > 0 {
			return found[0], true
		}
	}
	return Entry{}, false
}

// MaxWords returns the longest variant or canonical phrase in tier t,
// counted in words.
func (s *Store) MaxWords(t Tier) int {
	return s.maxWords[t]
}

// IsTrigger reports whether word marks cultural context: it is part of an
// iwi or governance name, or a core cultural concept such as "marae".
func (s *Store) IsTrigger(word string) bool {
	_, ok := s.triggers[textnorm.Fold(word)]
	return ok
}

// CulturalTerms returns the folded single-word cultural terms used as
// nearest-term candidates, sorted.
func (s *Store) CulturalTerms() []string {
	out := make([]string, 0, len(s.terms))
	for k := range s.terms {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// TermFor returns the canonical spelling of a folded cultural term.
func (s *Store) TermFor(folded string) (string, bool) {
	w, ok := s.terms[folded]
	return w, ok
}
