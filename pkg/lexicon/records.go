package lexicon

import (
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// RecordFile is the serialized form of a lexicon table: a flat list with one
// record per variant-to-canonical mapping.
//
// Example:
//
//	records:
//	  - tier: place_name
//	    variant: christchurch
//	    correct: Ōtautahi
//	    meaning: Christchurch
//	    category: place
//	    confidence: 92
//	    significance: high
//	    region: canterbury
type RecordFile struct {
	Records []Record `yaml:"records"`
}

// Record is one variant-to-canonical mapping. Records that share every field
// except Variant, Pattern and Demos describe the same [Entry].
type Record struct {
	Tier            Tier         `yaml:"tier"`
	Variant         string       `yaml:"variant,omitempty"`
	Pattern         string       `yaml:"pattern,omitempty"`
	Correct         string       `yaml:"correct"`
	Meaning         string       `yaml:"meaning"`
	Category        Category     `yaml:"category"`
	Confidence      int          `yaml:"confidence"`
	Significance    Significance `yaml:"significance"`
	Region          Region       `yaml:"region,omitempty"`
	RequiresContext bool         `yaml:"requires_context,omitempty"`
	BusinessTier    BusinessTier `yaml:"business_tier,omitempty"`
	PerfectDemo     bool         `yaml:"perfect_demo,omitempty"`
	Demos           []string     `yaml:"demos,omitempty"`
}

// recordKey identifies the entry a record belongs to.
type recordKey struct {
	tier         Tier
	correct      string
	meaning      string
	category     Category
	confidence   int
	significance Significance
	region       Region
	requiresCtx  bool
	businessTier BusinessTier
	perfectDemo  bool
}

func (r Record) key() recordKey {
	region := r.Region
	if region == "" {
		region = RegionAll
	}
	return recordKey{
		tier:         r.Tier,
		correct:      r.Correct,
		meaning:      r.Meaning,
		category:     r.Category,
		confidence:   r.Confidence,
		significance: r.Significance,
		region:       region,
		requiresCtx:  r.RequiresContext,
		businessTier: r.BusinessTier,
		perfectDemo:  r.PerfectDemo,
	}
}

// LoadRecords reads a flat record file from disk and groups it into entries.
func LoadRecords(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open record file %q: %w", path, err)
	}
	defer f.Close()

	entries, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: parse record file %q: %w", path, err)
	}
	return entries, nil
}

// DecodeRecords parses flat record YAML from r and groups the records into
// entries in order of first appearance. Entries are not validated here;
// [NewStore] does that when the table is indexed.
func DecodeRecords(r io.Reader) ([]Entry, error) {
	var rf RecordFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("lexicon: decode records yaml: %w", err)
	}
	return GroupRecords(rf.Records)
}

// GroupRecords folds flat records into entries. A record must carry either a
// variant or a pattern, and records of one entry may not disagree on the
// pattern.
func GroupRecords(records []Record) ([]Entry, error) {
	var entries []Entry
	index := make(map[recordKey]int)
	for i, rec := range records {
		if rec.Variant == "" && rec.Pattern == "" {
			return nil, fmt.Errorf("%w %q: record %d has neither variant nor pattern", ErrInvalidEntry, rec.Correct, i)
		}
		k := rec.key()
		idx, ok := index[k]
		if !ok {
			idx = len(entries)
			index[k] = idx
			entries = append(entries, Entry{
				Tier:            rec.Tier,
				Correct:         rec.Correct,
				Meaning:         rec.Meaning,
				Category:        rec.Category,
				Confidence:      rec.Confidence,
				Significance:    rec.Significance,
				Region:          k.region,
				RequiresContext: rec.RequiresContext,
				BusinessTier:    rec.BusinessTier,
				PerfectDemo:     rec.PerfectDemo,
			})
		}
		e := &entries[idx]
		if rec.Variant != "" && !slices.Contains(e.Variants, rec.Variant) {
			e.Variants = append(e.Variants, rec.Variant)
		}
		if rec.Pattern != "" {
			if e.Pattern != "" && e.Pattern != rec.Pattern {
				return nil, fmt.Errorf("%w %q: record %d sets a second pattern", ErrInvalidEntry, rec.Correct, i)
			}
			e.Pattern = rec.Pattern
		}
		for _, d := range rec.Demos {
			if !slices.Contains(e.Demos, d) {
				e.Demos = append(e.Demos, d)
			}
		}
	}
	return entries, nil
}

// Records flattens entries into one record per variant. A pattern is
// carried on its own record so that decoding the output reproduces the
// entries.
func Records(entries []Entry) []Record {
	var out []Record
	for _, e := range entries {
		base := Record{
			Tier:            e.Tier,
			Correct:         e.Correct,
			Meaning:         e.Meaning,
			Category:        e.Category,
			Confidence:      e.Confidence,
			Significance:    e.Significance,
			Region:          e.Region,
			RequiresContext: e.RequiresContext,
			BusinessTier:    e.BusinessTier,
			PerfectDemo:     e.PerfectDemo,
			Demos:           slices.Clone(e.Demos),
		}
		if e.Pattern != "" {
			rec := base
			rec.Pattern = e.Pattern
			out = append(out, rec)
		}
		for _, v := range e.Variants {
			rec := base
			rec.Variant = v
			out = append(out, rec)
		}
	}
	return out
}

// EncodeRecords writes entries to w in the flat record format.
func EncodeRecords(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(RecordFile{Records: Records(entries)}); err != nil {
		return fmt.Errorf("lexicon: encode records yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("lexicon: encode records yaml: %w", err)
	}
	return nil
}
