package lexicon

import (
	"cmp"
	"slices"
)

// All returns copies of every entry, tier by tier in pass order.
func (s *Store) All() []Entry {
	var out []Entry
	for _, t := range AllTiers {
		out = append(out, s.EntriesForTier(t)...)
	}
	return out
}

// BusinessesInRegion returns the tourism businesses that apply to region,
// strongest business tier first and then by name. Businesses scoped to every
// region are included. An empty region returns every business.
func (s *Store) BusinessesInRegion(region Region) []Entry {
	var out []Entry
	for _, e := range s.entries[TierTourismBusiness] {
		if e.Region.Matches(region) {
			out = append(out, e.clone())
		}
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(businessRank(a.BusinessTier), businessRank(b.BusinessTier)),
			cmp.Compare(a.Correct, b.Correct),
		)
	})
	return out
}

func businessRank(t BusinessTier) int {
	switch t {
	case BusinessTierA:
		return 0
	case BusinessTierB:
		return 1
	case BusinessTierC:
		return 2
	}
	return 3
}

// PlacesForDemo returns the places and businesses relevant to the named
// sales demonstration. A place is relevant when it shares a region with a
// business listed for the demo.
func (s *Store) PlacesForDemo(demo string) []Entry {
	regions := make(map[Region]struct{})
	var out []Entry
	for _, e := range s.entries[TierTourismBusiness] {
		if !slices.Contains(e.Demos, demo) {
			continue
		}
		out = append(out, e.clone())
		if e.Region != RegionAll {
			regions[e.Region] = struct{}{}
		}
	}
	for _, e := range s.entries[TierPlaceName] {
		if _, ok := regions[e.Region]; ok {
			out = append(out, e.clone())
		}
	}
	return out
}

// PerfectDemoMatches returns the entries flagged as the highest-value demo
// match.
func (s *Store) PerfectDemoMatches() []Entry {
	var out []Entry
	for _, t := range AllTiers {
		for _, e := range s.entries[t] {
			if e.PerfectDemo {
				out = append(out, e.clone())
			}
		}
	}
	return out
}
