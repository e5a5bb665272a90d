package lexicon_test

import (
	"testing"

	"github.com/MrWong99/kupu/pkg/lexicon"
)

func TestBusinessesInRegion(t *testing.T) {
	t.Parallel()

	s := builtinStore(t)
	got := s.BusinessesInRegion(lexicon.RegionCanterbury)
	if len(got) == 0 {
		t.Fatal("BusinessesInRegion(canterbury) is empty")
	}
	if got[0].Correct != "Ko Tāne" {
		t.Errorf("BusinessesInRegion(canterbury)[0] = %q, want Ko Tāne", got[0].Correct)
	}
	seen := make(map[string]bool)
	for i, e := range got {
		seen[e.Correct] = true
		if e.Region != lexicon.RegionCanterbury && e.Region != lexicon.RegionAll {
			t.Errorf("BusinessesInRegion(canterbury) returned %q in region %q", e.Correct, e.Region)
		}
		if i > 0 && got[i-1].BusinessTier > e.BusinessTier {
			t.Errorf("BusinessesInRegion: %q (%s) sorted after %q (%s)", got[i-1].Correct, got[i-1].BusinessTier, e.Correct, e.BusinessTier)
		}
	}
	if !seen["Ngāi Tahu Tourism"] {
		t.Error("BusinessesInRegion(canterbury) is missing the all-region Ngāi Tahu Tourism")
	}
	if seen["Te Puia"] {
		t.Error("BusinessesInRegion(canterbury) includes the Rotorua business Te Puia")
	}

	if all := s.BusinessesInRegion(""); len(all) != len(s.EntriesForTier(lexicon.TierTourismBusiness)) {
		t.Errorf("BusinessesInRegion(\"\") returned %d entries, want every business", len(all))
	}
}

func TestPlacesForDemo(t *testing.T) {
	t.Parallel()

	s := builtinStore(t)
	got := s.PlacesForDemo("rotorua_geothermal")
	names := make(map[string]lexicon.Tier)
	for _, e := range got {
		names[e.Correct] = e.Tier
	}
	for name, tier := range map[string]lexicon.Tier{
		"Te Puia":       lexicon.TierTourismBusiness,
		"Rotorua":       lexicon.TierPlaceName,
		"Whakarewarewa": lexicon.TierPlaceName,
	} {
		if names[name] != tier {
			t.Errorf("PlacesForDemo(rotorua_geothermal): %q tier = %q, want %q", name, names[name], tier)
		}
	}
	if _, ok := names["Ōtautahi"]; ok {
		t.Error("PlacesForDemo(rotorua_geothermal) includes Ōtautahi")
	}
	if got := s.PlacesForDemo("no_such_demo"); len(got) != 0 {
		t.Errorf("PlacesForDemo(unknown) = %v, want empty", got)
	}
}

func TestPerfectDemoMatches(t *testing.T) {
	t.Parallel()

	got := builtinStore(t).PerfectDemoMatches()
	if len(got) != 1 || got[0].Correct != "Ko Tāne" {
		t.Fatalf("PerfectDemoMatches() = %v, want only Ko Tāne", got)
	}
}
