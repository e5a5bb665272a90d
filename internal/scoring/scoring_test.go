package scoring_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrWong99/kupu/internal/correction"
	"github.com/MrWong99/kupu/internal/loader"
	"github.com/MrWong99/kupu/internal/scoring"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

func business(name string, tier lexicon.BusinessTier, perfect bool) types.Match {
	return types.Match{
		Text: name,
		Tier: lexicon.TierTourismBusiness,
		Entry: lexicon.Entry{
			Correct:      name,
			Category:     lexicon.CategoryBusiness,
			BusinessTier: tier,
			PerfectDemo:  perfect,
		},
	}
}

func TestCultural(t *testing.T) {
	t.Parallel()

	iwi := lexicon.Entry{Correct: "Ngāi Tahu", Category: lexicon.CategoryIwi, Significance: lexicon.SignificanceHighest}
	word := lexicon.Entry{Correct: "whānau", Category: lexicon.CategoryVocabulary, Significance: lexicon.SignificanceHigh}
	place := lexicon.Entry{Correct: "Ōtautahi", Category: lexicon.CategoryPlace, Significance: lexicon.SignificanceHighest}

	tests := []struct {
		name    string
		records []types.CorrectionRecord
		want    int
	}{
		{name: "no corrections", want: 100},
		{name: "one vocabulary fix", records: []types.CorrectionRecord{{Entry: word}}, want: 95},
		{name: "identity fix nets positive but clamps", records: []types.CorrectionRecord{{Entry: iwi}}, want: 100},
		{name: "identity offsets other fixes", records: []types.CorrectionRecord{{Entry: word}, {Entry: word}, {Entry: iwi}}, want: 93},
		{name: "highest place is not identity", records: []types.CorrectionRecord{{Entry: place}}, want: 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scoring.Cultural(types.CorrectionResult{Records: tt.records})
			if got.Score != tt.want {
				t.Errorf("Score = %d, want %d (reasons %q)", got.Score, tt.want, got.Reasons)
			}
		})
	}
}

func TestCultural_ClampsAtZero(t *testing.T) {
	t.Parallel()

	recs := make([]types.CorrectionRecord, 30)
	got := scoring.Cultural(types.CorrectionResult{Records: recs})
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
	if len(got.Reasons) != 30 {
		t.Errorf("len(Reasons) = %d, want 30", len(got.Reasons))
	}
}

func TestCommercial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		matches   []types.Match
		wantScore int
		wantTier  types.CommercialTier
	}{
		{name: "none", wantScore: 0, wantTier: types.CommercialTierC},
		{name: "one A", matches: []types.Match{business("Te Puia", lexicon.BusinessTierA, false)}, wantScore: 15, wantTier: types.CommercialTierB},
		{name: "A and perfect demo", matches: []types.Match{business("Ko Tāne", lexicon.BusinessTierA, true)}, wantScore: 25, wantTier: types.CommercialTierA},
		{name: "two B", matches: []types.Match{
			business("Tikitere", lexicon.BusinessTierB, false),
			business("Mitai Māori Village", lexicon.BusinessTierB, false),
		}, wantScore: 16, wantTier: types.CommercialTierB},
		{name: "one C", matches: []types.Match{business("Rainbow Springs", lexicon.BusinessTierC, false)}, wantScore: 3, wantTier: types.CommercialTierC},
		{name: "perfect demo counted once", matches: []types.Match{
			business("Ko Tāne", lexicon.BusinessTierA, true),
			business("Ko Tāne", lexicon.BusinessTierA, true),
		}, wantScore: 40, wantTier: types.CommercialTierA},
		{name: "non-business ignored", matches: []types.Match{{Entry: lexicon.Entry{Category: lexicon.CategoryPlace, BusinessTier: lexicon.BusinessTierA}}}, wantScore: 0, wantTier: types.CommercialTierC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scoring.Commercial(types.CorrectionResult{Matches: tt.matches})
			if got.Score != tt.wantScore || got.Tier != tt.wantTier {
				t.Errorf("Commercial = {%d %s}, want {%d %s} (reasoning %q)", got.Score, got.Tier, tt.wantScore, tt.wantTier, got.Reasoning)
			}
		})
	}
}

func TestCommercial_Monotonic(t *testing.T) {
	t.Parallel()

	base := []types.Match{business("Rainbow Springs", lexicon.BusinessTierC, false)}
	prev := scoring.Commercial(types.CorrectionResult{Matches: base})
	for range 10 {
		base = append(base, business("Te Puia", lexicon.BusinessTierA, false))
		got := scoring.Commercial(types.CorrectionResult{Matches: base})
		if got.Score < prev.Score || got.Tier > prev.Tier {
			t.Fatalf("adding a tier A business lowered the score: %+v -> %+v", prev, got)
		}
		prev = got
	}
	if prev.Score != 100 || prev.Tier != types.CommercialTierA {
		t.Errorf("final score = {%d %s}, want {100 A}", prev.Score, prev.Tier)
	}
}

func TestTier(t *testing.T) {
	t.Parallel()

	got := []types.CommercialTier{scoring.Tier(0), scoring.Tier(11), scoring.Tier(12), scoring.Tier(24), scoring.Tier(25), scoring.Tier(100)}
	want := []types.CommercialTier{"C", "C", "B", "B", "A", "A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tier mismatch (-want +got):\n%s", diff)
	}
}

func TestCommercial_FromPipeline(t *testing.T) {
	t.Parallel()

	s, err := lexicon.NewBuiltinStore()
	if err != nil {
		t.Fatalf("NewBuiltinStore: %v", err)
	}
	l := loader.New(s, types.EngineContext{}, loader.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	res := correction.New(l).Correct("ko tane waka on the ōtākaro")

	got := scoring.Commercial(res)
	if got.Tier != types.CommercialTierA || got.Score != 25 {
		t.Errorf("Commercial = {%d %s}, want {25 A}", got.Score, got.Tier)
	}
	found := false
	for _, r := range got.Reasoning {
		if strings.HasPrefix(r, "perfect demo match: Ko Tāne") {
			found = true
		}
	}
	if !found {
		t.Errorf("Reasoning = %q, want a perfect demo match for Ko Tāne", got.Reasoning)
	}
}
