package correction_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrWong99/kupu/internal/correction"
	"github.com/MrWong99/kupu/internal/loader"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

func builtinStore(t *testing.T) *lexicon.Store {
	t.Helper()
	s, err := lexicon.NewBuiltinStore()
	if err != nil {
		t.Fatalf("NewBuiltinStore: %v", err)
	}
	return s
}

func newPipeline(t *testing.T, s *lexicon.Store, ctx types.EngineContext, opts ...correction.Option) *correction.Pipeline {
	t.Helper()
	l := loader.New(s, ctx, loader.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	return correction.New(l, opts...)
}

// brief is the part of a record the scenario tests compare.
type brief struct {
	Original   string
	Corrected  string
	Tier       lexicon.Tier
	Confidence int
	Reason     string
}

func briefs(recs []types.CorrectionRecord) []brief {
	var out []brief
	for _, r := range recs {
		out = append(out, brief{r.Original, r.Corrected, r.SourceTier, r.Confidence, r.Reason})
	}
	return out
}

func TestCorrect_Scenarios(t *testing.T) {
	t.Parallel()

	s := builtinStore(t)
	tests := []struct {
		name     string
		input    string
		want     string
		wantRecs []brief
	}{
		{
			name:  "illegal letters in iwi name",
			input: "nazi waheo people near rotorua",
			want:  "Ngāti Wāhiao people near Rotorua",
			wantRecs: []brief{
				{"nazi waheo", "Ngāti Wāhiao", lexicon.TierPhoneticLegality, 95, correction.ReasonIllegalLetter},
				{"rotorua", "Rotorua", lexicon.TierPlaceName, 95, correction.ReasonCapitalisation},
			},
		},
		{
			name:  "multi-token place name",
			input: "took career village",
			want:  "Te Whakarewarewa Village",
			wantRecs: []brief{
				{"took career village", "Te Whakarewarewa Village", lexicon.TierComplexPlaceName, 85, correction.ReasonMultiToken},
			},
		},
		{
			name:  "business and river",
			input: "ko tane waka on the ōtākaro",
			want:  "Ko Tāne waka on the Ōtākaro",
			wantRecs: []brief{
				{"ko tane", "Ko Tāne", lexicon.TierTourismBusiness, 93, correction.ReasonMacronRestored},
				{"ōtākaro", "Ōtākaro", lexicon.TierPlaceName, 90, correction.ReasonCapitalisation},
			},
		},
		{
			name:  "macron and english place name",
			input: "Maori village near christchurch",
			want:  "Māori village near Ōtautahi",
		},
		{
			name:  "longest phrase wins over embedded name",
			input: "te runanga o ngai tahu",
			want:  "Te Rūnanga o Ngāi Tahu",
			wantRecs: []brief{
				{"te runanga o ngai tahu", "Te Rūnanga o Ngāi Tahu", lexicon.TierIdentity, 97, correction.ReasonMacronRestored},
			},
		},
		{
			name:  "illegal letter extended into neighbouring name",
			input: "the naughty mamoe iwi",
			want:  "the Ngāti Māmoe iwi",
			wantRecs: []brief{
				{"naughty mamoe", "Ngāti Māmoe", lexicon.TierPhoneticLegality, 90, correction.ReasonIllegalLetter},
			},
		},
		{
			name:  "nothing to correct",
			input: "the weather was lovely",
			want:  "the weather was lovely",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newPipeline(t, s, types.EngineContext{})
			got := p.Correct(tt.input)
			if got.Text != tt.want {
				t.Errorf("Correct(%q).Text = %q, want %q", tt.input, got.Text, tt.want)
			}
			if tt.wantRecs != nil {
				if diff := cmp.Diff(tt.wantRecs, briefs(got.Records)); diff != "" {
					t.Errorf("records mismatch (-want +got):\n%s", diff)
				}
			}
			if got.Threshold != types.ThresholdGeneral {
				t.Errorf("Threshold = %d, want %d", got.Threshold, types.ThresholdGeneral)
			}
		})
	}
}

func TestCorrect_RecordCount(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, builtinStore(t), types.EngineContext{})
	got := p.Correct("Maori village near christchurch")
	var corrected []string
	for _, r := range got.Records {
		corrected = append(corrected, r.Corrected)
	}
	if diff := cmp.Diff([]string{"Māori", "Ōtautahi"}, corrected); diff != "" {
		t.Errorf("corrections mismatch (-want +got):\n%s", diff)
	}
}

func TestCorrect_Idempotent(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, builtinStore(t), types.EngineContext{})
	for _, input := range []string{
		"nazi waheo people near rotorua",
		"took career village",
		"ko tane waka on the ōtākaro",
		"Maori village near christchurch",
		"te runanga o ngai tahu",
		"the naughty mamoe iwi",
		"we stayed at the marae with our fanau",
	} {
		once := p.Correct(input)
		twice := p.Correct(once.Text)
		if twice.Text != once.Text {
			t.Errorf("Correct(Correct(%q)) = %q, want %q", input, twice.Text, once.Text)
		}
		if len(twice.Records) != 0 {
			t.Errorf("second pass over %q produced records: %+v", once.Text, briefs(twice.Records))
		}
	}
}

func TestCorrect_EveryVariantReachesItsCanonical(t *testing.T) {
	t.Parallel()

	s := builtinStore(t)
	p := newPipeline(t, s, types.EngineContext{})
	for _, e := range s.All() {
		for _, v := range e.Variants {
			if got := p.Correct(v).Text; got != e.Correct {
				t.Errorf("%s: Correct(%q) = %q, want %q", e.Tier, v, got, e.Correct)
			}
		}
	}
}

func TestCorrect_ContextRulesApplyToWholeText(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, builtinStore(t), types.EngineContext{})
	tests := []struct {
		input, want string
	}{
		{"nai", "Ngāi"},
		{"wenua", "whenua"},
		{"the nai iwi", "the Ngāi iwi"},
	}
	for _, tt := range tests {
		if got := p.Correct(tt.input).Text; got != tt.want {
			t.Errorf("Correct(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCorrect_LeavesIllegalWordsWithoutReplacement(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, builtinStore(t), types.EngineContext{})
	for _, input := range []string{"marae vlorx", "the iwi zqxjb gathered", "whakapapa jqz"} {
		got := p.Correct(input)
		if got.Text != input {
			t.Errorf("Correct(%q) = %q, want it unchanged", input, got.Text)
		}
		if len(got.Records) != 0 {
			t.Errorf("Correct(%q) records = %+v, want none", input, briefs(got.Records))
		}
	}
}

func TestCorrect_TierPriority(t *testing.T) {
	t.Parallel()

	s, err := lexicon.NewStore([]lexicon.Entry{
		{
			Tier: lexicon.TierGenericVocabulary, Variants: []string{"paka"}, Correct: "pākā",
			Category: lexicon.CategoryVocabulary, Confidence: 99, Significance: lexicon.SignificanceMedium,
		},
		{
			Tier: lexicon.TierPlaceName, Variants: []string{"paka"}, Correct: "Pākā",
			Category: lexicon.CategoryPlace, Confidence: 80, Significance: lexicon.SignificanceHigh,
		},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	p := newPipeline(t, s, types.EngineContext{})
	got := p.Correct("paka")
	if got.Text != "Pākā" {
		t.Errorf("Text = %q, want the place name", got.Text)
	}
	if len(got.Records) != 1 || got.Records[0].SourceTier != lexicon.TierPlaceName {
		t.Errorf("Records = %+v, want one place_name record", briefs(got.Records))
	}
}

func TestCorrect_RegionFocus(t *testing.T) {
	t.Parallel()

	s := builtinStore(t)
	tests := []struct {
		region lexicon.Region
		want   string
	}{
		{region: lexicon.RegionCanterbury, want: "Ōtautahi"},
		{region: lexicon.RegionRotorua, want: "christchurch"},
		{region: "", want: "Ōtautahi"},
	}
	for _, tt := range tests {
		p := newPipeline(t, s, types.EngineContext{Region: tt.region})
		if got := p.Correct("christchurch").Text; got != tt.want {
			t.Errorf("region %q: Text = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestCorrect_AutoApplyOnly(t *testing.T) {
	t.Parallel()

	s := builtinStore(t)
	p := newPipeline(t, s, types.EngineContext{}, correction.WithAutoApplyOnly(true))
	got := p.Correct("took career village")
	if got.Text != "took career village" {
		t.Errorf("Text = %q, want input unchanged", got.Text)
	}
	if len(got.Records) != 0 {
		t.Errorf("Records = %+v, want none", briefs(got.Records))
	}
	want := []brief{{"took career village", "Te Whakarewarewa Village", lexicon.TierComplexPlaceName, 85, correction.ReasonMultiToken}}
	if diff := cmp.Diff(want, briefs(got.Suggestions)); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}

	// Confident corrections still apply.
	got = p.Correct("christchurch")
	if got.Text != "Ōtautahi" || len(got.Suggestions) != 0 {
		t.Errorf("Correct(christchurch) = %q with %d suggestions, want Ōtautahi and none", got.Text, len(got.Suggestions))
	}
}

func TestCorrect_PreservesSurroundingBytes(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, builtinStore(t), types.EngineContext{})
	in := "  we went to rotorua,  then christchurch!\n"
	want := "  we went to Rotorua,  then Ōtautahi!\n"
	got := p.Correct(in)
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
	for _, r := range got.Records {
		if in[r.Span.Start:r.Span.End] != r.Original {
			t.Errorf("record span %+v covers %q, want %q", r.Span, in[r.Span.Start:r.Span.End], r.Original)
		}
	}
}

func TestCorrect_Empty(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, builtinStore(t), types.EngineContext{DemoMode: types.DemoModeCurated})
	for _, in := range []string{"", "   \n\t"} {
		got := p.Correct(in)
		if got.Text != "" || len(got.Records) != 0 || len(got.Matches) != 0 {
			t.Errorf("Correct(%q) = %+v, want empty result", in, got)
		}
		if got.Threshold != types.ThresholdCurated {
			t.Errorf("Correct(%q).Threshold = %d, want %d", in, got.Threshold, types.ThresholdCurated)
		}
	}
}

func TestCorrect_Matches(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, builtinStore(t), types.EngineContext{})
	got := p.Correct("Ko Tāne near christchurch")
	want := []struct {
		Text      string
		Corrected bool
	}{
		{"Ko Tāne", false},
		{"Ōtautahi", true},
	}
	if len(got.Matches) != len(want) {
		t.Fatalf("Matches = %+v, want %d entries", got.Matches, len(want))
	}
	for i, m := range got.Matches {
		if m.Text != want[i].Text || m.Corrected != want[i].Corrected {
			t.Errorf("Matches[%d] = {%q %v}, want {%q %v}", i, m.Text, m.Corrected, want[i].Text, want[i].Corrected)
		}
	}
	if got.Matches[0].Entry.BusinessTier != lexicon.BusinessTierA {
		t.Errorf("Ko Tāne match carries business tier %q, want A", got.Matches[0].Entry.BusinessTier)
	}
}

type recorder struct {
	corrected  []correction.Pass
	suggested  []correction.Pass
	recognised []correction.Pass
}

func (r *recorder) Corrected(p correction.Pass, _ types.CorrectionRecord) {
	r.corrected = append(r.corrected, p)
}

func (r *recorder) Suggested(p correction.Pass, _ types.CorrectionRecord) {
	r.suggested = append(r.suggested, p)
}

func (r *recorder) Recognised(p correction.Pass, _ types.Match) {
	r.recognised = append(r.recognised, p)
}

func TestCorrect_Observer(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	p := newPipeline(t, builtinStore(t), types.EngineContext{}, correction.WithObserver(rec))
	p.Correct("nazi waheo people near rotorua")

	wantCorrected := []correction.Pass{correction.PassPhoneticLegality, correction.PassCapitalisation}
	if diff := cmp.Diff(wantCorrected, rec.corrected); diff != "" {
		t.Errorf("corrected passes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]correction.Pass{correction.PassTieredLookup}, rec.recognised); diff != "" {
		t.Errorf("recognised passes mismatch (-want +got):\n%s", diff)
	}
	if len(rec.suggested) != 0 {
		t.Errorf("suggested = %v, want none", rec.suggested)
	}
}

func TestLogObserver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := newPipeline(t, builtinStore(t), types.EngineContext{}, correction.WithLogger(log))
	p.Correct("christchurch")

	out := buf.String()
	for _, want := range []string{"correction applied", "pass=tiered_lookup", "tier=place_name", "corrected=Ōtautahi"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
