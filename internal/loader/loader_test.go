package loader_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrWong99/kupu/internal/loader"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

func newStore(t *testing.T) *lexicon.Store {
	t.Helper()
	s, err := lexicon.NewBuiltinStore()
	if err != nil {
		t.Fatalf("NewBuiltinStore: %v", err)
	}
	return s
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestInitialize_TierActivation(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	essentials := []lexicon.Tier{
		lexicon.TierPhoneticLegality,
		lexicon.TierComplexPlaceName,
		lexicon.TierComplexIwiName,
		lexicon.TierIdentity,
		lexicon.TierPlaceName,
		lexicon.TierTourismBusiness,
	}

	tests := []struct {
		name  string
		level types.UserLevel
		want  []lexicon.Tier
	}{
		{
			name:  "tourist",
			level: types.UserLevelTourist,
			want:  append(essentials[:6:6], lexicon.TierGenericVocabulary),
		},
		{
			name:  "business",
			level: types.UserLevelBusiness,
			want: []lexicon.Tier{
				lexicon.TierPhoneticLegality, lexicon.TierSilentSound, lexicon.TierComplexPlaceName,
				lexicon.TierComplexIwiName, lexicon.TierIdentity, lexicon.TierPlaceName,
				lexicon.TierTourismBusiness, lexicon.TierGenericVocabulary,
			},
		},
		{name: "expert", level: types.UserLevelExpert, want: lexicon.AllTiers},
		{name: "unset", level: "", want: lexicon.AllTiers},
		{name: "unknown", level: "wizard", want: lexicon.AllTiers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := loader.New(s, types.EngineContext{UserLevel: tt.level}, loader.WithLogger(discard()))
			if diff := cmp.Diff(tt.want, l.ActiveTiers()); diff != "" {
				t.Errorf("ActiveTiers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetDemoMode(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	tests := []struct {
		name  string
		ctx   types.EngineContext
		want  int
		clear bool
	}{
		{name: "unset", ctx: types.EngineContext{}, want: 90},
		{name: "general", ctx: types.EngineContext{DemoMode: types.DemoModeGeneral}, want: 90},
		{name: "curated", ctx: types.EngineContext{DemoMode: types.DemoModeCurated}, want: 97},
		{name: "advanced", ctx: types.EngineContext{DemoMode: types.DemoModeAdvanced}, want: 95},
		{name: "expert without mode", ctx: types.EngineContext{UserLevel: types.UserLevelExpert}, want: 95},
		{name: "expert in curated mode", ctx: types.EngineContext{UserLevel: types.UserLevelExpert, DemoMode: types.DemoModeCurated}, want: 97},
		{name: "unknown mode", ctx: types.EngineContext{DemoMode: "party"}, want: 90, clear: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := loader.New(s, tt.ctx, loader.WithLogger(discard()))
			if got := l.Threshold(); got != tt.want {
				t.Errorf("Threshold() = %d, want %d", got, tt.want)
			}
			if got := l.Context().ConfidenceThreshold; got != tt.want {
				t.Errorf("Context().ConfidenceThreshold = %d, want %d", got, tt.want)
			}
			if tt.clear && l.Context().DemoMode != "" {
				t.Errorf("Context().DemoMode = %q, want cleared", l.Context().DemoMode)
			}
		})
	}

	l := loader.New(s, types.EngineContext{}, loader.WithLogger(discard()))
	l.SetDemoMode(types.DemoModeCurated)
	if l.Threshold() != 97 {
		t.Errorf("after SetDemoMode(curated): Threshold() = %d, want 97", l.Threshold())
	}
	l.SetDemoMode(types.DemoModeGeneral)
	if l.Threshold() != 90 {
		t.Errorf("after SetDemoMode(general): Threshold() = %d, want 90", l.Threshold())
	}
}

func TestAdaptToRegion(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	ngaiTahu := lexicon.Entry{Category: lexicon.CategoryIwi, Region: lexicon.RegionAll}
	otautahi := lexicon.Entry{Category: lexicon.CategoryPlace, Region: lexicon.RegionCanterbury}
	tePuia := lexicon.Entry{Category: lexicon.CategoryBusiness, Region: lexicon.RegionRotorua}
	aotearoa := lexicon.Entry{Category: lexicon.CategoryPlace, Region: lexicon.RegionAll}

	l := loader.New(s, types.EngineContext{Region: lexicon.RegionCanterbury}, loader.WithLogger(discard()))
	for _, tc := range []struct {
		entry lexicon.Entry
		want  bool
	}{
		{ngaiTahu, true},
		{otautahi, true},
		{tePuia, false},
		{aotearoa, true},
	} {
		if got := l.InRegion(tc.entry); got != tc.want {
			t.Errorf("canterbury: InRegion(%+v) = %v, want %v", tc.entry, got, tc.want)
		}
	}

	l.AdaptToRegion(lexicon.RegionRotorua)
	if !l.InRegion(tePuia) || l.InRegion(otautahi) {
		t.Error("after AdaptToRegion(rotorua): region filter not updated")
	}

	l.AdaptToRegion(lexicon.RegionAll)
	if l.Region() != "" || !l.InRegion(tePuia) || !l.InRegion(otautahi) {
		t.Error("after AdaptToRegion(all): expected no region restriction")
	}
}

func TestUnknownValuesAreLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	l := loader.New(newStore(t), types.EngineContext{Region: "atlantis", DemoMode: "party", UserLevel: "wizard"}, loader.WithLogger(log))

	if l.Region() != "" {
		t.Errorf("Region() = %q, want unrestricted", l.Region())
	}
	if l.Threshold() != types.ThresholdGeneral {
		t.Errorf("Threshold() = %d, want %d", l.Threshold(), types.ThresholdGeneral)
	}
	out := buf.String()
	for _, want := range []string{"region=atlantis", "demo_mode=party", "user_level=wizard", "level=INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestLookupTiers(t *testing.T) {
	t.Parallel()

	l := loader.New(newStore(t), types.EngineContext{UserLevel: types.UserLevelTourist}, loader.WithLogger(discard()))
	want := []lexicon.Tier{
		lexicon.TierIdentity,
		lexicon.TierPlaceName,
		lexicon.TierTourismBusiness,
		lexicon.TierGenericVocabulary,
	}
	if diff := cmp.Diff(want, l.LookupTiers()); diff != "" {
		t.Errorf("LookupTiers mismatch (-want +got):\n%s", diff)
	}
}
