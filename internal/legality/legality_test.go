package legality_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrWong99/kupu/internal/legality"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

func newDetector(t *testing.T) *legality.Detector {
	t.Helper()
	s, err := lexicon.NewBuiltinStore()
	if err != nil {
		t.Fatalf("NewBuiltinStore: %v", err)
	}
	return legality.New(s)
}

func TestScan_RuleMatch(t *testing.T) {
	t.Parallel()

	d := newDetector(t)
	text := "nazi waheo people near rotorua"
	got := d.Scan(text)
	if len(got) != 1 {
		t.Fatalf("Scan(%q): got %d findings, want 1: %+v", text, len(got), got)
	}
	f := got[0]
	if f.Start != 0 || f.End != 2 {
		t.Errorf("finding tokens = [%d, %d), want [0, 2)", f.Start, f.End)
	}
	if f.Span != (types.Span{Start: 0, End: 10}) || f.Text != "nazi waheo" {
		t.Errorf("finding span = %+v %q, want {0 10} %q", f.Span, f.Text, "nazi waheo")
	}
	if f.Entry.Correct != "Ngāti Wāhiao" || !f.Rule || f.Confidence != 95 {
		t.Errorf("finding = %q rule=%v conf=%d, want Ngāti Wāhiao rule=true conf=95", f.Entry.Correct, f.Rule, f.Confidence)
	}
	if string(f.Letters) != "z" {
		t.Errorf("finding letters = %q, want %q", string(f.Letters), "z")
	}

	want := `illegal letter "z" in cultural context: "nazi waheo" (did you mean "Ngāti Wāhiao"?)`
	if msg := f.Message(); msg != want {
		t.Errorf("Message() = %q, want %q", msg, want)
	}
}

func TestScan_ContextRules(t *testing.T) {
	t.Parallel()

	d := newDetector(t)

	tests := []struct {
		name    string
		text    string
		want    string
		wantHit bool
	}{
		{name: "trigger after", text: "the nazi iwi", want: "Ngāti", wantHit: true},
		{name: "trigger before", text: "marae gnati", want: "Ngāti", wantHit: true},
		{name: "no trigger", text: "a nazi party", wantHit: false},
		{name: "whole text", text: "nazi", want: "Ngāti", wantHit: true},
		{name: "whole text with padding", text: "  Knotty. ", want: "Ngāti", wantHit: true},
		{name: "rule without context requirement", text: "fanau day", want: "whānau", wantHit: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := d.Scan(tt.text)
			if !tt.wantHit {
				if len(got) != 0 {
					t.Fatalf("Scan(%q) = %+v, want no findings", tt.text, got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("Scan(%q): got %d findings, want 1", tt.text, len(got))
			}
			if got[0].Entry.Correct != tt.want {
				t.Errorf("Scan(%q) replacement = %q, want %q", tt.text, got[0].Entry.Correct, tt.want)
			}
		})
	}
}

func TestScan_NearestTerm(t *testing.T) {
	t.Parallel()

	d := newDetector(t)
	got := d.Scan("wahiay iwi")
	if len(got) != 1 {
		t.Fatalf("Scan: got %d findings, want 1", len(got))
	}
	f := got[0]
	if f.Rule {
		t.Error("finding.Rule = true, want a nearest-term finding")
	}
	if f.Entry.Correct != "Wāhiao" {
		t.Errorf("nearest term = %q, want Wāhiao", f.Entry.Correct)
	}
	if f.Confidence < 70 || f.Confidence >= 80 {
		t.Errorf("nearest-term confidence = %d, want in [70, 80)", f.Confidence)
	}
}

func TestScan_ReportsTokensWithoutReplacement(t *testing.T) {
	t.Parallel()

	d := newDetector(t)
	tests := []struct {
		text    string
		want    string
		letters []rune
	}{
		{text: "marae vlorx", want: "vlorx", letters: []rune{'v', 'l', 'x'}},
		{text: "the iwi zqxjb gathered", want: "zqxjb", letters: []rune{'z', 'q', 'x', 'j', 'b'}},
		{text: "whakapapa jqz", want: "jqz", letters: []rune{'j', 'q', 'z'}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got := d.Scan(tt.text)
			if len(got) != 1 {
				t.Fatalf("Scan(%q) = %+v, want one finding", tt.text, got)
			}
			f := got[0]
			if f.Text != tt.want {
				t.Errorf("finding text = %q, want %q", f.Text, tt.want)
			}
			if diff := cmp.Diff(tt.letters, f.Letters); diff != "" {
				t.Errorf("letters mismatch (-want +got):\n%s", diff)
			}
			if f.HasReplacement() || f.Confidence != 0 || f.Rule {
				t.Errorf("finding = %+v, want no replacement", f)
			}
			if strings.Contains(f.Message(), "did you mean") {
				t.Errorf("Message() = %q, want no suggestion", f.Message())
			}
		})
	}
}

func TestScan_IgnoresEnglish(t *testing.T) {
	t.Parallel()

	d := newDetector(t)
	for _, text := range []string{
		"",
		"Maori village near christchurch",
		"the village marae",
		"people of the iwi",
		"a walk around rotorua",
		"Ngāti Wāhiao people near Rotorua",
		"we stayed at the marae with friends",
	} {
		if got := d.Scan(text); len(got) != 0 {
			t.Errorf("Scan(%q) = %+v, want no findings", text, got)
		}
	}
}
