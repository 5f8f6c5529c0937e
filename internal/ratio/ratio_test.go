package ratio

import (
	"math"
	"testing"
)

func TestParseLabel(t *testing.T) {
	valid := map[string]Ratio{
		"16x9":   {16, 9},
		"1x1":    {1, 1},
		"9x16":   {9, 16},
		"1000x1": {1000, 1},
	}
	for label, want := range valid {
		got, ok := ParseLabel(label)
		if !ok {
			t.Fatalf("ParseLabel(%q) rejected a valid label", label)
		}
		if got != want {
			t.Fatalf("ParseLabel(%q) = %v, want %v", label, got, want)
		}
		if got.Label() != label {
			t.Fatalf("round trip of %q produced %q", label, got.Label())
		}
	}

	for _, label := range []string{"", "16", "16X9", "0x9", "16x0", "-1x2", "+1x2", "axb", "16x9x2", "16x", "x9", "photos"} {
		if _, ok := ParseLabel(label); ok {
			t.Fatalf("ParseLabel(%q) accepted an invalid label", label)
		}
	}
}

func TestRatioFloatAndDistance(t *testing.T) {
	r := Ratio{Num: 16, Den: 9}
	if got := r.Distance(1920, 1080); got != 0 {
		t.Fatalf("expected zero distance, got %v", got)
	}
	if !math.IsInf(Ratio{Num: 1}.Float(), 1) {
		t.Fatal("expected +Inf for zero denominator")
	}
	if r.String() != "16:9" {
		t.Fatalf("unexpected String: %q", r.String())
	}
}

func TestDescribe(t *testing.T) {
	if name, ok := Describe(Ratio{16, 9}); !ok || name != "widescreen" {
		t.Fatalf("Describe(16x9) = %q, %v", name, ok)
	}
	if name, ok := Describe(Ratio{7, 3}); !ok || name != "ultrawide (21:9)" {
		t.Fatalf("Describe(7x3) = %q, %v", name, ok)
	}
	if r, _ := Approximate(2520, 1080, 10); r != (Ratio{7, 3}) {
		t.Fatalf("expected 2520x1080 to reduce to 7x3, got %v", r)
	}
	if _, ok := Describe(Ratio{19, 8}); ok {
		t.Fatal("expected 19x8 to be unnamed")
	}
	for _, c := range Common {
		got, err := Approximate(c.Ratio.Num, c.Ratio.Den, 100)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.Ratio {
			t.Fatalf("common ratio %v is not in lowest terms (got %v)", c.Ratio, got)
		}
	}
	for i := 1; i < len(Common); i++ {
		if Common[i].Ratio.Float() >= Common[i-1].Ratio.Float() {
			t.Fatalf("Common is not ordered widest first at %v", Common[i].Ratio)
		}
	}
}
