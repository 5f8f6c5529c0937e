package ratio

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestApproximateKnownRatios(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		limiter int
		want    string
	}{
		{name: "widescreen", width: 16, height: 9, limiter: 100, want: "16x9"},
		{name: "standard", width: 4, height: 3, limiter: 100, want: "4x3"},
		{name: "full hd", width: 1920, height: 1080, limiter: 10, want: "16x9"},
		{name: "uhd", width: 3840, height: 2160, limiter: 16, want: "16x9"},
		{name: "vertical video", width: 1080, height: 1920, limiter: 16, want: "9x16"},
		{name: "vertical video coarse", width: 1080, height: 1920, limiter: 10, want: "5x9"},
		{name: "square", width: 512, height: 512, limiter: 10, want: "1x1"},
		{name: "dci scope", width: 2048, height: 858, limiter: 10, want: "19x8"},
		{name: "panorama", width: 1000, height: 1, limiter: 10, want: "1000x1"},
		{name: "sliver", width: 1, height: 1000, limiter: 10, want: "1x10"},
		{name: "reduces exact", width: 6000, height: 4000, limiter: 1000000, want: "3x2"},
		{name: "unreduced large", width: 1366, height: 768, limiter: 1000, want: "683x384"},
		{name: "laptop coarse", width: 1366, height: 768, limiter: 10, want: "16x9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Label(tt.width, tt.height, tt.limiter)
			if err != nil {
				t.Fatalf("Label returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Label(%d, %d, %d) = %q, want %q", tt.width, tt.height, tt.limiter, got, tt.want)
			}
		})
	}
}

func TestApproximateSquareAlwaysOneByOne(t *testing.T) {
	for _, n := range []int{1, 2, 7, 720, 4096, MaxDimension} {
		for _, limiter := range []int{1, 2, 10, 1000, math.MaxInt} {
			got, err := Label(n, n, limiter)
			if err != nil {
				t.Fatalf("Label(%d, %d, %d): %v", n, n, limiter, err)
			}
			if got != "1x1" {
				t.Fatalf("Label(%d, %d, %d) = %q, want 1x1", n, n, limiter, got)
			}
		}
	}
}

func TestApproximateLimiterOne(t *testing.T) {
	tests := []struct {
		width, height int
		want          string
	}{
		{16, 9, "2x1"},
		{4, 3, "1x1"},
		{3, 2, "1x1"},  // 1.5 ties between 1x1 and 2x1; lower wins
		{5, 2, "2x1"},  // 2.5 ties between 2x1 and 3x1; lower wins
		{21, 9, "2x1"}, // 2.33
		{9, 16, "1x1"},
		{1, 1000, "1x1"},
		{1000, 1, "1000x1"},
	}
	for _, tt := range tests {
		got, err := Label(tt.width, tt.height, 1)
		if err != nil {
			t.Fatalf("Label(%d, %d, 1): %v", tt.width, tt.height, err)
		}
		if got != tt.want {
			t.Fatalf("Label(%d, %d, 1) = %q, want %q", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestApproximateRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name                   string
		width, height, limiter int
	}{
		{"zero width", 0, 9, 10},
		{"zero height", 16, 0, 10},
		{"negative width", -16, 9, 10},
		{"zero limiter", 16, 9, 0},
		{"negative limiter", 16, 9, -1},
		{"oversized width", MaxDimension + 1, 9, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Approximate(tt.width, tt.height, tt.limiter)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestApproximateMatchesExhaustiveSearch(t *testing.T) {
	for w := 1; w <= 40; w++ {
		for h := 1; h <= 40; h++ {
			for limiter := 1; limiter <= 25; limiter++ {
				got, err := Approximate(w, h, limiter)
				if err != nil {
					t.Fatalf("Approximate(%d, %d, %d): %v", w, h, limiter, err)
				}
				want := bruteForce(w, h, limiter)
				if got != want {
					t.Fatalf("Approximate(%d, %d, %d) = %v, want %v", w, h, limiter, got, want)
				}
			}
		}
	}
}

func TestApproximateMonotonicInLimiter(t *testing.T) {
	pairs := [][2]int{{1920, 1080}, {1080, 1920}, {2048, 858}, {1366, 768}, {4000, 3000}, {1000, 999}, {333, 1000}, {7, 3}}
	for _, pair := range pairs {
		w, h := pair[0], pair[1]
		target := big.NewRat(int64(w), int64(h))
		var prev *big.Rat
		for limiter := 1; limiter <= 300; limiter++ {
			got, err := Approximate(w, h, limiter)
			if err != nil {
				t.Fatalf("Approximate(%d, %d, %d): %v", w, h, limiter, err)
			}
			if !got.Valid() {
				t.Fatalf("Approximate(%d, %d, %d) returned non-positive %v", w, h, limiter, got)
			}
			if got.Den > limiter {
				t.Fatalf("Approximate(%d, %d, %d) = %v exceeds limiter", w, h, limiter, got)
			}
			dist := distance(target, got)
			if prev != nil && dist.Cmp(prev) > 0 {
				t.Fatalf("limiter %d moved %dx%d farther: %v (%s > %s)", limiter, w, h, got, dist.FloatString(8), prev.FloatString(8))
			}
			prev = dist
		}
	}
}

func TestApproximateIsIdempotent(t *testing.T) {
	for _, pair := range [][2]int{{1920, 1080}, {1080, 1920}, {2048, 858}, {1366, 768}, {4032, 3024}} {
		for _, limiter := range []int{1, 3, 10, 50} {
			first, err := Approximate(pair[0], pair[1], limiter)
			if err != nil {
				t.Fatal(err)
			}
			second, err := Approximate(first.Num, first.Den, limiter)
			if err != nil {
				t.Fatal(err)
			}
			if first != second {
				t.Fatalf("relabeling %v with limiter %d produced %v", first, limiter, second)
			}
		}
	}
}

func TestApproximateHandlesExtremeInputsQuickly(t *testing.T) {
	got, err := Approximate(MaxDimension, 1, math.MaxInt)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Ratio{Num: MaxDimension, Den: 1}) {
		t.Fatalf("unexpected ratio %v", got)
	}
	got, err = Approximate(MaxDimension, MaxDimension-1, math.MaxInt)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Ratio{Num: MaxDimension, Den: MaxDimension - 1}) {
		t.Fatalf("unexpected ratio %v", got)
	}
	got, err = Approximate(1, MaxDimension, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Ratio{Num: 1, Den: 5}) {
		t.Fatalf("unexpected ratio %v", got)
	}
}

// bruteForce scans every positive fraction with den <= limiter near w/h.
func bruteForce(w, h, limiter int) Ratio {
	target := big.NewRat(int64(w), int64(h))
	var best Ratio
	var bestDist *big.Rat
	for den := 1; den <= limiter; den++ {
		floor := w * den / h
		for _, num := range []int{floor, floor + 1} {
			if num < 1 {
				continue
			}
			cand := Ratio{Num: num, Den: den}
			dist := distance(target, cand)
			switch {
			case bestDist == nil, dist.Cmp(bestDist) < 0:
				best, bestDist = cand, dist
			case dist.Cmp(bestDist) == 0:
				if cand.Den < best.Den || (cand.Den == best.Den && cand.Num < best.Num) {
					best = cand
				}
			}
		}
	}
	return best
}

func distance(target *big.Rat, r Ratio) *big.Rat {
	d := new(big.Rat).Sub(big.NewRat(int64(r.Num), int64(r.Den)), target)
	return d.Abs(d)
}
