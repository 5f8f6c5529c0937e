package ratio

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrInvalidArgument marks non-positive or oversized inputs.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxDimension bounds width and height so every cross product stays within
// 64 bits.
const MaxDimension = math.MaxInt32

// fraction is a Stern-Brocot node; den == 0 encodes the 1/0 sentinel.
type fraction struct {
	num uint64
	den uint64
}

// Approximate returns the fraction closest to width/height whose denominator
// does not exceed limiter.
//
// With limiter == 1 the result is always Nx1 where N is the positive integer
// nearest to width/height (ties go to the lower integer), so square and
// portrait inputs collapse to 1x1.
func Approximate(width, height, limiter int) (Ratio, error) {
	if width <= 0 || height <= 0 {
		return Ratio{}, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return Ratio{}, fmt.Errorf("%w: dimensions %dx%d exceed %d", ErrInvalidArgument, width, height, MaxDimension)
	}
	if limiter <= 0 {
		return Ratio{}, fmt.Errorf("%w: limiter %d must be positive", ErrInvalidArgument, limiter)
	}

	w, h, limit := uint64(width), uint64(height), uint64(limiter)
	lower := fraction{0, 1}
	upper := fraction{1, 0}

	for {
		med := fraction{lower.num + upper.num, lower.den + upper.den}
		if med.den > limit {
			break
		}
		left, right := w*med.den, h*med.num
		if left == right {
			return med.ratio(), nil
		}

		// Gaps to the target, scaled by h*den: both stay positive while
		// lower < w/h < upper.
		below := w*lower.den - h*lower.num
		above := h*upper.num - w*upper.den

		if left > right {
			// Mediant is below the target: step lower towards upper as far
			// as the target and the limiter allow.
			if below%above == 0 {
				k := below / above
				if upper.den == 0 || k <= (limit-lower.den)/upper.den {
					return lower.plus(upper, k).ratio(), nil
				}
			}
			k := (below - 1) / above
			if upper.den != 0 {
				k = min(k, (limit-lower.den)/upper.den)
			}
			lower = lower.plus(upper, k)
			continue
		}

		if above%below == 0 {
			k := above / below
			if k <= (limit-upper.den)/lower.den {
				return upper.plus(lower, k).ratio(), nil
			}
		}
		k := min((above-1)/below, (limit-upper.den)/lower.den)
		upper = upper.plus(lower, k)
	}

	return closer(w, h, lower, upper).ratio(), nil
}

// Label is Approximate rendered as a folder name.
func Label(width, height, limiter int) (string, error) {
	r, err := Approximate(width, height, limiter)
	if err != nil {
		return "", err
	}
	return r.Label(), nil
}

func (f fraction) plus(step fraction, k uint64) fraction {
	return fraction{f.num + k*step.num, f.den + k*step.den}
}

func (f fraction) ratio() Ratio {
	return Ratio{Num: int(f.num), Den: int(f.den)}
}

// closer picks between two Farey neighbours bracketing w/h. Sentinels with a
// zero component lose to any positive fraction.
func closer(w, h uint64, lower, upper fraction) fraction {
	if upper.den == 0 {
		return lower
	}
	if lower.num == 0 {
		return upper
	}

	// r - lower = below / (h*lower.den), upper - r = above / (h*upper.den).
	below := w*lower.den - h*lower.num
	above := h*upper.num - w*upper.den
	switch compare128(below, upper.den, above, lower.den) {
	case -1:
		return lower
	case 1:
		return upper
	}
	if upper.den < lower.den {
		return upper
	}
	return lower
}

// compare128 compares a*b with c*d without overflow.
func compare128(a, b, c, d uint64) int {
	hi1, lo1 := bits.Mul64(a, b)
	hi2, lo2 := bits.Mul64(c, d)
	switch {
	case hi1 < hi2:
		return -1
	case hi1 > hi2:
		return 1
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return 1
	}
	return 0
}
