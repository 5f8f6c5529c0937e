package ratio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ratio is a width:height fraction. Values produced by Approximate are always
// in lowest terms with positive components.
type Ratio struct {
	Num int
	Den int
}

// Label renders the ratio as a folder name, e.g. "16x9".
func (r Ratio) Label() string {
	return strconv.Itoa(r.Num) + "x" + strconv.Itoa(r.Den)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

// Float returns the ratio as a float64, or +Inf when the denominator is zero.
func (r Ratio) Float() float64 {
	if r.Den == 0 {
		return math.Inf(1)
	}
	return float64(r.Num) / float64(r.Den)
}

// Distance reports |num/den - width/height|.
func (r Ratio) Distance(width, height int) float64 {
	if height == 0 {
		return math.Inf(1)
	}
	return math.Abs(r.Float() - float64(width)/float64(height))
}

// Valid reports whether both components are positive.
func (r Ratio) Valid() bool {
	return r.Num > 0 && r.Den > 0
}

// ParseLabel parses a folder name produced by Label. Only lower-case
// separators with positive decimal components are accepted.
func ParseLabel(label string) (Ratio, bool) {
	num, den, ok := strings.Cut(label, "x")
	if !ok {
		return Ratio{}, false
	}
	n, err := parsePositive(num)
	if err != nil {
		return Ratio{}, false
	}
	d, err := parsePositive(den)
	if err != nil {
		return Ratio{}, false
	}
	return Ratio{Num: n, Den: d}, true
}

func parsePositive(value string) (int, error) {
	if value == "" || value[0] == '+' || value[0] == '-' {
		return 0, fmt.Errorf("invalid component %q", value)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("component %d not positive", n)
	}
	return n, nil
}
