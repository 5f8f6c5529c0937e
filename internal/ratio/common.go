package ratio

// Canonical pairs a well-known ratio with a display name.
type Canonical struct {
	Ratio Ratio
	Name  string
}

// Common lists well-known aspect ratios, widest first. Entries are in
// lowest terms so they compare equal to Approximate results.
var Common = []Canonical{
	{Ratio{32, 9}, "super ultrawide"},
	{Ratio{12, 5}, "anamorphic scope"},
	{Ratio{7, 3}, "ultrawide (21:9)"},
	{Ratio{2, 1}, "univisium"},
	{Ratio{37, 20}, "flat"},
	{Ratio{16, 9}, "widescreen"},
	{Ratio{5, 3}, "wide European"},
	{Ratio{8, 5}, "widescreen (16:10)"},
	{Ratio{3, 2}, "35mm still"},
	{Ratio{4, 3}, "standard"},
	{Ratio{5, 4}, "large format"},
	{Ratio{1, 1}, "square"},
	{Ratio{4, 5}, "portrait (4:5)"},
	{Ratio{3, 4}, "portrait (3:4)"},
	{Ratio{2, 3}, "portrait (2:3)"},
	{Ratio{9, 16}, "vertical video"},
	{Ratio{3, 7}, "vertical ultrawide (9:21)"},
}

// Describe returns the display name of r when it is a common ratio.
func Describe(r Ratio) (string, bool) {
	for _, c := range Common {
		if c.Ratio == r {
			return c.Name, true
		}
	}
	return "", false
}
