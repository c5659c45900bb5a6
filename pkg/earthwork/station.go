package earthwork

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatStation renders a position in feet as survey station notation:
// hundreds of feet, a "+", then the remaining feet zero-padded to two
// digits. 1100 becomes "11+00" and 1250 becomes "12+50". A fractional
// position is rounded to the nearest foot before the label is derived.
func FormatStation(position float64) string {
	feet := math.Round(position)
	major := int64(math.Floor(feet / 100))
	minor := int64(feet - float64(major)*100)
	return fmt.Sprintf("%d+%02d", major, minor)
}

// ParseStation converts station notation back to a position in feet:
// "12+50" becomes 1250. The minor part may carry decimals ("12+50.25")
// and must lie in [0, 100). Surrounding whitespace is ignored; signs
// inside the minor part are not.
func ParseStation(label string) (float64, error) {
	majorPart, minorPart, ok := strings.Cut(strings.TrimSpace(label), "+")
	if !ok {
		return 0, fmt.Errorf(`parsing station %q: missing "+" separator`, label)
	}
	major, err := strconv.ParseInt(majorPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing station %q: %w", label, err)
	}
	if minorPart == "" || minorPart[0] == '+' || minorPart[0] == '-' {
		return 0, fmt.Errorf("parsing station %q: malformed minor part %q", label, minorPart)
	}
	minor, err := strconv.ParseFloat(minorPart, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing station %q: %w", label, err)
	}
	// Written so NaN fails too; ParseFloat accepts "NaN".
	if !(0 <= minor && minor < 100) {
		return 0, fmt.Errorf("parsing station %q: minor part %v outside [0,100)", label, minor)
	}
	return float64(major)*100 + minor, nil
}
