package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

	separators = strings.NewReplacer(",", "", " ", "")
	feeNoise   = strings.NewReplacer("BDT", "", ",", "", " ", "")
)

// parseVolume reads a declared monthly volume. A "min-max" range yields its
// mean, an open-ended "min+" yields min and anything else is read as a plain
// number. Unparseable input is 0.
func parseVolume(value string) float64 {
	v := strings.TrimSpace(value)
	switch {
	case strings.Contains(v, "-"):
		lo, hi := parseBounds(v)
		return float64(lo+hi) / 2
	case strings.HasSuffix(v, "+"):
		return float64(parseInt(strings.TrimSuffix(v, "+")))
	default:
		return float64(parseInt(v))
	}
}

// parseBounds splits "min-max" into its integer bounds.
func parseBounds(value string) (int64, int64) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return parseInt(value), 0
	}
	return parseInt(parts[0]), parseInt(parts[1])
}

// parseRate reads a percentage such as "2.5%". Strings without a literal
// percent sign are not rates and count as 0.
func parseRate(rate string) float64 {
	if !strings.Contains(rate, "%") {
		return 0
	}
	return parseFloat(strings.ReplaceAll(rate, "%", ""))
}

// parseFee reads a monthly fee such as "1,500", "500 BDT" or "Free".
func parseFee(fee string) int64 {
	return parseInt(feeNoise.Replace(fee))
}

// parseInt reads the leading integer of s after dropping thousands
// separators and spaces.
func parseInt(s string) int64 {
	m := intPrefix.FindString(separators.Replace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(separators.Replace(s)))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
