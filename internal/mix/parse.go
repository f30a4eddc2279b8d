package mix

import (
	"strconv"
	"strings"
	"time"
)

// missingToken is the literal string some upstream exporters emit for a
// missing cell. It is treated the same as an empty cell everywhere.
const missingToken = "nan"

func isMissing(s string) bool {
	return s == "" || strings.EqualFold(s, missingToken)
}

// ParseMoney converts a raw cell value into a signed float. It is total:
// any value that cannot be read as a number comes back as 0. Thousands
// separators and dollar signs are stripped, and accounting-style
// parentheses mark negatives, so "$1,200.00" -> 1200 and "(50.00)" -> -50.
func ParseMoney(val string) float64 {
	s := strings.TrimSpace(val)
	if isMissing(s) {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.TrimSpace(s)
	if strings.Contains(s, "(") && strings.Contains(s, ")") {
		s = strings.ReplaceAll(s, "(", "")
		s = strings.ReplaceAll(s, ")", "")
		s = "-" + s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// ParseDate parses a timestamp cell into UTC. Unparseable values come back
// as the zero time, which the aggregation stages treat as "date unknown".
func ParseDate(val string) time.Time {
	s := strings.TrimSpace(val)
	if isMissing(s) {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// ParseQuantity reads a line-item quantity, defaulting to 1 when the cell is
// missing or unreadable. Fractional quantities are truncated.
func ParseQuantity(val string) int {
	s := strings.TrimSpace(val)
	if isMissing(s) {
		return 1
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 1
	}
	return int(f)
}
