package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a spreadsheet cell to a decimal. The exports mix
// numeric cells with hand-typed text using comma as decimal separator.
// The bool result makes the skip decision explicit at the call site; there
// is deliberately no "default to zero" path.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

var dateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
}

// ParseCellDate parses the date formats seen across the exports. Values
// with a time component ("2024/03/05 10:30") are truncated to the date.
func ParseCellDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// cellAt returns the trimmed cell at index i, tolerating the ragged rows
// excelize produces (trailing empty cells are simply not present).
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
