package importer

import (
	"regexp"
	"strings"

	"github.com/pajudata/scrapyard_backend/normalize"
	"github.com/shopspring/decimal"
)

// WasteHeader is the classified form of one waste column header such as
// "Deseu Cupru (36.00)": coarse category, cleaned subtype label, and the
// unit price when the header carries one. Price stays nil when absent:
// "no price" must never collapse into "price zero".
type WasteHeader struct {
	Category string
	Name     string
	Price    *decimal.Decimal
}

var priceSuffix = regexp.MustCompile(`\s*\(([0-9.]+)\)\s*$`)

// categoryRule matches when every substring in all is present and none of
// the substrings in none are. Matching is against the upper-cased label.
type categoryRule struct {
	all      []string
	none     []string
	category string
}

// categoryRules is evaluated strictly top-down; order is load-bearing.
// Multi-keyword rules must sit above their generic fallbacks or specific
// subtypes collapse into the generic bucket (e.g. aluminum-copper radiators
// into plain aluminum).
var categoryRules = []categoryRule{
	{all: []string{"ACUMULATOR"}, category: "Acumulatori"},
	{all: []string{"FIER"}, category: "Fier"},
	{all: []string{"CABLU", "CUPRU"}, category: "Cablu Cupru"},
	{all: []string{"CABLU", "ALUMINIU"}, category: "Cablu Aluminiu"},
	{all: []string{"ALUMINIU", "RADIATOR", "CUPRU"}, category: "Aluminiu Radiator Cupru"},
	{all: []string{"CUPRU"}, none: []string{"CABLU", "ALUMINIU"}, category: "Cupru"},
	{all: []string{"ALAMA"}, category: "Alama"},
	{all: []string{"ALUMINIU"}, category: "Aluminiu"},
	{all: []string{"INOX"}, category: "Inox"},
	{all: []string{"PLUMB"}, category: "Plumb"},
	{all: []string{"ZINC"}, category: "Zinc"},
	{all: []string{"ZAMAC"}, category: "Zamac"},
	{all: []string{"DEEE"}, category: "DEEE"},
	{all: []string{"PLACI ELECTRONICE"}, category: "DEEE"},
	{all: []string{"CARTON"}, category: "Carton"},
	{all: []string{"HARTIE"}, category: "Carton"},
	{all: []string{"STICLA"}, category: "Sticla"},
	{all: []string{"PLASTIC"}, category: "Plastic"},
	{all: []string{"PET"}, category: "Plastic"},
	{all: []string{"FOLIE"}, category: "Plastic"},
	{all: []string{"NEFEROS"}, category: "Neferos Mix"},
}

// catchAllCategory buckets anything the rule list does not recognize.
const catchAllCategory = "Altele"

// IsWasteColumn reports whether a header cell belongs to the waste-weight
// block. The exports label every waste column "Deseu ..."/"Deseuri ...".
func IsWasteColumn(header string) bool {
	return strings.Contains(header, "Deseu") || strings.Contains(header, "Deseuri")
}

// ParseWasteHeader extracts the unit price, fixes label typos and
// classifies the label into a category.
func ParseWasteHeader(header string) WasteHeader {
	var price *decimal.Decimal
	if m := priceSuffix.FindStringSubmatch(header); m != nil {
		if p, err := decimal.NewFromString(m[1]); err == nil {
			price = &p
		}
	}

	name := strings.TrimSpace(priceSuffix.ReplaceAllString(header, ""))
	name = normalize.WasteLabel(name)

	return WasteHeader{
		Category: classifyLabel(name),
		Name:     name,
		Price:    price,
	}
}

func classifyLabel(name string) string {
	upper := strings.ToUpper(name)
	for _, rule := range categoryRules {
		if rule.matches(upper) {
			return rule.category
		}
	}
	return catchAllCategory
}

func (r categoryRule) matches(upper string) bool {
	for _, kw := range r.all {
		if !strings.Contains(upper, kw) {
			return false
		}
	}
	for _, kw := range r.none {
		if strings.Contains(upper, kw) {
			return false
		}
	}
	return true
}
