package importer

import (
	"strings"

	"github.com/pajudata/scrapyard_backend/utils"
)

// Layout maps the column positions of one daily-file variant. The export
// layout changed twice over the data's lifetime; everything downstream of
// DetectLayout works only through these named offsets and never branches on
// the variant itself.
//
// Old layout (2024 Jan-Aug):
//
//	Nume, CNP, Nr.APP, Valoare, Fond mediu, Impozit, Achitat, waste...
//
// New layout A (Sept 2024 onward):
//
//	Nume, CNP, Nr.APP, Tip plata, Cont IBAN, Valoare, Fond, Impozit, Achitat, waste...
//
// New layout B (some files swap Nr.APP behind the payment columns):
//
//	Nume, CNP, Tip plata, Cont IBAN, Nr.APP, Valoare, Fond, Impozit, Achitat, waste...
type Layout struct {
	Name       string
	DocIDCol   int
	PaymentCol *int
	IbanCol    *int
	ValueCol   int
	PaidCol    int
	WasteStart int
}

func oldLayout() Layout {
	return Layout{Name: "old", DocIDCol: 2, ValueCol: 3, PaidCol: 6, WasteStart: 7}
}

// DetectLayout classifies a header row by locating marker columns. It never
// fails: headers without any recognized marker degrade to the oldest known
// layout, and the value-sanity checks in the extractor absorb the fallout of
// a wrong guess.
func DetectLayout(headers []string) Layout {
	tipPlataCol := -1
	nrAppCol := -1
	valoareCol := -1
	ibanCol := -1

	for i, h := range headers {
		hl := strings.ToLower(strings.TrimSpace(h))
		if hl == "" {
			continue
		}
		switch {
		case strings.Contains(hl, "tip plata"):
			tipPlataCol = i
		case strings.Contains(hl, "nr. app") || strings.Contains(hl, "nr.app"):
			nrAppCol = i
		case hl == "valoare":
			valoareCol = i
		case strings.Contains(hl, "iban") || strings.Contains(hl, "cont"):
			ibanCol = i
		}
	}

	// No payment-type column anywhere: the old single-block layout.
	if tipPlataCol < 0 {
		return oldLayout()
	}

	layout := Layout{Name: "new", PaymentCol: utils.Ptr(tipPlataCol)}
	if ibanCol >= 0 {
		layout.IbanCol = utils.Ptr(ibanCol)
	}

	if nrAppCol >= 0 && valoareCol >= 0 {
		layout.DocIDCol = nrAppCol
		layout.ValueCol = valoareCol
		// Fond mediu and Impozit sit between Valoare and Achitat.
		layout.PaidCol = valoareCol + 3
		layout.WasteStart = valoareCol + 4
		return layout
	}

	// Markers partially missing: fall back to the two known fixed shapes.
	if tipPlataCol == 2 {
		layout.DocIDCol = 4
	} else {
		layout.DocIDCol = 2
	}
	if layout.IbanCol == nil {
		layout.IbanCol = utils.Ptr(tipPlataCol + 1)
	}
	layout.ValueCol = 5
	layout.PaidCol = 8
	layout.WasteStart = 9
	return layout
}
