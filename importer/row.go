package importer

import (
	"context"
	"time"

	"github.com/pajudata/scrapyard_backend/cnp"
	"github.com/pajudata/scrapyard_backend/models"
	"github.com/pajudata/scrapyard_backend/normalize"
	"github.com/shopspring/decimal"
)

// WasteTypeResolver resolves a classified waste header to a waste type id,
// creating the dimension row on first sight.
type WasteTypeResolver interface {
	ResolveWasteType(ctx context.Context, h WasteHeader) (int, error)
}

// PartnerObservation is the partner identity seen on one row. Cnp is empty
// when the cell did not hold a structurally valid CNP; the name then acts as
// a weak in-run identity only (see DESIGN.md).
type PartnerObservation struct {
	Cnp  string
	Name string
}

// SkipReason says why a data row produced no transaction. Skips are normal
// operation, not errors: totals rows, empty lines and hand-edit leftovers
// are all expected in the exports.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipEmptyName
	SkipMissingDocumentId
	SkipUnparsableValue
	SkipNonPositiveValue
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipEmptyName:
		return "empty name"
	case SkipMissingDocumentId:
		return "missing document id"
	case SkipUnparsableValue:
		return "unparsable value"
	case SkipNonPositiveValue:
		return "non-positive value"
	}
	return "unknown"
}

// RowResult is everything one data row contributes to the import.
type RowResult struct {
	Transaction *models.Transaction
	Items       []models.TransactionItem
	Observation PartnerObservation
}

// ExtractRow builds the typed records for one data row using the detected
// layout. Row-level problems return a SkipReason and never an error; the
// only error path is waste-type resolution (a store failure).
func ExtractRow(ctx context.Context, layout Layout, headers []string, row []string, date time.Time, resolver WasteTypeResolver) (*RowResult, SkipReason, error) {
	name, ok := normalize.Clean(cellAt(row, 0))
	if !ok {
		return nil, SkipEmptyName, nil
	}

	docId, ok := normalize.Clean(cellAt(row, layout.DocIDCol))
	if !ok {
		return nil, SkipMissingDocumentId, nil
	}

	gross, ok := ParseAmount(cellAt(row, layout.ValueCol))
	if !ok {
		return nil, SkipUnparsableValue, nil
	}
	if !gross.IsPositive() {
		return nil, SkipNonPositiveValue, nil
	}

	cnpKey, _ := cnp.Clean(cellAt(row, 1))

	trans := &models.Transaction{
		DocumentId: docId,
		Date:       date,
		GrossValue: gross,
		EnvTax:     amountOrZero(cellAt(row, layout.ValueCol+1)),
		IncomeTax:  amountOrZero(cellAt(row, layout.ValueCol+2)),
		NetPaid:    amountOrZero(cellAt(row, layout.PaidCol)),
	}
	if cnpKey != "" {
		trans.Cnp = &cnpKey
	}
	if layout.PaymentCol != nil {
		if v, ok := normalize.Clean(cellAt(row, *layout.PaymentCol)); ok {
			trans.PaymentType = &v
		}
	}
	if layout.IbanCol != nil {
		if v, ok := normalize.Clean(cellAt(row, *layout.IbanCol)); ok {
			trans.Iban = &v
		}
	}

	var items []models.TransactionItem
	for col := layout.WasteStart; col < len(headers); col++ {
		header := headers[col]
		if !IsWasteColumn(header) {
			continue
		}
		weight, ok := ParseAmount(cellAt(row, col))
		if !ok || !weight.IsPositive() {
			continue
		}

		wh := ParseWasteHeader(header)
		wasteTypeId, err := resolver.ResolveWasteType(ctx, wh)
		if err != nil {
			return nil, SkipNone, err
		}

		value := decimal.Zero
		if wh.Price != nil {
			value = wh.Price.Mul(weight).Round(2)
		}
		items = append(items, models.TransactionItem{
			DocumentId:  docId,
			WasteTypeId: wasteTypeId,
			PricePerKg:  wh.Price,
			WeightKg:    weight,
			Value:       value,
		})
	}

	return &RowResult{
		Transaction: trans,
		Items:       items,
		Observation: PartnerObservation{Cnp: cnpKey, Name: name},
	}, SkipNone, nil
}

func amountOrZero(s string) decimal.Decimal {
	d, ok := ParseAmount(s)
	if !ok {
		return decimal.Zero
	}
	return d
}
