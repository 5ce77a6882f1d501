package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type YearlySummary struct {
	Year             int             `json:"year"`
	TransactionCount int             `json:"transaction_count"`
	PartnerCount     int             `json:"partner_count"`
	TotalGrossValue  decimal.Decimal `json:"total_gross_value"`
	TotalNetPaid     decimal.Decimal `json:"total_net_paid"`
	TotalWeightKg    decimal.Decimal `json:"total_weight_kg"`
}

func GetYearlySummary(ctx context.Context) ([]*YearlySummary, error) {
	db := config.GetDB()

	var results []*YearlySummary
	err := db.WithContext(ctx).Raw(`
			SELECT
				YEAR(t.date) as year,
				COUNT(*) as transaction_count,
				COUNT(DISTINCT t.cnp) as partner_count,
				COALESCE(SUM(t.gross_value), 0) as total_gross_value,
				COALESCE(SUM(t.net_paid), 0) as total_net_paid,
				COALESCE(SUM(ti.weight), 0) as total_weight_kg
			FROM transactions AS t
			LEFT JOIN (
				SELECT document_id, SUM(weight_kg) as weight
				FROM transaction_items
				GROUP BY document_id
			) AS ti ON ti.document_id = t.document_id
			GROUP BY YEAR(t.date)
			ORDER BY year;
		`).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
