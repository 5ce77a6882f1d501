package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type MonthlySummary struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	TransactionCount int             `json:"transaction_count"`
	PartnerCount     int             `json:"partner_count"`
	TotalGrossValue  decimal.Decimal `json:"total_gross_value"`
	TotalNetPaid     decimal.Decimal `json:"total_net_paid"`
}

func GetMonthlySummary(ctx context.Context, year int) ([]*MonthlySummary, error) {
	db := config.GetDB()

	var results []*MonthlySummary
	query := db.WithContext(ctx).Raw(`
			SELECT
				YEAR(t.date) as year,
				MONTH(t.date) as month,
				COUNT(*) as transaction_count,
				COUNT(DISTINCT t.cnp) as partner_count,
				COALESCE(SUM(t.gross_value), 0) as total_gross_value,
				COALESCE(SUM(t.net_paid), 0) as total_net_paid
			FROM transactions AS t
			WHERE (? = 0 OR YEAR(t.date) = ?)
			GROUP BY YEAR(t.date), MONTH(t.date)
			ORDER BY year, month;
		`, year, year)
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
