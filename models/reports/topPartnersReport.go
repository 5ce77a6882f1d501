package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type TopPartner struct {
	Cnp              string          `json:"cnp"`
	Name             *string         `json:"name"`
	County           *string         `json:"county"`
	TransactionCount int             `json:"transaction_count"`
	TotalGrossValue  decimal.Decimal `json:"total_gross_value"`
	TotalWeightKg    decimal.Decimal `json:"total_weight_kg"`
}

func GetTopPartners(ctx context.Context, limit int, year int) ([]*TopPartner, error) {
	db := config.GetDB()

	var results []*TopPartner
	query := db.WithContext(ctx).Raw(`
			SELECT
				p.cnp,
				p.name,
				p.county_from_cnp as county,
				COUNT(t.document_id) as transaction_count,
				COALESCE(SUM(t.gross_value), 0) as total_gross_value,
				COALESCE(SUM(ti.weight), 0) as total_weight_kg
			FROM transactions AS t
			JOIN partners AS p ON p.cnp = t.cnp
			LEFT JOIN (
				SELECT document_id, SUM(weight_kg) as weight
				FROM transaction_items
				GROUP BY document_id
			) AS ti ON ti.document_id = t.document_id
			WHERE (? = 0 OR YEAR(t.date) = ?)
			GROUP BY p.cnp, p.name, p.county_from_cnp
			ORDER BY total_gross_value DESC
			LIMIT ?;
		`, year, year, limit)
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
