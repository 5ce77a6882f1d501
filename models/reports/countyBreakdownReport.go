package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

// CountyBreakdown groups activity by the county decoded from the CNP, not
// the address county: the CNP one is always present and never misspelled.
type CountyBreakdown struct {
	County           string          `json:"county"`
	PartnerCount     int             `json:"partner_count"`
	TransactionCount int             `json:"transaction_count"`
	TotalGrossValue  decimal.Decimal `json:"total_gross_value"`
}

func GetCountyBreakdown(ctx context.Context, year int) ([]*CountyBreakdown, error) {
	db := config.GetDB()

	var results []*CountyBreakdown
	query := db.WithContext(ctx).Raw(`
			SELECT
				COALESCE(p.county_from_cnp, 'Necunoscut') as county,
				COUNT(DISTINCT p.cnp) as partner_count,
				COUNT(t.document_id) as transaction_count,
				COALESCE(SUM(t.gross_value), 0) as total_gross_value
			FROM transactions AS t
			JOIN partners AS p ON p.cnp = t.cnp
			WHERE (? = 0 OR YEAR(t.date) = ?)
			GROUP BY county
			ORDER BY total_gross_value DESC;
		`, year, year)
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
