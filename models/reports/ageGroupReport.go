package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type AgeGroup struct {
	AgeGroup         string          `json:"age_group"`
	PartnerCount     int             `json:"partner_count"`
	TransactionCount int             `json:"transaction_count"`
	TotalGrossValue  decimal.Decimal `json:"total_gross_value"`
}

func GetAgeGroups(ctx context.Context) ([]*AgeGroup, error) {
	db := config.GetDB()

	var results []*AgeGroup
	err := db.WithContext(ctx).Raw(`
			SELECT
				CASE
					WHEN YEAR(CURDATE()) - p.birth_year < 25 THEN '18-24'
					WHEN YEAR(CURDATE()) - p.birth_year < 35 THEN '25-34'
					WHEN YEAR(CURDATE()) - p.birth_year < 45 THEN '35-44'
					WHEN YEAR(CURDATE()) - p.birth_year < 55 THEN '45-54'
					WHEN YEAR(CURDATE()) - p.birth_year < 65 THEN '55-64'
					ELSE '65+'
				END as age_group,
				COUNT(DISTINCT p.cnp) as partner_count,
				COUNT(t.document_id) as transaction_count,
				COALESCE(SUM(t.gross_value), 0) as total_gross_value
			FROM transactions AS t
			JOIN partners AS p ON p.cnp = t.cnp
			WHERE p.birth_year IS NOT NULL
			GROUP BY age_group
			ORDER BY age_group;
		`).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
