package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type TopFirma struct {
	FirmaId               int             `json:"firma_id"`
	Name                  string          `json:"name"`
	SaleCount             int             `json:"sale_count"`
	CantitateReceptionata decimal.Decimal `json:"cantitate_receptionata"`
	ValoareRon            decimal.Decimal `json:"valoare_ron"`
	AdaosFinal            decimal.Decimal `json:"adaos_final"`
}

func GetTopFirme(ctx context.Context, limit int, year int) ([]*TopFirma, error) {
	db := config.GetDB()

	var results []*TopFirma
	query := db.WithContext(ctx).Raw(`
			SELECT
				f.id as firma_id,
				f.name,
				COUNT(*) as sale_count,
				COALESCE(SUM(v.cantitate_receptionata), 0) as cantitate_receptionata,
				COALESCE(SUM(v.valoare_ron), 0) as valoare_ron,
				COALESCE(SUM(v.adaos_final), 0) as adaos_final
			FROM vanzari AS v
			JOIN firme AS f ON f.id = v.firma_id
			WHERE (? = 0 OR v.year = ?)
			GROUP BY f.id, f.name
			ORDER BY valoare_ron DESC
			LIMIT ?;
		`, year, year, limit)
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
