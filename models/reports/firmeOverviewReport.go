package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type FirmeOverview struct {
	Year                  int             `json:"year"`
	Month                 int             `json:"month"`
	SaleCount             int             `json:"sale_count"`
	FirmaCount            int             `json:"firma_count"`
	CantitateReceptionata decimal.Decimal `json:"cantitate_receptionata"`
	ValoareRon            decimal.Decimal `json:"valoare_ron"`
	AdaosFinal            decimal.Decimal `json:"adaos_final"`
	TransportRon          decimal.Decimal `json:"transport_ron"`
}

// GetFirmeOverview rolls the aviz-level sales up per month. Transport costs
// come from the dedicated transport table, not the per-sale column, which is
// only sparsely filled in the sources.
func GetFirmeOverview(ctx context.Context, year int) ([]*FirmeOverview, error) {
	db := config.GetDB()

	var results []*FirmeOverview
	query := db.WithContext(ctx).Raw(`
			SELECT
				v.year,
				v.month,
				COUNT(*) as sale_count,
				COUNT(DISTINCT v.firma_id) as firma_count,
				COALESCE(SUM(v.cantitate_receptionata), 0) as cantitate_receptionata,
				COALESCE(SUM(v.valoare_ron), 0) as valoare_ron,
				COALESCE(SUM(v.adaos_final), 0) as adaos_final,
				COALESCE(tr.total, 0) as transport_ron
			FROM vanzari AS v
			LEFT JOIN (
				SELECT year, month, SUM(total) as total
				FROM transporturi
				GROUP BY year, month
			) AS tr ON tr.year = v.year AND tr.month = v.month
			WHERE (? = 0 OR v.year = ?)
			GROUP BY v.year, v.month, tr.total
			ORDER BY v.year, v.month;
		`, year, year)
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
