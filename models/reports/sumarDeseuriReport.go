package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type SumarDeseuriRow struct {
	TipDeseu    string          `json:"tip_deseu"`
	CantitateKg decimal.Decimal `json:"cantitate_kg"`
	ValoareRon  decimal.Decimal `json:"valoare_ron"`
	AdaosRon    decimal.Decimal `json:"adaos_ron"`
}

// GetSumarDeseuri aggregates the monthly waste-type rollups. These come from
// the hand-maintained Sumar sheets, so they reflect the accountant's own
// numbers rather than a recomputation from the sale rows.
func GetSumarDeseuri(ctx context.Context, year int) ([]*SumarDeseuriRow, error) {
	db := config.GetDB()

	var results []*SumarDeseuriRow
	query := db.WithContext(ctx).Raw(`
			SELECT
				sd.tip_deseu,
				COALESCE(SUM(sd.cantitate_kg), 0) as cantitate_kg,
				COALESCE(SUM(sd.valoare_ron), 0) as valoare_ron,
				COALESCE(SUM(sd.adaos_ron), 0) as adaos_ron
			FROM sumar_deseuri AS sd
			WHERE (? = 0 OR sd.year = ?)
			GROUP BY sd.tip_deseu
			ORDER BY valoare_ron DESC;
		`, year, year)
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
