package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type WasteCategorySummary struct {
	Category      string          `json:"category"`
	ItemCount     int             `json:"item_count"`
	TotalWeightKg decimal.Decimal `json:"total_weight_kg"`
	TotalValue    decimal.Decimal `json:"total_value"`
	AvgPricePerKg decimal.Decimal `json:"avg_price_per_kg"`
}

func GetWasteCategorySummary(ctx context.Context, year int) ([]*WasteCategorySummary, error) {
	db := config.GetDB()

	var results []*WasteCategorySummary
	query := db.WithContext(ctx).Raw(`
			SELECT
				wc.name as category,
				COUNT(*) as item_count,
				COALESCE(SUM(ti.weight_kg), 0) as total_weight_kg,
				COALESCE(SUM(ti.value), 0) as total_value,
				COALESCE(AVG(ti.price_per_kg), 0) as avg_price_per_kg
			FROM transaction_items AS ti
			JOIN waste_types AS wt ON wt.id = ti.waste_type_id
			JOIN waste_categories AS wc ON wc.id = wt.category_id
			JOIN transactions AS t ON t.document_id = ti.document_id
			WHERE (? = 0 OR YEAR(t.date) = ?)
			GROUP BY wc.name
			ORDER BY total_value DESC;
		`, year, year)
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
