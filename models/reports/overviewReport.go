package reports

import (
	"context"
	"time"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type Overview struct {
	TransactionCount int             `json:"transaction_count"`
	PartnerCount     int             `json:"partner_count"`
	TotalGrossValue  decimal.Decimal `json:"total_gross_value"`
	TotalNetPaid     decimal.Decimal `json:"total_net_paid"`
	TotalWeightKg    decimal.Decimal `json:"total_weight_kg"`
	FirstDate        *time.Time      `json:"first_date"`
	LastDate         *time.Time      `json:"last_date"`
}

func GetOverview(ctx context.Context) (*Overview, error) {
	db := config.GetDB()

	var result Overview
	err := db.WithContext(ctx).Raw(`
			SELECT
				COUNT(*) as transaction_count,
				COUNT(DISTINCT t.cnp) as partner_count,
				COALESCE(SUM(t.gross_value), 0) as total_gross_value,
				COALESCE(SUM(t.net_paid), 0) as total_net_paid,
				COALESCE((SELECT SUM(weight_kg) FROM transaction_items), 0) as total_weight_kg,
				MIN(t.date) as first_date,
				MAX(t.date) as last_date
			FROM transactions AS t;
		`).Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
