package reports

import (
	"context"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/shopspring/decimal"
)

type WeekdayActivity struct {
	Weekday          int             `json:"weekday"`
	WeekdayName      string          `json:"weekday_name"`
	TransactionCount int             `json:"transaction_count"`
	TotalGrossValue  decimal.Decimal `json:"total_gross_value"`
	AvgGrossValue    decimal.Decimal `json:"avg_gross_value"`
}

func GetWeekdayActivity(ctx context.Context) ([]*WeekdayActivity, error) {
	db := config.GetDB()

	var results []*WeekdayActivity
	err := db.WithContext(ctx).Raw(`
			SELECT
				WEEKDAY(t.date) as weekday,
				DAYNAME(t.date) as weekday_name,
				COUNT(*) as transaction_count,
				COALESCE(SUM(t.gross_value), 0) as total_gross_value,
				COALESCE(AVG(t.gross_value), 0) as avg_gross_value
			FROM transactions AS t
			GROUP BY weekday, weekday_name
			ORDER BY weekday;
		`).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
