package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one sale event (one document/visit) by one partner on one
// day. DocumentId is the business-assigned identifier and the idempotency
// key for the whole import: re-importing a file can never duplicate a row.
type Transaction struct {
	DocumentId  string          `gorm:"primaryKey;size:50" json:"document_id"`
	Date        time.Time       `gorm:"type:date;index;index:idx_transactions_date_cnp;not null" json:"date"`
	Cnp         *string         `gorm:"size:13;index;index:idx_transactions_date_cnp" json:"cnp"`
	PaymentType *string         `gorm:"size:100" json:"payment_type"`
	Iban        *string         `gorm:"size:100" json:"iban"`
	GrossValue  decimal.Decimal `gorm:"type:decimal(12,2)" json:"gross_value"`
	EnvTax      decimal.Decimal `gorm:"type:decimal(10,2)" json:"env_tax"`
	IncomeTax   decimal.Decimal `gorm:"type:decimal(10,2)" json:"income_tax"`
	NetPaid     decimal.Decimal `gorm:"type:decimal(12,2)" json:"net_paid"`

	Partner *Partner `gorm:"foreignKey:Cnp;references:Cnp" json:"partner,omitempty"`
}

// TransactionItem is one waste-type line within a transaction. One row per
// (document, waste type); the unique key makes item inserts as idempotent
// as the transaction insert.
// PricePerKg is NULL when the column header carried no price; Value is then
// zero so downstream SUM(value) aggregates stay comparable, while the NULL
// price keeps "unknown" distinguishable from a genuine zero price.
type TransactionItem struct {
	ID          int              `gorm:"primary_key" json:"id"`
	DocumentId  string           `gorm:"uniqueIndex:idx_transaction_item_key;size:50;not null" json:"document_id"`
	WasteTypeId int              `gorm:"uniqueIndex:idx_transaction_item_key;index;not null" json:"waste_type_id"`
	PricePerKg  *decimal.Decimal `gorm:"type:decimal(8,2);index" json:"price_per_kg"`
	WeightKg    decimal.Decimal  `gorm:"type:decimal(10,2)" json:"weight_kg"`
	Value       decimal.Decimal  `gorm:"type:decimal(12,2)" json:"value"`

	WasteType *WasteType `gorm:"foreignKey:WasteTypeId" json:"waste_type,omitempty"`
}
