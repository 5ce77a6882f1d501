package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Firma is a B2B buyer counterparty. NameNormalized is the matching key
// (legal suffix stripped, upper-cased); Name keeps the display spelling.
type Firma struct {
	ID             int       `gorm:"primary_key" json:"id"`
	Name           string    `gorm:"index;size:200;not null" json:"name"`
	NameNormalized string    `gorm:"uniqueIndex;size:200" json:"name_normalized"`
	Country        *string   `gorm:"size:100" json:"country"`
	City           *string   `gorm:"size:100" json:"city"`
	IsActive       *bool     `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName pins the Romanian plural; gorm's inflector would mangle it.
func (Firma) TableName() string { return "firme" }

// Vanzare is one delivery-note (aviz) level sale to a company. Column
// coverage varies by source year: 2022 carries the waste type inline, 2024
// adds invoice references and EUR values.
type Vanzare struct {
	ID                   int              `gorm:"primary_key" json:"id"`
	FirmaId              int              `gorm:"index;not null" json:"firma_id"`
	Data                 time.Time        `gorm:"type:date;index;not null" json:"data"`
	Year                 int              `gorm:"index:idx_vanzari_year_month;not null" json:"year"`
	Month                int              `gorm:"index:idx_vanzari_year_month;not null" json:"month"`
	NumarAviz            *string          `gorm:"size:100" json:"numar_aviz"`
	TipDeseu             *string          `gorm:"index;size:100" json:"tip_deseu"`
	CantitateLivrata     *decimal.Decimal `gorm:"type:decimal(14,2)" json:"cantitate_livrata"`
	PretAchizitie        *decimal.Decimal `gorm:"type:decimal(12,4)" json:"pret_achizitie"`
	ScazamantKg          *decimal.Decimal `gorm:"type:decimal(12,2)" json:"scazamant_kg"`
	ScazamantRon         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"scazamant_ron"`
	CantitateReceptionata *decimal.Decimal `gorm:"type:decimal(14,2)" json:"cantitate_receptionata"`
	PretVanzare          *decimal.Decimal `gorm:"type:decimal(12,4)" json:"pret_vanzare"`
	ValoareRon           *decimal.Decimal `gorm:"type:decimal(14,2)" json:"valoare_ron"`
	ValoareEuro          *decimal.Decimal `gorm:"type:decimal(14,2)" json:"valoare_euro"`
	Adaos                *decimal.Decimal `gorm:"type:decimal(14,2)" json:"adaos"`
	TransportRon         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"transport_ron"`
	AdaosFinal           *decimal.Decimal `gorm:"type:decimal(14,2)" json:"adaos_final"`
	SerieFactura         *string          `gorm:"size:50" json:"serie_factura"`
	NumarFactura         *string          `gorm:"size:50" json:"numar_factura"`
	DataFactura          *time.Time       `gorm:"type:date" json:"data_factura"`
	Observatii           *string          `gorm:"type:text" json:"observatii"`

	Firma *Firma `gorm:"foreignKey:FirmaId" json:"firma,omitempty"`
}

func (Vanzare) TableName() string { return "vanzari" }

// SumarFirma is the monthly per-company block of a Sumar_<Month> sheet.
type SumarFirma struct {
	ID                   int              `gorm:"primary_key" json:"id"`
	Year                 int              `gorm:"uniqueIndex:idx_sumar_firme_key;not null" json:"year"`
	Month                int              `gorm:"uniqueIndex:idx_sumar_firme_key;not null" json:"month"`
	FirmaId              int              `gorm:"uniqueIndex:idx_sumar_firme_key;index;not null" json:"firma_id"`
	CantitateLivrata     *decimal.Decimal `gorm:"type:decimal(14,2)" json:"cantitate_livrata"`
	PretMediuAchizitie   *decimal.Decimal `gorm:"type:decimal(12,4)" json:"pret_mediu_achizitie"`
	ScazamantKg          *decimal.Decimal `gorm:"type:decimal(12,2)" json:"scazamant_kg"`
	ScazamantRon         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"scazamant_ron"`
	CantitateReceptionata *decimal.Decimal `gorm:"type:decimal(14,2)" json:"cantitate_receptionata"`
	PretMediuVanzare     *decimal.Decimal `gorm:"type:decimal(12,4)" json:"pret_mediu_vanzare"`
	ValoareRon           *decimal.Decimal `gorm:"type:decimal(14,2)" json:"valoare_ron"`
	ValoareEuro          *decimal.Decimal `gorm:"type:decimal(14,2)" json:"valoare_euro"`
	TransportRon         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"transport_ron"`
	Adaos                *decimal.Decimal `gorm:"type:decimal(14,2)" json:"adaos"`
	AdaosFinal           *decimal.Decimal `gorm:"type:decimal(14,2)" json:"adaos_final"`
}

func (SumarFirma) TableName() string { return "sumar_firme" }

// SumarDeseu is the monthly per-waste-type block of a Sumar_<Month> sheet.
type SumarDeseu struct {
	ID              int              `gorm:"primary_key" json:"id"`
	Year            int              `gorm:"uniqueIndex:idx_sumar_deseuri_key;not null" json:"year"`
	Month           int              `gorm:"uniqueIndex:idx_sumar_deseuri_key;not null" json:"month"`
	TipDeseu        string           `gorm:"uniqueIndex:idx_sumar_deseuri_key;size:100;not null" json:"tip_deseu"`
	CantitateKg     *decimal.Decimal `gorm:"type:decimal(14,2)" json:"cantitate_kg"`
	ValoareRon      *decimal.Decimal `gorm:"type:decimal(14,2)" json:"valoare_ron"`
	AdaosRon        *decimal.Decimal `gorm:"type:decimal(14,2)" json:"adaos_ron"`
	ProcentVanzari  *decimal.Decimal `gorm:"type:decimal(10,6)" json:"procent_vanzari"`
	ProcentProfit   *decimal.Decimal `gorm:"type:decimal(10,6)" json:"procent_profit"`
}

func (SumarDeseu) TableName() string { return "sumar_deseuri" }

// TransportFirma is one transport-cost row from the transporturi sheet.
type TransportFirma struct {
	ID           int              `gorm:"primary_key" json:"id"`
	Year         int              `gorm:"index:idx_transporturi_year_month;not null" json:"year"`
	Month        int              `gorm:"index:idx_transporturi_year_month;not null" json:"month"`
	Destinatie   *string          `gorm:"size:200" json:"destinatie"`
	FirmaName    *string          `gorm:"size:200" json:"firma_name"`
	Descriere    *string          `gorm:"size:200" json:"descriere"`
	SumaFaraTva  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"suma_fara_tva"`
	Tva          *decimal.Decimal `gorm:"type:decimal(10,2)" json:"tva"`
	Total        *decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	Transportator *string         `gorm:"size:100" json:"transportator"`
}

func (TransportFirma) TableName() string { return "transporturi" }
