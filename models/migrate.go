package models

import (
	"log"

	"github.com/pajudata/scrapyard_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Partner{},
		&WasteCategory{}, &WasteType{},
		&Transaction{}, &TransactionItem{},
		&Firma{}, &Vanzare{},
		&SumarFirma{}, &SumarDeseu{}, &TransportFirma{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
