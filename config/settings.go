package config

import (
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ImportSettings holds everything the import pipeline needs to know about
// where the spreadsheets live and how hard to push the database.
type ImportSettings struct {
	// DataPath is the root holding year folders (2024/, 2025/) of daily files.
	DataPath string `validate:"required"`
	// PartnersFile is the master partner list export (persoanefizice).
	PartnersFile string
	// FirmeDir holds the yearly B2B workbooks ("situatie vanzari").
	FirmeDir string

	Workers   int `validate:"min=1,max=16"`
	BatchSize int `validate:"min=1,max=5000"`
}

// DefaultImportSettings reads env-based defaults; flags may override fields
// before Validate is called.
func DefaultImportSettings() ImportSettings {
	return ImportSettings{
		DataPath:     os.Getenv("DATA_PATH"),
		PartnersFile: os.Getenv("PARTNERS_FILE"),
		FirmeDir:     os.Getenv("FIRME_DIR"),
		Workers:      intFromEnv("IMPORT_WORKERS", 1),
		BatchSize:    intFromEnv("IMPORT_BATCH_SIZE", 200),
	}
}

func (s ImportSettings) Validate() error {
	return validate.Struct(s)
}
