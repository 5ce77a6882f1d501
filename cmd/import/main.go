package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/pajudata/scrapyard_backend/importer"
	"github.com/pajudata/scrapyard_backend/models"
	"github.com/sirupsen/logrus"
)

func main() {
	settings := config.DefaultImportSettings()

	flag.StringVar(&settings.DataPath, "data", settings.DataPath, "root folder of daily exports (year/month/DD.MM.YYYY.xlsx)")
	flag.StringVar(&settings.PartnersFile, "partners-file", settings.PartnersFile, "partner master list export")
	flag.StringVar(&settings.FirmeDir, "firme-dir", settings.FirmeDir, "folder of yearly B2B workbooks")
	flag.IntVar(&settings.Workers, "workers", settings.Workers, "concurrent workbook readers")
	flag.IntVar(&settings.BatchSize, "batch-size", settings.BatchSize, "insert batch size")
	skipPartners := flag.Bool("skip-partners", false, "skip the partner master list")
	skipDaily := flag.Bool("skip-daily", false, "skip the daily exports")
	skipFirme := flag.Bool("skip-firme", false, "skip the B2B workbooks")
	flag.Parse()

	logger := config.GetLogger()
	if err := settings.Validate(); err != nil {
		logger.Fatalf("invalid settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.ConnectDatabaseWithRetry()
	models.MigrateTable()

	imp := importer.New(config.GetDB(), logger, settings)

	if !*skipPartners && settings.PartnersFile != "" {
		if err := imp.ImportPartners(ctx, settings.PartnersFile); err != nil {
			config.LogError(logger, "cmd/import", "main", "ImportPartners", nil, err)
			os.Exit(1)
		}
	}
	if !*skipDaily {
		if err := imp.ImportDaily(ctx); err != nil {
			config.LogError(logger, "cmd/import", "main", "ImportDaily", nil, err)
			os.Exit(1)
		}
	}
	if !*skipFirme && settings.FirmeDir != "" {
		if err := imp.ImportFirme(ctx, settings.FirmeDir); err != nil {
			config.LogError(logger, "cmd/import", "main", "ImportFirme", nil, err)
			os.Exit(1)
		}
	}

	stats := imp.Stats()
	logger.WithFields(logrus.Fields{
		"files":           stats.Files,
		"filesFailed":     stats.FilesFailed,
		"rows":            stats.RowsProcessed,
		"skipped":         stats.RowsSkipped,
		"duplicates":      stats.DuplicateDocs,
		"transactions":    stats.Transactions,
		"items":           stats.Items,
		"partnersCreated": stats.PartnersCreated,
		"nameOnly":        stats.NameOnly,
	}).Info("import finished")

	fmt.Printf("files=%d failed=%d rows=%d skipped=%d transactions=%d items=%d partners=%d\n",
		stats.Files, stats.FilesFailed, stats.RowsProcessed, stats.RowsSkipped,
		stats.Transactions, stats.Items, stats.PartnersCreated)
}
