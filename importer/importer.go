package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pajudata/scrapyard_backend/config"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fileTimeout caps how long one workbook may take. Corrupt .xls files have
// been seen to hang the reader instead of erroring out.
const fileTimeout = 2 * time.Minute

// Stats is the outcome of one import run.
type Stats struct {
	Files           int64
	FilesFailed     int64
	RowsProcessed   int64
	RowsSkipped     int64
	DuplicateDocs   int64
	Transactions    int64
	Items           int64
	PartnersCreated int64
	NameOnly        int
}

// Importer drives the daily-file pipeline: walk the year/month folders,
// extract every sheet, resolve dimensions and batch the rows into the store.
type Importer struct {
	db       *gorm.DB
	log      *logrus.Logger
	settings config.ImportSettings
	dims     *Dimensions
	runId    string

	mu    sync.Mutex
	stats Stats
}

func New(db *gorm.DB, log *logrus.Logger, settings config.ImportSettings) *Importer {
	return &Importer{
		db:       db,
		log:      log,
		settings: settings,
		dims:     NewDimensions(db),
		runId:    uuid.NewString(),
	}
}

func (imp *Importer) Stats() Stats {
	imp.mu.Lock()
	defer imp.mu.Unlock()
	s := imp.stats
	s.NameOnly = imp.dims.NameOnlyCount()
	return s
}

// Dims exposes the run's dimension cache so the partner-file import can
// share the known-CNP set.
func (imp *Importer) Dims() *Dimensions {
	return imp.dims
}

// ImportDaily processes every daily export under the data root. The root
// holds year folders, each holding month folders, each holding files named
// DD.MM.YYYY with an .xls or .xlsx extension. Files run concurrently up to
// the configured worker count; a single bad file is logged and skipped.
func (imp *Importer) ImportDaily(ctx context.Context) error {
	if err := imp.dims.Preload(ctx); err != nil {
		return fmt.Errorf("preload dimensions: %w", err)
	}

	files, err := imp.collectDailyFiles()
	if err != nil {
		return err
	}
	imp.log.WithFields(logrus.Fields{
		"runId": imp.runId,
		"files": len(files),
	}).Info("daily import starting")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imp.settings.Workers)
	for _, f := range files {
		f := f
		g.Go(func() error {
			if err := imp.processFileWithTimeout(gctx, f); err != nil {
				imp.mu.Lock()
				imp.stats.FilesFailed++
				imp.mu.Unlock()
				config.LogError(imp.log, "importer", "ImportDaily", f.path, nil, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := imp.createMissingPartners(ctx); err != nil {
		return err
	}

	stats := imp.Stats()
	imp.log.WithFields(logrus.Fields{
		"runId":           imp.runId,
		"files":           stats.Files,
		"filesFailed":     stats.FilesFailed,
		"rows":            stats.RowsProcessed,
		"skipped":         stats.RowsSkipped,
		"duplicates":      stats.DuplicateDocs,
		"transactions":    stats.Transactions,
		"items":           stats.Items,
		"partnersCreated": stats.PartnersCreated,
		"nameOnly":        stats.NameOnly,
	}).Info("daily import finished")
	return nil
}

type dailyFile struct {
	path string
	date time.Time
}

// collectDailyFiles walks DataPath/<year>/<month>/<DD.MM.YYYY>.xls[x] and
// returns the files in date order. Folders and files that do not match the
// naming convention are ignored, not errors; the drop zone collects strays.
func (imp *Importer) collectDailyFiles() ([]dailyFile, error) {
	var files []dailyFile
	years, err := os.ReadDir(imp.settings.DataPath)
	if err != nil {
		return nil, fmt.Errorf("read data path: %w", err)
	}
	for _, year := range years {
		if !year.IsDir() || len(year.Name()) != 4 {
			continue
		}
		yearDir := filepath.Join(imp.settings.DataPath, year.Name())
		months, err := os.ReadDir(yearDir)
		if err != nil {
			return nil, err
		}
		for _, month := range months {
			if !month.IsDir() {
				continue
			}
			monthDir := filepath.Join(yearDir, month.Name())
			entries, err := os.ReadDir(monthDir)
			if err != nil {
				return nil, err
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				name := entry.Name()
				ext := strings.ToLower(filepath.Ext(name))
				if ext != ".xls" && ext != ".xlsx" {
					continue
				}
				date, err := time.Parse("02.01.2006", strings.TrimSuffix(name, filepath.Ext(name)))
				if err != nil {
					imp.log.WithField("file", name).Debug("skipping file without date name")
					continue
				}
				files = append(files, dailyFile{path: filepath.Join(monthDir, name), date: date})
			}
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].date.Before(files[j].date) })
	return files, nil
}

func (imp *Importer) processFileWithTimeout(ctx context.Context, f dailyFile) error {
	done := make(chan error, 1)
	go func() {
		done <- imp.processFile(ctx, f)
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(fileTimeout):
		return fmt.Errorf("timed out after %s", fileTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (imp *Importer) processFile(ctx context.Context, f dailyFile) error {
	wb, err := excelize.OpenFile(f.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		imp.log.WithField("file", filepath.Base(f.path)).Debug("sheet has no data rows")
		return nil
	}

	headers := rows[0]
	layout := DetectLayout(headers)
	writer := newBatchWriter(imp.db, imp.log, imp.settings.BatchSize)

	var processed, skipped, duplicates int64
	for _, row := range rows[1:] {
		result, reason, err := ExtractRow(ctx, layout, headers, row, f.date, imp.dims)
		if err != nil {
			return err
		}
		if reason != SkipNone {
			skipped++
			continue
		}
		if imp.dims.MarkDocument(result.Transaction.DocumentId) {
			duplicates++
			continue
		}
		imp.dims.Observe(result.Observation)
		writer.add(result)
		processed++
		if writer.pending() >= imp.settings.BatchSize {
			if err := writer.flush(ctx); err != nil {
				return err
			}
		}
	}
	if err := writer.flush(ctx); err != nil {
		return err
	}

	imp.mu.Lock()
	imp.stats.Files++
	imp.stats.RowsProcessed += processed
	imp.stats.RowsSkipped += skipped
	imp.stats.DuplicateDocs += duplicates
	imp.stats.Transactions += writer.written
	imp.stats.Items += writer.itemsWritten
	imp.mu.Unlock()

	imp.log.WithFields(logrus.Fields{
		"file":    filepath.Base(f.path),
		"layout":  layout.Name,
		"rows":    processed,
		"skipped": skipped,
	}).Debug("file imported")
	return nil
}

// createMissingPartners persists partners that only ever appeared inside
// transactions, so the partner foreign key always resolves.
func (imp *Importer) createMissingPartners(ctx context.Context) error {
	partners := imp.dims.MissingPartners()
	if len(partners) == 0 {
		return nil
	}
	err := imp.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cnp"}},
		DoNothing: true,
	}).CreateInBatches(partners, imp.settings.BatchSize).Error
	if err != nil {
		return fmt.Errorf("create missing partners: %w", err)
	}
	imp.mu.Lock()
	imp.stats.PartnersCreated += int64(len(partners))
	imp.mu.Unlock()
	return nil
}
