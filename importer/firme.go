package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pajudata/scrapyard_backend/config"
	"github.com/pajudata/scrapyard_backend/models"
	"github.com/pajudata/scrapyard_backend/normalize"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm/clause"
)

// monthNames maps the Romanian sheet names to month numbers. Lookup is done
// on the diacritic-folded upper-cased form.
var monthNames = map[string]int{
	"IANUARIE":   1,
	"FEBRUARIE":  2,
	"MARTIE":     3,
	"APRILIE":    4,
	"MAI":        5,
	"IUNIE":      6,
	"IULIE":      7,
	"AUGUST":     8,
	"SEPTEMBRIE": 9,
	"OCTOMBRIE":  10,
	"NOIEMBRIE":  11,
	"DECEMBRIE":  12,
}

var yearPattern = regexp.MustCompile(`(20\d\d)`)

// Common column positions of a monthly sales (vanzari) sheet. The trailing
// columns differ per source year; see vanzariVariantCols.
const (
	vanzColCompany       = 0
	vanzColData          = 1
	vanzColNumarAviz     = 2
	vanzColCantLivrata   = 4
	vanzColPretAchizitie = 5
	vanzColScazKg        = 6
	vanzColScazRon       = 7
	vanzColCantRecept    = 8
	vanzColPretVanzare   = 9
	vanzColValoareRon    = 10
	vanzColAdaos         = 11
	vanzColTransportRon  = 12
	vanzColAdaosFinal    = 13
)

// ImportFirme processes the yearly B2B workbooks ("situatie vanzari 2024"
// and friends) under dir. Each workbook carries one sheet per month of
// aviz-level sales, Sumar_<month> rollup sheets and a transport-cost sheet.
func (imp *Importer) ImportFirme(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read firme dir: %w", err)
	}

	firme := newFirmaResolver(imp)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".xls" && ext != ".xlsx" {
			continue
		}
		m := yearPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			imp.log.WithField("file", entry.Name()).Warn("firme workbook without year in name, skipping")
			continue
		}
		year, _ := strconv.Atoi(m[1])
		if err := imp.processFirmeWorkbook(ctx, filepath.Join(dir, entry.Name()), year, firme); err != nil {
			config.LogError(imp.log, "importer", "ImportFirme", entry.Name(), nil, err)
		}
	}
	return nil
}

func (imp *Importer) processFirmeWorkbook(ctx context.Context, path string, year int, firme *firmaResolver) error {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	for _, sheet := range wb.GetSheetList() {
		key := sheetKey(sheet)
		switch {
		case strings.Contains(key, "OBSERVATII") || strings.Contains(key, "TOTAL"):
			continue
		case strings.Contains(key, "SUMAR"):
			month := monthFromSheetName(key)
			if month == 0 {
				continue
			}
			rows, err := wb.GetRows(sheet)
			if err != nil {
				return fmt.Errorf("read sheet %q: %w", sheet, err)
			}
			if err := imp.storeSumar(ctx, ParseSumarSheet(rows, year, month), firme); err != nil {
				return err
			}
		case strings.Contains(key, "TRANSPORT"):
			rows, err := wb.GetRows(sheet)
			if err != nil {
				return fmt.Errorf("read sheet %q: %w", sheet, err)
			}
			if err := imp.storeTransporturi(ctx, year, ParseTransportRows(rows, year)); err != nil {
				return err
			}
		default:
			month, ok := monthNames[key]
			if !ok {
				continue
			}
			rows, err := wb.GetRows(sheet)
			if err != nil {
				return fmt.Errorf("read sheet %q: %w", sheet, err)
			}
			if err := imp.storeVanzari(ctx, year, month, ParseVanzariRows(rows, year, month), firme); err != nil {
				return err
			}
		}
	}

	imp.log.WithFields(logrus.Fields{"file": filepath.Base(path), "year": year}).Info("firme workbook imported")
	return nil
}

func sheetKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(normalize.FoldDiacritics(name)))
}

// monthFromSheetName finds a month name inside a sheet key like
// "SUMAR_IANUARIE" or "SUMAR MARTIE".
func monthFromSheetName(key string) int {
	for name, month := range monthNames {
		if strings.Contains(key, name) {
			return month
		}
	}
	return 0
}

// VanzareRow is one parsed sales row before company resolution.
type VanzareRow struct {
	Company string
	Record  models.Vanzare
}

// ParseVanzariRows extracts the aviz-level sales rows of one month sheet.
// Trailing columns are interpreted per source year: 2022 carries the waste
// type, 2023 a free-text note, 2024 onward the invoice block.
func ParseVanzariRows(rows [][]string, year, month int) []VanzareRow {
	var out []VanzareRow
	for i, row := range rows {
		if i == 0 {
			continue
		}
		company := cellAt(row, vanzColCompany)
		if company == "" || strings.Contains(strings.ToUpper(company), "TOTAL") {
			continue
		}
		data, ok := ParseCellDate(cellAt(row, vanzColData))
		if !ok {
			continue
		}

		v := models.Vanzare{
			Data:                  data,
			Year:                  year,
			Month:                 month,
			CantitateLivrata:      amountPtr(cellAt(row, vanzColCantLivrata)),
			PretAchizitie:         amountPtr(cellAt(row, vanzColPretAchizitie)),
			ScazamantKg:           amountPtr(cellAt(row, vanzColScazKg)),
			ScazamantRon:          amountPtr(cellAt(row, vanzColScazRon)),
			CantitateReceptionata: amountPtr(cellAt(row, vanzColCantRecept)),
			PretVanzare:           amountPtr(cellAt(row, vanzColPretVanzare)),
			ValoareRon:            amountPtr(cellAt(row, vanzColValoareRon)),
			Adaos:                 amountPtr(cellAt(row, vanzColAdaos)),
			TransportRon:          amountPtr(cellAt(row, vanzColTransportRon)),
			AdaosFinal:            amountPtr(cellAt(row, vanzColAdaosFinal)),
		}
		if aviz, ok := normalize.Clean(cellAt(row, vanzColNumarAviz)); ok {
			v.NumarAviz = &aviz
		}

		switch {
		case year <= 2022:
			if tip, ok := normalize.Clean(cellAt(row, 14)); ok {
				v.TipDeseu = &tip
			}
		case year == 2023:
			if obs, ok := normalize.Clean(cellAt(row, 14)); ok {
				v.Observatii = &obs
			}
		default:
			if serie, ok := normalize.Clean(cellAt(row, 14)); ok {
				v.SerieFactura = &serie
			}
			if numar, ok := normalize.Clean(cellAt(row, 15)); ok {
				v.NumarFactura = &numar
			}
			if t, ok := ParseCellDate(cellAt(row, 16)); ok {
				v.DataFactura = &t
			}
			v.ValoareEuro = amountPtr(cellAt(row, 17))
			if obs, ok := normalize.Clean(cellAt(row, 18)); ok {
				v.Observatii = &obs
			}
		}

		out = append(out, VanzareRow{Company: company, Record: v})
	}
	return out
}

// SumarRows is the parsed content of one Sumar_<month> sheet.
type SumarRows struct {
	Firme   []SumarFirmaRow
	Deseuri []models.SumarDeseu
}

type SumarFirmaRow struct {
	Company string
	Record  models.SumarFirma
}

// sumarSkipMarkers appear in section header and grand-total rows.
var sumarSkipMarkers = []string{"DENUMIRE", "TIP DESEU", "GRAND TOTAL", "TOTAL GENERAL"}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ParseSumarSheet splits a rollup sheet into its two stacked blocks: the
// per-company table under "PE TIP DE CLIENTI" and the per-waste-type table
// under "PE TIP DE DESEURI".
func ParseSumarSheet(rows [][]string, year, month int) SumarRows {
	const (
		sectionNone = iota
		sectionFirme
		sectionDeseuri
	)
	var out SumarRows
	section := sectionNone

	for _, row := range rows {
		label := strings.ToUpper(cellAt(row, 0))
		joined := strings.ToUpper(strings.Join(row, " "))
		switch {
		case strings.Contains(joined, "PE TIP DE CLIENTI"):
			section = sectionFirme
			continue
		case strings.Contains(joined, "PE TIP DE DESEURI"):
			section = sectionDeseuri
			continue
		}
		if label == "" || containsAny(joined, sumarSkipMarkers) {
			continue
		}

		switch section {
		case sectionFirme:
			out.Firme = append(out.Firme, SumarFirmaRow{
				Company: cellAt(row, 0),
				Record: models.SumarFirma{
					Year:                  year,
					Month:                 month,
					CantitateLivrata:      amountPtr(cellAt(row, 1)),
					PretMediuAchizitie:    amountPtr(cellAt(row, 2)),
					ScazamantKg:           amountPtr(cellAt(row, 3)),
					ScazamantRon:          amountPtr(cellAt(row, 4)),
					CantitateReceptionata: amountPtr(cellAt(row, 5)),
					PretMediuVanzare:      amountPtr(cellAt(row, 6)),
					ValoareRon:            amountPtr(cellAt(row, 7)),
					ValoareEuro:           amountPtr(cellAt(row, 8)),
					TransportRon:          amountPtr(cellAt(row, 9)),
					Adaos:                 amountPtr(cellAt(row, 10)),
					AdaosFinal:            amountPtr(cellAt(row, 11)),
				},
			})
		case sectionDeseuri:
			out.Deseuri = append(out.Deseuri, models.SumarDeseu{
				Year:           year,
				Month:          month,
				TipDeseu:       cellAt(row, 0),
				CantitateKg:    amountPtr(cellAt(row, 1)),
				ValoareRon:     amountPtr(cellAt(row, 2)),
				AdaosRon:       amountPtr(cellAt(row, 3)),
				ProcentVanzari: amountPtr(cellAt(row, 4)),
				ProcentProfit:  amountPtr(cellAt(row, 5)),
			})
		}
	}
	return out
}

// ParseTransportRows extracts the transport-cost sheet. Month context comes
// from marker rows whose first cell is a bare month name; data rows between
// markers belong to the last seen month.
func ParseTransportRows(rows [][]string, year int) []models.TransportFirma {
	var out []models.TransportFirma
	month := 0
	for _, row := range rows {
		first := strings.ToUpper(strings.TrimSpace(normalize.FoldDiacritics(cellAt(row, 0))))
		if m, ok := monthNames[first]; ok {
			month = m
			continue
		}
		if month == 0 {
			continue
		}
		joined := strings.ToUpper(strings.Join(row, " "))
		if strings.Contains(joined, "DESTINATIE") || strings.Contains(joined, "TOTAL") {
			continue
		}

		t := models.TransportFirma{Year: year, Month: month}
		if v, ok := normalize.Clean(cellAt(row, 0)); ok {
			t.Destinatie = &v
		}
		if v, ok := normalize.Clean(cellAt(row, 1)); ok {
			t.FirmaName = &v
		}
		if t.Destinatie == nil && t.FirmaName == nil {
			continue
		}
		if v, ok := normalize.Clean(cellAt(row, 2)); ok {
			t.Descriere = &v
		}
		t.SumaFaraTva = amountPtr(cellAt(row, 3))
		t.Tva = amountPtr(cellAt(row, 4))
		t.Total = amountPtr(cellAt(row, 5))
		if v, ok := normalize.Clean(cellAt(row, 6)); ok {
			t.Transportator = &v
		}
		out = append(out, t)
	}
	return out
}

// storeVanzari replaces one month's sales rows. The sheets have no stable
// row key, so idempotency is whole-month replace instead of row upsert.
func (imp *Importer) storeVanzari(ctx context.Context, year, month int, rows []VanzareRow, firme *firmaResolver) error {
	if len(rows) == 0 {
		return nil
	}
	records := make([]models.Vanzare, 0, len(rows))
	for _, r := range rows {
		firmaId, err := firme.resolve(ctx, r.Company)
		if err != nil {
			return err
		}
		rec := r.Record
		rec.FirmaId = firmaId
		records = append(records, rec)
	}
	err := imp.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, month).
		Delete(&models.Vanzare{}).Error
	if err != nil {
		return fmt.Errorf("clear vanzari %d-%02d: %w", year, month, err)
	}
	if err := imp.db.WithContext(ctx).CreateInBatches(records, imp.settings.BatchSize).Error; err != nil {
		return fmt.Errorf("insert vanzari %d-%02d: %w", year, month, err)
	}
	return nil
}

func (imp *Importer) storeSumar(ctx context.Context, sumar SumarRows, firme *firmaResolver) error {
	for _, r := range sumar.Firme {
		firmaId, err := firme.resolve(ctx, r.Company)
		if err != nil {
			return err
		}
		rec := r.Record
		rec.FirmaId = firmaId
		err = imp.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}, {Name: "month"}, {Name: "firma_id"}},
			UpdateAll: true,
		}).Create(&rec).Error
		if err != nil {
			return fmt.Errorf("upsert sumar firma: %w", err)
		}
	}
	for _, rec := range sumar.Deseuri {
		err := imp.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}, {Name: "month"}, {Name: "tip_deseu"}},
			UpdateAll: true,
		}).Create(&rec).Error
		if err != nil {
			return fmt.Errorf("upsert sumar deseu: %w", err)
		}
	}
	return nil
}

func (imp *Importer) storeTransporturi(ctx context.Context, year int, rows []models.TransportFirma) error {
	if len(rows) == 0 {
		return nil
	}
	err := imp.db.WithContext(ctx).Where("year = ?", year).Delete(&models.TransportFirma{}).Error
	if err != nil {
		return fmt.Errorf("clear transporturi %d: %w", year, err)
	}
	if err := imp.db.WithContext(ctx).CreateInBatches(rows, imp.settings.BatchSize).Error; err != nil {
		return fmt.Errorf("insert transporturi %d: %w", year, err)
	}
	return nil
}

// firmaResolver caches the company-name to firma-id mapping for one run.
// Matching is on the normalized key so "Calitex SRL" and "CALITEX S.R.L."
// land on the same row.
type firmaResolver struct {
	imp *Importer
	ids map[string]int
}

func newFirmaResolver(imp *Importer) *firmaResolver {
	return &firmaResolver{imp: imp, ids: make(map[string]int)}
}

func (r *firmaResolver) resolve(ctx context.Context, rawName string) (int, error) {
	key, ok := normalize.CompanyKey(rawName)
	if !ok {
		return 0, fmt.Errorf("empty company name %q", rawName)
	}
	if id, cached := r.ids[key]; cached {
		return id, nil
	}
	display, _ := normalize.Clean(rawName)
	firma := models.Firma{Name: display, NameNormalized: key}
	err := r.imp.db.WithContext(ctx).
		Where("name_normalized = ?", key).
		FirstOrCreate(&firma).Error
	if err != nil {
		return 0, fmt.Errorf("resolve firma %q: %w", rawName, err)
	}
	r.ids[key] = firma.ID
	return firma.ID, nil
}

func amountPtr(s string) *decimal.Decimal {
	d, ok := ParseAmount(s)
	if !ok {
		return nil
	}
	return &d
}
