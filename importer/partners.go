package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pajudata/scrapyard_backend/cnp"
	"github.com/pajudata/scrapyard_backend/models"
	"github.com/pajudata/scrapyard_backend/normalize"
	"github.com/pajudata/scrapyard_backend/utils"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm/clause"
)

// Column positions of the partner master export (persoanefizice). The file
// is a raw dump of the desk software's person table; most columns are
// internal ids we do not carry.
const (
	partnerColName     = 1
	partnerColCnp      = 3
	partnerColIdSeries = 4
	partnerColIdExpiry = 5
	partnerColStreet   = 6
	partnerColCity     = 7
	partnerColCounty   = 8
	partnerColCountry  = 9
	partnerColEmail    = 11
	partnerColPhone    = 14
	partnerColActive   = 24
	partnerColCreated  = 26
	partnerColModified = 28
)

const partnerBatchSize = 100

// ImportPartners loads the master partner list. Existing rows are refreshed
// (the master file wins over transaction-derived stubs); rows without a
// structurally valid CNP are dropped since the key would be meaningless.
func (imp *Importer) ImportPartners(ctx context.Context, path string) error {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open partners file: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("partners file has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil
	}

	seen := make(map[string]struct{})
	var batch []models.Partner
	var total, invalid int

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		var err error
		for attempt := 1; attempt <= flushAttempts; attempt++ {
			err = imp.db.WithContext(ctx).Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "cnp"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "id_series", "id_expiry", "street", "city", "county",
					"country", "phone", "email", "is_active", "modified_at",
				}),
			}).Create(&batch).Error
			if err == nil {
				break
			}
			imp.log.WithFields(logrus.Fields{
				"attempt":  attempt,
				"partners": len(batch),
				"error":    err.Error(),
			}).Warn("partner batch upsert failed")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
		if err != nil {
			return fmt.Errorf("upsert partners: %w", err)
		}
		for _, p := range batch {
			imp.dims.MarkPartnerKnown(p.Cnp)
		}
		batch = batch[:0]
		return nil
	}

	for _, row := range rows[1:] {
		cnpKey, ok := cnp.Clean(cellAt(row, partnerColCnp))
		if !ok {
			invalid++
			continue
		}
		if _, dup := seen[cnpKey]; dup {
			continue
		}
		seen[cnpKey] = struct{}{}

		p := models.Partner{Cnp: cnpKey, Country: "Romania"}
		if name, ok := normalize.PersonName(cellAt(row, partnerColName)); ok {
			p.Name = &name
		}
		if v, ok := normalize.Clean(cellAt(row, partnerColIdSeries)); ok {
			p.IdSeries = &v
		}
		if t, ok := ParseCellDate(cellAt(row, partnerColIdExpiry)); ok {
			p.IdExpiry = &t
		}
		if v, ok := normalize.Clean(cellAt(row, partnerColStreet)); ok {
			p.Street = &v
		}
		if v, ok := normalize.Locality(cellAt(row, partnerColCity)); ok {
			p.City = &v
		}
		if v, ok := normalize.County(cellAt(row, partnerColCounty)); ok {
			p.County = &v
		}
		if v, ok := normalize.Clean(cellAt(row, partnerColCountry)); ok {
			p.Country = v
		}
		if v, ok := normalize.Clean(cellAt(row, partnerColEmail)); ok {
			p.Email = &v
		}
		if v, ok := normalize.Clean(cellAt(row, partnerColPhone)); ok {
			p.Phone = &v
		}
		p.IsActive = parseActiveFlag(cellAt(row, partnerColActive))
		if t, ok := ParseCellDate(cellAt(row, partnerColCreated)); ok {
			p.CreatedAt = &t
		}
		if t, ok := ParseCellDate(cellAt(row, partnerColModified)); ok {
			p.ModifiedAt = &t
		} else {
			now := time.Now()
			p.ModifiedAt = &now
		}
		p.ApplyCnpInfo()

		batch = append(batch, p)
		total++
		if len(batch) >= partnerBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	imp.log.WithFields(logrus.Fields{
		"file":    path,
		"total":   total,
		"invalid": invalid,
	}).Info("partner master list imported")
	return nil
}

func parseActiveFlag(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "da", "yes":
		return utils.NewTrue()
	case "":
		return nil
	default:
		return utils.NewFalse()
	}
}
