package importer

import (
	"context"
	"time"

	"github.com/pajudata/scrapyard_backend/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const flushAttempts = 3

// batchWriter accumulates extracted records and flushes them in chunks.
// Transactions are inserted with ON CONFLICT(document_id) DO NOTHING so a
// re-import of the same files is a no-op at the store level; items ride in
// plain batched inserts keyed by the same document ids.
type batchWriter struct {
	db        *gorm.DB
	log       *logrus.Logger
	batchSize int

	transactions []models.Transaction
	items        []models.TransactionItem
	written      int64
	itemsWritten int64
}

func newBatchWriter(db *gorm.DB, log *logrus.Logger, batchSize int) *batchWriter {
	return &batchWriter{db: db, log: log, batchSize: batchSize}
}

func (w *batchWriter) add(result *RowResult) {
	w.transactions = append(w.transactions, *result.Transaction)
	w.items = append(w.items, result.Items...)
}

func (w *batchWriter) pending() int {
	return len(w.transactions)
}

// flush writes the buffered records, retrying transient store failures.
// The buffer is dropped after the final failed attempt so one poisoned
// batch cannot wedge the whole run.
func (w *batchWriter) flush(ctx context.Context) error {
	if len(w.transactions) == 0 && len(w.items) == 0 {
		return nil
	}

	var err error
	for attempt := 1; attempt <= flushAttempts; attempt++ {
		err = w.writeOnce(ctx)
		if err == nil {
			w.written += int64(len(w.transactions))
			w.itemsWritten += int64(len(w.items))
			w.transactions = w.transactions[:0]
			w.items = w.items[:0]
			return nil
		}
		w.log.WithFields(logrus.Fields{
			"attempt":      attempt,
			"transactions": len(w.transactions),
			"items":        len(w.items),
			"error":        err.Error(),
		}).Warn("batch flush failed")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}

	w.transactions = w.transactions[:0]
	w.items = w.items[:0]
	return err
}

func (w *batchWriter) writeOnce(ctx context.Context) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(w.transactions) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "document_id"}},
				DoNothing: true,
			}).CreateInBatches(w.transactions, w.batchSize).Error
			if err != nil {
				return err
			}
		}
		if len(w.items) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "document_id"}, {Name: "waste_type_id"}},
				DoNothing: true,
			}).CreateInBatches(w.items, w.batchSize).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
