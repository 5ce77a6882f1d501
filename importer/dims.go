package importer

import (
	"context"
	"sync"

	"github.com/pajudata/scrapyard_backend/models"
	"github.com/pajudata/scrapyard_backend/normalize"
	"github.com/pajudata/scrapyard_backend/utils"
	"gorm.io/gorm"
)

type wasteTypeKey struct {
	categoryId int
	name       string
}

// Dimensions owns the in-memory identity state of one import run: the
// waste category/type caches, the set of known partner CNPs, the document
// ids already seen, and the partners observed only inside transactions.
// All access is serialized through one mutex so month workers can share it;
// dimension rows are created at most once per unique key.
type Dimensions struct {
	db *gorm.DB

	mu          sync.Mutex
	categories  map[string]int
	wasteTypes  map[wasteTypeKey]int
	partnerCnps map[string]struct{}
	documents   map[string]struct{}
	missing     map[string]string
	nameOnly    map[string]struct{}
}

func NewDimensions(db *gorm.DB) *Dimensions {
	return &Dimensions{
		db:          db,
		categories:  make(map[string]int),
		wasteTypes:  make(map[wasteTypeKey]int),
		partnerCnps: make(map[string]struct{}),
		documents:   make(map[string]struct{}),
		missing:     make(map[string]string),
		nameOnly:    make(map[string]struct{}),
	}
}

// Preload warms the caches from existing rows so a re-import resolves
// dimensions against what previous runs already created and skips their
// transactions outright.
func (d *Dimensions) Preload(ctx context.Context) error {
	var categories []models.WasteCategory
	if err := d.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return err
	}
	var types []models.WasteType
	if err := d.db.WithContext(ctx).Find(&types).Error; err != nil {
		return err
	}
	var cnps []string
	if err := d.db.WithContext(ctx).Model(&models.Partner{}).Pluck("cnp", &cnps).Error; err != nil {
		return err
	}
	var docs []string
	if err := d.db.WithContext(ctx).Model(&models.Transaction{}).Pluck("document_id", &docs).Error; err != nil {
		return err
	}

	d.mu.Lock()
	for _, c := range categories {
		d.categories[c.Name] = c.ID
	}
	for _, t := range types {
		d.wasteTypes[wasteTypeKey{t.CategoryId, t.Name}] = t.ID
	}
	for _, c := range cnps {
		d.partnerCnps[c] = struct{}{}
	}
	d.mu.Unlock()

	d.seedDocuments(docs)
	return nil
}

// seedDocuments marks document ids from previous runs as seen, so a
// re-import skips their rows before they ever reach a batch.
func (d *Dimensions) seedDocuments(ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		d.documents[id] = struct{}{}
	}
}

// ResolveWasteType returns the waste type id for a classified header,
// creating category and type rows on first sight.
func (d *Dimensions) ResolveWasteType(ctx context.Context, h WasteHeader) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	categoryId, ok := d.categories[h.Category]
	if !ok {
		category := models.WasteCategory{Name: h.Category}
		if err := d.db.WithContext(ctx).Where("name = ?", h.Category).FirstOrCreate(&category).Error; err != nil {
			return 0, err
		}
		categoryId = category.ID
		d.categories[h.Category] = categoryId
	}

	key := wasteTypeKey{categoryId, h.Name}
	typeId, ok := d.wasteTypes[key]
	if !ok {
		wasteType := models.WasteType{CategoryId: categoryId, Name: h.Name}
		if err := d.db.WithContext(ctx).Where("category_id = ? AND name = ?", categoryId, h.Name).FirstOrCreate(&wasteType).Error; err != nil {
			return 0, err
		}
		typeId = wasteType.ID
		d.wasteTypes[key] = typeId
	}
	return typeId, nil
}

// MarkDocument records a document id and reports whether it was already
// seen in this run. Cross-run duplicates are handled by the insert's
// ON CONFLICT DO NOTHING; this guard keeps one run's batches clean.
func (d *Dimensions) MarkDocument(id string) (alreadySeen bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.documents[id]; ok {
		return true
	}
	d.documents[id] = struct{}{}
	return false
}

// Observe records the partner identity of one row. Valid CNPs unknown to
// the partner master list are collected for later creation; name-only
// identities are counted but never persisted.
func (d *Dimensions) Observe(obs PartnerObservation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if obs.Cnp == "" {
		d.nameOnly[obs.Name] = struct{}{}
		return
	}
	if _, known := d.partnerCnps[obs.Cnp]; !known {
		if _, queued := d.missing[obs.Cnp]; !queued {
			d.missing[obs.Cnp] = obs.Name
		}
	}
}

// MarkPartnerKnown adds a CNP to the known set (used by the partner-file
// import as it upserts rows).
func (d *Dimensions) MarkPartnerKnown(cnpKey string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.partnerCnps[cnpKey] = struct{}{}
}

// MissingPartners drains the queue of partners seen only in transactions,
// as Partner rows with CNP-derived attributes filled in.
func (d *Dimensions) MissingPartners() []models.Partner {
	d.mu.Lock()
	defer d.mu.Unlock()

	partners := make([]models.Partner, 0, len(d.missing))
	for cnpKey, rawName := range d.missing {
		p := models.Partner{Cnp: cnpKey}
		if name, ok := normalize.PersonName(rawName); ok {
			p.Name = utils.Ptr(name)
		}
		p.ApplyCnpInfo()
		partners = append(partners, p)
		d.partnerCnps[cnpKey] = struct{}{}
	}
	d.missing = make(map[string]string)
	return partners
}

// NameOnlyCount is the number of distinct name-keyed identities seen
// (rows without a valid CNP). Reported in the run stats.
func (d *Dimensions) NameOnlyCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.nameOnly)
}
