package models

import (
	"context"
	"errors"
	"time"

	"github.com/pajudata/scrapyard_backend/cnp"
	"github.com/pajudata/scrapyard_backend/config"
	"github.com/pajudata/scrapyard_backend/utils"
	"gorm.io/gorm"
)

// Partner is an individual scrap seller, keyed by CNP. Rows are created on
// first encounter during import and never deleted; re-imports may refresh
// the display name and modified timestamp but the key is immutable.
type Partner struct {
	Cnp           string     `gorm:"primaryKey;size:13" json:"cnp"`
	Name          *string    `gorm:"index;size:200" json:"name"`
	IdSeries      *string    `gorm:"size:100" json:"id_series"`
	IdExpiry      *time.Time `gorm:"type:date" json:"id_expiry"`
	Street        *string    `gorm:"size:500" json:"street"`
	City          *string    `gorm:"index;size:150" json:"city"`
	County        *string    `gorm:"index;size:100" json:"county"`
	Country       string     `gorm:"size:100;default:Romania" json:"country"`
	Phone         *string    `gorm:"size:100" json:"phone"`
	Email         *string    `gorm:"size:150" json:"email"`
	BirthYear     *int       `json:"birth_year"`
	Sex           *string    `gorm:"size:1" json:"sex"`
	CountyCodeCnp *string    `gorm:"size:2" json:"county_code_cnp"`
	CountyFromCnp *string    `gorm:"size:50" json:"county_from_cnp"`
	CreatedAt     *time.Time `json:"created_at"`
	ModifiedAt    *time.Time `json:"modified_at"`
	IsActive      *bool      `gorm:"default:true" json:"is_active"`
}

// ApplyCnpInfo fills the CNP-derived columns. A CNP that fails to decode
// leaves them nil; the row itself is still stored.
func (p *Partner) ApplyCnpInfo() {
	info, err := cnp.Decode(p.Cnp)
	if err != nil {
		return
	}
	p.Sex = &info.Sex
	p.BirthYear = &info.BirthYear
	code := info.CountyCode
	p.CountyCodeCnp = &code
	if info.CountyName != "" {
		name := info.CountyName
		p.CountyFromCnp = &name
	}
}

func GetPartner(ctx context.Context, cnpKey string) (*Partner, error) {
	db := config.GetDB()
	var partner Partner
	err := db.WithContext(ctx).First(&partner, "cnp = ?", cnpKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}
