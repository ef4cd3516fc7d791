package store

import (
	"context"

	"editions-app/internal/domain/catalog"

	"gorm.io/gorm"
)

// editionFetchCap bounds the bulk load; the whole catalog is expected to
// fit well inside it.
const editionFetchCap = 10000

// GormRemote is the postgres-backed Remote used in production.
type GormRemote struct {
	db *gorm.DB
}

func NewGormRemote(db *gorm.DB) *GormRemote {
	return &GormRemote{db: db}
}

func (r *GormRemote) FetchEditions(ctx context.Context) ([]catalog.Edition, error) {
	var editions []catalog.Edition
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(editionFetchCap).
		Find(&editions).Error
	return editions, err
}

func (r *GormRemote) FetchPrints(ctx context.Context) ([]catalog.Print, error) {
	var prints []catalog.Print
	err := r.db.WithContext(ctx).Order("id ASC").Find(&prints).Error
	return prints, err
}

func (r *GormRemote) FetchDistributors(ctx context.Context) ([]catalog.Distributor, error) {
	var distributors []catalog.Distributor
	err := r.db.WithContext(ctx).Order("id ASC").Find(&distributors).Error
	return distributors, err
}

func (r *GormRemote) UpdateEdition(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&catalog.Edition{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *GormRemote) UpdateEditions(ctx context.Context, ids []uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&catalog.Edition{}).
		Where("id IN ?", ids).
		Updates(fields).Error
}

func (r *GormRemote) CreatePrintWithEditions(ctx context.Context, print *catalog.Print, editions []catalog.Edition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(print).Error; err != nil {
			return err
		}
		for i := range editions {
			editions[i].PrintID = print.ID
		}
		if len(editions) == 0 {
			return nil
		}
		return tx.Create(&editions).Error
	})
}

func (r *GormRemote) InsertActivity(ctx context.Context, entry *catalog.ActivityEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
