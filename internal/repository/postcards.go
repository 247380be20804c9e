package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"archarad-app/internal/domain/postcards"
)

var ErrNotFound = errors.New("postcard not found")

// PostcardStore is the gorm-backed persistence collaborator. It implements
// the catalog's Lister and the editor's Store contracts.
type PostcardStore struct {
	db *gorm.DB
}

func NewPostcardStore(db *gorm.DB) *PostcardStore {
	return &PostcardStore{db: db}
}

// ListAll returns every record ordered year-descending, undated last.
func (s *PostcardStore) ListAll(ctx context.Context) ([]postcards.Postcard, error) {
	var records []postcards.Postcard
	err := s.db.WithContext(ctx).
		Order("year DESC NULLS LAST, created_at DESC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListNewestFirst orders by creation time for the curator listing.
func (s *PostcardStore) ListNewestFirst(ctx context.Context) ([]postcards.Postcard, error) {
	var records []postcards.Postcard
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *PostcardStore) GetByID(ctx context.Context, id string) (postcards.Postcard, error) {
	var record postcards.Postcard
	err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return postcards.Postcard{}, ErrNotFound
	}
	return record, err
}

// Insert persists a new record; id and created_at are server-assigned.
func (s *PostcardStore) Insert(ctx context.Context, p postcards.Postcard) (postcards.Postcard, error) {
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return postcards.Postcard{}, err
	}
	return p, nil
}

// UpdateByID writes only the given columns.
func (s *PostcardStore) UpdateByID(ctx context.Context, id string, changes map[string]any) error {
	res := s.db.WithContext(ctx).
		Model(&postcards.Postcard{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostcardStore) DeleteByID(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&postcards.Postcard{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
