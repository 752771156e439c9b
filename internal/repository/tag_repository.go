package repository

import (
	"github.com/stackit/stackit-api/internal/models"
	"gorm.io/gorm"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

// List returns all tags ordered by name
func (r *GormTagRepository) List() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CountByIDs counts how many of the given tag IDs exist
func (r *GormTagRepository) CountByIDs(ids []uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
