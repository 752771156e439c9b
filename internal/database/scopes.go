package database

import (
	"gorm.io/gorm"

	"github.com/stackit/stackit-api/internal/utils"
)

// Paginate applies the request's offset and limit to a listing query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}
