package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Question listing sorts and author lookups
		{"questions", "idx_questions_created_at", "created_at"},
		{"questions", "idx_questions_author_id", "author_id"},

		// Answer lookups by question and dashboard time-window counts
		{"answers", "idx_answers_question_id", "question_id"},
		{"answers", "idx_answers_created_at", "created_at"},

		// Notification feed per user
		{"notifications", "idx_notifications_user_read", "user_id, is_read"},

		// Tag joins
		{"question_tags", "idx_question_tags_tag_id", "tag_id"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			fmt.Printf("Index %s already exists, skipping\n", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
