package repository

import (
	"time"

	"github.com/stackit/stackit-api/internal/models"
	"gorm.io/gorm"
)

// GormAnswerRepository is a GORM implementation of AnswerRepository
type GormAnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new AnswerRepository
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &GormAnswerRepository{db: db}
}

// Create creates a new answer
func (r *GormAnswerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

// FindByID finds an answer by ID with optional preloading
func (r *GormAnswerRepository) FindByID(id uint64, preload ...string) (*models.Answer, error) {
	var answer models.Answer
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&answer, id).Error; err != nil {
		return nil, err
	}

	return &answer, nil
}

// Accept marks the target answer accepted and clears every other answer of
// the question in one conditional update. The statement touches all of the
// question's answer rows, so concurrent accepts serialize on those row locks
// and at most one answer per question stays accepted.
func (r *GormAnswerRepository) Accept(questionID, answerID uint64) error {
	return r.db.Model(&models.Answer{}).
		Where("question_id = ?", questionID).
		UpdateColumn("is_accepted", gorm.Expr("(id = ?)", answerID)).Error
}

// Delete deletes an answer and its votes in a transaction
func (r *GormAnswerRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Answer{}, id).Error
	})
}

// Count returns the total number of answers
func (r *GormAnswerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Answer{}).Count(&count).Error
	return count, err
}

// CountCreatedSince counts answers created at or after the given time
func (r *GormAnswerRepository) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Answer{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
