package repository

import (
	"github.com/stackit/stackit-api/internal/database"
	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/utils"
	"gorm.io/gorm"
)

// GormQuestionRepository is a GORM implementation of QuestionRepository
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &GormQuestionRepository{db: db}
}

// Create creates a question together with its tag links in a transaction
func (r *GormQuestionRepository) Create(question *models.Question, tagIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}

		if len(tagIDs) == 0 {
			return nil
		}

		links := make([]models.QuestionTag, len(tagIDs))
		for i, tagID := range tagIDs {
			links[i] = models.QuestionTag{
				QuestionID: question.ID,
				TagID:      tagID,
			}
		}

		return tx.Create(&links).Error
	})
}

// FindByID finds a question by ID with optional preloading
func (r *GormQuestionRepository) FindByID(id uint64, preload ...string) (*models.Question, error) {
	var question models.Question
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&question, id).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

// List retrieves questions newest first with pagination
func (r *GormQuestionRepository) List(page, pageSize int) ([]models.Question, int64, error) {
	var questions []models.Question

	var total int64
	if err := r.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.
		Preload("Author").
		Preload("Tags.Tag").
		Preload("Answers").
		Order("created_at DESC")

	if page > 0 && pageSize > 0 {
		query = query.Scopes(database.Paginate(utils.PaginationParams{
			Limit:  pageSize,
			Offset: (page - 1) * pageSize,
		}))
	}

	if err := query.Find(&questions).Error; err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

// Delete deletes a question and its dependent rows in a transaction:
// answers, votes on those answers, and tag links.
func (r *GormQuestionRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var answerIDs []uint64
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ?", id).
			Pluck("id", &answerIDs).Error; err != nil {
			return err
		}

		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}

		if err := tx.Where("question_id = ?", id).Delete(&models.QuestionTag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Question{}, id).Error
	})
}

// Count returns the total number of questions
func (r *GormQuestionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Question{}).Count(&count).Error
	return count, err
}
