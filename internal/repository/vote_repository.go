package repository

import (
	"github.com/stackit/stackit-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVoteRepository is a GORM implementation of VoteRepository
type GormVoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &GormVoteRepository{db: db}
}

// Upsert records a vote. The unique (user_id, answer_id) index guarantees one
// vote per user per answer; re-voting replaces the stored type.
func (r *GormVoteRepository) Upsert(vote *models.Vote) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "answer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type"}),
		}).
		Create(vote).Error
}

// ListByAnswer lists all votes on an answer
func (r *GormVoteRepository) ListByAnswer(answerID uint64) ([]models.Vote, error) {
	var votes []models.Vote
	if err := r.db.Where("answer_id = ?", answerID).Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}
