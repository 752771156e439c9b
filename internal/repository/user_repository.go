package repository

import (
	"github.com/stackit/stackit-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRole sets a user's role
func (r *GormUserRepository) UpdateRole(id uint64, role models.UserRole) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role).Error
}

// Delete deletes a user and all content they own in a transaction:
// their questions (with answers, votes on those answers, and tag links),
// their answers elsewhere (with votes), their own votes, and their
// notifications.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint64
		if err := tx.Model(&models.Question{}).
			Where("author_id = ?", id).
			Pluck("id", &questionIDs).Error; err != nil {
			return err
		}

		answerQuery := tx.Model(&models.Answer{}).Where("author_id = ?", id)
		if len(questionIDs) > 0 {
			answerQuery = tx.Model(&models.Answer{}).
				Where("author_id = ? OR question_id IN ?", id, questionIDs)
		}

		var answerIDs []uint64
		if err := answerQuery.Pluck("id", &answerIDs).Error; err != nil {
			return err
		}

		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", answerIDs).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
		}

		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.QuestionTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", questionIDs).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}

// ListRecent lists users ordered by creation time, newest first
func (r *GormUserRepository) ListRecent(page, pageSize int) ([]models.User, error) {
	var users []models.User
	offset := (page - 1) * pageSize
	if err := r.db.Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of users
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
