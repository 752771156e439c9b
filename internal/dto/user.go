package dto

import (
	"time"

	"github.com/stackit/stackit-api/internal/models"
)

// UserDTO is the public projection of a user.
type UserDTO struct {
	ID        uint64          `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToUserDTO converts a user model into its public projection.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// UserRoleDTO is the minimal projection returned by the admin role endpoint.
type UserRoleDTO struct {
	ID       uint64          `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// ToUserRoleDTO converts a user model into its role projection.
func ToUserRoleDTO(user models.User) UserRoleDTO {
	return UserRoleDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
