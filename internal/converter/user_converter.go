package converter

import (
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		RealName:      user.RealName,
		Phone:         user.Phone,
		Email:         user.Email,
		ElderName:     user.ElderName,
		ElderRelation: user.ElderRelation,
		ElderProfile:  user.ElderProfile,
		Status:        user.Status,
		CreatedAt:     user.CreatedAt,
	}
}
