package dto

import "time"

// Request DTOs

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	RealName        string `json:"realName" validate:"required"`
	Phone           string `json:"phone" validate:"required,cnphone"`
	Email           string `json:"email" validate:"omitempty,email"`
	ElderName       string `json:"elderName" validate:"required"`
	ElderInfo       string `json:"elderInfo" validate:"omitempty"`
}

// LoginRequest accepts a username, phone number or email in Username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// UserResponse is the sanitized user projection; the password hash never
// leaves the service.
type UserResponse struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	RealName      string    `json:"realName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ElderName     string    `json:"elderName"`
	ElderRelation string    `json:"elderRelation"`
	ElderProfile  string    `json:"elderProfile"`
	Status        int       `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LoginResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"accessToken"`
	ExpiresIn   int64         `json:"expiresIn"`
}
