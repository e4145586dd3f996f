package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/user"
)

// UserRequest representa a estrutura de dados para criação de usuário
type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// UserResponse representa a estrutura de resposta para usuário
type UserResponse struct {
	ID          string     `json:"id"`
	BankID      string     `json:"bank_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserListResponse representa a resposta de listagem de usuários
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse converte um modelo de domínio em uma resposta DTO
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		BankID:      u.BankID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários para o formato de resposta
func ToUserListResponse(users []*user.User, totalCount, page, pageSize int) UserListResponse {
	response := UserListResponse{
		Users:      make([]UserResponse, len(users)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, u := range users {
		response.Users[i] = ToUserResponse(u)
	}

	return response
}
