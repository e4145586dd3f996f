package dto

// LoginRequest representa a estrutura de dados para autenticação
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta da autenticação
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RefreshTokenRequest representa a estrutura de dados para renovação de token
type RefreshTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// RefreshTokenResponse representa a resposta da renovação de token
type RefreshTokenResponse struct {
	Token string `json:"token"`
}
