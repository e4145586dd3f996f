package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyBankID  = errors.New("ID do banco não pode ser vazio")
	ErrEmptyName    = errors.New("nome do usuário não pode ser vazio")
	ErrEmptyEmail   = errors.New("e-mail do usuário não pode ser vazio")
	ErrWeakPassword = errors.New("senha deve ter ao menos 8 caracteres")
)

// Role representa o papel do usuário na plataforma
type Role string

const (
	RoleAdmin    Role = "admin"    // Administrador da plataforma
	RoleManager  Role = "manager"  // Gestor da estrutura organizacional de um banco
	RoleOperator Role = "operator" // Operador com acesso de leitura e cadastros básicos
)

// User representa um operador da plataforma. O usuário autenticado alimenta
// os campos created_by/updated_by das entidades e o user_id da auditoria.
type User struct {
	ID          string     `json:"id"`
	BankID      string     `json:"bank_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // Hash bcrypt; nunca retornado nas respostas JSON
	Role        Role       `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já em hash
func NewUser(bankID, name, email, password string, role Role) (*User, error) {
	if bankID == "" {
		return nil, ErrEmptyBankID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	if email == "" {
		return nil, ErrEmptyEmail
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		BankID:    bankID,
		Name:      name,
		Email:     email,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida confere com o hash armazenado
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin verifica se o usuário é administrador da plataforma
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasAccessToBank verifica se o usuário tem acesso ao banco informado.
// Administradores têm acesso a todos os bancos.
func (u *User) HasAccessToBank(bankID string) bool {
	if u.IsAdmin() {
		return true
	}
	return u.BankID == bankID
}
