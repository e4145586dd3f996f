package branch

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBankID      = errors.New("ID do banco não pode ser vazio")
	ErrEmptyCode        = errors.New("código da agência não pode ser vazio")
	ErrEmptyName        = errors.New("nome da agência não pode ser vazio")
	ErrInvalidLatitude  = errors.New("latitude da agência fora do intervalo válido")
	ErrInvalidLongitude = errors.New("longitude da agência fora do intervalo válido")
	ErrClosedBeforeOpen = errors.New("data de encerramento anterior à data de abertura")
)

// Branch representa uma agência bancária
type Branch struct {
	ID        string     `json:"id"`
	BankID    string     `json:"bank_id"`
	RegionID  *string    `json:"region_id,omitempty"` // Regional é opcional
	Code      string     `json:"code"`                // Único dentro do banco
	Name      string     `json:"name"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Address   Address    `json:"address"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	OpenedAt  time.Time  `json:"opened_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedAt time.Time  `json:"updated_at"`
	UpdatedBy string     `json:"updated_by"`
}

// Address representa o endereço da agência
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Country    string `json:"country"`
}

// NewBranch cria uma nova agência
func NewBranch(bankID string, regionID *string, code, name string, latitude, longitude float64, address Address, phone, email string, openedAt time.Time, createdBy string) (*Branch, error) {
	if bankID == "" {
		return nil, ErrEmptyBankID
	}

	if code == "" {
		return nil, ErrEmptyCode
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	if latitude < -90 || latitude > 90 {
		return nil, ErrInvalidLatitude
	}

	if longitude < -180 || longitude > 180 {
		return nil, ErrInvalidLongitude
	}

	now := time.Now()
	return &Branch{
		ID:        uuid.New().String(),
		BankID:    bankID,
		RegionID:  regionID,
		Code:      code,
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Address:   address,
		Phone:     phone,
		Email:     email,
		OpenedAt:  openedAt,
		IsActive:  true,
		CreatedAt: now,
		CreatedBy: createdBy,
		UpdatedAt: now,
		UpdatedBy: createdBy,
	}, nil
}

// Update atualiza os dados da agência
func (b *Branch) Update(regionID *string, code, name string, latitude, longitude float64, address Address, phone, email string, updatedBy string) error {
	if code == "" {
		return ErrEmptyCode
	}

	if name == "" {
		return ErrEmptyName
	}

	if latitude < -90 || latitude > 90 {
		return ErrInvalidLatitude
	}

	if longitude < -180 || longitude > 180 {
		return ErrInvalidLongitude
	}

	b.RegionID = regionID
	b.Code = code
	b.Name = name
	b.Latitude = latitude
	b.Longitude = longitude
	b.Address = address
	b.Phone = phone
	b.Email = email
	b.UpdatedAt = time.Now()
	b.UpdatedBy = updatedBy
	return nil
}

// Close registra o encerramento da agência e a desativa
func (b *Branch) Close(closedAt time.Time, updatedBy string) error {
	if closedAt.Before(b.OpenedAt) {
		return ErrClosedBeforeOpen
	}

	b.ClosedAt = &closedAt
	b.IsActive = false
	b.UpdatedAt = time.Now()
	b.UpdatedBy = updatedBy
	return nil
}

// Deactivate desativa a agência (soft delete)
func (b *Branch) Deactivate(updatedBy string) {
	b.IsActive = false
	b.UpdatedAt = time.Now()
	b.UpdatedBy = updatedBy
}
