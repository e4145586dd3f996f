package bank

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode       = errors.New("código do banco não pode ser vazio")
	ErrEmptyName       = errors.New("nome do banco não pode ser vazio")
	ErrEmptyTimeZone   = errors.New("fuso horário do banco não pode ser vazio")
	ErrInvalidTimeZone = errors.New("fuso horário do banco é inválido")
)

// Bank representa uma instituição bancária, raiz da hierarquia organizacional
type Bank struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"` // Código único do banco (ex.: código COMPE)
	Name       string    `json:"name"`
	LegalName  string    `json:"legal_name"`
	Address    Address   `json:"address"`
	LogoURL    string    `json:"logo_url"`
	ThemeColor string    `json:"theme_color"`
	CountryID  string    `json:"country_id"`
	TimeZoneID string    `json:"time_zone_id"` // Nome IANA, ex.: America/Sao_Paulo
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
	UpdatedAt  time.Time `json:"updated_at"`
	UpdatedBy  string    `json:"updated_by"`
}

// Address representa o endereço da sede do banco
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

// NewBank cria um novo banco
func NewBank(code, name, legalName string, address Address, logoURL, themeColor, countryID, timeZoneID, createdBy string) (*Bank, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	if timeZoneID == "" {
		return nil, ErrEmptyTimeZone
	}

	if _, err := time.LoadLocation(timeZoneID); err != nil {
		return nil, ErrInvalidTimeZone
	}

	now := time.Now()
	return &Bank{
		ID:         uuid.New().String(),
		Code:       code,
		Name:       name,
		LegalName:  legalName,
		Address:    address,
		LogoURL:    logoURL,
		ThemeColor: themeColor,
		CountryID:  countryID,
		TimeZoneID: timeZoneID,
		IsActive:   true,
		CreatedAt:  now,
		CreatedBy:  createdBy,
		UpdatedAt:  now,
		UpdatedBy:  createdBy,
	}, nil
}

// Location retorna o fuso horário do banco
func (b *Bank) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.TimeZoneID)
	if err != nil {
		return nil, ErrInvalidTimeZone
	}
	return loc, nil
}

// Activate ativa o banco
func (b *Bank) Activate(updatedBy string) {
	b.IsActive = true
	b.UpdatedAt = time.Now()
	b.UpdatedBy = updatedBy
}

// Deactivate desativa o banco (soft delete)
func (b *Bank) Deactivate(updatedBy string) {
	b.IsActive = false
	b.UpdatedAt = time.Now()
	b.UpdatedBy = updatedBy
}

// Update atualiza os dados cadastrais do banco
func (b *Bank) Update(name, legalName string, address Address, logoURL, themeColor, countryID, timeZoneID, updatedBy string) error {
	if name == "" {
		return ErrEmptyName
	}

	if timeZoneID == "" {
		return ErrEmptyTimeZone
	}

	if _, err := time.LoadLocation(timeZoneID); err != nil {
		return ErrInvalidTimeZone
	}

	b.Name = name
	b.LegalName = legalName
	b.Address = address
	b.LogoURL = logoURL
	b.ThemeColor = themeColor
	b.CountryID = countryID
	b.TimeZoneID = timeZoneID
	b.UpdatedAt = time.Now()
	b.UpdatedBy = updatedBy
	return nil
}
