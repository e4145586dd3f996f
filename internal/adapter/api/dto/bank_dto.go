package dto

import (
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/bank"
)

// AddressRequest representa a estrutura de dados para endereço
type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Country    string `json:"country"`
}

// AddressResponse representa a estrutura de resposta para endereço
type AddressResponse struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Country    string `json:"country"`
}

// BankRequest representa a estrutura de dados para criação/atualização de banco
type BankRequest struct {
	Code       string         `json:"code" binding:"required"`
	Name       string         `json:"name" binding:"required"`
	LegalName  string         `json:"legal_name"`
	Address    AddressRequest `json:"address"`
	LogoURL    string         `json:"logo_url"`
	ThemeColor string         `json:"theme_color"`
	CountryID  string         `json:"country_id"`
	TimeZoneID string         `json:"time_zone_id" binding:"required"`
}

// BankResponse representa a estrutura de resposta para banco
type BankResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	LegalName  string          `json:"legal_name"`
	Address    AddressResponse `json:"address"`
	LogoURL    string          `json:"logo_url"`
	ThemeColor string          `json:"theme_color"`
	CountryID  string          `json:"country_id"`
	TimeZoneID string          `json:"time_zone_id"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BankListResponse representa a resposta de listagem de bancos
type BankListResponse struct {
	Banks      []BankResponse `json:"banks"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ToBankAddress converte o DTO de endereço para o modelo de domínio
func (a AddressRequest) ToBankAddress() bank.Address {
	return bank.Address{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		Country:    a.Country,
	}
}

// ToBankResponse converte um modelo de domínio em uma resposta DTO
func ToBankResponse(b *bank.Bank) BankResponse {
	return BankResponse{
		ID:        b.ID,
		Code:      b.Code,
		Name:      b.Name,
		LegalName: b.LegalName,
		Address: AddressResponse{
			Street:     b.Address.Street,
			Number:     b.Address.Number,
			Complement: b.Address.Complement,
			District:   b.Address.District,
			City:       b.Address.City,
			State:      b.Address.State,
			ZipCode:    b.Address.ZipCode,
			Country:    b.Address.Country,
		},
		LogoURL:    b.LogoURL,
		ThemeColor: b.ThemeColor,
		CountryID:  b.CountryID,
		TimeZoneID: b.TimeZoneID,
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// ToBankListResponse converte uma lista de bancos para o formato de resposta
func ToBankListResponse(banks []*bank.Bank, totalCount, page, pageSize int) BankListResponse {
	response := BankListResponse{
		Banks:      make([]BankResponse, len(banks)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, b := range banks {
		response.Banks[i] = ToBankResponse(b)
	}

	return response
}
