package repository

import (
	"context"
	"errors"

	"github.com/hugohenrick/banking-org/internal/domain/bank"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
)

// BankValidator valida o banco informado no cabeçalho das requisições
type BankValidator struct {
	repository bank.Repository
}

// NewBankValidator cria uma nova instância de BankValidator
func NewBankValidator(repository bank.Repository) bankctx.BankValidator {
	return &BankValidator{
		repository: repository,
	}
}

// ValidateBank verifica se o banco existe e está ativo
func (v *BankValidator) ValidateBank(bankID string) (bool, error) {
	b, err := v.repository.FindByID(context.Background(), bankID)
	if err != nil {
		if errors.Is(err, ErrBankNotFound) {
			return false, nil
		}
		return false, err
	}

	return b.IsActive, nil
}
