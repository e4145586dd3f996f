package holiday

import (
	"context"
	"fmt"
	"time"
)

// BranchOwnerLookup resolve o banco ao qual uma agência pertence
type BranchOwnerLookup interface {
	BranchBank(ctx context.Context, branchID string) (string, error)
}

// Service responde consultas de feriado por escopo e data
type Service struct {
	repository Repository
	owners     BranchOwnerLookup
}

// NewService cria um novo serviço de feriados
func NewService(repository Repository, owners BranchOwnerLookup) *Service {
	return &Service{
		repository: repository,
		owners:     owners,
	}
}

// IsBankHoliday informa se a data é feriado no escopo do banco
func (s *Service) IsBankHoliday(ctx context.Context, bankID string, date time.Time) (bool, error) {
	holidays, err := s.repository.ListActiveByBank(ctx, bankID)
	if err != nil {
		return false, fmt.Errorf("falha ao listar feriados do banco: %w", err)
	}

	return anyMatches(holidays, date), nil
}

// IsBranchHoliday informa se a data é feriado para a agência, considerando
// primeiro os feriados da própria agência e em seguida os do banco
func (s *Service) IsBranchHoliday(ctx context.Context, branchID string, date time.Time) (bool, error) {
	holidays, err := s.repository.ListActiveByBranch(ctx, branchID)
	if err != nil {
		return false, fmt.Errorf("falha ao listar feriados da agência: %w", err)
	}

	if anyMatches(holidays, date) {
		return true, nil
	}

	bankID, err := s.owners.BranchBank(ctx, branchID)
	if err != nil {
		return false, fmt.Errorf("falha ao resolver banco da agência: %w", err)
	}

	return s.IsBankHoliday(ctx, bankID, date)
}

func anyMatches(holidays []*Holiday, date time.Time) bool {
	for _, h := range holidays {
		if h.Matches(date) {
			return true
		}
	}
	return false
}
