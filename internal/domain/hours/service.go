package hours

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound é retornado quando não há horário cadastrado para o par (agência, dia)
var ErrNotFound = errors.New("horário de funcionamento não encontrado")

// BranchLocator resolve o fuso horário do banco ao qual a agência pertence
type BranchLocator interface {
	BranchLocation(ctx context.Context, branchID string) (*time.Location, error)
}

// Service responde consultas de abertura de agência em um instante
type Service struct {
	repository Repository
	locator    BranchLocator
}

// NewService cria um novo serviço de horários de funcionamento
func NewService(repository Repository, locator BranchLocator) *Service {
	return &Service{
		repository: repository,
		locator:    locator,
	}
}

// IsOpenAt informa se a agência está aberta no instante informado.
// O dia da semana e o horário local são resolvidos no fuso horário do banco
// da agência. Janelas que atravessam a meia-noite são consideradas: um
// instante de madrugada pode estar coberto pelo registro do dia anterior.
func (s *Service) IsOpenAt(ctx context.Context, branchID string, at time.Time) (bool, error) {
	loc, err := s.locator.BranchLocation(ctx, branchID)
	if err != nil {
		return false, fmt.Errorf("falha ao resolver fuso horário da agência: %w", err)
	}

	local := at.In(loc)
	minute := local.Hour()*60 + local.Minute()
	day := FromWeekday(local.Weekday())

	today, err := s.repository.FindByBranchAndDay(ctx, branchID, day)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return false, err
	}

	if today != nil && today.CoversMinute(minute) {
		return true, nil
	}

	// A janela do dia anterior pode atravessar a meia-noite e cobrir este instante
	yesterday, err := s.repository.FindByBranchAndDay(ctx, branchID, day.Previous())
	if err != nil && !errors.Is(err, ErrNotFound) {
		return false, err
	}

	if yesterday != nil && yesterday.CoversSpillMinute(minute) {
		return true, nil
	}

	return false, nil
}
