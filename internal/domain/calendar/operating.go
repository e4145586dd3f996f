package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/banking-org/internal/domain/holiday"
	"github.com/hugohenrick/banking-org/internal/domain/hours"
)

// OperatingStatus descreve a situação operacional de uma agência em um instante
type OperatingStatus struct {
	Operating bool             `json:"operating"`
	Holiday   bool             `json:"holiday"`
	Open      bool             `json:"open"`
	Calendar  *WorkingCalendar `json:"calendar,omitempty"` // Metadado de exibição; pode ser nulo quando indeterminado
}

// OperatingService compõe feriados, horários de funcionamento e o calendário
// resolvido para responder se uma agência está operando em um instante.
// Feriado prevalece sobre o horário de funcionamento; o calendário resolvido
// é apenas metadado, não fonte de regras de horário.
type OperatingService struct {
	resolver *Resolver
	hours    *hours.Service
	holidays *holiday.Service
}

// NewOperatingService cria um novo serviço de situação operacional
func NewOperatingService(resolver *Resolver, hoursService *hours.Service, holidayService *holiday.Service) *OperatingService {
	return &OperatingService{
		resolver: resolver,
		hours:    hoursService,
		holidays: holidayService,
	}
}

// IsOperating informa se a agência está operando no instante: não é feriado
// e o horário de funcionamento do dia cobre o instante
func (s *OperatingService) IsOperating(ctx context.Context, branchID string, at time.Time) (bool, error) {
	isHoliday, err := s.holidays.IsBranchHoliday(ctx, branchID, at)
	if err != nil {
		return false, err
	}

	if isHoliday {
		return false, nil
	}

	return s.hours.IsOpenAt(ctx, branchID, at)
}

// StatusAt retorna a situação operacional detalhada da agência no instante,
// incluindo o calendário de trabalho resolvido quando houver
func (s *OperatingService) StatusAt(ctx context.Context, branchID string, at time.Time) (*OperatingStatus, error) {
	isHoliday, err := s.holidays.IsBranchHoliday(ctx, branchID, at)
	if err != nil {
		return nil, err
	}

	open := false
	if !isHoliday {
		open, err = s.hours.IsOpenAt(ctx, branchID, at)
		if err != nil {
			return nil, err
		}
	}

	status := &OperatingStatus{
		Operating: !isHoliday && open,
		Holiday:   isHoliday,
		Open:      open,
	}

	cal, err := s.resolver.Resolve(ctx, TargetBranch, branchID, at)
	if err != nil {
		// Calendário indeterminado não impede a resposta da situação operacional
		if errors.Is(err, ErrNoCalendarResolved) {
			return status, nil
		}
		return nil, err
	}

	status.Calendar = cal
	return status, nil
}
