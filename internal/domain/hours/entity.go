package hours

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBranchID    = errors.New("ID da agência não pode ser vazio")
	ErrInvalidDayOfWeek = errors.New("dia da semana inválido")
	ErrInvalidTime      = errors.New("horário inválido, use o formato HH:MM")
	ErrMissingTimes     = errors.New("horários de abertura e fechamento são obrigatórios quando a agência não está fechada")
)

// DayOfWeek representa o dia da semana de um horário de funcionamento
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Valid verifica se o dia da semana é um dos valores aceitos
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// FromWeekday converte um time.Weekday para DayOfWeek
func FromWeekday(w time.Weekday) DayOfWeek {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Previous retorna o dia anterior da semana
func (d DayOfWeek) Previous() DayOfWeek {
	switch d {
	case Monday:
		return Sunday
	case Tuesday:
		return Monday
	case Wednesday:
		return Tuesday
	case Thursday:
		return Wednesday
	case Friday:
		return Thursday
	case Saturday:
		return Friday
	default:
		return Saturday
	}
}

// BranchHours representa o horário de funcionamento de uma agência em um dia da semana.
// Existe no máximo um registro por par (agência, dia).
type BranchHours struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	DayOfWeek DayOfWeek `json:"day_of_week"`
	OpenTime  string    `json:"open_time"`  // Formato HH:MM; vazio quando IsClosed
	CloseTime string    `json:"close_time"` // Formato HH:MM; vazio quando IsClosed
	IsClosed  bool      `json:"is_closed"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// NewBranchHours cria um horário de funcionamento para um dia da semana
func NewBranchHours(branchID string, day DayOfWeek, openTime, closeTime string, isClosed bool, createdBy string) (*BranchHours, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if !day.Valid() {
		return nil, ErrInvalidDayOfWeek
	}

	if isClosed {
		// Quando fechado, os horários são ignorados
		openTime = ""
		closeTime = ""
	} else {
		if openTime == "" || closeTime == "" {
			return nil, ErrMissingTimes
		}
		if _, err := MinuteOfDay(openTime); err != nil {
			return nil, err
		}
		if _, err := MinuteOfDay(closeTime); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	return &BranchHours{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		DayOfWeek: day,
		OpenTime:  openTime,
		CloseTime: closeTime,
		IsClosed:  isClosed,
		CreatedAt: now,
		CreatedBy: createdBy,
		UpdatedAt: now,
		UpdatedBy: createdBy,
	}, nil
}

// MinuteOfDay converte um horário HH:MM em minutos desde a meia-noite
func MinuteOfDay(s string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, ErrInvalidTime
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTime
	}

	return hour*60 + minute, nil
}

// IsOvernight informa se a janela atravessa a meia-noite (fechamento <= abertura)
func (h *BranchHours) IsOvernight() bool {
	if h.IsClosed {
		return false
	}

	open, err1 := MinuteOfDay(h.OpenTime)
	close, err2 := MinuteOfDay(h.CloseTime)
	if err1 != nil || err2 != nil {
		return false
	}

	return close <= open
}

// CoversMinute informa se a janela deste dia cobre o minuto local informado,
// no intervalo [abertura, fechamento). Para janelas que atravessam a meia-noite,
// cobre apenas o trecho antes da meia-noite; o trecho da madrugada pertence
// ao registro do dia anterior (ver CoversSpillMinute).
func (h *BranchHours) CoversMinute(minute int) bool {
	if h.IsClosed {
		return false
	}

	open, err1 := MinuteOfDay(h.OpenTime)
	close, err2 := MinuteOfDay(h.CloseTime)
	if err1 != nil || err2 != nil {
		return false
	}

	if close <= open {
		return minute >= open
	}

	return minute >= open && minute < close
}

// CoversSpillMinute informa se a janela do dia anterior, atravessando a
// meia-noite, cobre o minuto local do dia seguinte
func (h *BranchHours) CoversSpillMinute(minute int) bool {
	if !h.IsOvernight() {
		return false
	}

	close, err := MinuteOfDay(h.CloseTime)
	if err != nil {
		return false
	}

	return minute < close
}
