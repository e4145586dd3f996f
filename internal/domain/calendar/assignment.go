package calendar

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCalendarID   = errors.New("ID do calendário não pode ser vazio")
	ErrEmptyTargetID     = errors.New("ID do alvo do vínculo não pode ser vazio")
	ErrInvalidTargetType = errors.New("tipo de alvo do vínculo é inválido")
	ErrInvalidWindow     = errors.New("vigência final deve ser posterior à vigência inicial")
)

// TargetType identifica o nível da hierarquia ao qual um calendário é vinculado
type TargetType string

const (
	TargetBranch     TargetType = "branch"
	TargetDepartment TargetType = "department"
	TargetPosition   TargetType = "position"
)

// Valid verifica se o tipo de alvo é um dos valores aceitos
func (t TargetType) Valid() bool {
	switch t {
	case TargetBranch, TargetDepartment, TargetPosition:
		return true
	}
	return false
}

// Assignment vincula um calendário de trabalho a exatamente um nó da
// hierarquia (agência, departamento ou cargo) por uma janela de vigência.
// EffectiveTo nulo significa vigência em aberto.
type Assignment struct {
	ID            string     `json:"id"`
	CalendarID    string     `json:"calendar_id"`
	BranchID      *string    `json:"branch_id,omitempty"`
	DepartmentID  *string    `json:"department_id,omitempty"`
	PositionID    *string    `json:"position_id,omitempty"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	CreatedBy     string     `json:"created_by"`
	UpdatedAt     time.Time  `json:"updated_at"`
	UpdatedBy     string     `json:"updated_by"`
}

// NewAssignment cria um novo vínculo de calendário. O alvo é sempre
// exatamente um nó da hierarquia; o tipo determina qual referência é
// preenchida.
func NewAssignment(calendarID string, targetType TargetType, targetID string, effectiveFrom time.Time, effectiveTo *time.Time, createdBy string) (*Assignment, error) {
	if calendarID == "" {
		return nil, ErrEmptyCalendarID
	}

	if !targetType.Valid() {
		return nil, ErrInvalidTargetType
	}

	if targetID == "" {
		return nil, ErrEmptyTargetID
	}

	if effectiveTo != nil && !effectiveTo.After(effectiveFrom) {
		return nil, ErrInvalidWindow
	}

	now := time.Now()
	a := &Assignment{
		ID:            uuid.New().String(),
		CalendarID:    calendarID,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		IsActive:      true,
		CreatedAt:     now,
		CreatedBy:     createdBy,
		UpdatedAt:     now,
		UpdatedBy:     createdBy,
	}

	switch targetType {
	case TargetBranch:
		a.BranchID = &targetID
	case TargetDepartment:
		a.DepartmentID = &targetID
	case TargetPosition:
		a.PositionID = &targetID
	}

	return a, nil
}

// TargetType retorna o nível da hierarquia ao qual o vínculo se refere
func (a *Assignment) TargetType() TargetType {
	switch {
	case a.BranchID != nil:
		return TargetBranch
	case a.DepartmentID != nil:
		return TargetDepartment
	default:
		return TargetPosition
	}
}

// TargetID retorna o ID do nó vinculado
func (a *Assignment) TargetID() string {
	switch {
	case a.BranchID != nil:
		return *a.BranchID
	case a.DepartmentID != nil:
		return *a.DepartmentID
	case a.PositionID != nil:
		return *a.PositionID
	}
	return ""
}

// Covers informa se o instante está dentro da janela de vigência [from, to)
func (a *Assignment) Covers(at time.Time) bool {
	if at.Before(a.EffectiveFrom) {
		return false
	}

	return a.EffectiveTo == nil || a.EffectiveTo.After(at)
}

// Overlaps informa se a janela [from, to) se sobrepõe à vigência do vínculo.
// Vigências em aberto se estendem indefinidamente a partir do início.
func (a *Assignment) Overlaps(from time.Time, to *time.Time) bool {
	// Este vínculo termina antes de a nova janela começar
	if a.EffectiveTo != nil && !a.EffectiveTo.After(from) {
		return false
	}

	// A nova janela termina antes de este vínculo começar
	if to != nil && !to.After(a.EffectiveFrom) {
		return false
	}

	return true
}

// Deactivate desativa o vínculo (soft delete)
func (a *Assignment) Deactivate(updatedBy string) {
	a.IsActive = false
	a.UpdatedAt = time.Now()
	a.UpdatedBy = updatedBy
}
