package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoCalendarResolved é retornado quando nenhum vínculo cobre o instante
// em nenhum nível da hierarquia e o banco não possui calendário padrão.
// Indica calendário indeterminado, não "fechado".
var ErrNoCalendarResolved = errors.New("nenhum calendário de trabalho resolvido para o alvo")

// HierarchyLookup resolve os vínculos de propriedade entre os nós da hierarquia
type HierarchyLookup interface {
	// PositionDepartment retorna o departamento ao qual o cargo pertence
	PositionDepartment(ctx context.Context, positionID string) (string, error)

	// DepartmentBranch retorna a agência à qual o departamento pertence
	DepartmentBranch(ctx context.Context, departmentID string) (string, error)

	// BranchBank retorna o banco ao qual a agência pertence
	BranchBank(ctx context.Context, branchID string) (string, error)
}

// Resolver determina o calendário de trabalho vigente para um nó da
// hierarquia em um instante, subindo cargo → departamento → agência e
// recorrendo por fim ao calendário padrão do banco.
type Resolver struct {
	calendars   Repository
	assignments AssignmentRepository
	hierarchy   HierarchyLookup
}

// NewResolver cria um novo resolvedor de calendários
func NewResolver(calendars Repository, assignments AssignmentRepository, hierarchy HierarchyLookup) *Resolver {
	return &Resolver{
		calendars:   calendars,
		assignments: assignments,
		hierarchy:   hierarchy,
	}
}

// Resolve retorna o calendário vigente para o alvo no instante informado
func (r *Resolver) Resolve(ctx context.Context, targetType TargetType, targetID string, at time.Time) (*WorkingCalendar, error) {
	if !targetType.Valid() {
		return nil, ErrInvalidTargetType
	}

	if targetID == "" {
		return nil, ErrEmptyTargetID
	}

	currentType := targetType
	currentID := targetID

	for {
		candidates, err := r.assignments.FindActiveAt(ctx, currentType, currentID, at)
		if err != nil {
			return nil, fmt.Errorf("falha ao buscar vínculos do alvo: %w", err)
		}

		if len(candidates) > 0 {
			winner := pickWinner(candidates)
			cal, err := r.calendars.FindByID(ctx, winner.CalendarID)
			if err != nil {
				return nil, fmt.Errorf("falha ao carregar calendário vinculado: %w", err)
			}
			return cal, nil
		}

		// Sem vínculo neste nível: sobe um degrau na hierarquia
		switch currentType {
		case TargetPosition:
			departmentID, err := r.hierarchy.PositionDepartment(ctx, currentID)
			if err != nil {
				return nil, fmt.Errorf("falha ao resolver departamento do cargo: %w", err)
			}
			currentType = TargetDepartment
			currentID = departmentID

		case TargetDepartment:
			branchID, err := r.hierarchy.DepartmentBranch(ctx, currentID)
			if err != nil {
				return nil, fmt.Errorf("falha ao resolver agência do departamento: %w", err)
			}
			currentType = TargetBranch
			currentID = branchID

		case TargetBranch:
			bankID, err := r.hierarchy.BranchBank(ctx, currentID)
			if err != nil {
				return nil, fmt.Errorf("falha ao resolver banco da agência: %w", err)
			}

			cal, err := r.calendars.FindDefaultByBank(ctx, bankID)
			if err != nil {
				if errors.Is(err, ErrNoDefault) {
					return nil, ErrNoCalendarResolved
				}
				return nil, fmt.Errorf("falha ao buscar calendário padrão do banco: %w", err)
			}
			return cal, nil
		}
	}
}

// pickWinner escolhe o vínculo vigente quando a validação de escrita não
// impediu sobreposição: vence a vigência inicial mais recente; empates são
// decididos pelo vínculo criado por último.
func pickWinner(candidates []*Assignment) *Assignment {
	winner := candidates[0]
	for _, c := range candidates[1:] {
		if c.EffectiveFrom.After(winner.EffectiveFrom) {
			winner = c
			continue
		}

		if c.EffectiveFrom.Equal(winner.EffectiveFrom) && c.CreatedAt.After(winner.CreatedAt) {
			winner = c
		}
	}
	return winner
}
