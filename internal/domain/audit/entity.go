package audit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyScope      = errors.New("registro de auditoria deve pertencer a um banco ou a uma agência")
	ErrEmptyEntityName = errors.New("nome da entidade auditada não pode ser vazio")
	ErrInvalidAction   = errors.New("ação de auditoria inválida")
)

// Action representa a ação registrada na trilha de auditoria
type Action string

const (
	ActionCreate     Action = "CREATE"
	ActionUpdate     Action = "UPDATE"
	ActionDelete     Action = "DELETE"
	ActionActivate   Action = "ACTIVATE"
	ActionDeactivate Action = "DEACTIVATE"
	ActionAssign     Action = "ASSIGN"
)

// Valid verifica se a ação é um dos valores aceitos
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionActivate, ActionDeactivate, ActionAssign:
		return true
	}
	return false
}

// Log representa um registro imutável da trilha de auditoria. Registros são
// somente inseridos; nunca são alterados ou removidos.
type Log struct {
	ID         string                 `json:"id"`
	BankID     *string                `json:"bank_id,omitempty"`
	BranchID   *string                `json:"branch_id,omitempty"`
	Action     Action                 `json:"action"`
	EntityName string                 `json:"entity_name"`
	EntityID   string                 `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	IPAddress  string                 `json:"ip_address"`
	UserID     string                 `json:"user_id"`
	CreatedAt  time.Time              `json:"created_at"` // Atribuído pelo servidor no registro
}

// NewBankLog cria um registro de auditoria no escopo de um banco
func NewBankLog(bankID string, action Action, entityName, entityID string, metadata map[string]interface{}, ipAddress, userID string) (*Log, error) {
	if bankID == "" {
		return nil, ErrEmptyScope
	}

	return newLog(&bankID, nil, action, entityName, entityID, metadata, ipAddress, userID)
}

// NewBranchLog cria um registro de auditoria no escopo de uma agência
func NewBranchLog(branchID string, action Action, entityName, entityID string, metadata map[string]interface{}, ipAddress, userID string) (*Log, error) {
	if branchID == "" {
		return nil, ErrEmptyScope
	}

	return newLog(nil, &branchID, action, entityName, entityID, metadata, ipAddress, userID)
}

func newLog(bankID, branchID *string, action Action, entityName, entityID string, metadata map[string]interface{}, ipAddress, userID string) (*Log, error) {
	if !action.Valid() {
		return nil, ErrInvalidAction
	}

	if entityName == "" {
		return nil, ErrEmptyEntityName
	}

	return &Log{
		ID:         uuid.New().String(),
		BankID:     bankID,
		BranchID:   branchID,
		Action:     action,
		EntityName: entityName,
		EntityID:   entityID,
		Metadata:   metadata,
		IPAddress:  ipAddress,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}, nil
}
