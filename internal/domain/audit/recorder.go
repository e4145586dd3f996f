package audit

import (
	"context"

	"github.com/hugohenrick/banking-org/pkg/logger"
)

// Recorder registra eventos de auditoria em melhor esforço: uma falha na
// escrita da trilha é registrada em log, mas não desfaz a operação primária.
type Recorder struct {
	repository Repository
	log        logger.Logger
}

// NewRecorder cria um novo registrador de auditoria
func NewRecorder(repository Repository, log logger.Logger) *Recorder {
	return &Recorder{
		repository: repository,
		log:        log,
	}
}

// RecordBank registra um evento no escopo de um banco
func (r *Recorder) RecordBank(ctx context.Context, bankID string, action Action, entityName, entityID string, metadata map[string]interface{}, ipAddress, userID string) {
	entry, err := NewBankLog(bankID, action, entityName, entityID, metadata, ipAddress, userID)
	r.record(ctx, entry, err)
}

// RecordBranch registra um evento no escopo de uma agência
func (r *Recorder) RecordBranch(ctx context.Context, branchID string, action Action, entityName, entityID string, metadata map[string]interface{}, ipAddress, userID string) {
	entry, err := NewBranchLog(branchID, action, entityName, entityID, metadata, ipAddress, userID)
	r.record(ctx, entry, err)
}

func (r *Recorder) record(ctx context.Context, entry *Log, err error) {
	if err != nil {
		r.log.Error("falha ao montar registro de auditoria", "error", err)
		return
	}

	if recordErr := r.repository.Record(ctx, entry); recordErr != nil {
		r.log.Error("falha ao gravar registro de auditoria",
			"entity", entry.EntityName,
			"entity_id", entry.EntityID,
			"action", string(entry.Action),
			"error", recordErr,
		)
	}
}
