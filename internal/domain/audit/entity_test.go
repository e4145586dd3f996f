package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBankLog(t *testing.T) {
	l, err := NewBankLog("bank-1", ActionCreate, "division", "division-1",
		map[string]interface{}{"code": "DIR-01"}, "10.0.0.1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, l.BankID)
	assert.Equal(t, "bank-1", *l.BankID)
	assert.Nil(t, l.BranchID)
	assert.Equal(t, ActionCreate, l.Action)
	assert.False(t, l.CreatedAt.IsZero())

	_, err = NewBankLog("", ActionCreate, "division", "division-1", nil, "", "")
	assert.ErrorIs(t, err, ErrEmptyScope)
}

func TestNewBranchLog(t *testing.T) {
	l, err := NewBranchLog("branch-1", ActionUpdate, "branch_hours", "hours-1", nil, "10.0.0.1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, l.BranchID)
	assert.Equal(t, "branch-1", *l.BranchID)
	assert.Nil(t, l.BankID)

	_, err = NewBranchLog("", ActionUpdate, "branch_hours", "hours-1", nil, "", "")
	assert.ErrorIs(t, err, ErrEmptyScope)
}

func TestNewLogValidation(t *testing.T) {
	_, err := NewBankLog("bank-1", Action("DROP"), "division", "division-1", nil, "", "")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = NewBankLog("bank-1", ActionCreate, "", "division-1", nil, "", "")
	assert.ErrorIs(t, err, ErrEmptyEntityName)
}

func TestActionValid(t *testing.T) {
	for _, a := range []Action{ActionCreate, ActionUpdate, ActionDelete, ActionActivate, ActionDeactivate, ActionAssign} {
		assert.True(t, a.Valid(), string(a))
	}
	assert.False(t, Action("TRUNCATE").Valid())
}

type recordingRepository struct {
	logs []*Log
	err  error
}

func (r *recordingRepository) Record(ctx context.Context, l *Log) error {
	if r.err != nil {
		return r.err
	}
	r.logs = append(r.logs, l)
	return nil
}

func (r *recordingRepository) ListByBank(ctx context.Context, bankID string, from, to *time.Time, limit, offset int) ([]*Log, error) {
	return r.logs, nil
}

func (r *recordingRepository) ListByBranch(ctx context.Context, branchID string, from, to *time.Time, limit, offset int) ([]*Log, error) {
	return r.logs, nil
}

func (r *recordingRepository) CountByBank(ctx context.Context, bankID string, from, to *time.Time) (int, error) {
	return len(r.logs), nil
}

func (r *recordingRepository) CountByBranch(ctx context.Context, branchID string, from, to *time.Time) (int, error) {
	return len(r.logs), nil
}

type silentLogger struct{}

func (silentLogger) Info(msg string, keysAndValues ...interface{})  {}
func (silentLogger) Error(msg string, keysAndValues ...interface{}) {}
func (silentLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (silentLogger) Warn(msg string, keysAndValues ...interface{})  {}

func TestRecorderRecordsBankEvent(t *testing.T) {
	repo := &recordingRepository{}
	recorder := NewRecorder(repo, silentLogger{})

	recorder.RecordBank(context.Background(), "bank-1", ActionCreate, "division", "division-1", nil, "10.0.0.1", "user-1")

	require.Len(t, repo.logs, 1)
	assert.Equal(t, "division", repo.logs[0].EntityName)
}

func TestRecorderSwallowsFailures(t *testing.T) {
	repo := &recordingRepository{err: errors.New("indisponível")}
	recorder := NewRecorder(repo, silentLogger{})

	// A falha na trilha não pode propagar para a operação primária
	recorder.RecordBranch(context.Background(), "branch-1", ActionUpdate, "branch_hours", "hours-1", nil, "", "")
	assert.Empty(t, repo.logs)
}

func TestRecorderIgnoresInvalidEntry(t *testing.T) {
	repo := &recordingRepository{}
	recorder := NewRecorder(repo, silentLogger{})

	recorder.RecordBank(context.Background(), "", ActionCreate, "division", "division-1", nil, "", "")
	assert.Empty(t, repo.logs)
}
