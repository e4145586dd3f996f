package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("bank-1", "Maria Silva", "maria@banco.example", "senha-secreta", RoleManager)
	require.NoError(t, err)

	assert.Equal(t, "bank-1", u.BankID)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "senha-secreta", u.Password) // sempre armazenada em hash
	assert.True(t, u.CheckPassword("senha-secreta"))
	assert.False(t, u.CheckPassword("outra-senha"))
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "Maria Silva", "maria@banco.example", "senha-secreta", RoleManager)
	assert.ErrorIs(t, err, ErrEmptyBankID)

	_, err = NewUser("bank-1", "", "maria@banco.example", "senha-secreta", RoleManager)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("bank-1", "Maria Silva", "", "senha-secreta", RoleManager)
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewUser("bank-1", "Maria Silva", "maria@banco.example", "curta", RoleManager)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestHasAccessToBank(t *testing.T) {
	manager, err := NewUser("bank-1", "Maria Silva", "maria@banco.example", "senha-secreta", RoleManager)
	require.NoError(t, err)

	assert.True(t, manager.HasAccessToBank("bank-1"))
	assert.False(t, manager.HasAccessToBank("bank-2"))

	admin, err := NewUser("bank-1", "João Souza", "joao@banco.example", "senha-secreta", RoleAdmin)
	require.NoError(t, err)

	// Administradores têm acesso a todos os bancos
	assert.True(t, admin.HasAccessToBank("bank-2"))
}
