package bankctx

import (
	"context"
)

type contextKey string

const (
	// bankIDKey é a chave usada para armazenar o ID do banco no contexto
	bankIDKey contextKey = "bank_id"
)

// SetBankIDContext define o ID do banco no contexto
func SetBankIDContext(ctx context.Context, bankID string) context.Context {
	return context.WithValue(ctx, bankIDKey, bankID)
}

// GetBankIDFromContext obtém o ID do banco do contexto
func GetBankIDFromContext(ctx context.Context) string {
	if bankID, ok := ctx.Value(bankIDKey).(string); ok {
		return bankID
	}
	return ""
}

// GetBankID obtém o ID do banco de um contexto do Gin
func GetBankID(c interface{}) string {
	if gc, ok := c.(interface{ GetString(string) string }); ok {
		return gc.GetString("bank_id")
	}

	if gc, ok := c.(interface {
		Get(string) (interface{}, bool)
	}); ok {
		if val, exists := gc.Get("bank_id"); exists {
			if bankID, ok := val.(string); ok {
				return bankID
			}
		}
	}

	return ""
}
