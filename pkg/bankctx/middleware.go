package bankctx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
)

// BankValidator define a interface para validação do banco informado no cabeçalho
type BankValidator interface {
	ValidateBank(bankID string) (bool, error)
}

// Middleware cria um middleware que exige o cabeçalho bank-id e valida o
// banco antes de liberar as rotas com escopo de banco
func Middleware(validator BankValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		bankID := c.GetHeader("bank-id")
		if bankID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"ID do banco não fornecido",
				"O cabeçalho 'bank-id' é obrigatório",
			))
			return
		}

		valid, err := validator.ValidateBank(bankID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Erro ao validar banco",
				err.Error(),
			))
			return
		}

		if !valid {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Banco inválido",
				"O banco informado não existe ou está inativo",
			))
			return
		}

		c.Set("bank_id", bankID)
		c.Request = c.Request.WithContext(SetBankIDContext(c.Request.Context(), bankID))

		c.Next()
	}
}
