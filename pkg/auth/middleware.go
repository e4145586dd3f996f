package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/dto"
)

// Middleware é o middleware de autenticação por token JWT
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token não informado", ""))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", ""))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
			return
		}

		// Disponibilizar as claims para controllers e auditoria
		c.Set("user_id", claims.UserID)
		c.Set("user_bank_id", claims.BankID)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// UserID obtém o ID do usuário autenticado de um contexto do Gin
func UserID(c *gin.Context) string {
	return c.GetString("user_id")
}
