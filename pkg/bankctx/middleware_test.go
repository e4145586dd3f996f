package bankctx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	valid bool
	err   error
}

func (s stubValidator) ValidateBank(bankID string) (bool, error) {
	return s.valid, s.err
}

func performRequest(validator BankValidator, bankID string) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(Middleware(validator))
	router.GET("/resource", func(c *gin.Context) {
		seen = GetBankID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	if bankID != "" {
		req.Header.Set("bank-id", bankID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, seen
}

func TestMiddlewareRequiresHeader(t *testing.T) {
	w, _ := performRequest(stubValidator{valid: true}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMiddlewareRejectsInvalidBank(t *testing.T) {
	w, _ := performRequest(stubValidator{valid: false}, "bank-1")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMiddlewareFailsOnValidatorError(t *testing.T) {
	w, _ := performRequest(stubValidator{err: errors.New("indisponível")}, "bank-1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMiddlewarePropagatesBankID(t *testing.T) {
	w, seen := performRequest(stubValidator{valid: true}, "bank-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bank-1", seen)
}

func TestBankIDContextRoundTrip(t *testing.T) {
	ctx := SetBankIDContext(context.Background(), "bank-1")
	assert.Equal(t, "bank-1", GetBankIDFromContext(ctx))

	assert.Empty(t, GetBankIDFromContext(context.Background()))
}
