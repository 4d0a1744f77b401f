package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContext_ReturnsScopedLogger(t *testing.T) {
	c := newTestContext()
	scoped := zap.NewNop()
	c.Set("logger", scoped)

	assert.Same(t, scoped, FromContext(c))
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	c := newTestContext()

	assert.NotNil(t, FromContext(c))
}
