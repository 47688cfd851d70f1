package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoppro/internal/delivery/http/response"
	domainerrors "shoppro/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Storage failures carry their own classification, so the response holds the
// generic detail string and never the driver's message.
func TestErrorMiddleware_DatabaseExecuteErrorHidesDriverText(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newTestErrorContext(t)

	raw := errors.New("pq: connection reset by peer (SQLSTATE 08006)")
	m.HandleHTTPError(domainerrors.NewDatabaseExecuteError(raw, "failed to begin transaction"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", body.Error.Code)
	assert.Equal(t, "failed to begin transaction", body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection reset by peer")
}

func TestErrorMiddleware_AppErrorUsesOwnStatus(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newTestErrorContext(t)

	m.HandleHTTPError(domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newTestErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}
