package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAppError_Constructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		typ    ErrorType
		status int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("node"), ErrorTypeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorizedError(""), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError(""), ErrorTypeForbidden, http.StatusForbidden},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"timeout", NewTimeoutError("score"), ErrorTypeTimeout, http.StatusRequestTimeout},
		{"rate limit", NewRateLimitError(10, "1m"), ErrorTypeRateLimit, http.StatusTooManyRequests},
		{"unavailable", NewUnavailableError("engine"), ErrorTypeUnavailable, http.StatusServiceUnavailable},
		{"model", NewModelError("model.yaml", errors.New("eof")), ErrorTypeModel, http.StatusInternalServerError},
		{"external", NewExternalError("eventbridge", errors.New("503")), ErrorTypeExternal, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.StackTrace)
			assert.True(t, IsType(tt.err, tt.typ))
		})
	}

	assert.Equal(t, "NOT_FOUND: node not found", NewNotFoundError("node").Error())
	assert.Equal(t, "rate limit exceeded: 10 requests per 1m", NewRateLimitError(10, "1m").Message)
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "ctx"))
	})

	t.Run("app error keeps type", func(t *testing.T) {
		err := Wrap(NewNotFoundError("patient"), "lookup")
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "lookup: patient not found", GetAppError(err).Message)
	})

	t.Run("validation errors collapse", func(t *testing.T) {
		verrs := NewValidationErrors()
		verrs.Add("sbp", "must be positive")
		err := Wrap(verrs, "visit 2")

		require.True(t, IsValidation(err))
		appErr := GetAppError(err)
		require.NotNil(t, appErr)
		assert.Contains(t, appErr.Message, "visit 2")
		assert.Equal(t, map[string][]string{"sbp": {"must be positive"}}, appErr.Details["fields"])
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		cause := errors.New("disk")
		err := Wrapf(cause, "load %s", "model")
		assert.True(t, IsType(err, ErrorTypeInternal))
		assert.ErrorIs(t, err, cause)
	})
}

func TestDomainError_SentinelsAreNotMutated(t *testing.T) {
	cause := errors.New("cycle via ldl")
	err := ErrCyclicGraph.WithCause(cause).WithDetail("node", "ldl")

	assert.ErrorIs(t, err, ErrCyclicGraph)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, ErrCyclicGraph.Cause)
	assert.Empty(t, ErrCyclicGraph.Details)
	assert.Equal(t, "ldl", err.Details["node"])
	assert.False(t, errors.Is(err, ErrUnknownNode))
	assert.Equal(t, http.StatusNotFound, ErrUnknownPatient.StatusCode)
}

func TestValidationErrors(t *testing.T) {
	verrs := NewValidationErrors()
	assert.False(t, verrs.HasErrors())
	assert.Empty(t, verrs.Error())

	verrs.Add("sbp", "required")
	verrs.Add("sbp", "must be positive")
	verrs.AddError(NewDomainError(DomainValidationError, "X", "detached"))

	assert.True(t, verrs.HasErrors())
	assert.Equal(t, "Validation failed: required; must be positive; detached", verrs.Error())
	assert.Equal(t, map[string][]string{
		"sbp":     {"required", "must be positive"},
		"general": {"detached"},
	}, verrs.ToMap())
	assert.True(t, IsValidation(fmt.Errorf("outer: %w", verrs)))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandler_Handle(t *testing.T) {
	verrs := NewValidationErrors()
	verrs.Add("ldl", "must be finite")

	tests := []struct {
		name    string
		err     error
		status  int
		typ     string
		message string
	}{
		{"validation errors", verrs, http.StatusBadRequest, "VALIDATION", "Validation failed: must be finite"},
		{"app error", NewNotFoundError("node"), http.StatusNotFound, "NOT_FOUND", "node not found"},
		{"domain error", ErrUnknownPatient, http.StatusNotFound, "NOT_FOUND", "The requested demo patient does not exist"},
		{"wrapped domain error", fmt.Errorf("demo: %w", ErrUnknownNode), http.StatusBadRequest, "VALIDATION_ERROR", "The node is not part of the model"},
		{"unknown error", errors.New("secret detail"), http.StatusInternalServerError, "INTERNAL", "An internal error occurred"},
	}

	h := NewErrorHandler(zaptest.NewLogger(t), false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/graph", nil)
			req.Header.Set("X-Request-ID", "req-1")
			rec := httptest.NewRecorder()

			h.Handle(rec, req, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			resp := decodeResponse(t, rec)
			assert.True(t, resp.Error)
			assert.Equal(t, tt.typ, resp.Type)
			assert.Equal(t, tt.message, resp.Message)
			assert.Equal(t, "req-1", resp.RequestID)
		})
	}

	t.Run("validation details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/", nil), verrs)
		resp := decodeResponse(t, rec)
		fields, ok := resp.Details["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, []interface{}{"must be finite"}, fields["ldl"])
	})

	t.Run("debug exposes internals", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewErrorHandler(nil, true).Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret detail"))
		assert.Equal(t, "secret detail", decodeResponse(t, rec).Message)
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestErrorHandler_HandleStatus(t *testing.T) {
	h := NewErrorHandler(zaptest.NewLogger(t), false)
	for status, typ := range map[int]string{
		http.StatusNotFound:         "NOT_FOUND",
		http.StatusMethodNotAllowed: "INTERNAL",
		http.StatusTooManyRequests:  "RATE_LIMIT",
	} {
		rec := httptest.NewRecorder()
		h.HandleStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil), status, "nope")
		assert.Equal(t, status, rec.Code)
		assert.Equal(t, typ, decodeResponse(t, rec).Type)
	}
}

func TestErrorHandler_MiddlewareRecoversPanics(t *testing.T) {
	h := NewErrorHandler(zaptest.NewLogger(t), false)
	handler := h.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "INTERNAL", resp.Type)
	assert.Equal(t, "panic: test panic", resp.Message)
}
