package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		status int
	}{
		{name: "credenciais", code: ErrInvalidCredentials, status: http.StatusUnauthorized},
		{name: "validação", code: ErrInvalidRequest, status: http.StatusBadRequest},
		{name: "recurso desabilitado", code: ErrFeatureDisabled, status: http.StatusNotImplemented},
		{name: "execução em andamento", code: ErrJobRunning, status: http.StatusConflict},
		{name: "falha de escrita", code: ErrWriteFailure, status: http.StatusInternalServerError},
		{name: "banco indisponível", code: ErrDatabaseUnavailable, status: http.StatusServiceUnavailable},
		{name: "código desconhecido", code: "XYZ_999", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)

	apiErr := FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
