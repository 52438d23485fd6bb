package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/exterior-marketing/pkg/apiErrors"
	"github.com/vfg2006/exterior-marketing/pkg/log"
	"github.com/vfg2006/exterior-marketing/pkg/middleware"
)

// DailyAutomation é a parte do agendador exposta pela API
type DailyAutomation interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunDailyAutomation dispara manualmente a automação diária
func RunDailyAutomation(service DailyAutomation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedBy := ""
		if claims, ok := middleware.OperatorFromContext(r.Context()); ok {
			requestedBy = claims.OperatorEmail
		}
		log.ForContext(r.Context()).WithField("operator_email", requestedBy).Info("INIT - RunDailyAutomation")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrFeatureDisabled, "Automação diária não disponível", nil)
			return
		}

		if !service.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Automação diária já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message":      "Automação diária iniciada com sucesso",
			"requested_by": requestedBy,
		})
	}
}

// GetCronStatus retorna o status da automação diária
func GetCronStatus(service DailyAutomation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrFeatureDisabled, "Automação diária não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"daily": service.GetStatus(),
		})
	}
}
