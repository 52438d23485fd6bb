package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/internal/usecases/analyzing"
	"github.com/vfg2006/exterior-marketing/pkg/apiErrors"
)

// DashboardRenderer escreve o relatório como HTML
type DashboardRenderer interface {
	Render(w io.Writer, report *domain.DashboardReport) error
}

// GetDashboard gera um relatório novo e responde com o HTML
func GetDashboard(service analyzing.Analyzer, renderer DashboardRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := service.GenerateDashboard()

		var buf bytes.Buffer
		if err := renderer.Render(&buf, report); err != nil {
			logrus.WithError(err).Error("Erro ao renderizar dashboard")
			apiErrors.WriteError(w, apiErrors.ErrWriteFailure, "Erro ao renderizar dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar dashboard")
		}
	}
}

// GetDashboardMetrics responde com o relatório em JSON
func GetDashboardMetrics(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GenerateDashboard())
	}
}

// ListDashboardRuns lista as últimas execuções gravadas
func ListDashboardRuns(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		runs, err := service.ListRuns(r.Context(), limit)
		if err != nil {
			if errors.Is(err, analyzing.ErrHistoryDisabled) {
				writeAPIError(w, apiErrors.FromError(err, apiErrors.ErrFeatureDisabled))
				return
			}
			logrus.WithError(err).Error("Erro ao listar execuções do dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções do dashboard", nil)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}
