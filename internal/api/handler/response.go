package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeAPIError escreve um erro já montado por apiErrors.FromError
func writeAPIError(w http.ResponseWriter, apiErr apiErrors.APIError) {
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// parseLimit lê ?limit=, aplicando o padrão e o máximo
func parseLimit(r *http.Request) (int, error) {
	value := r.URL.Query().Get("limit")
	if value == "" {
		return defaultListLimit, nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return 0, strconv.ErrSyntax
	}

	return min(limit, maxListLimit), nil
}
