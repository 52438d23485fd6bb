package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/pkg/apiErrors"
)

const healthcheckTimeout = 2 * time.Second

// DatabasePinger verifica a conexão com o banco de histórico
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual. Com banco habilitado, db é verificado antes.
func HealthcheckHandler(db DatabasePinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Error("Healthcheck: banco de dados indisponível")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseUnavailable, "Banco de dados indisponível", nil)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
