package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/internal/api/handler"
	"github.com/vfg2006/exterior-marketing/internal/api/handler/router"
	"github.com/vfg2006/exterior-marketing/internal/config"
	"github.com/vfg2006/exterior-marketing/internal/usecases/analyzing"
	"github.com/vfg2006/exterior-marketing/internal/usecases/authenticating"
	"github.com/vfg2006/exterior-marketing/internal/usecases/contenting"
	"github.com/vfg2006/exterior-marketing/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne as dependências expostas pela API
type Services struct {
	Authenticator   authenticating.Authenticator
	Generator       contenting.ContentGenerator
	Analyzer        analyzing.Analyzer
	Renderer        handler.DashboardRenderer
	DailyAutomation handler.DailyAutomation
	Database        handler.DatabasePinger
	Now             func() time.Time
}

// NewHandler monta o router com todos os middlewares
func NewHandler(services Services) http.Handler {
	now := services.Now
	if now == nil {
		now = time.Now
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Analyzer, services.Renderer)...),
		router.WithRoutes(handler.Contents(services.Generator, now)...),
		router.WithRoutes(handler.Season(now)...),
		router.WithRoutes(handler.CronJobs(services.DailyAutomation)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
