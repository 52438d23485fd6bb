package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/infrastructure/database/postgres"
	"github.com/vfg2006/exterior-marketing/infrastructure/report"
	"github.com/vfg2006/exterior-marketing/infrastructure/repository"
	"github.com/vfg2006/exterior-marketing/internal/api"
	"github.com/vfg2006/exterior-marketing/internal/api/handler"
	"github.com/vfg2006/exterior-marketing/internal/config"
	"github.com/vfg2006/exterior-marketing/internal/scheduler"
	"github.com/vfg2006/exterior-marketing/internal/usecases/analyzing"
	"github.com/vfg2006/exterior-marketing/internal/usecases/authenticating"
	"github.com/vfg2006/exterior-marketing/internal/usecases/contenting"
	"github.com/vfg2006/exterior-marketing/pkg/log"
	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

func main() {
	configureWorkdir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())
	logCredentials(cfg.Credentials)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	random := utils.NewTimeSeededRandom()
	htmlRenderer := report.NewHTMLRenderer()

	generator := contenting.NewService(cfg.BusinessProfile(), random)
	analyzer := analyzing.NewService(cfg, random, htmlRenderer)
	if cfg.Dashboard.Workbook {
		analyzer.WithWorkbook(report.NewWorkbookRenderer())
	}

	// O histórico só é habilitado com banco configurado
	var database handler.DatabasePinger
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		database = pgConn

		generator.WithHistory(repository.NewContentRepository(pgConn))
		analyzer.WithHistory(repository.NewDashboardRunRepository(pgConn))
	} else {
		logrus.Info("Banco de dados desabilitado, histórico de conteúdos e dashboards indisponível")
	}

	authenticator := authenticating.NewService(cfg)

	dailyAutomation := scheduler.NewDailyAutomationService(generator, analyzer, cfg)
	if err := dailyAutomation.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da automação diária")
	} else {
		logrus.Info("Agendador da automação diária iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:   authenticator,
		Generator:       generator,
		Analyzer:        analyzer,
		Renderer:        htmlRenderer,
		DailyAutomation: dailyAutomation,
		Database:        database,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureWorkdir muda para o diretório do binário para que o .env seja encontrado
func configureWorkdir() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// logCredentials registra apenas se as chaves existem; elas nunca são usadas
func logCredentials(credentials config.Credentials) {
	logrus.WithFields(logrus.Fields{
		"openai_api_key": credentials.OpenAIAPIKey != "",
		"github_token":   credentials.GithubToken != "",
	}).Debug("Credenciais carregadas do ambiente")
}

// pgconn cria uma conexão com o banco de dados e aplica o schema
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema no PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
