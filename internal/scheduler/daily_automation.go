package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/internal/config"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/internal/usecases/analyzing"
	"github.com/vfg2006/exterior-marketing/internal/usecases/contenting"
	"github.com/vfg2006/exterior-marketing/pkg/log"
	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

const dailyJobName = "daily_automation"

// ErrAlreadyRunning indica que uma execução diária já está em andamento
var ErrAlreadyRunning = errors.New("automação diária já em andamento")

// DailyAutomationConfig representa a configuração do agendador da automação diária
type DailyAutomationConfig struct {
	CronSchedule string
	OutputDir    string
	Enabled      bool
}

// DailyResult é o que uma execução da automação diária produziu
type DailyResult struct {
	StartedAt  time.Time                `json:"started_at"`
	Season     domain.SeasonName        `json:"season"`
	Post       *domain.GeneratedContent `json:"instagram_post"`
	EmailReply *domain.GeneratedContent `json:"email_reply"`
	Campaign   string                   `json:"campaign"`
	Dashboard  *domain.DashboardRun     `json:"dashboard"`
	Files      []string                 `json:"files"`
}

// DailyAutomationService agenda e executa a geração diária de conteúdo e dashboard
type DailyAutomationService struct {
	scheduler *gocron.Scheduler
	config    DailyAutomationConfig
	generator contenting.ContentGenerator
	analyzer  analyzing.Analyzer
	now       func() time.Time

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	lastResult      *DailyResult
}

func NewDailyAutomationService(
	generator contenting.ContentGenerator,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *DailyAutomationService {
	dailyConfig := DailyAutomationConfig{
		CronSchedule: appConfig.DailyAutomation.CronSchedule,
		OutputDir:    appConfig.DailyAutomation.OutputDir,
		Enabled:      appConfig.DailyAutomation.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": dailyConfig.CronSchedule,
		"output_dir":    dailyConfig.OutputDir,
		"enabled":       dailyConfig.Enabled,
	}).Info("Configuração da automação diária carregada")

	return &DailyAutomationService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    dailyConfig,
		generator: generator,
		analyzer:  analyzer,
		now:       time.Now,
	}
}

// WithClock substitui o relógio usado para a estação e o nome dos arquivos
func (s *DailyAutomationService) WithClock(now func() time.Time) *DailyAutomationService {
	s.now = now
	return s
}

// Start inicia o agendador
func (s *DailyAutomationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Automação diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da automação diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			logrus.WithError(err).Error("❌ Erro na automação diária")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar automação diária: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da automação diária")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa a automação diária de forma síncrona
func (s *DailyAutomationService) RunOnce(ctx context.Context) (*DailyResult, error) {
	if !s.acquire() {
		return nil, ErrAlreadyRunning
	}
	defer s.release()

	result, err := s.run(ctx)

	s.runMutex.Lock()
	s.lastCompletedAt = s.now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastResult = result
	}
	s.runMutex.Unlock()

	return result, err
}

func (s *DailyAutomationService) run(ctx context.Context) (*DailyResult, error) {
	startedAt := s.now()
	season := domain.CurrentSeason(startedAt)

	ctx, _ = log.EnsureCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("job", dailyJobName)

	logger.WithFields(log.Fields{
		"started_at": startedAt.Format(time.DateTime),
		"season":     season.Name,
	}).Info("🚀 Automação diária iniciada")

	if err := os.MkdirAll(s.config.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar diretório %s", s.config.OutputDir)
	}

	suffix := startedAt.Format("20060102")
	result := &DailyResult{
		StartedAt: startedAt,
		Season:    season.Name,
	}

	result.Post = s.generator.GenerateInstagramPost(ctx, season, domain.ContentTypeAuto)
	result.EmailReply = s.generator.BuildEmailReply(ctx, season, domain.SampleInquiry())
	result.Campaign = s.generator.SuggestCampaign(season)

	logger.WithFields(log.Fields{
		"content_type": result.Post.ContentType,
		"degraded":     result.Post.Degraded,
	}).Info("📱 Post do Instagram gerado")
	logger.WithField("degraded", result.EmailReply.Degraded).Info("✉️ Resposta automática de exemplo gerada")
	logger.WithField("campaign", result.Campaign).Info("🎯 Campanha sugerida para o mês")

	textFiles := []struct {
		name string
		body string
	}{
		{name: "instagram_post_" + suffix + ".txt", body: result.Post.Body},
		{name: "email_reply_" + suffix + ".txt", body: result.EmailReply.Body},
	}
	for _, file := range textFiles {
		path := filepath.Join(s.config.OutputDir, file.name)
		if err := os.WriteFile(path, []byte(file.body), 0o644); err != nil {
			return nil, errors.Wrapf(err, "erro ao gravar %s", path)
		}
		result.Files = append(result.Files, path)
	}

	dashboardPath := filepath.Join(s.config.OutputDir, "dashboard_"+suffix+".html")
	run, err := s.analyzer.RunAnalytics(ctx, dashboardPath)
	if err != nil {
		return nil, err
	}
	result.Dashboard = run.Run
	result.Files = append(result.Files, run.DashboardFile)
	if run.WorkbookFile != "" {
		result.Files = append(result.Files, run.WorkbookFile)
	}

	// o resumo lista apenas os arquivos gerados antes dele
	summaryPath := filepath.Join(s.config.OutputDir, "daily_"+suffix+".json")
	summary, err := utils.PrettyJson(result)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar resumo da automação diária")
	}
	if err := os.WriteFile(summaryPath, []byte(summary), 0o644); err != nil {
		return nil, errors.Wrapf(err, "erro ao gravar %s", summaryPath)
	}
	result.Files = append(result.Files, summaryPath)

	logger.WithField("files", len(result.Files)).Info("✅ Automação diária concluída")

	return result, nil
}

func (s *DailyAutomationService) acquire() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = s.now()
	return true
}

func (s *DailyAutomationService) release() {
	s.runMutex.Lock()
	s.running = false
	s.runMutex.Unlock()
}

// TriggerManualSync inicia a automação em segundo plano; retorna false se já houver uma em andamento
func (s *DailyAutomationService) TriggerManualSync(ctx context.Context) bool {
	s.runMutex.Lock()
	running := s.running
	s.runMutex.Unlock()

	if running {
		log.ForContext(ctx).Info("Automação diária já em andamento, ignorando solicitação manual")
		return false
	}

	log.ForContext(ctx).Info("Iniciando automação diária manual")
	go func() {
		if _, err := s.RunOnce(context.WithoutCancel(ctx)); err != nil {
			log.ForContext(ctx).WithError(err).Error("❌ Erro na automação diária manual")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailyAutomationService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"output_dir":        s.config.OutputDir,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
	}

	if s.lastResult != nil {
		status["last_files"] = s.lastResult.Files
	}

	return status
}
