package analyzing

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/exterior-marketing/infrastructure/repository"
	"github.com/vfg2006/exterior-marketing/internal/config"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/pkg/log"
	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

const (
	maxDailySales = 3
	minSaleAmount = 300000  // 30万円
	maxSaleAmount = 2000000 // 200万円
)

// ErrHistoryDisabled indica que o histórico de execuções não foi configurado
var ErrHistoryDisabled = errors.New("histórico de dashboards desabilitado")

// RunResult é o resultado de uma execução completa da análise
type RunResult struct {
	Report        *domain.DashboardReport
	DashboardFile string
	WorkbookFile  string
	Run           *domain.DashboardRun
}

type Service struct {
	services      []string
	marketingCost int64
	adBudget      int64
	sampleDays    int
	random        Randomizer
	now           func() time.Time

	dashboardWriter DashboardWriter
	workbookWriter  WorkbookWriter

	runRepository repository.DashboardRunRepository
	useHistory    bool
}

var _ Analyzer = (*Service)(nil)

func NewService(cfg *config.Config, random Randomizer, dashboardWriter DashboardWriter) *Service {
	return &Service{
		services:        cfg.Business.Services,
		marketingCost:   cfg.Dashboard.MarketingCost,
		adBudget:        cfg.Dashboard.AdBudget,
		sampleDays:      cfg.Dashboard.SampleDays,
		random:          random,
		now:             time.Now,
		dashboardWriter: dashboardWriter,
	}
}

// WithWorkbook habilita a exportação da planilha junto com o HTML
func (s *Service) WithWorkbook(writer WorkbookWriter) *Service {
	s.workbookWriter = writer
	return s
}

// WithHistory habilita o registro de cada execução no banco
func (s *Service) WithHistory(runRepo repository.DashboardRunRepository) *Service {
	s.runRepository = runRepo
	s.useHistory = runRepo != nil
	return s
}

// WithClock substitui o relógio usado para o período e a data de geração
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GenerateSampleData(now time.Time) domain.SampleData {
	start := now.AddDate(0, 0, -s.sampleDays)
	sales := make([]domain.SaleRecord, 0, s.sampleDays*maxDailySales)

	for day := 0; day < s.sampleDays; day++ {
		date := start.AddDate(0, 0, day)
		dailySales := s.random.IntN(maxDailySales + 1)

		for i := 0; i < dailySales; i++ {
			sales = append(sales, domain.SaleRecord{
				Date:    date,
				Service: s.services[s.random.IntN(len(s.services))],
				Amount:  s.random.Int64Range(minSaleAmount, maxSaleAmount),
				Channel: domain.SalesChannels[s.random.IntN(len(domain.SalesChannels))],
			})
		}
	}

	return domain.SampleData{
		PeriodStart:   start,
		Sales:         sales,
		Platforms:     domain.SamplePlatformMetrics(),
		MarketingCost: s.marketingCost,
	}
}

func (s *Service) BuildReport(sample domain.SampleData, now time.Time) *domain.DashboardReport {
	totalSales := domain.TotalSales(sample.Sales)

	return &domain.DashboardReport{
		PeriodStart:      sample.PeriodStart,
		PeriodEnd:        now,
		GeneratedAt:      now,
		Sales:            sample.Sales,
		SalesByChannel:   domain.SalesByChannel(sample.Sales),
		TotalSales:       totalSales,
		MarketingCost:    sample.MarketingCost,
		ROI:              domain.CalculateROI(totalSales, sample.MarketingCost),
		Contracts:        len(sample.Sales),
		TotalReach:       domain.TotalReach(sample.Platforms),
		Platforms:        AnalyzeSNSPerformance(sample.Platforms, s.adBudget),
		OptimalPostTimes: domain.OptimalPostTimes(),
		Journey:          domain.CustomerJourney(),
	}
}

// AnalyzeSNSPerformance calcula as taxas de cada plataforma mantendo a ordem de entrada
func AnalyzeSNSPerformance(platforms []domain.PlatformMetrics, budget int64) []domain.PlatformPerformance {
	performance := make([]domain.PlatformPerformance, len(platforms))
	for i, platform := range platforms {
		performance[i] = domain.PlatformPerformance{
			Metrics: platform,
			Rates:   domain.CalculatePlatformRates(platform, budget),
		}
	}
	return performance
}

func (s *Service) GenerateDashboard() *domain.DashboardReport {
	now := s.now()
	return s.BuildReport(s.GenerateSampleData(now), now)
}

func (s *Service) RunAnalytics(ctx context.Context, outputPath string) (*RunResult, error) {
	report := s.GenerateDashboard()

	log.ForContext(ctx).WithFields(log.Fields{
		"period_start": report.PeriodStart.Format(time.DateOnly),
		"period_end":   report.PeriodEnd.Format(time.DateOnly),
	}).Info("🚀 Iniciando análise do dashboard")

	if err := s.dashboardWriter.SaveDashboard(report, outputPath); err != nil {
		return nil, err
	}

	result := &RunResult{
		Report:        report,
		DashboardFile: outputPath,
	}

	if s.workbookWriter != nil {
		workbookPath := WorkbookPath(outputPath)
		if err := s.workbookWriter.SaveWorkbook(report, workbookPath); err != nil {
			return nil, err
		}
		result.WorkbookFile = workbookPath
	}

	result.Run = s.recordRun(ctx, report, outputPath)

	logSummary(ctx, report)

	return result, nil
}

func (s *Service) ListRuns(ctx context.Context, limit int) ([]*domain.DashboardRun, error) {
	if !s.useHistory {
		return nil, ErrHistoryDisabled
	}
	return s.runRepository.ListRecent(ctx, limit)
}

func (s *Service) recordRun(ctx context.Context, report *domain.DashboardReport, outputPath string) *domain.DashboardRun {
	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gerar ID da execução do dashboard")
	}

	run := report.Summary(id, outputPath)
	if !s.useHistory {
		return run
	}

	if err := s.runRepository.Save(ctx, run); err != nil {
		log.ForContext(ctx).WithError(err).WithField("run_id", run.ID).Warn("Erro ao salvar execução do dashboard")
	}

	return run
}

// WorkbookPath troca a extensão do arquivo HTML por .xlsx
func WorkbookPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".xlsx"
}

func logSummary(ctx context.Context, report *domain.DashboardReport) {
	logger := log.ForContext(ctx)

	logger.WithFields(log.Fields{
		"total_sales": utils.FormatYen(report.TotalSales),
		"roi":         utils.FormatRate(report.ROI) + "%",
		"contracts":   report.Contracts,
		"total_reach": utils.FormatThousands(int64(report.TotalReach)),
	}).Info("📊 Resumo do dashboard")

	for _, platform := range report.Platforms {
		logger.WithFields(log.Fields{
			"platform":        platform.Metrics.Name,
			"engagement_rate": utils.FormatRate(platform.Rates.EngagementRate) + "%",
		}).Info("📱 Desempenho de SNS")
	}

	for _, slot := range report.OptimalPostTimes {
		logger.Infof("⏰ Horário recomendado: %s", slot)
	}
}
