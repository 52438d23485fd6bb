package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/exterior-marketing/internal/domain"
)

// Randomizer é a fonte de sorteio dos dados de exemplo
type Randomizer interface {
	IntN(n int) int
	Int64Range(min, max int64) int64
}

// DashboardWriter grava o relatório em algum formato de saída
type DashboardWriter interface {
	SaveDashboard(report *domain.DashboardReport, path string) error
}

// WorkbookWriter grava o relatório como planilha
type WorkbookWriter interface {
	SaveWorkbook(report *domain.DashboardReport, path string) error
}

// Analyzer gera os dados do dashboard e executa a análise completa
type Analyzer interface {
	// GenerateSampleData fabrica vendas e métricas de SNS para o período que termina em now
	GenerateSampleData(now time.Time) domain.SampleData

	// BuildReport calcula as métricas derivadas e monta o relatório
	BuildReport(sample domain.SampleData, now time.Time) *domain.DashboardReport

	// GenerateDashboard gera dados novos e monta o relatório do momento atual
	GenerateDashboard() *domain.DashboardReport

	// RunAnalytics gera o relatório, grava os arquivos de saída e registra a execução
	RunAnalytics(ctx context.Context, outputPath string) (*RunResult, error)

	// ListRuns retorna o histórico de execuções, quando habilitado
	ListRuns(ctx context.Context, limit int) ([]*domain.DashboardRun, error)
}
