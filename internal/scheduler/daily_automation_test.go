package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/exterior-marketing/infrastructure/report"
	"github.com/vfg2006/exterior-marketing/internal/config"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/internal/usecases/analyzing"
	"github.com/vfg2006/exterior-marketing/internal/usecases/contenting"
	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

var referenceTime = time.Date(2024, 7, 15, 8, 0, 0, 0, time.UTC)

func testConfig(outputDir string) *config.Config {
	return &config.Config{
		Business: config.Business{
			CompanyName:  "エクステリア工房",
			StaffName:    "田中",
			TargetAreas:  []string{"東京", "神奈川"},
			Services:     []string{"ウッドデッキ設置", "カーポート工事"},
			ContactEmail: "info@exterior-example.com",
			ContactPhone: "090-1234-5678",
		},
		Dashboard: config.Dashboard{
			MarketingCost: 350000,
			AdBudget:      50000,
			SampleDays:    30,
		},
		DailyAutomation: config.DailyAutomation{
			CronSchedule: "0 8 * * *",
			OutputDir:    outputDir,
		},
	}
}

func newTestService(t *testing.T, outputDir string) *DailyAutomationService {
	t.Helper()

	cfg := testConfig(outputDir)
	clock := func() time.Time { return referenceTime }
	random := utils.NewRandom(7)

	generator := contenting.NewService(cfg.BusinessProfile(), random).WithClock(clock)
	analyzer := analyzing.NewService(cfg, random, report.NewHTMLRenderer()).WithClock(clock)

	return NewDailyAutomationService(generator, analyzer, cfg).WithClock(clock)
}

func TestDailyAutomationService_RunOnce(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "output")
	service := newTestService(t, outputDir)

	result, err := service.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.Summer, result.Season)
	assert.False(t, result.Post.Degraded)
	assert.False(t, result.EmailReply.Degraded)
	assert.Contains(t, domain.SeasonForMonth(time.July).Campaigns, result.Campaign)
	assert.Contains(t, result.EmailReply.Body, "田中太郎様")
	require.NotNil(t, result.Dashboard)

	expected := []string{
		filepath.Join(outputDir, "instagram_post_20240715.txt"),
		filepath.Join(outputDir, "email_reply_20240715.txt"),
		filepath.Join(outputDir, "dashboard_20240715.html"),
		filepath.Join(outputDir, "daily_20240715.json"),
	}
	assert.Equal(t, expected, result.Files)
	for _, path := range expected {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}

	post, err := os.ReadFile(expected[0])
	require.NoError(t, err)
	assert.Equal(t, result.Post.Body, string(post))

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, expected, status["last_files"])
}

func TestDailyAutomationService_RunOnceWriteFailure(t *testing.T) {
	// um arquivo no lugar do diretório impede a criação da saída
	blocker := filepath.Join(t.TempDir(), "arquivo")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	service := newTestService(t, filepath.Join(blocker, "output"))

	_, err := service.RunOnce(context.Background())
	require.Error(t, err)
	assert.NotEmpty(t, service.GetStatus()["last_error"])
}

func TestDailyAutomationService_SummaryListsGeneratedFiles(t *testing.T) {
	outputDir := t.TempDir()
	service := newTestService(t, outputDir)

	result, err := service.RunOnce(context.Background())
	require.NoError(t, err)

	summaryPath := filepath.Join(outputDir, "daily_20240715.json")
	body, err := os.ReadFile(summaryPath)
	require.NoError(t, err)

	var summary DailyResult
	require.NoError(t, jsoniter.Unmarshal(body, &summary))
	assert.NotContains(t, summary.Files, summaryPath)
	assert.Equal(t, result.Files[:len(result.Files)-1], summary.Files)
	assert.Equal(t, summaryPath, result.Files[len(result.Files)-1])
}

func TestDailyAutomationService_SummaryWriteFailure(t *testing.T) {
	outputDir := t.TempDir()
	// um diretório com o nome do resumo impede a gravação
	require.NoError(t, os.Mkdir(filepath.Join(outputDir, "daily_20240715.json"), 0o755))

	service := newTestService(t, outputDir)

	result, err := service.RunOnce(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)

	status := service.GetStatus()
	assert.Contains(t, status["last_error"], "daily_20240715.json")
	assert.NotContains(t, status, "last_files")
}

func TestDailyAutomationService_AlreadyRunning(t *testing.T) {
	service := newTestService(t, t.TempDir())
	require.True(t, service.acquire())

	_, err := service.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.False(t, service.TriggerManualSync(context.Background()))
	assert.Equal(t, true, service.GetStatus()["running"])

	service.release()
	assert.Equal(t, false, service.GetStatus()["running"])
}

func TestDailyAutomationService_StartDisabled(t *testing.T) {
	service := newTestService(t, t.TempDir())

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["enabled"])
}

func TestDailyAutomationService_StartInvalidCron(t *testing.T) {
	service := newTestService(t, t.TempDir())
	service.config.Enabled = true
	service.config.CronSchedule = "não é cron"

	assert.Error(t, service.Start(context.Background()))
}
