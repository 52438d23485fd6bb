package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/exterior-marketing/infrastructure/report"
	"github.com/vfg2006/exterior-marketing/internal/config"
	"github.com/vfg2006/exterior-marketing/internal/usecases/authenticating"
	"golang.org/x/crypto/bcrypt"
)

var referenceTime = time.Date(2024, 7, 15, 8, 0, 0, 0, time.UTC)

func testConfig(dir string) *config.Config {
	return &config.Config{
		App: config.App{LogLevel: "error"},
		Business: config.Business{
			CompanyName:  "エクステリア工房",
			StaffName:    "田中",
			TargetAreas:  []string{"東京", "神奈川"},
			Services:     []string{"ウッドデッキ設置", "カーポート工事"},
			ContactEmail: "info@exterior-example.com",
			ContactPhone: "090-1234-5678",
		},
		Dashboard: config.Dashboard{
			OutputPath:    filepath.Join(dir, "dashboard.html"),
			MarketingCost: 350000,
			AdBudget:      50000,
			SampleDays:    30,
		},
		DailyAutomation: config.DailyAutomation{
			CronSchedule: "0 8 * * *",
			OutputDir:    filepath.Join(dir, "output"),
		},
	}
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	c := newCLI(out)
	c.loadConfig = func() (*config.Config, error) { return cfg, nil }
	c.now = func() time.Time { return referenceTime }

	root := newRootCmd(c)
	root.SetArgs(append([]string{"--seed", "42"}, args...))
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	return out.String(), err
}

func TestDashboardCmd(t *testing.T) {
	t.Run("writes the default output path", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(dir)

		out, err := execute(t, cfg, "dashboard")
		require.NoError(t, err)

		assert.Contains(t, out, cfg.Dashboard.OutputPath)
		body, err := os.ReadFile(cfg.Dashboard.OutputPath)
		require.NoError(t, err)
		assert.Contains(t, string(body), "外構AI自動集客システム")
	})

	t.Run("exports the workbook next to the html", func(t *testing.T) {
		dir := t.TempDir()
		output := filepath.Join(dir, "report.html")

		out, err := execute(t, testConfig(dir), "dashboard", "--output", output, "--workbook")
		require.NoError(t, err)

		assert.Contains(t, out, filepath.Join(dir, "report.xlsx"))
		_, err = os.Stat(filepath.Join(dir, "report.xlsx"))
		assert.NoError(t, err)
	})

	t.Run("prints the report as json", func(t *testing.T) {
		dir := t.TempDir()

		out, err := execute(t, testConfig(dir), "dashboard", "--json")
		require.NoError(t, err)

		assert.Contains(t, out, `"total_sales"`)
		assert.Contains(t, out, `"roi"`)
	})

	t.Run("write failure is fatal", func(t *testing.T) {
		dir := t.TempDir()
		output := filepath.Join(dir, "missing", "dashboard.html")

		_, err := execute(t, testConfig(dir), "dashboard", "--output", output)
		require.Error(t, err)

		var writeErr *report.WriteError
		assert.True(t, errors.As(err, &writeErr))
		assert.Equal(t, output, writeErr.Path)
	})
}

func TestPostCmd(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		contains    string
		notContains string
	}{
		{
			name:        "auto post uses the summer season",
			args:        []string{"post"},
			contains:    "#エクステリア",
			notContains: "{",
		},
		{
			name:     "english alias",
			args:     []string{"post", "--type", "testimonial"},
			contains: "#エクステリア",
		},
		{
			name:     "month flag changes the season",
			args:     []string{"--month", "1", "post", "--type", "showcase"},
			contains: "#エクステリア",
		},
		{
			name:     "unknown type falls back",
			args:     []string{"post", "--type", "video"},
			contains: "地域密着",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, testConfig(t.TempDir()), tt.args...)
			require.NoError(t, err)

			assert.Contains(t, out, tt.contains)
			if tt.notContains != "" {
				assert.NotContains(t, out, tt.notContains)
			}
		})
	}
}

func TestInvalidMonth(t *testing.T) {
	_, err := execute(t, testConfig(t.TempDir()), "--month", "13", "season")
	assert.Error(t, err)
}

func TestSeasonCmd(t *testing.T) {
	out, err := execute(t, testConfig(t.TempDir()), "--month", "4", "season")
	require.NoError(t, err)

	assert.Contains(t, out, "春")
}

func TestDateFlag(t *testing.T) {
	t.Run("reference date drives the season", func(t *testing.T) {
		out, err := execute(t, testConfig(t.TempDir()), "--date", "2024-01-10", "season")
		require.NoError(t, err)

		assert.Contains(t, out, "冬")
	})

	t.Run("reference date names the daily files", func(t *testing.T) {
		dir := t.TempDir()
		outputDir := filepath.Join(dir, "daily")

		out, err := execute(t, testConfig(dir), "--date", "2024-03-01", "daily", "--output-dir", outputDir)
		require.NoError(t, err)

		assert.Contains(t, out, filepath.Join(outputDir, "dashboard_20240301.html"))
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := execute(t, testConfig(t.TempDir()), "--date", "01/10/2024", "season")
		assert.ErrorContains(t, err, "--date")
	})
}

func TestReplyCmd(t *testing.T) {
	t.Run("fills the inquiry", func(t *testing.T) {
		out, err := execute(t, testConfig(t.TempDir()),
			"reply", "--name", "山田", "--service", "カーポート工事", "--content", "見積もり希望")
		require.NoError(t, err)

		assert.Contains(t, out, "山田様")
		assert.Contains(t, out, "カーポート工事")
		assert.Contains(t, out, "見積もり希望")
		assert.Contains(t, out, "9:00-17:00")
	})

	t.Run("uses defaults for missing fields", func(t *testing.T) {
		out, err := execute(t, testConfig(t.TempDir()), "reply")
		require.NoError(t, err)

		assert.Contains(t, out, "お客様")
		assert.Contains(t, out, "外構工事")
	})
}

func TestFollowUpCmd(t *testing.T) {
	out, err := execute(t, testConfig(t.TempDir()), "follow-up", "--name", "佐藤", "--service", "フェンス設置")
	require.NoError(t, err)

	assert.Contains(t, out, "佐藤様")
	assert.Contains(t, out, "フェンス設置")
}

func TestCampaignCmd(t *testing.T) {
	out, err := execute(t, testConfig(t.TempDir()), "campaign")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "🎯 "))
}

func TestDailyCmd(t *testing.T) {
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "daily")

	out, err := execute(t, testConfig(dir), "daily", "--output-dir", outputDir)
	require.NoError(t, err)

	for _, name := range []string{
		"instagram_post_20240715.txt",
		"email_reply_20240715.txt",
		"dashboard_20240715.html",
		"daily_20240715.json",
	} {
		path := filepath.Join(outputDir, name)
		assert.Contains(t, out, path)
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestMigrateCmd_DatabaseDisabled(t *testing.T) {
	_, err := execute(t, testConfig(t.TempDir()), "migrate")
	assert.ErrorContains(t, err, "DATABASE_ENABLED")
}

func TestHashPasswordCmd(t *testing.T) {
	t.Run("hashes the given password", func(t *testing.T) {
		out, err := execute(t, testConfig(t.TempDir()), "hash-password", "Senha@Forte123")
		require.NoError(t, err)

		hash := strings.TrimSpace(out)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Senha@Forte123")))
	})

	t.Run("generates a password", func(t *testing.T) {
		out, err := execute(t, testConfig(t.TempDir()), "hash-password", "--generate")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Len(t, lines[0], 16)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[1]), []byte(lines[0])))
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		out, err := execute(t, testConfig(t.TempDir()), "hash-password", "fraca")
		assert.ErrorIs(t, err, authenticating.ErrWeakPassword)
		assert.Empty(t, out)
	})

	t.Run("requires a password", func(t *testing.T) {
		_, err := execute(t, testConfig(t.TempDir()), "hash-password")
		assert.Error(t, err)
	})
}
