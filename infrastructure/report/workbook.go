package report

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "サマリー"
	SalesSheet   = "売上明細"
	SNSSheet     = "SNS成果"
)

type WorkbookRenderer struct{}

func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

// Build monta a planilha em memória; quem chama é responsável por fechá-la
func (r *WorkbookRenderer) Build(report *domain.DashboardReport) (*excelize.File, error) {
	if report == nil {
		return nil, errors.New("relatório vazio")
	}

	wb := excelize.NewFile()

	if err := wb.SetSheetName("Sheet1", SummarySheet); err != nil {
		wb.Close()
		return nil, errors.Wrap(err, "erro ao renomear aba de resumo")
	}

	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		wb.Close()
		return nil, errors.Wrap(err, "erro ao criar estilo do cabeçalho")
	}

	writers := []func(*excelize.File, *domain.DashboardReport, int) error{
		writeSummarySheet,
		writeSalesSheet,
		writeSNSSheet,
	}
	for _, write := range writers {
		if err := write(wb, report, headerStyle); err != nil {
			wb.Close()
			return nil, err
		}
	}

	wb.SetActiveSheet(0)

	return wb, nil
}

// SaveWorkbook grava a planilha em path, sobrescrevendo o arquivo existente
func (r *WorkbookRenderer) SaveWorkbook(report *domain.DashboardReport, path string) error {
	wb, err := r.Build(report)
	if err != nil {
		return NewWriteError(path, err)
	}
	defer wb.Close()

	if err := wb.SaveAs(path); err != nil {
		return NewWriteError(path, err)
	}

	logrus.WithField("path", path).Info("📗 Planilha do dashboard salva com sucesso")

	return nil
}

func writeSummarySheet(wb *excelize.File, report *domain.DashboardReport, headerStyle int) error {
	rows := [][]any{
		{"項目", "値"},
		{"集計開始", report.PeriodStart.Format(time.DateOnly)},
		{"集計終了", report.PeriodEnd.Format(time.DateOnly)},
		{"月間総売上", report.TotalSales},
		{"マーケティング費用", report.MarketingCost},
		{"ROI（%）", report.ROI},
		{"成約件数", report.Contracts},
		{"総リーチ数", report.TotalReach},
	}

	for _, channel := range domain.SalesChannels {
		rows = append(rows, []any{"売上（" + channel + "）", report.SalesByChannel[channel]})
	}

	return writeRows(wb, SummarySheet, rows, headerStyle)
}

func writeSalesSheet(wb *excelize.File, report *domain.DashboardReport, headerStyle int) error {
	if _, err := wb.NewSheet(SalesSheet); err != nil {
		return errors.Wrapf(err, "erro ao criar aba %s", SalesSheet)
	}

	rows := make([][]any, 0, len(report.Sales)+1)
	rows = append(rows, []any{"日付", "サービス", "金額", "チャネル"})
	for _, sale := range report.Sales {
		rows = append(rows, []any{sale.Date.Format(time.DateOnly), sale.Service, sale.Amount, sale.Channel})
	}

	return writeRows(wb, SalesSheet, rows, headerStyle)
}

func writeSNSSheet(wb *excelize.File, report *domain.DashboardReport, headerStyle int) error {
	if _, err := wb.NewSheet(SNSSheet); err != nil {
		return errors.Wrapf(err, "erro ao criar aba %s", SNSSheet)
	}

	rows := make([][]any, 0, len(report.Platforms)+1)
	rows = append(rows, []any{
		"プラットフォーム", "投稿数", "インプレッション", "エンゲージメント", "クリック", "リード",
		"エンゲージメント率（%）", "クリック率（%）", "コンバージョン率（%）", "リード単価",
	})
	for _, p := range report.Platforms {
		rows = append(rows, []any{
			p.Metrics.Name, p.Metrics.Posts, p.Metrics.Impressions, p.Metrics.Engagements, p.Metrics.Clicks, p.Metrics.Leads,
			p.Rates.EngagementRate, p.Rates.ClickRate, p.Rates.ConversionRate, p.Rates.CostPerLead,
		})
	}

	return writeRows(wb, SNSSheet, rows, headerStyle)
}

func writeRows(wb *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %d da aba %s", i+1, sheet)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}

	return wb.SetCellStyle(sheet, "A1", lastHeader, headerStyle)
}
