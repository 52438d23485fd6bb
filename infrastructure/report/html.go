package report

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

const DefaultDashboardPath = "dashboard.html"

//go:embed templates/dashboard.html.tmpl
var templatesFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html.tmpl").
		Funcs(template.FuncMap{
			"yen":       utils.FormatYen,
			"thousands": func(v int) string { return utils.FormatThousands(int64(v)) },
			"rate":      utils.FormatRate,
			"stamp":     utils.FormatTimestamp,
		}).
		ParseFS(templatesFS, "templates/dashboard.html.tmpl"),
)

type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render escreve o dashboard completo em w
func (r *HTMLRenderer) Render(w io.Writer, report *domain.DashboardReport) error {
	if report == nil {
		return errors.New("relatório vazio")
	}

	return dashboardTemplate.Execute(w, report)
}

// SaveDashboard grava o HTML em path, sobrescrevendo o arquivo existente
func (r *HTMLRenderer) SaveDashboard(report *domain.DashboardReport, path string) error {
	if path == "" {
		path = DefaultDashboardPath
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, report); err != nil {
		return NewWriteError(path, errors.Wrap(err, "erro ao renderizar dashboard"))
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return NewWriteError(path, err)
	}

	logrus.WithField("path", path).Info("📊 Dashboard salvo com sucesso")

	return nil
}
