package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/exterior-marketing/infrastructure/database/postgres"
	"github.com/vfg2006/exterior-marketing/infrastructure/report"
	"github.com/vfg2006/exterior-marketing/infrastructure/repository"
	"github.com/vfg2006/exterior-marketing/internal/config"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/internal/usecases/analyzing"
	"github.com/vfg2006/exterior-marketing/internal/usecases/contenting"
	"github.com/vfg2006/exterior-marketing/pkg/log"
	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

// cli guarda o estado compartilhado entre os subcomandos
type cli struct {
	out        io.Writer
	loadConfig func() (*config.Config, error)
	now        func() time.Time

	cfg   *config.Config
	seed  uint64
	month int
	date  string
	conn  *postgres.Connection
}

func newCLI(out io.Writer) *cli {
	return &cli{
		out:        out,
		loadConfig: config.NewConfig,
		now:        time.Now,
	}
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar configuração")
	}
	c.cfg = cfg

	log.Setup(cfg.App.LogLevel)

	if c.month < 0 || c.month > 12 {
		return errors.Errorf("--month deve estar entre 1 e 12: %d", c.month)
	}

	date, err := utils.ParseDate(c.date)
	if err != nil {
		return errors.Wrapf(err, "--date inválida: %s", c.date)
	}
	if date != nil {
		reference := *date
		c.now = func() time.Time { return reference }
	}

	return nil
}

func (c *cli) teardown(*cobra.Command, []string) {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *cli) random() *utils.Random {
	if c.seed != 0 {
		return utils.NewRandom(c.seed)
	}
	return utils.NewTimeSeededRandom()
}

// season respeita --month quando informado
func (c *cli) season() domain.Season {
	if c.month != 0 {
		return domain.SeasonForMonth(time.Month(c.month))
	}
	return domain.CurrentSeason(c.now())
}

// connect abre o banco apenas quando DATABASE_ENABLED está ligado
func (c *cli) connect(ctx context.Context) (*postgres.Connection, error) {
	if !c.cfg.Database.Enabled {
		return nil, nil
	}
	if c.conn != nil {
		return c.conn, nil
	}

	conn, err := postgres.NewConnection(ctx, c.cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}
	c.conn = conn

	return conn, nil
}

func (c *cli) contentService(ctx context.Context, random *utils.Random) (*contenting.Service, error) {
	service := contenting.NewService(c.cfg.BusinessProfile(), random).WithClock(c.now)

	conn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	if conn != nil {
		service.WithHistory(repository.NewContentRepository(conn))
	}

	return service, nil
}

func (c *cli) analyzerService(ctx context.Context, random *utils.Random, workbook bool) (*analyzing.Service, error) {
	service := analyzing.NewService(c.cfg, random, report.NewHTMLRenderer()).WithClock(c.now)
	if workbook {
		service.WithWorkbook(report.NewWorkbookRenderer())
	}

	conn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	if conn != nil {
		service.WithHistory(repository.NewDashboardRunRepository(conn))
	}

	return service, nil
}

func (c *cli) printContent(content *domain.GeneratedContent) {
	if content.Degraded {
		logrus.WithField("reason", content.FailureReason).Warn("⚠️ Conteúdo de contingência gerado")
	}
	fprintln(c.out, content.Body)
}

func fprintln(w io.Writer, text string) {
	io.WriteString(w, text+"\n")
}
