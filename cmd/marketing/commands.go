package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/exterior-marketing/internal/config"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/internal/scheduler"
	"github.com/vfg2006/exterior-marketing/internal/usecases/authenticating"
	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marketing",
		Short: "外構工事向けマーケティング自動化",
		Long: `Gera posts do Instagram, respostas de e-mail e o dashboard de análise
para uma empresa de obras de exterior (外構).`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: c.teardown,
	}

	rootCmd.PersistentFlags().Uint64Var(&c.seed, "seed", 0, "Semente do sorteio (0 usa o relógio)")
	rootCmd.PersistentFlags().IntVar(&c.month, "month", 0, "Mês usado para a estação (1-12, 0 usa o mês atual)")
	rootCmd.PersistentFlags().StringVar(&c.date, "date", "", "Data de referência no formato 2006-01-02 (vazio usa hoje)")
	rootCmd.SetOut(c.out)

	rootCmd.AddCommand(
		newDashboardCmd(c),
		newPostCmd(c),
		newReplyCmd(c),
		newFollowUpCmd(c),
		newCampaignCmd(c),
		newSeasonCmd(c),
		newDailyCmd(c),
		newMigrateCmd(c),
		newHashPasswordCmd(c),
	)

	return rootCmd
}

func newDashboardCmd(c *cli) *cobra.Command {
	var (
		output   string
		workbook bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Gera o dashboard HTML com dados de exemplo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = c.cfg.Dashboard.OutputPath
			}

			analyzer, err := c.analyzerService(cmd.Context(), c.random(), workbook || c.cfg.Dashboard.Workbook)
			if err != nil {
				return err
			}

			result, err := analyzer.RunAnalytics(cmd.Context(), output)
			if err != nil {
				return err
			}

			if asJSON {
				body, err := utils.PrettyJson(result.Report)
				if err != nil {
					return errors.Wrap(err, "erro ao serializar relatório")
				}
				fprintln(c.out, body)
				return nil
			}

			fprintln(c.out, "📊 "+result.DashboardFile)
			if result.WorkbookFile != "" {
				fprintln(c.out, "📗 "+result.WorkbookFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Arquivo HTML de saída (padrão DASHBOARD_OUTPUT_PATH)")
	cmd.Flags().BoolVar(&workbook, "workbook", false, "Exporta também a planilha .xlsx")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Imprime o relatório em JSON")

	return cmd
}

func newPostCmd(c *cli) *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Gera um post do Instagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := c.contentService(cmd.Context(), c.random())
			if err != nil {
				return err
			}

			parsed, ok := domain.ParseContentType(contentType)
			if !ok {
				logrus.WithField("content_type", contentType).Warn("Tipo de post desconhecido")
			}

			c.printContent(generator.GenerateInstagramPost(cmd.Context(), c.season(), parsed))
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "type", "t", string(domain.ContentTypeAuto), "auto, showcase, proposal, testimonial ou o nome japonês")

	return cmd
}

func inquiryFlags(cmd *cobra.Command, inquiry *domain.InquiryRequest) {
	cmd.Flags().StringVar(&inquiry.Name, "name", "", "Nome do cliente")
	cmd.Flags().StringVar(&inquiry.Service, "service", "", "Serviço solicitado")
	cmd.Flags().StringVar(&inquiry.Content, "content", "", "Conteúdo do pedido de contato")
}

func newReplyCmd(c *cli) *cobra.Command {
	var inquiry domain.InquiryRequest

	cmd := &cobra.Command{
		Use:   "reply",
		Short: "Gera a resposta automática para um pedido de contato",
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := c.contentService(cmd.Context(), c.random())
			if err != nil {
				return err
			}

			c.printContent(generator.BuildEmailReply(cmd.Context(), c.season(), inquiry))
			return nil
		},
	}
	inquiryFlags(cmd, &inquiry)

	return cmd
}

func newFollowUpCmd(c *cli) *cobra.Command {
	var inquiry domain.InquiryRequest

	cmd := &cobra.Command{
		Use:   "follow-up",
		Short: "Gera o e-mail de acompanhamento",
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := c.contentService(cmd.Context(), c.random())
			if err != nil {
				return err
			}

			c.printContent(generator.BuildFollowUpEmail(cmd.Context(), c.season(), inquiry))
			return nil
		},
	}
	inquiryFlags(cmd, &inquiry)

	return cmd
}

func newCampaignCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "campaign",
		Short: "Sorteia uma campanha da estação",
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := c.contentService(cmd.Context(), c.random())
			if err != nil {
				return err
			}

			fprintln(c.out, "🎯 "+generator.SuggestCampaign(c.season()))
			return nil
		},
	}
}

func newSeasonCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "season",
		Short: "Mostra a estação e o material sazonal",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := utils.PrettyJson(c.season())
			if err != nil {
				return err
			}
			fprintln(c.out, body)
			return nil
		},
	}
}

func newDailyCmd(c *cli) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Executa a automação diária uma vez",
		RunE: func(cmd *cobra.Command, args []string) error {
			random := c.random()

			generator, err := c.contentService(cmd.Context(), random)
			if err != nil {
				return err
			}
			analyzer, err := c.analyzerService(cmd.Context(), random, c.cfg.Dashboard.Workbook)
			if err != nil {
				return err
			}

			cfg := *c.cfg
			if outputDir != "" {
				cfg.DailyAutomation.OutputDir = outputDir
			}

			result, err := scheduler.NewDailyAutomationService(generator, analyzer, &cfg).
				WithClock(c.now).
				RunOnce(cmd.Context())
			if err != nil {
				return err
			}

			for _, file := range result.Files {
				fprintln(c.out, file)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Diretório de saída (padrão DAILY_AUTOMATION_OUTPUT_DIR)")

	return cmd
}

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas de histórico no PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.cfg.Database.Enabled {
				return errors.New("DATABASE_ENABLED está desligado")
			}

			conn, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			if err := conn.Migrate(cmd.Context()); err != nil {
				return err
			}

			logrus.Info("✅ Schema aplicado com sucesso")
			return nil
		},
	}
}

func newHashPasswordCmd(c *cli) *cobra.Command {
	var generate bool

	cmd := &cobra.Command{
		Use:   "hash-password [senha]",
		Short: "Gera o valor de OPERATOR_PASSWORD_HASH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := authenticating.NewService(&config.Config{})

			var password string
			switch {
			case generate:
				generated, err := auth.GenerateStrongPassword(16)
				if err != nil {
					return err
				}
				password = generated
				fprintln(c.out, password)
			case len(args) == 1:
				password = args[0]
			default:
				return errors.New("informe a senha ou use --generate")
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			fprintln(c.out, hash)
			return nil
		},
	}

	cmd.Flags().BoolVar(&generate, "generate", false, "Gera uma senha forte antes do hash")

	return cmd
}
