package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/exterior-marketing/internal/domain"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Business        Business        `mapstructure:",squash"`
	Credentials     Credentials     `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	DailyAutomation DailyAutomation `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Business contém os dados da empresa usados nos templates de conteúdo
type Business struct {
	CompanyName  string   `mapstructure:"company_name"`
	StaffName    string   `mapstructure:"staff_name"`
	TargetAreas  []string `mapstructure:"target_areas"`
	Services     []string `mapstructure:"services"`
	ContactEmail string   `mapstructure:"contact_email"`
	ContactPhone string   `mapstructure:"contact_phone"`
}

// Credentials são lidas do ambiente, mas nunca validadas nem enviadas a lugar nenhum
type Credentials struct {
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	GithubToken  string `mapstructure:"github_token"`
}

type Dashboard struct {
	OutputPath    string `mapstructure:"dashboard_output_path"`
	MarketingCost int64  `mapstructure:"dashboard_marketing_cost"`
	AdBudget      int64  `mapstructure:"dashboard_ad_budget"`
	SampleDays    int    `mapstructure:"dashboard_sample_days"`
	Workbook      bool   `mapstructure:"dashboard_workbook"`
}

type DailyAutomation struct {
	CronSchedule string `mapstructure:"daily_automation_cron"`
	OutputDir    string `mapstructure:"daily_automation_output_dir"`
	Enabled      bool   `mapstructure:"daily_automation_enabled"`
}

type Auth struct {
	Secret               string        `mapstructure:"auth_secret"`
	OperatorEmail        string        `mapstructure:"operator_email"`
	OperatorPasswordHash string        `mapstructure:"operator_password_hash"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/exterior?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("COMPANY_NAME", "エクステリア工房")
	viper.SetDefault("STAFF_NAME", "田中")
	viper.SetDefault("TARGET_AREAS", "東京,神奈川,埼玉,千葉")
	viper.SetDefault("SERVICES", "ウッドデッキ設置,カーポート工事,フェンス設置,門扉工事,庭園設計,駐車場工事,植栽工事")
	viper.SetDefault("CONTACT_EMAIL", "info@exterior-example.com")
	viper.SetDefault("CONTACT_PHONE", "090-1234-5678")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("GITHUB_TOKEN", "")

	viper.SetDefault("DASHBOARD_OUTPUT_PATH", "dashboard.html")
	viper.SetDefault("DASHBOARD_MARKETING_COST", 350000) // 月35万円の投資
	viper.SetDefault("DASHBOARD_AD_BUDGET", 50000)       // Custo fictício por plataforma
	viper.SetDefault("DASHBOARD_SAMPLE_DAYS", 30)
	viper.SetDefault("DASHBOARD_WORKBOOK", false)

	viper.SetDefault("DAILY_AUTOMATION_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("DAILY_AUTOMATION_OUTPUT_DIR", "output")
	viper.SetDefault("DAILY_AUTOMATION_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("OPERATOR_EMAIL", "operator@exterior-example.com")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica os valores que os templates e o dashboard precisam para funcionar
func (c *Config) Validate() error {
	if len(c.Business.TargetAreas) == 0 {
		return fmt.Errorf("config: TARGET_AREAS não pode ser vazio")
	}

	if len(c.Business.Services) == 0 {
		return fmt.Errorf("config: SERVICES não pode ser vazio")
	}

	if c.Dashboard.MarketingCost < 0 {
		return fmt.Errorf("config: DASHBOARD_MARKETING_COST não pode ser negativo: %d", c.Dashboard.MarketingCost)
	}

	if c.Dashboard.SampleDays <= 0 {
		return fmt.Errorf("config: DASHBOARD_SAMPLE_DAYS deve ser positivo: %d", c.Dashboard.SampleDays)
	}

	return nil
}

// BusinessProfile converte a seção Business no valor usado pelos geradores de conteúdo
func (c *Config) BusinessProfile() domain.BusinessProfile {
	return domain.BusinessProfile{
		CompanyName:  c.Business.CompanyName,
		StaffName:    c.Business.StaffName,
		TargetAreas:  c.Business.TargetAreas,
		Services:     c.Business.Services,
		ContactEmail: c.Business.ContactEmail,
		ContactPhone: c.Business.ContactPhone,
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
