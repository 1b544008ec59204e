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
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Trial     Trial     `mapstructure:",squash"`
	Document  Document  `mapstructure:",squash"`
	SMTP      SMTP      `mapstructure:",squash"`
	Redis     Redis     `mapstructure:",squash"`
	Backup    Backup    `mapstructure:",squash"`
	RateLimit RateLimit `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"environment"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	SSLMode        string `mapstructure:"database_sslmode"`
	MaxOpenConns   int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns   int    `mapstructure:"database_max_idle_conns"`
	MigrateOnStart bool   `mapstructure:"database_migrate_on_start"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Trial controla o período de avaliação das contas novas
type Trial struct {
	Days        int `mapstructure:"trial_days"`
	WarningDays int `mapstructure:"trial_warning_days"`
}

type Document struct {
	OperatingYear int   `mapstructure:"document_operating_year"`
	MaxUploadSize int64 `mapstructure:"document_max_upload_size"`
}

type SMTP struct {
	Host       string `mapstructure:"smtp_host"`
	Port       int    `mapstructure:"smtp_port"`
	User       string `mapstructure:"smtp_user"`
	Password   string `mapstructure:"smtp_password"`
	From       string `mapstructure:"smtp_from"`
	AdminEmail string `mapstructure:"smtp_admin_email"`
}

type Redis struct {
	Addr         string        `mapstructure:"redis_addr"`
	Password     string        `mapstructure:"redis_password"`
	DB           int           `mapstructure:"redis_db"`
	DashboardTTL time.Duration `mapstructure:"redis_dashboard_ttl"`
}

type Backup struct {
	CronSchedule string `mapstructure:"backup_cron"`
	Dir          string `mapstructure:"backup_dir"`
	Enabled      bool   `mapstructure:"backup_enabled"`
}

type RateLimit struct {
	RequestsPerSecond float64  `mapstructure:"rate_limit_rps"`
	Burst             int      `mapstructure:"rate_limit_burst"`
	TrustedProxies    []string `mapstructure:"trusted_proxies"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/loans")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_MIGRATE_ON_START", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("TRIAL_DAYS", 7)
	viper.SetDefault("TRIAL_WARNING_DAYS", 3)

	viper.SetDefault("DOCUMENT_OPERATING_YEAR", 2026)
	viper.SetDefault("DOCUMENT_MAX_UPLOAD_SIZE", 10<<20) // 10 MB

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "no-reply@localhost")
	viper.SetDefault("SMTP_ADMIN_EMAIL", "admin@localhost")

	// Sem REDIS_ADDR o painel é calculado a cada requisição
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_DASHBOARD_TTL", "10m")

	viper.SetDefault("BACKUP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("BACKUP_DIR", "./backups")
	viper.SetDefault("BACKUP_ENABLED", false)

	viper.SetDefault("RATE_LIMIT_RPS", 1)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
	viper.SetDefault("TRUSTED_PROXIES", "")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ENVIRONMENT", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if config.Trial.Days <= 0 {
		return nil, fmt.Errorf("TRIAL_DAYS deve ser positivo: %d", config.Trial.Days)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// IsProduction informa se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
