package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Import   Import   `mapstructure:",squash"`
	Metrics  Metrics  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required"`

	// Origens liberadas no CORS, separadas por vírgula. Vazio libera todas.
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver" validate:"required,oneof=postgres pgx sqlite"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url" validate:"required"`
	User     string `mapstructure:"database_user"`
}

// Import configura a carga periódica dos arquivos exportados
type Import struct {
	CampaignsFile   string        `mapstructure:"import_campaigns_file"`
	AdGroupsFile    string        `mapstructure:"import_ad_groups_file"`
	SearchTermsFile string        `mapstructure:"import_search_terms_file"`
	CronSchedule    string        `mapstructure:"import_sync_cron" validate:"required_if=Enabled true"`
	Enabled         bool          `mapstructure:"import_sync_enabled"`
	MaxUploadMB     int64         `mapstructure:"import_max_upload_mb" validate:"gt=0"`
	Timeout         time.Duration `mapstructure:"import_timeout"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"metrics_enabled"`
	Path    string `mapstructure:"metrics_path" validate:"required_if=Enabled true"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/roas?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Arquivos carregados pelo agendador, na ordem da hierarquia
	viper.SetDefault("IMPORT_CAMPAIGNS_FILE", "")
	viper.SetDefault("IMPORT_AD_GROUPS_FILE", "")
	viper.SetDefault("IMPORT_SEARCH_TERMS_FILE", "")
	viper.SetDefault("IMPORT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("IMPORT_SYNC_ENABLED", false)
	viper.SetDefault("IMPORT_MAX_UPLOAD_MB", 32)
	viper.SetDefault("IMPORT_TIMEOUT", "5m")

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_PATH", "/metrics")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.Database.DSN = buildDSN(config.Database)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os campos obrigatórios e os valores aceitos
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	return nil
}

// buildDSN monta a string de conexão. Para o sqlite a URL é o caminho do arquivo.
func buildDSN(db Database) string {
	if db.Driver == DriverSQLite {
		return db.URL
	}

	// o pgx não reconhece "pgx://", os dois drivers aceitam o esquema postgres
	return fmt.Sprintf(
		"postgres://%s:%s@%s",
		db.User,
		db.Password,
		db.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
