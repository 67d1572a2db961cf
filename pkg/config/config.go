package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (lida via Viper de env e, opcionalmente, de arquivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	RateLimit RateLimitConfig
	Docs      DocsConfig
}

// AppConfig configuração geral.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuração do PostgreSQL.
// Se DatabaseURL não estiver vazio, é usado como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool // aplica as migrações embutidas na inicialização
}

// Drivers de armazenamento aceitos em STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ConnectionString devolve o DSN: DATABASE_URL se definido, senão o montado por DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN monta o connection string com URL encoding para caracteres especiais na senha.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig autenticação opcional por Bearer Token. Secret vazio desativa.
type JWTConfig struct {
	Secret string
	Issuer string
}

// Enabled indica se as rotas /api exigem token.
func (c JWTConfig) Enabled() bool {
	return c.Secret != ""
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RateLimitConfig limite de requisições por IP (token bucket). RPS <= 0 desativa.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// DocsConfig Swagger UI em /docs.
type DocsConfig struct {
	Enabled  bool
	FilePath string
}

// Load lê a configuração das variáveis de ambiente (e opcionalmente de .env / config.env).
// Env vars têm prioridade. Nomes esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos se não existir

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
		},
		HTTP: HTTPConfig{
			Host:         v.GetString("HTTP_HOST"),
			Port:         v.GetInt("HTTP_PORT"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Docs: DocsConfig{
			Enabled:  v.GetBool("DOCS_ENABLED"),
			FilePath: v.GetString("DOCS_FILE_PATH"),
		},
	}

	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverMemory {
		return nil, fmt.Errorf("config: STORAGE_DRIVER inválido %q (use %s ou %s)", cfg.DB.Driver, DriverPostgres, DriverMemory)
	}
	if cfg.DB.MaxConns <= 0 {
		return nil, fmt.Errorf("config: DB_MAX_CONNS deve ser positivo, recebido %d", cfg.DB.MaxConns)
	}
	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst <= 0 {
		return nil, fmt.Errorf("config: RATE_LIMIT_BURST deve ser positivo quando RATE_LIMIT_RPS > 0")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "gerenciamento-clientes")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("STORAGE_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "gerenciamento_clientes")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("JWT_ISSUER", "gerenciamento-clientes")

	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("HTTP_READ_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)

	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.SetDefault("DOCS_ENABLED", true)
	v.SetDefault("DOCS_FILE_PATH", "./docs/swagger.json")
}
