package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações do bloghub.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados
	DatabaseURL string
	DBDriver    string        // "postgres" ou "sqlite"
	DBTimeout   time.Duration // Timeout aplicado a cada query do repositório

	// Sessões
	SessionStore      string // "redis" ou "memory"
	SessionTTL        time.Duration
	SessionCookieName string
	CookieSecure      bool

	// Redis (sessões + rate limiting)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CORS
	CORSAllowedOrigins []string

	// Rate Limiting
	RateLimitEnabled     bool
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// ConfigFileEnv aponta para um arquivo YAML opcional com os mesmos nomes de chave das variáveis.
const ConfigFileEnv = "BLOGHUB_CONFIG"

// LoadConfig carrega as configurações a partir das variáveis de ambiente e, se
// BLOGHUB_CONFIG estiver definido, de um arquivo YAML. Variáveis de ambiente têm precedência.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if path := v.GetString(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("falha ao ler arquivo de configuração %s: %w", path, err)
		}
	}

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL: v.GetString("DATABASE_URL"),
		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		DBTimeout:   time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,

		SessionStore:      strings.ToLower(v.GetString("SESSION_STORE")),
		SessionTTL:        time.Duration(v.GetInt("SESSION_TTL_MIN")) * time.Minute,
		SessionCookieName: v.GetString("SESSION_COOKIE_NAME"),
		CookieSecure:      v.GetBool("COOKIE_SECURE"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		RateLimitEnabled:     v.GetBool("RATE_LIMIT_ENABLED"),
		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("SESSION_STORE", "redis")
	v.SetDefault("SESSION_TTL_MIN", 30)
	v.SetDefault("SESSION_COOKIE_NAME", "BLOGHUB_SESSION")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
}

// validate garante que a aplicação não inicie sem credenciais de DB ou com valores incoerentes.
func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("configuração inválida: DATABASE_URL deve ser definida")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("configuração inválida: DB_DRIVER %q não suportado", c.DBDriver)
	}
	switch c.SessionStore {
	case "redis", "memory":
	default:
		return fmt.Errorf("configuração inválida: SESSION_STORE %q não suportado", c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return errors.New("configuração inválida: SESSION_TTL_MIN deve ser positivo")
	}
	if c.RateLimitEnabled && c.SessionStore != "redis" {
		// O rate limiter depende do Redis; sem ele, desabilitamos em vez de falhar.
		c.RateLimitEnabled = false
	}
	return nil
}

// splitList converte "a, b,c" em []string{"a","b","c"}.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
