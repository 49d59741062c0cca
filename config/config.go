package config

import (
	"errors"
	"fmt"
	"time"
	// Base de fusos embutida; o contêiner de produção não tem /usr/share/zoneinfo.
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

// Backends de armazenamento aceitos em STORAGE_BACKEND.
const (
	BackendLocal  = "local"  // SQLite embutido
	BackendRemote = "remote" // PostgreSQL
	BackendMemory = "memory" // apenas para desenvolvimento; nada persiste
)

// Config armazena todas as configurações do aplicativo.
type Config struct {
	// Geral
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Timezone    string `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`

	// Armazenamento
	StorageBackend string        `env:"STORAGE_BACKEND" envDefault:"local"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"data/controlemat.db"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	DBTimeout      time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`

	// Cache (Redis). Vazio desativa o rate limiting.
	RedisAddr string `env:"REDIS_ADDR"`

	// Segurança (JWT + credencial administrativa)
	JWTSecretKey      string        `env:"JWT_SECRET_KEY"`
	TokenExpiry       time.Duration `env:"JWT_EXPIRY" envDefault:"1h"`
	AdminUser         string        `env:"ADMIN_USER" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`

	// Rate Limiting
	RateLimitMaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
	RateLimitPeriod      time.Duration `env:"RATE_LIMIT_PERIOD" envDefault:"1m"`
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente
// e valida as combinações obrigatórias.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate confere as regras que dependem de mais de uma variável.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendLocal:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH é obrigatório com STORAGE_BACKEND=local")
		}
	case BackendRemote:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL é obrigatório com STORAGE_BACKEND=remote")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND desconhecido: %q", c.StorageBackend)
	}

	if c.AdminPasswordHash != "" && c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY é obrigatório quando ADMIN_PASSWORD_HASH está definido")
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location carrega o fuso de APP_TIMEZONE, usado para o mês dos IDs de exibição.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE inválido %q: %w", c.Timezone, err)
	}
	return loc, nil
}
