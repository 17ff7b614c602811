// internal/common/config/config.go
package config

import (
	"fmt"
	"math"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port           int    `mapstructure:"port"`
	BaseContext    string `mapstructure:"base_context"`
	ReadTimeout    int    `mapstructure:"read_timeout"`    // milliseconds
	WriteTimeout   int    `mapstructure:"write_timeout"`   // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Domain Configuration Sections ---

// CatalogConfig selects where the university catalog is loaded from at startup.
type CatalogConfig struct {
	Source string `mapstructure:"source"` // static | file | postgres
	Path   string `mapstructure:"path"`   // for source=file
}

// CacheConfig selects the prediction cache backend and its bounds.
type CacheConfig struct {
	Backend    string `mapstructure:"backend"`     // memory | redis
	MaxEntries int    `mapstructure:"max_entries"` // memory backend capacity
	TTL        int    `mapstructure:"ttl"`         // milliseconds, redis backend
}

// ScoringConfig holds the factor weight table and the optional noise term.
// The weight table is the single source of truth consumed by the scoring
// engine; its sum is validated once at startup.
type ScoringConfig struct {
	Weights FactorWeights `mapstructure:"weights"`
	Noise   NoiseConfig   `mapstructure:"noise"`
	Workers int           `mapstructure:"workers"` // per-request scoring fan-out
}

// FactorWeights assigns each scoring factor its share of the composite score.
type FactorWeights struct {
	GPA        float64 `mapstructure:"gpa"`
	GRE        float64 `mapstructure:"gre"`
	Language   float64 `mapstructure:"language"`
	Research   float64 `mapstructure:"research"`
	Experience float64 `mapstructure:"experience"`
	ProgramFit float64 `mapstructure:"program_fit"`
}

// Sum returns the total weight across all factors.
func (w FactorWeights) Sum() float64 {
	return w.GPA + w.GRE + w.Language + w.Research + w.Experience + w.ProgramFit
}

// Validate enforces the weight-sum invariant.
func (w FactorWeights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", w.Sum())
	}
	for name, v := range map[string]float64{
		"gpa": w.GPA, "gre": w.GRE, "language": w.Language,
		"research": w.Research, "experience": w.Experience, "program_fit": w.ProgramFit,
	} {
		if v < 0 {
			return fmt.Errorf("scoring weight %q must be non-negative, got %v", name, v)
		}
	}
	return nil
}

// NoiseConfig controls the optional zero-mean gaussian perturbation of the
// adjusted probability. Off by default; seedable for reproducibility.
type NoiseConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	StdDev  float64 `mapstructure:"std_dev"`
	Seed    int64   `mapstructure:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
