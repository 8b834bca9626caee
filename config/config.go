package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the tfidf tool.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Report  ReportConfig  `yaml:"report"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig selects and configures the document catalog.
type CatalogConfig struct {
	Driver       string         `yaml:"driver"` // "bolt", "postgres", "memory"
	Path         string         `yaml:"path"`   // bolt file, relative to the root dir
	SeedDefaults bool           `yaml:"seed_defaults"`
	DefaultPaths []string       `yaml:"default_paths"`
	Postgres     PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL connection parameters.
type PostgresConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Database        string        `yaml:"database"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// DSN returns a lib/pq-compatible key=value data source name. Every value
// is single-quoted so empty values and values with spaces survive parsing.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSN(p.Host), p.Port, quoteDSN(p.User), quoteDSN(p.Password),
		quoteDSN(p.Database), quoteDSN(p.SSLMode),
	)
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSN(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// CorpusConfig holds document and stop-word settings.
type CorpusConfig struct {
	StopWordsFile string   `yaml:"stop_words_file"`
	BaseDir       string   `yaml:"base_dir"` // empty means the root dir
	Workers       int      `yaml:"workers"`
	Includes      []string `yaml:"includes"`
	Excludes      []string `yaml:"excludes"`
}

// ReportConfig holds result output settings.
type ReportConfig struct {
	Format    string `yaml:"format"` // "text", "json", "yaml"
	TopN      int    `yaml:"top_n"`
	Precision int    `yaml:"precision"`
}

// MetricsConfig holds the Prometheus textfile location.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Driver:       "bolt",
			Path:         filepath.Join(".tfidf", "catalog.db"),
			SeedDefaults: true,
			DefaultPaths: []string{"./docs/doc1.txt", "./docs/doc2.txt", "./docs/doc3.txt"},
			Postgres: PostgresConfig{
				Host:            "localhost",
				Port:            5432,
				Database:        "corpus",
				User:            "postgres",
				SSLMode:         "disable",
				MaxOpenConns:    4,
				MaxIdleConns:    2,
				ConnMaxLifetime: 5 * time.Minute,
			},
		},
		Corpus: CorpusConfig{
			StopWordsFile: "stop_words.txt",
			Workers:       4,
			Includes:      []string{"**/*.txt"},
			Excludes:      []string{"**/.git/**", "**/.tfidf/**"},
		},
		Report: ReportConfig{
			Format:    "text",
			TopN:      0,
			Precision: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyEnv()

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for tfidf.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "tfidf.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".tfidf", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	cfg := DefaultConfig()
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets secrets stay out of the YAML file.
func (c *Config) applyEnv() {
	if v := os.Getenv("TFIDF_POSTGRES_PASSWORD"); v != "" {
		c.Catalog.Postgres.Password = v
	}
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CatalogDBPath returns the bolt catalog location for a root directory.
func (c *Config) CatalogDBPath(dir string) string {
	return resolve(dir, c.Catalog.Path)
}

// StopWordsPath returns the stop-word file location for a root directory.
func (c *Config) StopWordsPath(dir string) string {
	return resolve(dir, c.Corpus.StopWordsFile)
}

// DocumentBaseDir returns the directory relative document paths resolve against.
func (c *Config) DocumentBaseDir(dir string) string {
	if c.Corpus.BaseDir == "" {
		return dir
	}
	return resolve(dir, c.Corpus.BaseDir)
}

// EnsureDir ensures the parent directory of path exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
