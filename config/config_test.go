package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog.Driver != "bolt" {
		t.Errorf("expected Driver=bolt, got %s", cfg.Catalog.Driver)
	}
	if !cfg.Catalog.SeedDefaults {
		t.Error("expected SeedDefaults=true")
	}
	if len(cfg.Catalog.DefaultPaths) != 3 || cfg.Catalog.DefaultPaths[0] != "./docs/doc1.txt" {
		t.Errorf("unexpected default paths: %v", cfg.Catalog.DefaultPaths)
	}
	if cfg.Corpus.StopWordsFile != "stop_words.txt" {
		t.Errorf("expected StopWordsFile=stop_words.txt, got %s", cfg.Corpus.StopWordsFile)
	}
	if cfg.Corpus.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", cfg.Corpus.Workers)
	}
	if cfg.Report.Format != "text" {
		t.Errorf("expected Format=text, got %s", cfg.Report.Format)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tfidf.yaml")

	content := `
catalog:
  driver: postgres
  seed_defaults: false
  postgres:
    host: db.internal
    conn_max_lifetime: 30s
corpus:
  workers: 8
report:
  format: json
  top_n: 10
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Catalog.Driver != "postgres" {
		t.Errorf("expected Driver=postgres, got %s", cfg.Catalog.Driver)
	}
	if cfg.Catalog.SeedDefaults {
		t.Error("expected SeedDefaults=false")
	}
	if cfg.Catalog.Postgres.Host != "db.internal" {
		t.Errorf("expected Host=db.internal, got %s", cfg.Catalog.Postgres.Host)
	}
	if cfg.Catalog.Postgres.Port != 5432 {
		t.Errorf("expected default Port=5432, got %d", cfg.Catalog.Postgres.Port)
	}
	if cfg.Catalog.Postgres.ConnMaxLifetime.Seconds() != 30 {
		t.Errorf("expected ConnMaxLifetime=30s, got %v", cfg.Catalog.Postgres.ConnMaxLifetime)
	}
	if cfg.Corpus.Workers != 8 {
		t.Errorf("expected Workers=8, got %d", cfg.Corpus.Workers)
	}
	if cfg.Report.Format != "json" || cfg.Report.TopN != 10 {
		t.Errorf("unexpected report config: %+v", cfg.Report)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tfidf.yaml")
	if err := os.WriteFile(configPath, []byte("catalog: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".tfidf"), 0755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".tfidf", "config.yaml")

	content := `
report:
  precision: 2
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Report.Precision != 2 {
		t.Errorf("expected Precision=2, got %d", cfg.Report.Precision)
	}
}

func TestPasswordFromEnv(t *testing.T) {
	t.Setenv("TFIDF_POSTGRES_PASSWORD", "s3cret")

	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(cfg.Catalog.Postgres.DSN(), "password='s3cret'") {
		t.Errorf("expected password in DSN, got %s", cfg.Catalog.Postgres.DSN())
	}
}

func TestPaths(t *testing.T) {
	cfg := DefaultConfig()
	root := "/home/user/corpus"

	if got, want := cfg.CatalogDBPath(root), filepath.Join(root, ".tfidf", "catalog.db"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got, want := cfg.StopWordsPath(root), filepath.Join(root, "stop_words.txt"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got := cfg.DocumentBaseDir(root); got != root {
		t.Errorf("expected %s, got %s", root, got)
	}

	cfg.Corpus.StopWordsFile = "/etc/tfidf/stop.txt"
	if got := cfg.StopWordsPath(root); got != "/etc/tfidf/stop.txt" {
		t.Errorf("absolute path should be kept, got %s", got)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tfidf.yaml")
	cfg := DefaultConfig()
	cfg.Report.TopN = 7
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Report.TopN != 7 {
		t.Errorf("expected TopN=7, got %d", loaded.Report.TopN)
	}
}

func TestDSN_ParsesWithLibPQ(t *testing.T) {
	tests := []struct {
		name     string
		password string
		database string
	}{
		{"empty password", "", "corpus"},
		{"password with space", "pa ss", "corpus"},
		{"password with quote and backslash", `it's\x`, "corpus"},
		{"database with space", "s3cret", "my corpus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := DefaultConfig().Catalog.Postgres
			pg.Password = tt.password
			pg.Database = tt.database

			parsed, err := pq.NewConfig(pg.DSN())
			if err != nil {
				t.Fatalf("DSN %q did not parse: %v", pg.DSN(), err)
			}
			if parsed.Password != tt.password {
				t.Errorf("expected password %q, got %q", tt.password, parsed.Password)
			}
			if parsed.Database != tt.database {
				t.Errorf("expected database %q, got %q", tt.database, parsed.Database)
			}
			if parsed.User != "postgres" || parsed.Host != "localhost" || parsed.Port != 5432 {
				t.Errorf("unexpected connection target: user=%q host=%q port=%d", parsed.User, parsed.Host, parsed.Port)
			}
		})
	}
}
