package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Generation: GenerationConfig{APIKey: "test-key"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingValkeyAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{},
		},
		Generation: GenerationConfig{APIKey: "test-key"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing valkey addrs")
	}
}

func TestValidate_MissingGenerationKey(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing generation api key")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 120 {
		t.Errorf("expected WriteTimeoutSec=120, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Retrieval.Limit != 10 {
		t.Errorf("expected Retrieval.Limit=10, got %d", cfg.Retrieval.Limit)
	}
	if cfg.Retrieval.KeyPrefix != "pepdex:" {
		t.Errorf("expected KeyPrefix='pepdex:', got %q", cfg.Retrieval.KeyPrefix)
	}
	if cfg.Generation.Model != "gpt-4o-mini" {
		t.Errorf("expected generation model default, got %q", cfg.Generation.Model)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("expected embedding model default, got %q", cfg.Embedding.Model)
	}
	if cfg.Embedding.Dimensions != 1536 {
		t.Errorf("expected Dimensions=1536, got %d", cfg.Embedding.Dimensions)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database:  DatabaseConfig{ReadinessTimeout: 15},
		Retrieval: RetrievalConfig{Limit: 20, KeyPrefix: "custom:"},
		Embedding: EmbeddingConfig{Model: "custom-embed", Dimensions: 768},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Retrieval.Limit != 20 {
		t.Errorf("expected Retrieval.Limit=20, got %d", cfg.Retrieval.Limit)
	}
	if cfg.Retrieval.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Retrieval.KeyPrefix)
	}
	if cfg.Embedding.Dimensions != 768 {
		t.Errorf("expected Dimensions=768, got %d", cfg.Embedding.Dimensions)
	}
}

func TestApplyDefaults_EmbeddingInheritsGenerationCredentials(t *testing.T) {
	cfg := Config{
		Generation: GenerationConfig{
			APIKey:  "shared-key",
			BaseURL: "https://api.example.com/v1",
		},
	}
	cfg.ApplyDefaults()

	if cfg.Embedding.APIKey != "shared-key" {
		t.Errorf("expected embedding api key inherited, got %q", cfg.Embedding.APIKey)
	}
	if cfg.Embedding.BaseURL != "https://api.example.com/v1" {
		t.Errorf("expected embedding base url inherited, got %q", cfg.Embedding.BaseURL)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_PEPDEX_KEY", "from-env")

	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := `
http:
  port: 8080
database:
  addrs:
    - "${TEST_PEPDEX_ADDR:-localhost:6379}"
generation:
  api_key: "${TEST_PEPDEX_KEY}"
`
	if err := os.WriteFile(filepath.Join(cfgDir, "test.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generation.APIKey != "from-env" {
		t.Errorf("expected api key from env, got %q", cfg.Generation.APIKey)
	}
	if cfg.Database.Addrs[0] != "localhost:6379" {
		t.Errorf("expected default addr, got %q", cfg.Database.Addrs[0])
	}
}
