package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	LLMProvider            string `yaml:"llm_provider"`
	LLMModel               string `yaml:"llm_model"`
	GeminiAPIKey           string `yaml:"gemini_api_key"`
	AnthropicAPIKey        string `yaml:"anthropic_api_key"`
	UpstreamTimeoutSeconds int    `yaml:"upstream_timeout_seconds"`

	DataDir string `yaml:"data_dir"`
	DBPath  string `yaml:"db_path"`

	SummarySchedule    string `yaml:"summary_schedule"`
	AuditRetentionDays int    `yaml:"audit_retention_days"`
}

// LoadConfig reads .env, then config.yaml, then env-var overrides, applies
// defaults and validates. Missing required settings are fatal: the process
// must fail closed before it accepts a single request.
func LoadConfig() Config {
	// .env is optional; real deployments set real env vars.
	_ = godotenv.Load()

	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.ListenAddr, "LISTEN_ADDR")
	envOverride(&cfg.LLMProvider, "LLM_PROVIDER")
	envOverride(&cfg.LLMModel, "LLM_MODEL")
	envOverride(&cfg.GeminiAPIKey, "GEMINI_API_KEY")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverrideInt(&cfg.UpstreamTimeoutSeconds, "UPSTREAM_TIMEOUT_SECONDS")
	envOverride(&cfg.DataDir, "DATA_DIR")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.SummarySchedule, "SUMMARY_SCHEDULE")
	envOverrideInt(&cfg.AuditRetentionDays, "AUDIT_RETENTION_DAYS")

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "gemini"
	}
	if cfg.UpstreamTimeoutSeconds == 0 {
		cfg.UpstreamTimeoutSeconds = 60
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./rewriter.db"
	}
	if cfg.SummarySchedule == "" {
		cfg.SummarySchedule = "5 0 * * *"
	}
	if cfg.AuditRetentionDays == 0 {
		cfg.AuditRetentionDays = 90
	}

	// Validate required fields
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Fatalf("gemini_api_key is required when llm_provider=gemini (set GEMINI_API_KEY)")
		}
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Fatalf("anthropic_api_key is required when llm_provider=anthropic (set ANTHROPIC_API_KEY)")
		}
	default:
		log.Fatalf("llm_provider must be 'gemini' or 'anthropic', got '%s'", cfg.LLMProvider)
	}

	if cfg.UpstreamTimeoutSeconds < 1 {
		log.Fatalf("invalid upstream_timeout_seconds '%d': must be >= 1", cfg.UpstreamTimeoutSeconds)
	}
	if cfg.AuditRetentionDays < 0 {
		log.Fatalf("invalid audit_retention_days '%d': must be >= 0", cfg.AuditRetentionDays)
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
