// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like DB_PASSWORD
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored if not present.
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries the usual locations so the binary works from the repo
// root, cmd/ subdirectories and test packages alike.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig fills credentials from plain env vars when the YAML
// left them empty after expansion.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Database.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Database.Postgres.User = val
		}
	}
	if cfg.Database.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Database.Postgres.Password = val
		}
	}
	if cfg.Database.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Database.Redis.Password = val
		}
	}
	if cfg.Database.Elasticsearch.Password == "" {
		if val := os.Getenv("ELASTICSEARCH_PASSWORD"); val != "" {
			cfg.Database.Elasticsearch.Password = val
		}
	}
	if cfg.Notifications.AWS.Region == "" {
		if val := os.Getenv("AWS_REGION"); val != "" {
			cfg.Notifications.AWS.Region = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "lead-scorer"
	}

	// Pipeline defaults
	if cfg.Pipeline.Workers == 0 {
		cfg.Pipeline.Workers = 4
	}

	// Scoring defaults: business 30%, digital 35%, engagement 35%.
	if cfg.Scoring.Weights.Business == 0 && cfg.Scoring.Weights.Digital == 0 && cfg.Scoring.Weights.Engagement == 0 {
		cfg.Scoring.Weights = WeightConfig{Business: 0.30, Digital: 0.35, Engagement: 0.35}
	}
	if cfg.Scoring.Tiers.HotMin == 0 {
		cfg.Scoring.Tiers.HotMin = 80
	}
	if cfg.Scoring.Tiers.WarmMin == 0 {
		cfg.Scoring.Tiers.WarmMin = 60
	}
	if cfg.Scoring.Tiers.HotValue == "" {
		cfg.Scoring.Tiers.HotValue = "$2000-5000/month"
	}
	if cfg.Scoring.Tiers.WarmValue == "" {
		cfg.Scoring.Tiers.WarmValue = "$1000-2500/month"
	}
	if cfg.Scoring.Tiers.ColdValue == "" {
		cfg.Scoring.Tiers.ColdValue = "$500-1200/month"
	}
	if cfg.Scoring.Business.Baseline == 0 {
		cfg.Scoring.Business = BusinessConfig{Baseline: 40, ChainBonus: 25, PremiumBonus: 20, LocationBonus: 15}
	}
	if cfg.Scoring.Digital.MobilePenalty == 0 {
		cfg.Scoring.Digital = DigitalConfig{MobilePenalty: 30, SSLPenalty: 20, SEOPenalty: 25, BookingPenalty: 25}
	}
	if cfg.Scoring.Engagement.LowRatingMax == 0 {
		cfg.Scoring.Engagement = EngagementConfig{LowRatingMax: 3.5, LowRatingBoost: 10}
	}
	if len(cfg.Scoring.Contact.GenericKeywords) == 0 {
		cfg.Scoring.Contact.GenericKeywords = []string{"info", "contact", "admin", "support", "sales", "hello", "noreply", "no-reply"}
	}
	if len(cfg.Scoring.Contact.DecisionMakerKeywords) == 0 {
		cfg.Scoring.Contact.DecisionMakerKeywords = []string{"owner", "founder", "ceo", "president", "director", "gm"}
	}
	if len(cfg.Scoring.Contact.PersonalDomains) == 0 {
		cfg.Scoring.Contact.PersonalDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}
	}
	if cfg.Scoring.RedesignBelow == 0 {
		cfg.Scoring.RedesignBelow = 50
	}
	if cfg.Scoring.ReviewsAbove == 0 {
		cfg.Scoring.ReviewsAbove = 60
	}
	if cfg.Scoring.RulesPath == "" {
		cfg.Scoring.RulesPath = "configs/rules.json"
	}

	// Retrieval defaults
	if cfg.Retrieval.Timeout == 0 {
		cfg.Retrieval.Timeout = 15000
	}
	if cfg.Retrieval.UserAgent == "" {
		cfg.Retrieval.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if cfg.Retrieval.CacheTTL == 0 {
		cfg.Retrieval.CacheTTL = 86400
	}

	// Database defaults
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Elasticsearch.URL == "" && len(cfg.Database.Elasticsearch.Addresses) > 0 {
		cfg.Database.Elasticsearch.URL = cfg.Database.Elasticsearch.Addresses[0]
	}

	// Export defaults
	if cfg.Export.CSVPath == "" {
		cfg.Export.CSVPath = "data/output/scored_leads.csv"
	}
	if cfg.Export.TopN == 0 {
		cfg.Export.TopN = 10
	}
	if cfg.Export.Postgres.Table == "" {
		cfg.Export.Postgres.Table = "scored_leads"
	}
	if cfg.Export.Elasticsearch.Index == "" {
		cfg.Export.Elasticsearch.Index = "scored-leads"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	// Metrics defaults
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9090"
	}
}

// validateConfig validates critical configuration fields. Sinks that are
// disabled don't need their connection settings.
func validateConfig(cfg *Config) error {
	if cfg.Pipeline.Workers < 1 {
		return fmt.Errorf("pipeline.workers must be at least 1")
	}

	if cfg.Export.Postgres.Enabled {
		if cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required when postgres export is enabled")
		}
		if cfg.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.database is required when postgres export is enabled")
		}
		if cfg.Database.Postgres.User == "" {
			return fmt.Errorf("database.postgres.user is required when postgres export is enabled")
		}
	}

	if cfg.Export.Elasticsearch.Enabled && cfg.Database.Elasticsearch.GetURL() == "" {
		return fmt.Errorf("database.elasticsearch.addresses or url is required when elasticsearch export is enabled")
	}

	if cfg.Retrieval.CacheEnabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when the retrieval cache is enabled")
	}

	if cfg.Notifications.Email.Enabled || cfg.Notifications.SMS.Enabled {
		if cfg.Notifications.AWS.Region == "" {
			return fmt.Errorf("notifications.aws.region is required when notifications are enabled")
		}
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
