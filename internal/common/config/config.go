// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Pipeline      PipelineConfig     `mapstructure:"pipeline"`
	Scoring       ScoringConfig      `mapstructure:"scoring"`
	Retrieval     RetrievalConfig    `mapstructure:"retrieval"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Export        ExportConfig       `mapstructure:"export"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Metrics       MetricsConfig      `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// PipelineConfig controls batch orchestration. Workers is the size of the
// scoring worker pool; 1 means sequential processing.
type PipelineConfig struct {
	Workers int `mapstructure:"workers"`
}

// ScoringConfig holds every tunable weight and threshold of the scoring
// engine. These are product decisions, reviewed against sales outcomes, and
// are injected into the calculators rather than read as globals.
type ScoringConfig struct {
	Weights       WeightConfig     `mapstructure:"weights"`
	Tiers         TierConfig       `mapstructure:"tiers"`
	Business      BusinessConfig   `mapstructure:"business"`
	Digital       DigitalConfig    `mapstructure:"digital"`
	Engagement    EngagementConfig `mapstructure:"engagement"`
	Contact       ContactConfig    `mapstructure:"contact"`
	RulesPath     string           `mapstructure:"rules_path"`
	RedesignBelow int              `mapstructure:"redesign_below"`
	ReviewsAbove  int              `mapstructure:"reviews_above"`
}

// WeightConfig is the combiner weight triple. Must sum to 1.0.
type WeightConfig struct {
	Business   float64 `mapstructure:"business"`
	Digital    float64 `mapstructure:"digital"`
	Engagement float64 `mapstructure:"engagement"`
}

// TierConfig holds the tier cut points (inclusive lower edges) and the
// sales-facing monthly value bracket per tier.
type TierConfig struct {
	HotMin    int    `mapstructure:"hot_min"`
	WarmMin   int    `mapstructure:"warm_min"`
	HotValue  string `mapstructure:"hot_value"`
	WarmValue string `mapstructure:"warm_value"`
	ColdValue string `mapstructure:"cold_value"`
}

type BusinessConfig struct {
	Baseline      int `mapstructure:"baseline"`
	ChainBonus    int `mapstructure:"chain_bonus"`
	PremiumBonus  int `mapstructure:"premium_bonus"`
	LocationBonus int `mapstructure:"location_bonus"`
}

type DigitalConfig struct {
	MobilePenalty  int `mapstructure:"mobile_penalty"`
	SSLPenalty     int `mapstructure:"ssl_penalty"`
	SEOPenalty     int `mapstructure:"seo_penalty"`
	BookingPenalty int `mapstructure:"booking_penalty"`
}

type EngagementConfig struct {
	LowRatingMax   float64 `mapstructure:"low_rating_max"`
	LowRatingBoost int     `mapstructure:"low_rating_boost"`
}

// ContactConfig drives the contact-quality label. Keywords are matched
// against the email local part.
type ContactConfig struct {
	GenericKeywords       []string `mapstructure:"generic_keywords"`
	DecisionMakerKeywords []string `mapstructure:"decision_maker_keywords"`
	PersonalDomains       []string `mapstructure:"personal_domains"`
}

// RetrievalConfig controls the website and maps fetchers.
type RetrievalConfig struct {
	Timeout      int    `mapstructure:"timeout"` // milliseconds
	UserAgent    string `mapstructure:"user_agent"`
	CacheEnabled bool   `mapstructure:"cache_enabled"`
	CacheTTL     int    `mapstructure:"cache_ttl"` // seconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
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

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	URL       string   `mapstructure:"url"`
}

// GetURL returns the first address or the URL field.
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ExportConfig selects the output sinks for the ranked batch.
type ExportConfig struct {
	CSVPath  string `mapstructure:"csv_path"`
	TopN     int    `mapstructure:"top_n"`
	Postgres struct {
		Enabled bool   `mapstructure:"enabled"`
		Table   string `mapstructure:"table"`
	} `mapstructure:"postgres"`
	Elasticsearch struct {
		Enabled bool   `mapstructure:"enabled"`
		Index   string `mapstructure:"index"`
	} `mapstructure:"elasticsearch"`
}

// NotificationConfig holds settings for HOT-lead sales alerts.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
		SalesTeam string `mapstructure:"sales_team"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled    bool   `mapstructure:"enabled"`
		SalesPhone string `mapstructure:"sales_phone"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig holds the prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
