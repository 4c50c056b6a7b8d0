package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		Redis              Redis    `json:"redis"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		MessageBroker      MessageBroker            `json:"message_broker"`
		Detector           DetectorConfig           `json:"detector"`
		Proposer           ProposerConfig           `json:"proposer"`
		Ranker             RankerConfig             `json:"ranker"`
		Approval           ApprovalConfig           `json:"approval"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`

		AccountDirectory HTTPConfiguration `json:"account_directory"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
		SecretKey       string        `json:"secret_key"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	MessageBroker struct {
		HTTPPort      int            `json:"http_port"`
		KafkaConsumer ConsumerConfig `json:"kafka_consumer"`
	}

	ConsumerConfig struct {
		Brokers          []string `json:"brokers"`
		ConsumerGroup    string   `json:"consumer_group"`
		Topic            string   `json:"topic"`
		TopicDLQ         string   `json:"topic_dlq"`
		TopicEntryPosted string   `json:"topic_entry_posted"`
		Assignor         string   `json:"assignor"`
		IsOldest         bool     `json:"is_oldest"`
		IsVerbose        bool     `json:"is_verbose"`
	}

	// DetectorConfig carries the duplicate scoring knobs. The zero value is
	// not usable; Default() fills the published tolerances.
	DetectorConfig struct {
		// WindowDays bounds the candidate search around the incoming date.
		WindowDays int `json:"window_days"`
		// DateToleranceDays is the furthest a candidate may sit from the
		// incoming date and still be scored.
		DateToleranceDays int `json:"date_tolerance_days"`
		// AmountTolerance is the absolute amount difference, expressed as a
		// decimal string, above which a candidate is not scored.
		AmountTolerance string `json:"amount_tolerance"`

		BaseScore          int     `json:"base_score"`
		AmountDiffWeight   float64 `json:"amount_diff_weight"`
		DaysDiffWeight     float64 `json:"days_diff_weight"`
		ExactMerchantBonus int     `json:"exact_merchant_bonus"`
		AcceptThreshold    int     `json:"accept_threshold"`
	}

	ProposerConfig struct {
		SuggesterModel   string        `json:"suggester_model"`
		SuggesterTimeout time.Duration `json:"suggester_timeout"`
		BusinessContext  string        `json:"business_context"`
	}

	RankerConfig struct {
		MaxAlternatives int           `json:"max_alternatives"`
		CacheTTL        time.Duration `json:"cache_ttl"`
	}

	ApprovalConfig struct {
		BulkMaxConcurrency int `json:"bulk_max_concurrency"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url"`
		SecretKey     string        `json:"secret_key"`
		RetryCount    int           `json:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout"`
	}
)

// DefaultDetector returns the published scoring tolerances.
func DefaultDetector() DetectorConfig {
	return DetectorConfig{
		WindowDays:         30,
		DateToleranceDays:  7,
		AmountTolerance:    "0.50",
		BaseScore:          100,
		AmountDiffWeight:   20,
		DaysDiffWeight:     5,
		ExactMerchantBonus: 10,
		AcceptThreshold:    70,
	}
}

// ApplyDefaults fills the sections whose zero value would make the engine
// inert.
func (c *Config) ApplyDefaults() {
	if c.Detector == (DetectorConfig{}) {
		c.Detector = DefaultDetector()
	}
	if c.Ranker.MaxAlternatives == 0 {
		c.Ranker.MaxAlternatives = 3
	}
	if c.Approval.BulkMaxConcurrency == 0 {
		c.Approval.BulkMaxConcurrency = 8
	}
	if c.Proposer.SuggesterTimeout == 0 {
		c.Proposer.SuggesterTimeout = 5 * time.Second
	}
}
