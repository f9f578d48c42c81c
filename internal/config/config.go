package config

import "time"

// Config is the root configuration for the ETL pipeline.
type Config struct {
	Staging   StagingConfig   `yaml:"staging"`
	Generator GeneratorConfig `yaml:"generator"`
	Database  DBConfig        `yaml:"database"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// StagingConfig holds filesystem paths for intermediate artifacts.
type StagingConfig struct {
	RawDir         string `yaml:"raw_dir"`         // Raw JSON batches, one file per generator run
	TransformedDir string `yaml:"transformed_dir"` // Consolidated CSV, overwritten each run
}

// GeneratorConfig holds synthetic tick generation settings.
type GeneratorConfig struct {
	BatchSize   int      `yaml:"batch_size"`   // Records per run
	Tickers     []string `yaml:"tickers"`      // Symbol universe
	PriceMin    float64  `yaml:"price_min"`    // Lower price bound (dollars)
	PriceMax    float64  `yaml:"price_max"`    // Upper price bound (dollars)
	VolumeMin   int64    `yaml:"volume_min"`   // Lower volume bound
	VolumeMax   int64    `yaml:"volume_max"`   // Upper volume bound
	InvalidRate float64  `yaml:"invalid_rate"` // Probability of forcing price to 0
}

// DBConfig holds the Postgres connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// SchedulerConfig holds orchestration settings.
type SchedulerConfig struct {
	Schedule   string        `yaml:"schedule"`    // Cron expression for full runs
	MaxRetries int           `yaml:"max_retries"` // Retries per failed step
	RetryDelay time.Duration `yaml:"retry_delay"` // Fixed delay between retries
}
