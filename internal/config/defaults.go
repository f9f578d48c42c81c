package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRawDir         = "data/stock/raw"
	DefaultTransformedDir = "data/stock/transformed"
	DefaultBatchSize      = 10
	DefaultPriceMin       = 100.0
	DefaultPriceMax       = 500.0
	DefaultVolumeMin      = 1_000
	DefaultVolumeMax      = 1_000_000
	DefaultInvalidRate    = 0.1
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 4
	DefaultMinConns       = 1
	DefaultSchedule       = "*/5 * * * *"
	DefaultMaxRetries     = 2
	DefaultRetryDelay     = 1 * time.Minute
)

// DefaultTickers is the symbol universe used when none is configured.
var DefaultTickers = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}

func (c *Config) applyDefaults() {
	// Staging defaults
	if c.Staging.RawDir == "" {
		c.Staging.RawDir = DefaultRawDir
	}
	if c.Staging.TransformedDir == "" {
		c.Staging.TransformedDir = DefaultTransformedDir
	}

	// Generator defaults
	if c.Generator.BatchSize == 0 {
		c.Generator.BatchSize = DefaultBatchSize
	}
	if len(c.Generator.Tickers) == 0 {
		c.Generator.Tickers = DefaultTickers
	}
	if c.Generator.PriceMin == 0 {
		c.Generator.PriceMin = DefaultPriceMin
	}
	if c.Generator.PriceMax == 0 {
		c.Generator.PriceMax = DefaultPriceMax
	}
	if c.Generator.VolumeMin == 0 {
		c.Generator.VolumeMin = DefaultVolumeMin
	}
	if c.Generator.VolumeMax == 0 {
		c.Generator.VolumeMax = DefaultVolumeMax
	}
	if c.Generator.InvalidRate == 0 {
		c.Generator.InvalidRate = DefaultInvalidRate
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Scheduler defaults
	if c.Scheduler.Schedule == "" {
		c.Scheduler.Schedule = DefaultSchedule
	}
	if c.Scheduler.MaxRetries == 0 {
		c.Scheduler.MaxRetries = DefaultMaxRetries
	}
	if c.Scheduler.RetryDelay == 0 {
		c.Scheduler.RetryDelay = DefaultRetryDelay
	}
}
