package config

import (
	"errors"
	"fmt"
)

// Validate checks that values are internally consistent. Database fields are
// checked separately by ValidateDatabase since only the load step needs them.
func (c *Config) Validate() error {
	if c.Staging.RawDir == "" {
		return errors.New("staging.raw_dir is required")
	}
	if c.Staging.TransformedDir == "" {
		return errors.New("staging.transformed_dir is required")
	}

	if c.Generator.BatchSize < 1 {
		return errors.New("generator.batch_size must be >= 1")
	}
	if len(c.Generator.Tickers) == 0 {
		return errors.New("generator.tickers must not be empty")
	}
	if c.Generator.PriceMin <= 0 {
		return errors.New("generator.price_min must be > 0")
	}
	if c.Generator.PriceMax < c.Generator.PriceMin {
		return errors.New("generator.price_max must be >= generator.price_min")
	}
	if c.Generator.VolumeMin < 1 {
		return errors.New("generator.volume_min must be >= 1")
	}
	if c.Generator.VolumeMax < c.Generator.VolumeMin {
		return errors.New("generator.volume_max must be >= generator.volume_min")
	}
	if c.Generator.InvalidRate < 0 || c.Generator.InvalidRate > 1 {
		return errors.New("generator.invalid_rate must be in [0, 1]")
	}

	if c.Scheduler.Schedule == "" {
		return errors.New("scheduler.schedule is required")
	}
	if c.Scheduler.MaxRetries < 0 {
		return errors.New("scheduler.max_retries must be >= 0")
	}
	if c.Scheduler.RetryDelay < 0 {
		return errors.New("scheduler.retry_delay must be >= 0")
	}

	return nil
}

// ValidateDatabase checks the fields required to reach Postgres.
func (c *Config) ValidateDatabase() error {
	return c.Database.validate("database")
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be in 1-65535", prefix)
	}
	return nil
}
