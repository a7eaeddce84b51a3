package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lancemnguyen/dataferry/errors"
	"github.com/lancemnguyen/dataferry/logger"
)

// Config is the root configuration for the dataferry CLI.
type Config struct {
	Run       RunConfig       `yaml:"run" mapstructure:"run"`
	Logging   logger.Config   `yaml:"logging" mapstructure:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
	Stats     StatsConfig     `yaml:"stats" mapstructure:"stats"`
}

// RunConfig configures the transfer pipeline run.
type RunConfig struct {
	// Size is the source length N. Zero is a legal, empty run.
	Size int `yaml:"size" mapstructure:"size" validate:"gte=0"`
	// Capacity overrides the channel capacity; zero selects max(1, N/2).
	Capacity int `yaml:"capacity" mapstructure:"capacity" validate:"gte=0"`
	// Seed makes source generation reproducible; zero uses the clock.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
	// Policy is the source-generation policy.
	Policy string `yaml:"policy" mapstructure:"policy" validate:"omitempty,oneof=mixed integers reals"`
	// ShowData prints both sequences after the run.
	ShowData bool `yaml:"show_data" mapstructure:"show_data"`
}

// TelemetryConfig configures the optional OTLP export.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint    string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure    bool   `yaml:"insecure" mapstructure:"insecure"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

// StatsConfig configures the shopping-statistics batch job.
type StatsConfig struct {
	// File is the CSV dataset path.
	File string `yaml:"file" mapstructure:"file"`
}

// ApplyDefaults applies default values across all sections.
func (c *Config) ApplyDefaults() {
	if c.Run.Policy == "" {
		c.Run.Policy = "mixed"
	}
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "dataferry"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the full configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.InvalidInput(err.Error())
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", strings.ToLower(e.Namespace()), e.Tag()))
		}
		return errors.InvalidInput(strings.Join(msgs, "; "))
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidInput(err.Error())
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())
