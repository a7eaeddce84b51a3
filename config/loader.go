package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lancemnguyen/dataferry/errors"
)

const envPrefix = "DATAFERRY"

// Load reads configuration with the following precedence, lowest
// first: built-in defaults, YAML config file, .env file, DATAFERRY_*
// environment variables. configFile may be empty, in which case
// dataferry.yaml is searched for in the working directory and is
// optional.
func Load(configFile string) (*Config, error) {
	// .env is loaded first so the env layer below sees its values.
	// Missing .env is fine; a malformed one is not.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.InvalidInput("failed to load .env: " + err.Error())
		}
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("dataferry")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, errors.InvalidInput("failed to read config file " + configFile + ": " + err.Error())
		}
		// A missing implicit config file is fine; a malformed one is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, errors.InvalidInput("failed to read dataferry.yaml: " + err.Error())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.InvalidInput("failed to parse configuration: " + err.Error())
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Spec default: a ten-element source.
	v.SetDefault("run.size", 10)
	v.SetDefault("run.capacity", 0)
	v.SetDefault("run.seed", 0)
	v.SetDefault("run.policy", "mixed")
	v.SetDefault("run.show_data", false)
	v.SetDefault("stats.file", "")
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.timestamp", true)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4318")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.service_name", "dataferry")
}
