package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the registry looks for its YAML file
const DefaultConfigPath = "configs/config.yaml"

// DefaultEnvFile is the optional dotenv file loaded before env overrides
const DefaultEnvFile = ".env"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		CORSOrigins     string `yaml:"cors_origins" env:"SERVER_CORS_ORIGINS"`
		RateLimit       int    `yaml:"rate_limit" env:"SERVER_RATE_LIMIT"`
		RateBurst       int    `yaml:"rate_burst" env:"SERVER_RATE_BURST"`
	} `yaml:"server"`

	University struct {
		Name     string `yaml:"name" env:"UNIVERSITY_NAME"`
		SeedFile string `yaml:"seed_file" env:"UNIVERSITY_SEED_FILE"`
	} `yaml:"university"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from defaults, the YAML file, a dotenv file
// and finally the process environment, later sources winning.
func LoadConfig(configPath, envFile string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// godotenv never overrides variables already present in the environment
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = "10s"
	config.Server.CORSOrigins = "*"
	config.Server.RateLimit = 0
	config.Server.RateBurst = 20

	config.University.Name = "Technical University of Moldova"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.University.Name) == "" {
		return fmt.Errorf("university name is required")
	}

	port, err := strconv.Atoi(config.Server.Port)
	if err != nil {
		return fmt.Errorf("invalid server port %q: %w", config.Server.Port, err)
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("server port %d is out of range", port)
	}

	if _, err := time.ParseDuration(config.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown timeout format: %w", err)
	}

	if config.Server.RateLimit < 0 || config.Server.RateBurst < 0 {
		return fmt.Errorf("rate limit and burst must not be negative")
	}
	if config.Server.RateLimit > 0 && config.Server.RateBurst == 0 {
		return fmt.Errorf("rate burst must be positive when rate limiting is enabled")
	}

	return nil
}

// ShutdownTimeout returns the parsed graceful shutdown timeout
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// CORSOrigins returns the allowed origins; "*" allows every origin
func (c *Config) CORSOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.Server.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// PrettyLogs reports whether logs should use the human-readable console writer
func (c *Config) PrettyLogs() bool {
	return strings.EqualFold(c.Logging.Format, "text")
}
