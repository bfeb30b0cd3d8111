package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required fields
	SecretKey string `mapstructure:"secret_key"` // signs session cookies and tokens

	// Optional API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Optional SSL settings
	SSLCert string `mapstructure:"ssl_cert"`
	SSLKey  string `mapstructure:"ssl_key"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional token settings
	JWTAlgorithm string `mapstructure:"jwt_algorithm"`

	// Storage
	DBPath string `mapstructure:"db_path"`

	ConfigPath string
}

const (
	DefaultConfigPath   = "/etc/miniblog/config.yml"
	DefaultDBPath       = "/var/lib/miniblog/db.sqlite3"
	DefaultAPIHost      = "0.0.0.0"
	DefaultAPIPort      = 8317
	DefaultJWTAlgorithm = "HS256"
)

func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults (also registers the keys for env overrides)
	viper.SetDefault("secret_key", "")
	viper.SetDefault("api_host", DefaultAPIHost)
	viper.SetDefault("api_port", DefaultAPIPort)
	viper.SetDefault("jwt_algorithm", DefaultJWTAlgorithm)
	viper.SetDefault("db_path", DefaultDBPath)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("MINIBLOG")

	// The config file is optional when running from environment
	// variables alone; only an explicitly requested file must exist.
	if err := viper.ReadInConfig(); err != nil {
		if explicit {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if _, statErr := os.Stat(configPath); statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("secret_key is required")
	}

	// Validate SSL config if provided
	if c.SSLCert != "" || c.SSLKey != "" {
		if c.SSLCert == "" || c.SSLKey == "" {
			return fmt.Errorf("both ssl_cert and ssl_key must be provided")
		}
		if _, err := os.Stat(c.SSLCert); os.IsNotExist(err) {
			return fmt.Errorf("ssl_cert file does not exist: %s", c.SSLCert)
		}
		if _, err := os.Stat(c.SSLKey); os.IsNotExist(err) {
			return fmt.Errorf("ssl_key file does not exist: %s", c.SSLKey)
		}
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("MINIBLOG_DEV_MODE") == "1"
}

// UseSecureCookies reports whether session cookies should carry the
// Secure flag. TLS deployments get it, dev mode does not.
func (c *Config) UseSecureCookies() bool {
	return c.SSLCert != "" && c.SSLKey != ""
}
