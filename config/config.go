package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service configuration
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Docs     DocsConfig
	Redis    RedisConfig
	Identity IdentityConfig
	NewRelic NewRelicConfig
	Worker   WorkerConfig
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port int
	Mode string // debug, release, test
}

// BackendConfig holds the upstream fleet REST API configuration
type BackendConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DocsConfig holds the static document server configuration
type DocsConfig struct {
	BaseURL string
}

// RedisConfig holds the Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

// IdentityConfig holds the external identity provider configuration
type IdentityConfig struct {
	Issuer            string
	LogoutRedirectURL string
}

// NewRelicConfig holds the New Relic configuration
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// WorkerConfig holds the background worker configuration
type WorkerConfig struct {
	CatalogRefreshInterval time.Duration
}

// InitConfig initializes the configuration using Viper
func InitConfig(cfgFile string) error {
	setDefaults()

	// Use config file from the flag if provided
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/fleetdesk")
		viper.SetConfigName("config")
	}

	// Environment variable overrides, e.g. FLEETDESK_SERVER_PORT
	viper.SetEnvPrefix("FLEETDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("No config file found, using defaults and environment variables")
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	return nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("server.port", 8085)
	viper.SetDefault("server.mode", "release")

	viper.SetDefault("backend.baseurl", "http://localhost:5000/api")
	viper.SetDefault("backend.timeout", "30s")

	viper.SetDefault("docs.baseurl", "http://localhost:5000/docs")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.enabled", true)

	viper.SetDefault("identity.issuer", "")
	viper.SetDefault("identity.logoutredirecturl", "/")

	viper.SetDefault("newrelic.appname", "Fleetdesk Local")
	viper.SetDefault("newrelic.enabled", false)

	viper.SetDefault("worker.catalogrefreshinterval", "10m")
}

// Load loads the configuration
func Load() (*Config, error) {
	serverConfig := ServerConfig{
		Port: viper.GetInt("server.port"),
		Mode: viper.GetString("server.mode"),
	}

	backendConfig := BackendConfig{
		BaseURL: viper.GetString("backend.baseurl"),
		APIKey:  viper.GetString("backend.apikey"),
		Timeout: viper.GetDuration("backend.timeout"),
	}

	docsConfig := DocsConfig{
		BaseURL: viper.GetString("docs.baseurl"),
	}

	redisConfig := RedisConfig{
		Host:     viper.GetString("redis.host"),
		Port:     viper.GetInt("redis.port"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
		Enabled:  viper.GetBool("redis.enabled"),
	}

	identityConfig := IdentityConfig{
		Issuer:            viper.GetString("identity.issuer"),
		LogoutRedirectURL: viper.GetString("identity.logoutredirecturl"),
	}

	newRelicConfig := NewRelicConfig{
		AppName:    viper.GetString("newrelic.appname"),
		LicenseKey: viper.GetString("newrelic.licensekey"),
		Enabled:    viper.GetBool("newrelic.enabled"),
	}

	workerConfig := WorkerConfig{
		CatalogRefreshInterval: viper.GetDuration("worker.catalogrefreshinterval"),
	}

	return &Config{
		Server:   serverConfig,
		Backend:  backendConfig,
		Docs:     docsConfig,
		Redis:    redisConfig,
		Identity: identityConfig,
		NewRelic: newRelicConfig,
		Worker:   workerConfig,
	}, nil
}
