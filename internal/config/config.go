package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvAuthHubBaseURL      = "PORTFOLIO_AUTH_HUB_BASE_URL"
	EnvAuthHubClientID     = "PORTFOLIO_AUTH_HUB_CLIENT_ID"
	EnvAuthHubClientSecret = "PORTFOLIO_AUTH_HUB_CLIENT_SECRET"
	EnvAuthHubRedirectURL  = "PORTFOLIO_AUTH_HUB_REDIRECT_URL"
	EnvRedisAddress        = "PORTFOLIO_REDIS_ADDRESS"
	EnvRedisUsername       = "PORTFOLIO_REDIS_USERNAME"
	EnvRedisPassword       = "PORTFOLIO_REDIS_PASSWORD"
	EnvStoragePath         = "PORTFOLIO_STORAGE_PATH"
	EnvSettingsFeedURL     = "PORTFOLIO_SETTINGS_FEED_URL"
	EnvServerPort          = "PORTFOLIO_SERVER_PORT"
	EnvServerExternalURL   = "PORTFOLIO_SERVER_EXTERNAL_URL"
)

func applyEnvironmentOverrides(config *Config) {
	if baseURL := os.Getenv(EnvAuthHubBaseURL); baseURL != "" {
		config.AuthHub.BaseURL = baseURL
	}

	if clientID := os.Getenv(EnvAuthHubClientID); clientID != "" {
		config.AuthHub.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvAuthHubClientSecret); clientSecret != "" {
		config.AuthHub.ClientSecret = clientSecret
	}

	if redirectURL := os.Getenv(EnvAuthHubRedirectURL); redirectURL != "" {
		config.AuthHub.RedirectURI = redirectURL
	}

	if address := os.Getenv(EnvRedisAddress); address != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Address = address
	}

	if username := os.Getenv(EnvRedisUsername); username != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = username
	}

	if password := os.Getenv(EnvRedisPassword); password != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = password
	}

	if path := os.Getenv(EnvStoragePath); path != "" {
		config.Storage.Path = path
	}

	if feedURL := os.Getenv(EnvSettingsFeedURL); feedURL != "" {
		config.Settings.FeedURL = feedURL
	}

	if portStr := os.Getenv(EnvServerPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Server.Port = port
		}
	}

	if externalURL := os.Getenv(EnvServerExternalURL); externalURL != "" {
		config.Server.ExternalURL = externalURL
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateAuthHubConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateSettingsConfig()
	if err != nil {
		return err
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	err = config.validateSecurityConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.StaticDir == "" {
		c.Server.StaticDir = DefaultServerConfig.StaticDir
	}

	if c.Server.ExternalURL == "" {
		return fmt.Errorf("server.external_url is required")
	}

	if err := validateURL(c.Server.ExternalURL, "server.external_url"); err != nil {
		return err
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateAuthHubConfig() error {
	if c.AuthHub.BaseURL == "" {
		c.AuthHub.BaseURL = DefaultAuthHubConfig.BaseURL
	}

	if err := validateURL(c.AuthHub.BaseURL, "auth_hub.base_url"); err != nil {
		return err
	}

	if c.AuthHub.ClientID == "" {
		return fmt.Errorf("auth_hub client id is required")
	}

	if c.AuthHub.RedirectURI == "" {
		c.AuthHub.RedirectURI = c.Server.ExternalURL + "/callback"
	}

	if err := validateURL(c.AuthHub.RedirectURI, "auth_hub.redirect_url"); err != nil {
		return err
	}

	if c.AuthHub.LoginPath == "" {
		c.AuthHub.LoginPath = DefaultAuthHubConfig.LoginPath
	}

	if c.AuthHub.AdminLoginPath == "" {
		c.AuthHub.AdminLoginPath = DefaultAuthHubConfig.AdminLoginPath
	}

	if c.AuthHub.RequestTimeout <= 0 {
		c.AuthHub.RequestTimeout = DefaultAuthHubConfig.RequestTimeout
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	}

	switch c.Sessions.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid session store: %s, options are memory or redis", c.Sessions.Store)
	}

	if c.Sessions.FixedTimeout <= 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	return nil
}

func (c *Config) validateSettingsConfig() error {
	if c.Settings.PollInterval <= 0 {
		c.Settings.PollInterval = DefaultSettingsConfig.PollInterval
	}

	if c.Settings.PollInterval < Duration(5*time.Second) {
		return fmt.Errorf("settings.poll_interval must be at least 5s, got %s", c.Settings.PollInterval)
	}

	if c.Settings.CacheKey == "" {
		c.Settings.CacheKey = DefaultSettingsConfig.CacheKey
	}

	if c.Settings.FeedURL != "" {
		if err := validateWebsocketURL(c.Settings.FeedURL, "settings.feed_url"); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultStorageConfig.Path
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = DefaultCacheConfig.Type
	}

	switch c.Cache.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid cache type: %s, options are memory or redis", c.Cache.Type)
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis configuration is required when redis cache or session store is enabled")
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("redis.sentinel.master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("redis.sentinel.sentinel_addresses is required")
		}
		return nil
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis.address is required")
	}

	return nil
}

func (c *Config) validateSecurityConfig() error {
	if len(c.Security.GeoProviders) == 0 {
		c.Security.GeoProviders = DefaultSecurityConfig.GeoProviders
	}

	if c.Security.LookupTimeout <= 0 {
		c.Security.LookupTimeout = DefaultSecurityConfig.LookupTimeout
	}

	if c.Security.RetentionDays <= 0 {
		c.Security.RetentionDays = DefaultSecurityConfig.RetentionDays
	}

	return nil
}
