package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	AuthHub  AuthHubConfig  `yaml:"auth_hub"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Sessions SessionConfig  `yaml:"sessions"`
	Settings SettingsConfig `yaml:"settings"`
	Storage  StorageConfig  `yaml:"storage"`
	Cache    CacheConfig    `yaml:"cache"`
	Redis    *RedisConfig   `yaml:"redis"`
	Security SecurityConfig `yaml:"security"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	ExternalURL string             `yaml:"external_url"`
	StaticDir   string             `yaml:"static_dir"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port:      8080,
	StaticDir: "web/dist",
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// AuthHubConfig describes the external BlackBox auth hub the server
// exchanges authorization codes against.
type AuthHubConfig struct {
	BaseURL        string        `yaml:"base_url"`
	ClientID       string        `yaml:"client_id"`
	ClientSecret   string        `yaml:"client_secret"`
	RedirectURI    string        `yaml:"redirect_url"`
	LoginPath      string   `yaml:"login_path"`
	AdminLoginPath string   `yaml:"admin_login_path"`
	RequestTimeout Duration `yaml:"request_timeout"`
}

// DefaultAuthHubConfig carries the documented fallback hub URL; everything
// else is deployment specific.
var DefaultAuthHubConfig = AuthHubConfig{
	BaseURL:        "https://bbh.codex-th.com",
	LoginPath:      "/login",
	AdminLoginPath: "/child-admin/login",
	RequestTimeout: Duration(10 * time.Second),
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string   `yaml:"store"`
	FixedTimeout Duration `yaml:"fixed_timeout"`
	Name         string   `yaml:"name"`
	Secure       bool     `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: Duration(24 * time.Hour),
	Name:         "session_id",
	Secure:       true,
}

// SettingsConfig controls the realtime settings bridge: the change-feed
// endpoint, the poll backstop, and the snapshot cache key.
type SettingsConfig struct {
	PollInterval Duration `yaml:"poll_interval"`
	CacheKey     string   `yaml:"cache_key"`
	FeedURL      string   `yaml:"feed_url"`
}

var DefaultSettingsConfig = SettingsConfig{
	PollInterval: Duration(30 * time.Second),
	CacheKey:     "site_settings_cache",
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

var DefaultStorageConfig = StorageConfig{
	Path: "./data/portfolio.db",
}

type CacheConfig struct {
	Type string `yaml:"type"`
}

var DefaultCacheConfig = CacheConfig{
	Type: "memory",
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	SessionIndex int                  `yaml:"session_index"`
	CacheIndex   int                  `yaml:"cache_index"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"sentinel_addresses"`
	SentinelUsername  string   `yaml:"sentinel_username"`
	SentinelPassword  string   `yaml:"sentinel_password"`
}

// SecurityConfig controls the audit logging collaborators: geo lookup
// providers tried in order, each with a bounded timeout.
type SecurityConfig struct {
	GeoProviders  []string `yaml:"geo_providers"`
	LookupTimeout Duration `yaml:"lookup_timeout"`
	RetentionDays int      `yaml:"retention_days"`
}

var DefaultSecurityConfig = SecurityConfig{
	GeoProviders: []string{
		"http://ip-api.com/json/%s",
		"https://ipapi.co/%s/json/",
	},
	LookupTimeout: Duration(3 * time.Second),
	RetentionDays: 30,
}
