package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/ttscatalog/internal/store"
	"github.com/agentstation/ttscatalog/internal/transport"
	"github.com/agentstation/ttscatalog/pkg/constants"
	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/refresh"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

// EnvPrefix prefixes every configuration key read from the environment.
const EnvPrefix = "TTSCATALOG"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Discovery
	Author      string
	SearchTerms []string
	Limit       int
	Revision    string
	Seeds       []string

	// Artifact
	Output string

	// Hub access
	HFEndpoint     string
	HFToken        string
	MaxAttempts    int
	Backoff        time.Duration
	HTTPTimeout    time.Duration
	CacheSize      int
	RefreshTimeout time.Duration

	// Publishing
	S3 store.Config

	// Logging configuration. LogLevel comes from --log-level only;
	// DefaultLogLevel from LOG_LEVEL or the config file.
	LogLevel        string
	DefaultLogLevel string
	LogFormat       string
	LogOutput       string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (TTSCATALOG_*, plus HF_TOKEN)
// 3. .env files
// 4. Config file (--config, or .ttscatalog.yaml in $HOME or the working directory)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()
	return loadConfig(viper.New(), configFile)
}

func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	if err := v.BindEnv("hf_token", EnvPrefix+"_HF_TOKEN", "HF_TOKEN", "HUGGINGFACE_API_KEY"); err != nil {
		return nil, errors.NewConfigError("env", "bind hf_token", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".ttscatalog")
		// A missing default config file is fine.
		_ = v.ReadInConfig()
	}

	config := &Config{
		ConfigFile: v.ConfigFileUsed(),

		Author:      v.GetString("author"),
		SearchTerms: stringList(v, "search_terms"),
		Limit:       v.GetInt("limit"),
		Revision:    v.GetString("revision"),
		Seeds:       stringList(v, "seeds"),

		Output: v.GetString("output"),

		HFEndpoint:     v.GetString("hf_endpoint"),
		HFToken:        v.GetString("hf_token"),
		MaxAttempts:    v.GetInt("max_attempts"),
		Backoff:        v.GetDuration("backoff"),
		HTTPTimeout:    v.GetDuration("http_timeout"),
		CacheSize:      v.GetInt("cache_size"),
		RefreshTimeout: v.GetDuration("refresh_timeout"),

		S3: store.Config{
			Endpoint:  v.GetString("s3_endpoint"),
			Region:    v.GetString("s3_region"),
			AccessKey: v.GetString("s3_access_key"),
			SecretKey: v.GetString("s3_secret_key"),
			Bucket:    v.GetString("s3_bucket"),
			Key:       v.GetString("s3_key"),
			UseSSL:    v.GetBool("s3_use_ssl"),
		},

		DefaultLogLevel: getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", v.GetString("log_format")),
		LogOutput:       getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output")),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("author", constants.DefaultAuthor)
	v.SetDefault("search_terms", constants.DefaultSearchTerms())
	v.SetDefault("limit", constants.DefaultSearchLimit)
	v.SetDefault("revision", constants.DefaultRevision)
	v.SetDefault("output", constants.DefaultOutputPath)
	v.SetDefault("hf_endpoint", constants.DefaultHubEndpoint)
	v.SetDefault("max_attempts", constants.MaxAttempts)
	v.SetDefault("backoff", constants.RetryBackoff)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("cache_size", constants.DefaultCacheSize)
	v.SetDefault("refresh_timeout", constants.RefreshTimeout)
	v.SetDefault("s3_key", store.DefaultKey)
	v.SetDefault("s3_use_ssl", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.MaxAttempts < 1 {
		return errors.NewValidationError("max_attempts", c.MaxAttempts, "must be at least 1")
	}
	if c.Backoff < 0 {
		return errors.NewValidationError("backoff", c.Backoff, "must be non-negative")
	}
	if c.HTTPTimeout <= 0 {
		return errors.NewValidationError("http_timeout", c.HTTPTimeout, "must be positive")
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so that flag values take
// precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// RetryPolicy returns the Hub retry policy described by the config.
func (c *Config) RetryPolicy() transport.RetryPolicy {
	policy := transport.DefaultRetryPolicy()
	policy.MaxAttempts = c.MaxAttempts
	policy.Backoff = transport.LinearBackoff(c.Backoff)
	return policy
}

// SourceOptions returns the Hub source options described by the config.
func (c *Config) SourceOptions() []sources.Option {
	return []sources.Option{
		sources.WithEndpoint(c.HFEndpoint),
		sources.WithToken(c.HFToken),
		sources.WithTimeout(c.HTTPTimeout),
		sources.WithRetryPolicy(c.RetryPolicy()),
	}
}

// RefreshOptions returns the refresh options described by the config.
func (c *Config) RefreshOptions() []refresh.Option {
	return []refresh.Option{
		refresh.WithAuthor(c.Author),
		refresh.WithSearchTerms(c.SearchTerms...),
		refresh.WithLimit(c.Limit),
		refresh.WithRevision(c.Revision),
		refresh.WithSeeds(c.Seeds...),
		refresh.WithCacheSize(c.CacheSize),
		refresh.WithTimeout(c.RefreshTimeout),
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local does not override values already set by .env or the shell.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// stringList reads a list that may be given as a YAML sequence or as a
// comma-separated string.
func stringList(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
