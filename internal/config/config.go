package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level folio configuration.
type Config struct {
	Handles     Handles  `mapstructure:"handles"`
	GitHub      GitHub   `mapstructure:"github"`
	LeetCode    LeetCode `mapstructure:"leetcode"`
	HTTP        HTTP     `mapstructure:"http"`
	Server      Server   `mapstructure:"server"`
	Output      Output   `mapstructure:"output"`
	CatalogFile string   `mapstructure:"catalog_file"`
}

// Handles are the public account names queried on each provider.
type Handles struct {
	GitHub   string `mapstructure:"github"`
	LeetCode string `mapstructure:"leetcode"`
}

// GitHub configures the source-control client.
type GitHub struct {
	BaseURL        string `mapstructure:"base_url"`
	LanguageSample int    `mapstructure:"language_sample"`
	TopLanguages   int    `mapstructure:"top_languages"`
	RepoSort       string `mapstructure:"repo_sort"`
	RepoPageSize   int    `mapstructure:"repo_page_size"`
	EventsPageSize int    `mapstructure:"events_page_size"`
	ShowcaseLimit  int    `mapstructure:"showcase_limit"`
}

// LeetCode configures the statistics proxy client.
type LeetCode struct {
	BaseURL string `mapstructure:"base_url"`
}

// HTTP configures outbound requests.
type HTTP struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// Server configures the JSON API.
type Server struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A .env file in the
// working directory and FOLIO_* variables override file values.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", DefaultEnvFile, err)
	}

	v := viper.New()

	v.SetDefault("handles.github", DefaultHandles.GitHub)
	v.SetDefault("handles.leetcode", DefaultHandles.LeetCode)
	v.SetDefault("github.base_url", DefaultGitHub.BaseURL)
	v.SetDefault("github.language_sample", DefaultGitHub.LanguageSample)
	v.SetDefault("github.top_languages", DefaultGitHub.TopLanguages)
	v.SetDefault("github.repo_sort", DefaultGitHub.RepoSort)
	v.SetDefault("github.repo_page_size", DefaultGitHub.RepoPageSize)
	v.SetDefault("github.events_page_size", DefaultGitHub.EventsPageSize)
	v.SetDefault("github.showcase_limit", DefaultGitHub.ShowcaseLimit)
	v.SetDefault("leetcode.base_url", DefaultLeetCode.BaseURL)
	v.SetDefault("http.timeout", DefaultHTTP.Timeout)
	v.SetDefault("http.user_agent", DefaultHTTP.UserAgent)
	v.SetDefault("server.addr", DefaultServer.Addr)
	v.SetDefault("server.mode", DefaultServer.Mode)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("catalog_file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.CatalogFile != "" {
		cfg.CatalogFile = expandPath(cfg.CatalogFile)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no client can work with.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Handles.GitHub) == "":
		return errors.New("config: handles.github is empty")
	case strings.TrimSpace(c.Handles.LeetCode) == "":
		return errors.New("config: handles.leetcode is empty")
	case c.HTTP.Timeout <= 0:
		return fmt.Errorf("config: http.timeout must be positive, got %s", c.HTTP.Timeout)
	case c.GitHub.TopLanguages < 1:
		return fmt.Errorf("config: github.top_languages must be at least 1, got %d", c.GitHub.TopLanguages)
	case c.GitHub.LanguageSample < 0:
		return fmt.Errorf("config: github.language_sample must not be negative, got %d", c.GitHub.LanguageSample)
	}
	return nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(ConfigDir(), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
