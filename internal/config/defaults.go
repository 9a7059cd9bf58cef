// Package config provides configuration loading and defaults for folio.
package config

import "time"

// DefaultConfigDir is the default location for folio configuration.
const DefaultConfigDir = "~/.config/folio"

// DefaultDBName is the filename for the SQLite history database.
const DefaultDBName = "folio.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultEnvFile is loaded from the working directory before the config.
const DefaultEnvFile = ".env"

// EnvPrefix namespaces environment overrides: FOLIO_HANDLES_GITHUB etc.
const EnvPrefix = "FOLIO"

// DefaultHandles are the account handles shown by the portfolio.
var DefaultHandles = Handles{
	GitHub:   "AryanBV",
	LeetCode: "AryanBV",
}

// DefaultGitHub holds the source-control client defaults.
var DefaultGitHub = GitHub{
	BaseURL:        "https://api.github.com",
	LanguageSample: 10,
	TopLanguages:   5,
	RepoSort:       "updated",
	RepoPageSize:   100,
	EventsPageSize: 100,
	ShowcaseLimit:  6,
}

// DefaultLeetCode holds the statistics proxy defaults.
var DefaultLeetCode = LeetCode{
	BaseURL: "https://leetcode-stats-api.herokuapp.com",
}

// DefaultHTTP holds the outbound request defaults.
var DefaultHTTP = HTTP{
	Timeout:   10 * time.Second,
	UserAgent: "folio/0.1",
}

// DefaultServer holds the API server defaults.
var DefaultServer = Server{
	Addr: ":8080",
	Mode: "release",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
