package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aryanbv/folio/internal/aggregate"
	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/config"
	"github.com/aryanbv/folio/internal/output"
	"github.com/aryanbv/folio/internal/providers/github"
	"github.com/aryanbv/folio/internal/providers/leetcode"
)

// runtime is everything a command needs after config is loaded.
type runtime struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	github   *github.Client
	leetcode *leetcode.Client
	agg      *aggregate.Aggregator
}

func loadRuntime() (*runtime, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	output.SetNoColor(flagNoColor || !output.ColorEnabled(os.Stdout, cfg.Output.Color))

	gh := github.New(github.Options{
		BaseURL:        cfg.GitHub.BaseURL,
		Handle:         cfg.Handles.GitHub,
		Timeout:        cfg.HTTP.Timeout,
		UserAgent:      cfg.HTTP.UserAgent,
		LanguageSample: cfg.GitHub.LanguageSample,
		TopLanguages:   cfg.GitHub.TopLanguages,
		RepoSort:       cfg.GitHub.RepoSort,
		RepoPageSize:   cfg.GitHub.RepoPageSize,
		EventsPageSize: cfg.GitHub.EventsPageSize,
	})
	lc := leetcode.New(leetcode.Options{
		BaseURL:   cfg.LeetCode.BaseURL,
		Handle:    cfg.Handles.LeetCode,
		Timeout:   cfg.HTTP.Timeout,
		UserAgent: cfg.HTTP.UserAgent,
	})

	logger.Debug("runtime ready",
		"github", cfg.Handles.GitHub,
		"leetcode", cfg.Handles.LeetCode,
		"catalog", cfg.CatalogFile,
	)

	return &runtime{
		cfg:      cfg,
		catalog:  cat,
		github:   gh,
		leetcode: lc,
		agg:      aggregate.New(aggregate.NewBoard(), logger, gh, lc),
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
