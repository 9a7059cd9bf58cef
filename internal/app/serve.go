package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aryanbv/folio/internal/aggregate"
	"github.com/aryanbv/folio/internal/config"
	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/server"
	"github.com/aryanbv/folio/internal/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio JSON API",
	Long: `Start the HTTP JSON API. Both providers are refreshed once in the
background at start; provider routes answer 503 {"status":"loading"} until
their first result is in. Contact-form submissions are stored in the local
history database.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: server.addr from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	addr := rt.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx := cmd.Context()
	board := rt.agg.Board()
	updates, unsubscribe := board.Subscribe(len(profile.Sources))
	defer unsubscribe()

	go logResolutions(ctx, board, updates, logger)
	go func(ctx context.Context) {
		if err := rt.agg.Refresh(ctx); err != nil {
			logger.Debug("initial refresh interrupted", "err", err)
		}
	}(ctx)

	router := server.New(server.Deps{
		Aggregator:    rt.agg,
		Contributions: rt.github,
		Catalog:       rt.catalog,
		Store:         db,
		Logger:        logger,
		ShowcaseLimit: rt.cfg.GitHub.ShowcaseLimit,
		Mode:          rt.cfg.Server.Mode,
	})
	return server.Run(ctx, addr, router, logger)
}

// logResolutions logs each provider as its slot fills and returns once
// every provider has resolved.
func logResolutions(ctx context.Context, board *aggregate.Board, updates <-chan profile.Source, log *slog.Logger) {
	seen := make(map[profile.Source]bool, len(profile.Sources))
	for {
		select {
		case <-ctx.Done():
			return
		case src, ok := <-updates:
			if !ok {
				return
			}
			snap := board.Get(src)
			if snap == nil || seen[src] {
				continue
			}
			seen[src] = true
			attrs := []any{"provider", src, "status", snap.Status}
			if snap.Message != "" {
				attrs = append(attrs, "message", snap.Message)
			}
			log.Info("provider resolved", attrs...)
			if len(seen) == len(profile.Sources) {
				log.Info("all providers resolved")
				return
			}
		}
	}
}
