package aggregate

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/providers"
)

// Aggregator fans out to every provider and stores each result the moment
// it resolves. Providers are independent: none waits on another.
type Aggregator struct {
	board     *Board
	providers []providers.Provider
	logger    *slog.Logger
}

// New creates an Aggregator publishing to board. A nil logger discards.
func New(board *Board, logger *slog.Logger, ps ...providers.Provider) *Aggregator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Aggregator{board: board, providers: ps, logger: logger}
}

// Board returns the board the aggregator publishes to.
func (a *Aggregator) Board() *Board { return a.board }

// Provider returns the registered provider for src, if any.
func (a *Aggregator) Provider(src profile.Source) (providers.Provider, bool) {
	for _, p := range a.providers {
		if p.Source() == src {
			return p, true
		}
	}
	return nil, false
}

// Refresh fetches every provider concurrently. Provider failures end in
// fallback or error snapshots and are never returned; the only error is
// ctx's, in which case late results have been discarded.
func (a *Aggregator) Refresh(ctx context.Context) error {
	var g errgroup.Group
	for _, p := range a.providers {
		g.Go(func() error {
			a.run(ctx, p)
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}

// RefreshSource fetches a single provider.
func (a *Aggregator) RefreshSource(ctx context.Context, src profile.Source) error {
	p, ok := a.Provider(src)
	if !ok {
		return nil
	}
	a.run(ctx, p)
	return ctx.Err()
}

func (a *Aggregator) run(ctx context.Context, p providers.Provider) {
	res := p.Fetch(ctx)
	if ctx.Err() != nil {
		a.logger.Debug("discarding result after cancellation", "provider", p.Name(), "kind", res.Kind.String())
		return
	}

	switch res.Kind {
	case profile.KindOk:
		a.logger.Debug("provider resolved", "provider", p.Name())
		a.board.Store(res.Snapshot)
	case profile.KindFallback:
		a.logger.Warn("provider fell back", "provider", p.Name(), "kind", profile.Classify(res.Reason), "err", res.Reason)
		a.board.Store(res.Snapshot)
	default:
		a.logger.Warn("provider failed", "provider", p.Name(), "kind", profile.Classify(res.Reason), "err", res.Reason)
		msg := ""
		if res.Reason != nil {
			msg = res.Reason.Error()
		}
		a.board.Store(&profile.Snapshot{
			Source:  p.Source(),
			Status:  profile.StatusError,
			Message: msg,
		})
	}
}
