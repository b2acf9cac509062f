package httpapi

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"jobdeck-engine/internal/config"
	"jobdeck-engine/internal/events"
	"jobdeck-engine/internal/provider"
	"jobdeck-engine/internal/state"
	"jobdeck-engine/internal/store"
)

type Deps struct {
	Log *slog.Logger

	// UI is the state container; Local is the SQLite persistence fallback.
	UI    *state.Store
	Local *store.Store

	Hub      *events.Hub
	Provider *provider.Client

	// Atomic store for the live config
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Refresh re-fetches the board (inject for testability).
	Refresh func(ctx context.Context) (int, error)

	StartedAt time.Time
}
