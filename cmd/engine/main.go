package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"jobdeck-engine/internal/auth"
	"jobdeck-engine/internal/config"
	"jobdeck-engine/internal/events"
	"jobdeck-engine/internal/fallback"
	"jobdeck-engine/internal/httpapi"
	"jobdeck-engine/internal/provider"
	"jobdeck-engine/internal/scheduler"
	"jobdeck-engine/internal/state"
	"jobdeck-engine/internal/store"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Engine data dir: use env if provided (the desktop shell can pass one),
	// else a local folder.
	dataDir := os.Getenv("JOBDECK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fatal(log, "data dir", err)
	}

	// Single-instance guard. A second engine against the same data dir would
	// fight over the SQLite file and double-subscribe the UI.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		fatal(log, "instance lock", err)
	}
	if !locked {
		log.Error("another engine instance already holds the lock", "dir", dataDir)
		os.Exit(1)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		fatal(log, "config bootstrap", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		fatal(log, "config load", err)
	}
	cfgVal.Store(cfg)

	local, err := store.Open(filepath.Join(dataDir, "jobdeck.db"))
	if err != nil {
		fatal(log, "store open", err)
	}
	defer local.Close()
	if err := local.Migrate(); err != nil {
		fatal(log, "store migrate", err)
	}

	hub := events.NewHub()
	ui := state.New(cfg.DebounceDelay(), hub)
	pv := provider.New(cfg, log)

	refresh := func(ctx context.Context) (int, error) {
		board, err := pv.FetchBoard(ctx)
		if err != nil {
			return 0, err
		}
		ui.SetJobs(board.Jobs)
		ui.SetCompanies(board.Companies)
		hub.Publish(events.Make("", events.TypeJobsRefreshed, map[string]any{"jobs": len(board.Jobs)}))
		return len(board.Jobs), nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial fill. The board being down is an expected state: the UI gets the
	// bundled dataset and the refresh loop keeps trying.
	if n, err := refresh(ctx); err != nil {
		log.Warn("board unreachable, serving fallback dataset", "error", err)
		ui.SetJobs(fallback.Jobs())
		ui.SetCompanies(fallback.Companies())
	} else {
		log.Info("board fetched", "jobs", n)
	}

	if cfg.Refresh.Enabled {
		go scheduler.Every(ctx, cfg.RefreshInterval(), "board_refresh", log, func(c context.Context) error {
			_, err := refresh(c)
			return err
		})
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Log:         log,
		UI:          ui,
		Local:       local,
		Hub:         hub,
		Provider:    pv,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Refresh:     refresh,
		StartedAt:   time.Now(),
	})

	shutdownToken, err := auth.MintToken()
	if err != nil {
		fatal(log, "shutdown token", err)
	}

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog(log),
		httpapi.Recover(log),
		httpapi.Cors,
	)

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		fatal(log, "listen", err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	mux.HandleFunc("/shutdown", shutdownHandler(log, shutdownToken, srv))

	log.Info("engine listening",
		"addr", "http://"+addr, "data_dir", dataDir, "shutdown_token", shutdownToken)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		log.Info("signal received, shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(log, "serve", err)
		}
	}
}

func fatal(log *slog.Logger, what string, err error) {
	log.Error(what+" failed", "error", err)
	os.Exit(1)
}

// shutdownHandler lets the desktop shell stop the engine when the window
// closes. Local-only plus a per-run token; responds first, stops after.
func shutdownHandler(log *slog.Logger, token string, srv *http.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		got := r.Header.Get("X-Shutdown-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("shutting down\n"))

		go func() {
			log.Info("shutdown requested")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}
}
