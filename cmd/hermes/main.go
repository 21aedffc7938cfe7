package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/time/rate"

	"hermes-jobs/internal/config"
	"hermes-jobs/internal/events"
	"hermes-jobs/internal/httpapi"
	"hermes-jobs/internal/ingest"
	"hermes-jobs/internal/scheduler"
	"hermes-jobs/internal/search"
	"hermes-jobs/internal/secrets"
	"hermes-jobs/internal/store"
)

func main() {
	dataDir := os.Getenv("HERMES_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One process per data dir; the sqlite file is single-writer.
	lock := flock.New(filepath.Join(dataDir, "hermes.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another instance is already running in %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		normalized, vr := config.NormalizeAndValidate(cfg)
		if !vr.OK() {
			return cfg, fmt.Errorf("config invalid: %v", vr.Errors)
		}
		for _, warn := range vr.Warnings {
			log.Printf("level=warn msg=\"config\" warning=%q", warn)
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	// Catalog overrides that don't resolve to a known tag are a startup
	// defect, never a per-query failure.
	catalog, err := search.NewCatalog(cfg.Search.Synonyms)
	if err != nil {
		log.Fatalf("synonym catalog: %v", err)
	}

	db, err := store.Open(filepath.Join(dataDir, "hermes.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()
	classifier := search.NewClassifier(catalog)
	service := search.NewService(db, catalog, cfg.Search.Ranking)
	importer := ingest.New(db, classifier, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go scheduler.Every(ctx, time.Duration(cfg.Cleanup.IntervalHours)*time.Hour, "cleanup", func(ctx context.Context) error {
		n, err := db.DeactivateOlderThan(ctx, cfg.Cleanup.MaxAgeDays)
		if err != nil {
			return err
		}
		if n > 0 {
			log.Printf("level=info msg=\"cleanup\" deactivated=%d", n)
		}
		return nil
	})

	deps := httpapi.Deps{
		Search:        service,
		Importer:      importer,
		Jobs:          db,
		Hub:           hub,
		CfgVal:        &cfgVal,
		UserCfgPath:   userCfgPath,
		LoadCfg:       loadCfg,
		ImportLimiter: rate.NewLimiter(rate.Limit(cfg.Import.RequestsPerSecond), cfg.Import.Burst),
		ImportToken: func() (string, error) {
			return secrets.GetImportToken(cfg.Import.TokenAccount)
		},
	}

	handler := httpapi.Chain(
		httpapi.NewMux(deps),
		httpapi.Recover,
		httpapi.RequestID,
		httpapi.Cors,
		httpapi.AccessLog,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("level=info msg=\"api listening\" addr=%s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
