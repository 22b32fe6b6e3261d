package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"RetailRadar/internal/config"
	"RetailRadar/internal/encoder"
	"RetailRadar/internal/fetcher"
	"RetailRadar/internal/model"
	"RetailRadar/internal/recorder"
	"RetailRadar/internal/render"
	"RetailRadar/internal/scheduler"
	"RetailRadar/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] RetailRadar starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var f fetcher.Fetcher
	if cfg.Assets.BaseURL != "" {
		f = fetcher.NewHTTPFetcher(cfg.Assets.BaseURL, cfg.Proxy)
	} else {
		f = fetcher.NewFileFetcher(cfg.Assets.Dir)
	}
	log.Printf("[INFO] asset source: %s", f.Name())

	// Init snapshot recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite snapshot store failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresh := func() {
		if err := run(ctx, cfg, f, rec); err != nil {
			log.Printf("[WARN] pipeline run failed: %v", err)
		}
	}

	// One-shot unless a refresh schedule is configured.
	if cfg.Schedule.RefreshCron == "" {
		refresh()
		log.Println("[INFO] RetailRadar done")
		return
	}

	sched := scheduler.NewScheduler(ctx, refresh)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		go sched.RunNow()
	}

	log.Println("[INFO] RetailRadar is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] RetailRadar stopped")
}

// run executes one full pipeline pass: load, snapshot, encode, render.
func run(ctx context.Context, cfg *config.Config, f fetcher.Fetcher, rec recorder.Recorder) error {
	var res *store.Result
	if os.Getenv("FROM_SNAPSHOT") == "true" {
		snap, err := rec.LoadSnapshot()
		if err != nil {
			return err
		}
		log.Println("[INFO] datasets restored from snapshot")
		res = snap
	} else {
		res = store.New().Load(ctx, f)
		if !res.Complete() {
			log.Printf("[WARN] %d of 4 datasets failed to load; rendering the rest", len(res.Errors))
		}
		if err := rec.RecordSnapshot(res); err != nil {
			log.Printf("[WARN] record snapshot: %v", err)
		}
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return err
	}

	w, h := cfg.Output.Width, cfg.Output.Height
	drawTo(cfg.Output.Dir, "growth.png", encoder.Growth(res.Sales, res.Loans, w, h))
	drawTo(cfg.Output.Dir, "percent.png", encoder.Percent(res.Percent, w, h))
	drawTo(cfg.Output.Dir, "timeline.png", encoder.Timeline(res.Sales, res.Founding, w, h))
	return nil
}

// drawTo writes one chart, skipping charts whose required series are missing.
func drawTo(dir, name string, enc *model.ChartEncoding) {
	if enc == nil {
		log.Printf("[WARN] skipping %s: required series not loaded", name)
		return
	}
	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		log.Printf("[WARN] create %s: %v", path, err)
		return
	}
	defer out.Close()
	if err := render.Draw(enc, out); err != nil {
		log.Printf("[WARN] render %s: %v", name, err)
		return
	}
	log.Printf("[INFO] wrote %s", path)
}
