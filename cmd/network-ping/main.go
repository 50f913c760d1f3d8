package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"network-ping/internal/config"
	"network-ping/internal/database"
	"network-ping/internal/interpret"
	"network-ping/internal/obs"
	"network-ping/internal/ping"
	"network-ping/internal/recorder"
	"network-ping/internal/tui"
	"network-ping/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "network-ping:", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	path, overrides := config.ParseFlags()
	cfg, err := config.Load(path, overrides)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	session := uuid.New().String()
	log, err := obs.NewLogger(obs.LogConfig{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Variant: cfg.Variant,
		Session: session,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	interp, err := interpret.ByName(cfg.Strategy)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []tui.Option{tui.WithLogger(log), tui.WithContext(ctx)}

	var api *web.Server
	if cfg.Journal.Path != "" {
		db, err := database.New(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitSchema(); err != nil {
			return err
		}

		rec := recorder.New(db, cfg.Journal.Retention, session, log)
		rec.Start()
		defer func() {
			rec.Stop()
			rec.Wait()
		}()
		opts = append(opts, tui.WithRecorder(rec))

		if cfg.HTTP.Addr != "" {
			api = web.New(db, cfg.HTTP.Addr, log)
		}
	}

	model := tui.New(cfg.Profile(), ping.New(cfg.Ping.Binary), interp, opts...)

	log.Info("network-ping started",
		zap.String("strategy", interp.Name()),
		zap.String("target", cfg.Target),
		zap.Bool("journal", cfg.Journal.Path != ""))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p := tea.NewProgram(model, tea.WithContext(gctx))
		_, err := p.Run()
		stop()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	if api != nil {
		g.Go(func() error {
			return api.Start(gctx)
		})
	}

	err = g.Wait()
	log.Info("network-ping stopped")
	return err
}
