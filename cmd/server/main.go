package main

import (
	"apple-chase/internal/config"
	"apple-chase/internal/engine"
	"apple-chase/internal/infrastructure/storage"
	"apple-chase/internal/server"
	"apple-chase/internal/systems"
	"apple-chase/internal/version"
	"apple-chase/pkg/logger"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация: .env -> окружение -> флаги
	if err := config.Load(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to load .env")
	}
	cfg := config.ServerFromEnv()

	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP port (env APPLE_PORT or PORT)")
	flag.StringVar(&cfg.JournalDir, "journal-dir", cfg.JournalDir, "Directory for session journals, empty to disable (env APPLE_JOURNAL_DIR)")
	flag.StringVar(&cfg.ReplayPath, "replay", "", "Path to .aprl journal to re-apply offline")
	flag.Parse()

	logger.Log.Info("Starting Apple Chase relay...")
	logger.Log.Info(version.String())

	// РЕЖИМ РЕПЛЕЯ
	if cfg.ReplayPath != "" {
		logger.Log.Info("💿 Mode: Journal Replay")
		if err := replay(cfg.ReplayPath); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return
	}

	var journals *storage.JournalService
	if cfg.JournalDir != "" {
		var err error
		if journals, err = storage.NewJournalService(cfg.JournalDir); err != nil {
			logger.Log.WithError(err).Fatal("Journal storage unavailable")
		}
	}

	// 2. Ядро
	engineCfg := engine.NewConfig()
	engineCfg.InboxSize = cfg.InboxSize
	engineCfg.RecordJournal = journals != nil
	service := engine.NewService(engineCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loopDone := make(chan struct{})
	go func() {
		service.Run(ctx)
		close(loopDone)
	}()

	// 3. HTTP + WebSocket до сигнала
	if err := server.New(service, cfg.Port).Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Server error")
		stop()
	}

	<-loopDone
	logger.Log.Info("Shutting down...")

	// Цикл остановлен, журнал больше никто не трогает
	if journals != nil {
		path, err := journals.Save(service.Journal)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to save journal")
		} else {
			logger.Log.WithFields(logrus.Fields{
				"path":    path,
				"records": service.Journal.Len(),
			}).Info("Journal saved")
		}
	}

	logger.Log.Info("Done.")
}

// replay применяет журнал к пустому хранилищу и печатает итог
func replay(path string) error {
	journal, err := (&storage.JournalService{}).Load(path)
	if err != nil {
		return err
	}

	cfg := engine.NewConfig()
	cfg.RecordJournal = false
	snap := engine.NewService(cfg).Replay(journal)

	logger.Log.WithFields(logrus.Fields{
		"records":  journal.Len(),
		"players":  len(snap.Players),
		"sessions": len(snap.Sessions),
	}).Info("Replay finished")

	if snap.Item != nil {
		logger.Log.Infof("Item %d at (%d,%d)", snap.Item.ID, snap.Item.X, snap.Item.Y)
	}
	for _, e := range systems.Leaderboard(snap.Players) {
		logger.Log.Infof("#%d player %d score=%d conn=%s", e.Rank, e.ID, e.Score, e.ConnID)
	}
	return nil
}
