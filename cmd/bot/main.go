package main

import (
	"apple-chase/internal/agent"
	"apple-chase/internal/config"
	"apple-chase/internal/domain"
	"apple-chase/pkg/logger"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	if err := config.Load(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to load .env")
	}
	cfg := config.BotFromEnv()

	flag.StringVar(&cfg.URL, "url", cfg.URL, "Relay WebSocket URL")
	flag.IntVar(&cfg.Bots, "bots", cfg.Bots, "Number of bots")
	flag.DurationVar(&cfg.Rate, "rate", cfg.Rate, "Step period of each bot")
	flag.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Stop after this long (0 = until Ctrl+C)")
	flag.StringVar(&cfg.MovePolicy, "move-policy", cfg.MovePolicy, "clamp | reject")
	flag.StringVar(&cfg.MoveSet, "move-set", cfg.MoveSet, "8 | 4")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	botCfg := agent.Config{
		URL:   cfg.URL,
		Arena: domain.DefaultArena(),
		Movement: domain.Movement{
			Set:    domain.ParseMoveSet(cfg.MoveSet),
			Policy: domain.ParseMovePolicy(cfg.MovePolicy),
		},
		Rate: cfg.Rate,
	}

	logger.Log.WithFields(logrus.Fields{
		"url":    cfg.URL,
		"bots":   cfg.Bots,
		"set":    botCfg.Movement.Set.String(),
		"policy": botCfg.Movement.Policy.String(),
	}).Info("🤖 Starting bots")

	bots := make([]*agent.Bot, cfg.Bots)
	var wg sync.WaitGroup
	for i := range bots {
		c := botCfg
		c.Seed = time.Now().UnixNano() + int64(i)
		bots[i] = agent.NewBot(fmt.Sprintf("bot-%d", i+1), c)

		wg.Add(1)
		go func(b *agent.Bot) {
			defer wg.Done()
			if err := b.Run(ctx); err != nil {
				logger.Log.WithError(err).WithField("bot", b.Name).Error("Bot stopped")
			}
		}(bots[i])
	}
	wg.Wait()

	for _, b := range bots {
		st := b.Stats()
		logger.Log.WithFields(logrus.Fields{
			"bot":       b.Name,
			"collected": st.Collected,
			"score":     st.Score,
		}).Info(st.Rank)
	}
}
