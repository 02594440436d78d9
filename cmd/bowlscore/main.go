// Package main provides the bowlscore binary, which replays recorded
// scorecards and bowls simulated games through the scoring ledger.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tenpin/internal/config"
	"github.com/cory-johannsen/tenpin/internal/game/scorecard"
	"github.com/cory-johannsen/tenpin/internal/game/simulate"
	"github.com/cory-johannsen/tenpin/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and environment only")
	cardsDir := flag.String("cards", "", "scorecard directory (overrides scorecards.dir)")
	games := flag.Int("simulate", -1, "number of games to simulate (overrides simulation.games)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *cardsDir != "" {
		cfg.Scorecards.Dir = *cardsDir
	}
	if *games >= 0 {
		cfg.Simulation.Games = *games
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	failed := 0
	if cfg.Scorecards.Dir != "" {
		failed, err = replayCards(cfg.Scorecards.Dir, logger)
		if err != nil {
			logger.Error("loading scorecards", zap.String("dir", cfg.Scorecards.Dir), zap.Error(err))
			_ = logger.Sync()
			os.Exit(1)
		}
	}

	if cfg.Simulation.Games > 0 {
		src := simulate.NewCryptoSource()
		if cfg.Simulation.Seed != 0 {
			src = simulate.NewSeededSource(cfg.Simulation.Seed)
		}
		if _, err := simulate.Run(cfg.Simulation.Games, src, logger); err != nil {
			logger.Fatal("simulating games", zap.Error(err))
		}
	}

	logger.Info("bowlscore finished",
		zap.Int("failed_cards", failed),
		zap.Duration("elapsed", time.Since(start)),
	)
	if failed > 0 {
		_ = logger.Sync()
		os.Exit(1)
	}
}

// replayCards replays every scorecard in dir and returns the number that
// failed, or an error when the directory cannot be loaded.
func replayCards(dir string, logger *zap.Logger) (int, error) {
	cards, err := scorecard.LoadFromDir(dir)
	if err != nil {
		return 0, err
	}
	logger.Info("loaded scorecards", zap.Int("count", len(cards)))

	failed := 0
	for _, card := range cards {
		res, err := scorecard.Replay(card, logger)
		if err != nil {
			failed++
			logger.Error("replaying scorecard", zap.String("game_id", card.ID), zap.Error(err))
			continue
		}
		logger.Info("scorecard replayed",
			zap.String("game_id", res.ID),
			zap.String("bowler", res.Bowler),
			zap.Int("score", res.Score),
			zap.Ints("running_totals", res.RunningTotals),
			zap.Bool("complete", res.Complete),
		)
	}
	return failed, nil
}
