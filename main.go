package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"arcane-armory/art"
	"arcane-armory/card"
	"arcane-armory/config"
	"arcane-armory/forge"
	"arcane-armory/llm"
	"arcane-armory/ui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	loopCfg := ui.Config{
		In:        os.Stdin,
		Out:       os.Stdout,
		Generator: forge.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Renderer:  card.NewRenderer(card.Config{Framed: !cfg.Plain}),
		Logger:    logger,
		LineDelay: 4 * time.Millisecond,
	}

	if cfg.AIConfigured() {
		client, err := llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:         cfg.OpenAIAPIKey,
			BaseURL:        cfg.OpenAIBaseURL,
			TextModel:      cfg.TextModel,
			ImageModel:     cfg.ImageModel,
			RequestTimeout: cfg.RequestTimeout,
		})
		if err != nil {
			logger.Warn("generative service unavailable, falling back to local tables", "err", err)
		} else {
			defer client.Close()
			loopCfg.Enhancer = client
			loopCfg.Artist = client
			loopCfg.Store = art.NewStore(cfg.ImageDir)
			loopCfg.Viewer = art.NewViewer(os.Stdout, cfg.ImageHeight, cfg.InlineDisabled())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ui.NewLoop(loopCfg).Run(ctx); err != nil {
		logger.Fatal("loop failed", "err", err)
	}
}
