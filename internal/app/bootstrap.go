// Package app orchestrates the application startup sequence.
package app

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ShariqueMemon11/Ai-chatbot/internal/domain"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/infra"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/infra/coingecko"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/market"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/storage"
)

// Bootstrap wires configuration, storage and the market client together.
type Bootstrap struct {
	Config   *infra.Config
	Store    *storage.Store
	Document *domain.KnowledgeDocument
	Market   *market.Service

	unlock func()
}

// NewBootstrap creates an uninitialized Bootstrap.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads config, sets up logging, acquires the single-instance
// lock, loads the knowledge document and builds the market service.
func (b *Bootstrap) Initialize() error {
	cfg, err := infra.LoadConfig(infra.ResolveConfigPath())
	if err != nil {
		return err
	}
	b.Config = cfg

	slog.SetDefault(infra.NewLogger(cfg))

	workDir := infra.GetWorkspaceDir()
	if err := infra.EnsureDir(workDir); err != nil {
		return err
	}

	// The knowledge file has exactly one writer; a second instance would
	// interleave whole-document saves.
	unlock, err := infra.CreateLockFile(workDir)
	if err != nil {
		return err
	}
	b.unlock = unlock

	knowledgePath := cfg.Knowledge.File
	if knowledgePath == "" {
		knowledgePath = filepath.Join(workDir, infra.DefaultKnowledgeFile)
	}

	b.Store = storage.NewStore(knowledgePath)
	b.Document = b.Store.Load()
	slog.Info("Knowledge base loaded",
		slog.String("path", knowledgePath),
		slog.Int("questions", len(b.Document.Questions)),
		slog.Int("coins", len(b.Document.Coins)))

	marketCfg := cfg.API.Market
	opts := coingecko.Options{
		BaseURL: marketCfg.BaseURL,
		Timeout: time.Duration(marketCfg.TimeoutSec) * time.Second,
		Breaker: infra.CircuitBreakerConfig{
			Name:             "coingecko",
			FailureThreshold: marketCfg.Breaker.FailureThreshold,
			SuccessThreshold: marketCfg.Breaker.SuccessThreshold,
			Timeout:          time.Duration(marketCfg.Breaker.TimeoutSec) * time.Second,
		},
	}
	opts.RateLimit.Burst = marketCfg.RateLimit.Burst
	opts.RateLimit.PerSecond = marketCfg.RateLimit.PerSecond

	client := coingecko.NewClient(opts)
	b.Market = market.NewService(client, b.Store, marketCfg.HistoryDays)

	return nil
}

// Shutdown releases process-wide resources.
func (b *Bootstrap) Shutdown() {
	if b.unlock != nil {
		b.unlock()
	}
}
