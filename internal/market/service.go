// Package market implements the asset cache: it resolves user-typed coin
// names to live market data and degrades to the last stored entry when the
// remote service fails.
package market

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ShariqueMemon11/Ai-chatbot/internal/domain"
)

// Provider fetches live market data. Each method is independently
// best-effort; any error is treated as that call's failure, never retried.
type Provider interface {
	// ResolveAssetID maps a user-typed name to the provider id, matching
	// display name or symbol case-insensitively, first occurrence wins.
	ResolveAssetID(ctx context.Context, name string) (string, error)
	FetchSnapshot(ctx context.Context, id string) (domain.AssetSnapshot, error)
	FetchHistory(ctx context.Context, id string, days int) ([]domain.PricePoint, error)
}

// Saver persists the knowledge document after a successful refresh.
type Saver interface {
	Save(doc *domain.KnowledgeDocument) error
}

// Service coordinates refresh-or-fallback lookups over a shared knowledge
// document. The document is owned by the caller and passed in explicitly;
// the service itself is stateless.
type Service struct {
	provider    Provider
	saver       Saver
	historyDays int
}

// NewService creates the asset cache service.
func NewService(provider Provider, saver Saver, historyDays int) *Service {
	if historyDays <= 0 {
		historyDays = 7
	}
	return &Service{provider: provider, saver: saver, historyDays: historyDays}
}

// RefreshOrFallback resolves the asset and fetches live data, caching it in
// the document under the raw typed name. When the snapshot cannot be
// obtained (unresolved, offline, or upstream error) it falls back to the
// stored entry; when neither exists the result is NotFound.
//
// The returned error is non-nil only when live data was fetched but the
// document could not be persisted; the result is still valid and the
// in-memory document keeps the new entry for a later save.
func (s *Service) RefreshOrFallback(ctx context.Context, name string, doc *domain.KnowledgeDocument) (domain.DisplayResult, error) {
	id, err := s.provider.ResolveAssetID(ctx, name)
	if err != nil || id == "" {
		// Resolution failure (including network trouble) is not fatal;
		// it degrades to the cache exactly like an unknown coin.
		slog.Debug("Asset resolution failed", slog.String("name", name), slog.Any("error", err))
		return s.fallback(name, doc), nil
	}

	snap, err := s.provider.FetchSnapshot(ctx, id)
	if err != nil {
		slog.Warn("Snapshot fetch failed, trying cache",
			slog.String("name", name), slog.String("id", id), slog.Any("error", err))
		return s.fallback(name, doc), nil
	}

	trend := domain.TrendUnavailable
	history, err := s.provider.FetchHistory(ctx, id, s.historyDays)
	if err != nil {
		// History is optional: a snapshot without a trend still refreshes
		// the cache.
		slog.Warn("History fetch failed, omitting prediction",
			slog.String("id", id), slog.Any("error", err))
	} else {
		trend = domain.PredictTrend(history)
	}

	entry := domain.AssetEntry{
		Name:       snap.Name,
		Symbol:     strings.ToUpper(snap.Symbol),
		Price:      snap.Price,
		MarketCap:  snap.MarketCap,
		Liquidity:  snap.Liquidity,
		Prediction: trend,
	}

	// The raw typed name is the cache key; prior entries under the same
	// spelling are overwritten wholesale.
	doc.Coins[name] = entry

	var saveErr error
	if err := s.saver.Save(doc); err != nil {
		slog.Warn("Failed to persist refreshed entry",
			slog.String("name", name), slog.Any("error", err))
		saveErr = err
	}

	return domain.FreshResult(entry), saveErr
}

func (s *Service) fallback(name string, doc *domain.KnowledgeDocument) domain.DisplayResult {
	if entry, ok := doc.Coins[name]; ok {
		return domain.CachedResult(entry)
	}
	return domain.NotFoundResult()
}
