package board

import (
	"fmt"
	"log"
	"time"

	"StockBoard/internal/cache"
	"StockBoard/internal/indicator"
	"StockBoard/internal/model"
	"StockBoard/internal/provider"
)

// At most this many articles per news panel.
const maxNewsItems = 5

// Board orchestrates data fetching, caching, and computation for every
// dashboard panel. Fetches are sequential and per-symbol independent; a
// ticker's failure is isolated to its own row or panel.
type Board struct {
	Fetcher   provider.Fetcher
	Watchlist []model.WatchlistEntry

	history  *cache.Cache[[]model.PriceBar]
	quotes   *cache.Cache[[]model.PriceBar]
	profiles *cache.Cache[*model.CompanyProfile]
	news     *cache.Cache[[]model.NewsItem]
}

// New creates a Board over the given fetcher and ordered watchlist.
func New(fetcher provider.Fetcher, watchlist []model.WatchlistEntry, ttl time.Duration) *Board {
	return &Board{
		Fetcher:   fetcher,
		Watchlist: watchlist,
		history:   cache.New[[]model.PriceBar](ttl),
		quotes:    cache.New[[]model.PriceBar](ttl),
		profiles:  cache.New[*model.CompanyProfile](ttl),
		news:      cache.New[[]model.NewsItem](ttl),
	}
}

func historyKey(symbol string, lookback model.Lookback) string {
	return symbol + "|" + string(lookback)
}

func (b *Board) fetchHistory(symbol string, lookback model.Lookback) ([]model.PriceBar, error) {
	key := historyKey(symbol, lookback)
	if bars, ok := b.history.Get(key); ok {
		return bars, nil
	}
	bars, err := b.Fetcher.FetchHistory(symbol, lookback)
	if err != nil {
		return nil, err
	}
	b.history.Set(key, bars)
	return bars, nil
}

func (b *Board) fetchQuote(symbol string) ([]model.PriceBar, error) {
	if bars, ok := b.quotes.Get(symbol); ok {
		return bars, nil
	}
	bars, err := b.Fetcher.FetchQuote(symbol)
	if err != nil {
		return nil, err
	}
	b.quotes.Set(symbol, bars)
	return bars, nil
}

// History builds the price-chart panel for one symbol over a lookback window.
func (b *Board) History(symbol string, lookback model.Lookback) HistoryResult {
	bars, err := b.fetchHistory(symbol, lookback)
	if err != nil {
		log.Printf("[WARN] history fetch %s/%s: %v", symbol, lookback, err)
		return HistoryResult{
			Status:  StatusError,
			Message: "Failed to fetch historical data. Please try again later.",
		}
	}
	if len(bars) == 0 {
		return HistoryResult{
			Status:  StatusNoData,
			Message: fmt.Sprintf("No historical data available for %s. The stock may be delisted or suspended.", symbol),
		}
	}
	set, err := indicator.Analyze(bars)
	if err != nil {
		log.Printf("[WARN] indicator computation %s: %v", symbol, err)
		return HistoryResult{
			Status:  StatusError,
			Message: "Failed to compute indicators. Please try again later.",
		}
	}
	return HistoryResult{Status: StatusOK, Bars: bars, Indicators: set}
}

// Profile builds the company-information panel for one symbol.
func (b *Board) Profile(symbol string) ProfileResult {
	p, ok := b.profiles.Get(symbol)
	if !ok {
		var err error
		p, err = b.Fetcher.FetchProfile(symbol)
		if err != nil {
			log.Printf("[WARN] profile fetch %s: %v", symbol, err)
			return ProfileResult{
				Status:  StatusError,
				Message: "Could not retrieve company information.",
			}
		}
		b.profiles.Set(symbol, p)
	}
	if p == nil {
		return ProfileResult{
			Status:  StatusNoData,
			Message: fmt.Sprintf("No company information available for %s.", symbol),
		}
	}
	return ProfileResult{Status: StatusOK, Profile: p}
}

// News builds the recent-news panel for one symbol.
func (b *Board) News(symbol string) NewsResult {
	items, ok := b.news.Get(symbol)
	if !ok {
		var err error
		items, err = b.Fetcher.FetchNews(symbol)
		if err != nil {
			log.Printf("[WARN] news fetch %s: %v", symbol, err)
			return NewsResult{
				Status:  StatusError,
				Message: "News feed temporarily unavailable.",
			}
		}
		b.news.Set(symbol, items)
	}
	if len(items) == 0 {
		return NewsResult{
			Status:  StatusNoData,
			Message: "No recent news found for this company.",
		}
	}
	if len(items) > maxNewsItems {
		items = items[:maxNewsItems]
	}
	return NewsResult{Status: StatusOK, Items: items}
}

// Snapshots produces one TickerSnapshot per watchlist entry, in watchlist
// order. Any failure for a symbol yields an all-N/A row for that symbol only.
func (b *Board) Snapshots() []model.TickerSnapshot {
	snaps := make([]model.TickerSnapshot, 0, len(b.Watchlist))
	for _, entry := range b.Watchlist {
		snaps = append(snaps, b.snapshot(entry))
	}
	return snaps
}

func (b *Board) snapshot(entry model.WatchlistEntry) model.TickerSnapshot {
	bars, err := b.fetchQuote(entry.Symbol)
	if err != nil {
		log.Printf("[WARN] snapshot fetch %s: %v", entry.Symbol, err)
		return model.UnavailableSnapshot(entry.Name, entry.Symbol)
	}
	if len(bars) == 0 {
		return model.UnavailableSnapshot(entry.Name, entry.Symbol)
	}
	change, err := indicator.DayChange(model.Closes(bars))
	if err != nil {
		log.Printf("[WARN] day change %s: %v", entry.Symbol, err)
		return model.UnavailableSnapshot(entry.Name, entry.Symbol)
	}
	latest := bars[len(bars)-1]
	return model.TickerSnapshot{
		Name:        entry.Name,
		Ticker:      entry.Symbol,
		Price:       latest.Close,
		ChangePct:   change,
		LastUpdated: latest.Time,
		Valid:       true,
	}
}

// Performance computes each watchlist symbol's return over the lookback
// window. Symbols that fail or have fewer than two points are dropped, so the
// result may be shorter than the watchlist.
func (b *Board) Performance(lookback model.Lookback) []model.PerformanceEntry {
	entries := make([]model.PerformanceEntry, 0, len(b.Watchlist))
	for _, entry := range b.Watchlist {
		bars, err := b.fetchHistory(entry.Symbol, lookback)
		if err != nil {
			log.Printf("[WARN] performance fetch %s: %v", entry.Symbol, err)
			continue
		}
		perf, err := indicator.PeriodPerformance(model.Closes(bars))
		if err != nil {
			continue
		}
		entries = append(entries, model.PerformanceEntry{
			Ticker:         entry.Symbol,
			PerformancePct: perf,
		})
	}
	return entries
}

// PurgeExpired drops stale entries from all caches and returns the total.
func (b *Board) PurgeExpired() int {
	return b.history.Purge() + b.quotes.Purge() + b.profiles.Purge() + b.news.Purge()
}
