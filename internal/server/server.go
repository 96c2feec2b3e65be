package server

import (
	"net/http"

	"StockBoard/internal/board"
	"StockBoard/internal/model"

	"github.com/gin-gonic/gin"
)

// Server exposes the dashboard data as a JSON HTTP API for the browser UI.
type Server struct {
	Board        *board.Board
	DefaultRange model.Lookback
}

// New creates a Server over the given board.
func New(b *board.Board, defaultRange model.Lookback) *Server {
	return &Server{Board: b, DefaultRange: defaultRange}
}

// Router sets up all HTTP endpoints.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.GET("/meta", s.handleMeta)
	api.GET("/watchlist", s.handleWatchlist)
	api.GET("/performance", s.handlePerformance)
	api.GET("/stocks/:symbol/history", s.handleHistory)
	api.GET("/stocks/:symbol/profile", s.handleProfile)
	api.GET("/stocks/:symbol/news", s.handleNews)
	return r
}

// parseRange resolves the range query parameter, falling back to the default.
func (s *Server) parseRange(c *gin.Context, fallback model.Lookback) (model.Lookback, bool) {
	raw := c.Query("range")
	if raw == "" {
		return fallback, true
	}
	lb, err := model.ParseLookback(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return lb, true
}

func (s *Server) handleMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"watchlist":     s.Board.Watchlist,
		"ranges":        model.Lookbacks,
		"default_range": s.DefaultRange,
	})
}

func (s *Server) handleWatchlist(c *gin.Context) {
	snaps := s.Board.Snapshots()
	rows := make([]snapshotDTO, len(snaps))
	for i, snap := range snaps {
		rows[i] = toSnapshotDTO(snap)
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (s *Server) handlePerformance(c *gin.Context) {
	lookback, ok := s.parseRange(c, model.Lookback1M)
	if !ok {
		return
	}
	entries := s.Board.Performance(lookback)
	out := make([]performanceDTO, len(entries))
	for i, e := range entries {
		out[i] = performanceDTO{Ticker: e.Ticker, PerformancePct: e.PerformancePct}
	}
	c.JSON(http.StatusOK, gin.H{"range": lookback, "entries": out})
}

func (s *Server) handleHistory(c *gin.Context) {
	lookback, ok := s.parseRange(c, s.DefaultRange)
	if !ok {
		return
	}
	symbol := c.Param("symbol")
	res := s.Board.History(symbol, lookback)
	c.JSON(http.StatusOK, toHistoryDTO(symbol, lookback, res))
}

func (s *Server) handleProfile(c *gin.Context) {
	symbol := c.Param("symbol")
	res := s.Board.Profile(symbol)
	c.JSON(http.StatusOK, toProfileDTO(symbol, res))
}

func (s *Server) handleNews(c *gin.Context) {
	symbol := c.Param("symbol")
	res := s.Board.News(symbol)
	c.JSON(http.StatusOK, toNewsDTO(symbol, res))
}
