package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// ErrFetchFailed marks reports that carry only an error and the URL.
var ErrFetchFailed = errors.New("fetch failed")

// AnalysisService runs the statistics engine against live pages.
type AnalysisService interface {
	// Analyze fetches rawURL once and returns the full report. On fetch
	// failure the report is the terminal error result and err wraps
	// ErrFetchFailed.
	Analyze(ctx context.Context, rawURL string) (model.Report, error)

	// AnalyzeAllAgents fetches rawURL once per configured user agent and
	// returns the report built from the first successful fetch, with the
	// per-agent comparison attached.
	AnalyzeAllAgents(ctx context.Context, rawURL string) (model.Report, error)
}

type analysisService struct {
	fetcher *fetcher.Fetcher
	engine  *analyzer.Engine
	workers int
	logger  zerolog.Logger
}

// NewAnalysisService wires the fetcher and engine together. workers bounds
// the multi-agent fetch pool.
func NewAnalysisService(f *fetcher.Fetcher, e *analyzer.Engine, workers int, logger zerolog.Logger) AnalysisService {
	return &analysisService{fetcher: f, engine: e, workers: workers, logger: logger}
}

func (s *analysisService) Analyze(ctx context.Context, rawURL string) (model.Report, error) {
	start := time.Now()
	doc, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.logger.Warn().Str("url", rawURL).Err(err).Msg("fetch failed")
		return model.ErrorReport(rawURL, err), errors.Join(ErrFetchFailed, err)
	}

	report := s.engine.Analyze(doc)
	s.logger.Info().
		Str("url", rawURL).
		Int("status", doc.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")
	return report, nil
}

func (s *analysisService) AnalyzeAllAgents(ctx context.Context, rawURL string) (model.Report, error) {
	start := time.Now()
	results := s.fetcher.FetchAllAgents(ctx, rawURL, s.workers)
	report := s.engine.AnalyzeAgents(rawURL, results)

	if msg, failed := report["error"].(string); failed {
		s.logger.Warn().Str("url", rawURL).Str("error", msg).Msg("all agents failed")
		return report, errors.Join(ErrFetchFailed, errors.New(msg))
	}

	s.logger.Info().
		Str("url", rawURL).
		Int("agents", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("multi-agent analysis complete")
	return report, nil
}
