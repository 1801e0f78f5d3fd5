package service

import (
	"context"
	"time"

	"wordbook/internal/domain"
	"wordbook/internal/repository"

	"go.uber.org/zap"
)

// StatsService computes word counts and chart data
type StatsService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(wordRepo repository.WordRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		wordRepo: wordRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// Summary counts the words in scope: total, since midnight, and over the
// rolling last 7 days, month and year
func (s *StatsService) Summary(ctx context.Context, scope domain.Scope) (*domain.Stats, error) {
	now := s.now()

	total, err := s.wordRepo.Count(ctx, scope)
	if err != nil {
		s.logger.Error("Failed to count words", zap.Error(err))
		return nil, err
	}

	stats := &domain.Stats{TotalWords: total}
	windows := []struct {
		since     time.Time
		inclusive bool
		dst       *int64
	}{
		{domain.StartOfDay(now), true, &stats.TodayWords},
		{now.AddDate(0, 0, -7), false, &stats.Last7Days},
		{domain.MonthsAgo(now, 1), false, &stats.LastMonth},
		{domain.MonthsAgo(now, 12), false, &stats.LastYear},
	}

	for _, w := range windows {
		n, err := s.wordRepo.CountSince(ctx, scope, w.since, w.inclusive)
		if err != nil {
			s.logger.Error("Failed to count recent words", zap.Time("since", w.since), zap.Error(err))
			return nil, err
		}
		*w.dst = n
	}

	return stats, nil
}

// Days counts the words in scope per day over the last ChartDays days,
// oldest first
func (s *StatsService) Days(ctx context.Context, scope domain.Scope) ([]domain.Day, error) {
	now := s.now()
	since := domain.StartOfDay(now).AddDate(0, 0, -(domain.ChartDays - 1))

	words, err := s.wordRepo.ListSince(ctx, scope, since)
	if err != nil {
		s.logger.Error("Failed to load words for daily counts", zap.Error(err))
		return nil, err
	}
	return domain.LastDays(words, now), nil
}

// Chart buckets the words in scope by day over the last week and by difficulty
func (s *StatsService) Chart(ctx context.Context, scope domain.Scope) (*domain.ChartData, error) {
	words, err := s.wordRepo.List(ctx, scope, false)
	if err != nil {
		s.logger.Error("Failed to load words for chart", zap.Error(err))
		return nil, err
	}

	chart := domain.BuildChart(words, s.now())
	return &chart, nil
}
