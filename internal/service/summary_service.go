package service

import (
	"context"
	"time"

	"go-journal-api/internal/core/cache"
	"go-journal-api/internal/domain"
)

// SummaryService 五个固定聚合。start/end 是日历日（零点），
// 语义上两端都含当天：内部折算成 [start, end+1d) 半开区间。
// 带 Redis 时按 (用户, 版本, 查询, 区间) 缓存，写路径 Bump 版本。
type SummaryService struct {
	stats domain.SummaryRepository
	cache *cache.Cache // 可为 nil
	ttl   time.Duration
}

func NewSummaryService(stats domain.SummaryRepository, c *cache.Cache, ttl time.Duration) *SummaryService {
	return &SummaryService{stats: stats, cache: c, ttl: ttl}
}

func (s *SummaryService) EntryFrequency(ctx context.Context, userID string, start, end time.Time) ([]domain.FrequencyRow, error) {
	return cached(s, ctx, userID, "freq", start, end, s.stats.EntryFrequency)
}

func (s *SummaryService) CategoryDistribution(ctx context.Context, userID string, start, end time.Time) ([]domain.CategoryCountRow, error) {
	return cached(s, ctx, userID, "cat", start, end, s.stats.CategoryDistribution)
}

func (s *SummaryService) WordCountTrends(ctx context.Context, userID string, start, end time.Time) ([]domain.WordCountRow, error) {
	return cached(s, ctx, userID, "words", start, end, s.stats.WordCountTrends)
}

func (s *SummaryService) AverageEntryLength(ctx context.Context, userID string, start, end time.Time) ([]domain.CategoryLengthRow, error) {
	return cached(s, ctx, userID, "avglen", start, end, s.stats.AverageEntryLength)
}

func (s *SummaryService) TimeOfDayAnalysis(ctx context.Context, userID string, start, end time.Time) ([]domain.HourCountRow, error) {
	return cached(s, ctx, userID, "hours", start, end, s.stats.TimeOfDayAnalysis)
}

func cached[T any](
	s *SummaryService,
	ctx context.Context,
	userID, kind string,
	start, end time.Time,
	query func(userID string, start, end time.Time) (T, error),
) (T, error) {
	endExcl := end.AddDate(0, 0, 1)
	if s.cache == nil {
		return query(userID, start, endExcl)
	}
	name := "summary:" + userID
	key := cache.VersionedKey(name, s.cache.Version(ctx, name),
		kind, start.Format("2006-01-02"), end.Format("2006-01-02"))
	return cache.GetOrLoadJSON(s.cache, ctx, key, s.ttl, func(context.Context) (T, error) {
		return query(userID, start, endExcl)
	})
}
