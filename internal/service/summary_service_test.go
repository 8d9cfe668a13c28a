package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-journal-api/internal/domain"
	"go-journal-api/internal/repo"
	"go-journal-api/pkg/utils"
)

func seedEntry(t *testing.T, entries *repo.MemoryJournalRepo, userID, category, content string, at time.Time) {
	t.Helper()
	require.NoError(t, entries.Create(&domain.JournalEntry{
		ID:        utils.NewID(),
		Title:     "entry",
		Content:   content,
		Category:  category,
		UserID:    userID,
		CreatedAt: at,
	}))
}

func newSummaryFixture(t *testing.T) (*SummaryService, *repo.MemoryJournalRepo) {
	entries := repo.NewMemoryJournalRepo()
	svc := NewSummaryService(repo.NewMemorySummaryRepo(entries), nil, time.Minute)
	return svc, entries
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 两天三条：2025-04-13 两条 Work，2025-04-14 一条 Personal
func seedScenario(t *testing.T, entries *repo.MemoryJournalRepo, userID string) {
	seedEntry(t, entries, userID, "Work", "First test entry",
		time.Date(2025, 4, 13, 9, 0, 0, 0, time.UTC))
	seedEntry(t, entries, userID, "Work", "Second entry of the day",
		time.Date(2025, 4, 13, 14, 0, 0, 0, time.UTC))
	seedEntry(t, entries, userID, "Personal", "Third entry early morning",
		time.Date(2025, 4, 14, 5, 0, 0, 0, time.UTC))
}

func TestEntryFrequency(t *testing.T) {
	svc, entries := newSummaryFixture(t)
	seedScenario(t, entries, "alice")
	seedEntry(t, entries, "bob", "Work", "someone else", time.Date(2025, 4, 13, 10, 0, 0, 0, time.UTC))

	rows, err := svc.EntryFrequency(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	require.Equal(t, []domain.FrequencyRow{
		{Date: "2025-04-13", Count: 2},
		{Date: "2025-04-14", Count: 1},
	}, rows)
}

func TestCategoryDistribution(t *testing.T) {
	svc, entries := newSummaryFixture(t)
	seedScenario(t, entries, "alice")

	rows, err := svc.CategoryDistribution(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	require.Equal(t, []domain.CategoryCountRow{
		{Category: "Personal", Count: 1},
		{Category: "Work", Count: 2},
	}, rows)
}

// 大小写不做归一："work" 和 "Work" 是两个分类
func TestCategoryDistributionCaseSensitive(t *testing.T) {
	svc, entries := newSummaryFixture(t)
	seedEntry(t, entries, "alice", "Work", "a", time.Date(2025, 4, 13, 9, 0, 0, 0, time.UTC))
	seedEntry(t, entries, "alice", "work", "b", time.Date(2025, 4, 13, 10, 0, 0, 0, time.UTC))

	rows, err := svc.CategoryDistribution(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestWordCountTrends(t *testing.T) {
	svc, entries := newSummaryFixture(t)
	// "a b c" = 2 个空格 + 1 = 3 个词
	seedEntry(t, entries, "alice", "personal", "a b c", time.Date(2025, 4, 13, 9, 0, 0, 0, time.UTC))

	rows, err := svc.WordCountTrends(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	require.Equal(t, []domain.WordCountRow{
		{Date: "2025-04-13", AverageWordCount: 3},
	}, rows)
}

// 连续空格的少算是有意保留的近似，不修
func TestWordCountKeepsSpaceApproximation(t *testing.T) {
	svc, entries := newSummaryFixture(t)
	seedEntry(t, entries, "alice", "personal", "a  b", time.Date(2025, 4, 13, 9, 0, 0, 0, time.UTC))

	rows, err := svc.WordCountTrends(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	require.Equal(t, float64(3), rows[0].AverageWordCount) // 空格数+1，不是真实词数 2
}

func TestAverageEntryLength(t *testing.T) {
	svc, entries := newSummaryFixture(t)
	seedEntry(t, entries, "alice", "Work", "abcd", time.Date(2025, 4, 13, 9, 0, 0, 0, time.UTC))
	seedEntry(t, entries, "alice", "Work", "ab", time.Date(2025, 4, 13, 10, 0, 0, 0, time.UTC))

	rows, err := svc.AverageEntryLength(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	require.Equal(t, []domain.CategoryLengthRow{
		{Category: "Work", AverageLength: 3},
	}, rows)
}

func TestTimeOfDayAnalysis(t *testing.T) {
	svc, entries := newSummaryFixture(t)
	seedScenario(t, entries, "alice")

	rows, err := svc.TimeOfDayAnalysis(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	// 小时升序，没有条目的小时不补零
	require.Equal(t, []domain.HourCountRow{
		{Hour: 5, Count: 1},
		{Hour: 9, Count: 1},
		{Hour: 14, Count: 1},
	}, rows)
}

// 区间两端都含当天
func TestRangeInclusiveOfEndDate(t *testing.T) {
	svc, entries := newSummaryFixture(t)
	seedEntry(t, entries, "alice", "Work", "late", time.Date(2025, 4, 20, 23, 30, 0, 0, time.UTC))
	seedEntry(t, entries, "alice", "Work", "early", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	seedEntry(t, entries, "alice", "Work", "outside", time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC))

	rows, err := svc.EntryFrequency(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	require.Equal(t, int64(2), total)
}

func TestEmptyRangeReturnsEmpty(t *testing.T) {
	svc, _ := newSummaryFixture(t)

	rows, err := svc.EntryFrequency(context.Background(), "alice", day(2025, 4, 1), day(2025, 4, 20))
	require.NoError(t, err)
	require.Empty(t, rows)
}
