package repo

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"go-journal-api/internal/domain"
)

// 内存实现，测试用。与 gorm 实现遵守同一套契约：
// 邮箱唯一冲突、owner 不可见性、聚合的分组/排序/舍入。

type MemoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // by id
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: map[string]*domain.User{}}
}

func (r *MemoryUserRepo) Create(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *MemoryUserRepo) FindByID(id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type MemoryJournalRepo struct {
	mu      sync.Mutex
	entries map[string]*domain.JournalEntry // by id
}

func NewMemoryJournalRepo() *MemoryJournalRepo {
	return &MemoryJournalRepo{entries: map[string]*domain.JournalEntry{}}
}

func (r *MemoryJournalRepo) Create(e *domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = e.CreatedAt
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *MemoryJournalRepo) ListByUser(userID string) ([]domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.JournalEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryJournalRepo) FindOne(userID, entryID string) (*domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[entryID]
	if !ok || e.UserID != userID {
		return nil, domain.ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *MemoryJournalRepo) Update(e *domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.UpdatedAt = time.Now()
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *MemoryJournalRepo) Delete(userID, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[entryID]
	if !ok || e.UserID != userID {
		return domain.ErrEntryNotFound
	}
	delete(r.entries, entryID)
	return nil
}

// MemorySummaryRepo 与 MemoryJournalRepo 共享条目，在 Go 里做同样的聚合
type MemorySummaryRepo struct{ Entries *MemoryJournalRepo }

func NewMemorySummaryRepo(entries *MemoryJournalRepo) *MemorySummaryRepo {
	return &MemorySummaryRepo{Entries: entries}
}

func (r *MemorySummaryRepo) inRange(userID string, start, end time.Time) []domain.JournalEntry {
	r.Entries.mu.Lock()
	defer r.Entries.mu.Unlock()
	var out []domain.JournalEntry
	for _, e := range r.Entries.entries {
		if e.UserID == userID && !e.CreatedAt.Before(start) && e.CreatedAt.Before(end) {
			out = append(out, *e)
		}
	}
	return out
}

func wordCount(content string) int { return strings.Count(content, " ") + 1 }

func round2(f float64) float64 { return math.Round(f*100) / 100 }

func (r *MemorySummaryRepo) EntryFrequency(userID string, start, end time.Time) ([]domain.FrequencyRow, error) {
	counts := map[string]int64{}
	for _, e := range r.inRange(userID, start, end) {
		counts[e.CreatedAt.Format("2006-01-02")]++
	}
	out := make([]domain.FrequencyRow, 0, len(counts))
	for d, n := range counts {
		out = append(out, domain.FrequencyRow{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *MemorySummaryRepo) CategoryDistribution(userID string, start, end time.Time) ([]domain.CategoryCountRow, error) {
	counts := map[string]int64{}
	for _, e := range r.inRange(userID, start, end) {
		counts[e.Category]++
	}
	out := make([]domain.CategoryCountRow, 0, len(counts))
	for c, n := range counts {
		out = append(out, domain.CategoryCountRow{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (r *MemorySummaryRepo) WordCountTrends(userID string, start, end time.Time) ([]domain.WordCountRow, error) {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, e := range r.inRange(userID, start, end) {
		d := e.CreatedAt.Format("2006-01-02")
		sums[d] += wordCount(e.Content)
		counts[d]++
	}
	out := make([]domain.WordCountRow, 0, len(sums))
	for d, sum := range sums {
		out = append(out, domain.WordCountRow{
			Date:             d,
			AverageWordCount: round2(float64(sum) / float64(counts[d])),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *MemorySummaryRepo) AverageEntryLength(userID string, start, end time.Time) ([]domain.CategoryLengthRow, error) {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, e := range r.inRange(userID, start, end) {
		sums[e.Category] += len(e.Content)
		counts[e.Category]++
	}
	out := make([]domain.CategoryLengthRow, 0, len(sums))
	for c, sum := range sums {
		out = append(out, domain.CategoryLengthRow{
			Category:      c,
			AverageLength: round2(float64(sum) / float64(counts[c])),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (r *MemorySummaryRepo) TimeOfDayAnalysis(userID string, start, end time.Time) ([]domain.HourCountRow, error) {
	counts := map[int]int64{}
	for _, e := range r.inRange(userID, start, end) {
		counts[e.CreatedAt.Hour()]++
	}
	out := make([]domain.HourCountRow, 0, len(counts))
	for h, n := range counts {
		out = append(out, domain.HourCountRow{Hour: h, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out, nil
}
