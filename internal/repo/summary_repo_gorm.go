package repo

import (
	"time"

	"gorm.io/gorm"

	"go-journal-api/internal/domain"
)

// SummaryRepo 五个固定 GROUP BY，全部在数据库端聚合。
// SQL 只用 mysql / postgres 都支持的写法：DATE()、EXTRACT(HOUR ...)、
// LENGTH/REPLACE。时间窗是 [start, end) 半开区间。
type SummaryRepo struct{ db *gorm.DB }

func NewSummaryRepo(db *gorm.DB) *SummaryRepo { return &SummaryRepo{db: db} }

const dateLayout = "2006-01-02"

// 词数近似 = 空格数 + 1（有意保留的简化，改了会改变对外输出）
const wordCountExpr = "LENGTH(content) - LENGTH(REPLACE(content, ' ', '')) + 1"

func (r *SummaryRepo) scoped(userID string, start, end time.Time) *gorm.DB {
	return r.db.Model(&domain.JournalEntry{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end)
}

func (r *SummaryRepo) EntryFrequency(userID string, start, end time.Time) ([]domain.FrequencyRow, error) {
	var rows []struct {
		Day   time.Time
		Count int64
	}
	err := r.scoped(userID, start, end).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.FrequencyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FrequencyRow{Date: row.Day.Format(dateLayout), Count: row.Count})
	}
	return out, nil
}

func (r *SummaryRepo) CategoryDistribution(userID string, start, end time.Time) ([]domain.CategoryCountRow, error) {
	var out []domain.CategoryCountRow
	err := r.scoped(userID, start, end).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&out).Error
	if out == nil {
		out = []domain.CategoryCountRow{}
	}
	return out, err
}

func (r *SummaryRepo) WordCountTrends(userID string, start, end time.Time) ([]domain.WordCountRow, error) {
	var rows []struct {
		Day time.Time
		Avg float64
	}
	err := r.scoped(userID, start, end).
		Select("DATE(created_at) AS day, ROUND(AVG(" + wordCountExpr + "), 2) AS avg").
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.WordCountRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.WordCountRow{Date: row.Day.Format(dateLayout), AverageWordCount: row.Avg})
	}
	return out, nil
}

func (r *SummaryRepo) AverageEntryLength(userID string, start, end time.Time) ([]domain.CategoryLengthRow, error) {
	var out []domain.CategoryLengthRow
	err := r.scoped(userID, start, end).
		Select("category, ROUND(AVG(LENGTH(content)), 2) AS average_length").
		Group("category").
		Order("category ASC").
		Scan(&out).Error
	if out == nil {
		out = []domain.CategoryLengthRow{}
	}
	return out, err
}

func (r *SummaryRepo) TimeOfDayAnalysis(userID string, start, end time.Time) ([]domain.HourCountRow, error) {
	var out []domain.HourCountRow
	err := r.scoped(userID, start, end).
		Select("EXTRACT(HOUR FROM created_at) AS hour, COUNT(*) AS count").
		Group("EXTRACT(HOUR FROM created_at)").
		Order("hour ASC").
		Scan(&out).Error
	if out == nil {
		out = []domain.HourCountRow{}
	}
	return out, err
}
