package domain

import "time"

type JournalEntry struct {
	ID        string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"size:64;not null;default:personal" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	UserID    string    `gorm:"type:varchar(32);not null;index" json:"-"`
}

func (JournalEntry) TableName() string { return "journal_entries" }

// EntryPatch 部分更新：nil 字段表示“不改”
type EntryPatch struct {
	Title    *string
	Content  *string
	Category *string
}

// JournalRepository 所有查询都以 userID 为第一过滤条件。
// 别人的条目和不存在的条目一律 ErrEntryNotFound，外部无法区分。
type JournalRepository interface {
	Create(e *JournalEntry) error
	ListByUser(userID string) ([]JournalEntry, error)
	FindOne(userID, entryID string) (*JournalEntry, error)
	Update(e *JournalEntry) error
	Delete(userID, entryID string) error
}

// 汇总查询的结果行。date 统一 "2006-01-02"。
type (
	FrequencyRow struct {
		Date  string `json:"date"`
		Count int64  `json:"count"`
	}
	CategoryCountRow struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}
	WordCountRow struct {
		Date             string  `json:"date"`
		AverageWordCount float64 `json:"averageWordCount"`
	}
	CategoryLengthRow struct {
		Category      string  `json:"category"`
		AverageLength float64 `json:"averageLength"`
	}
	HourCountRow struct {
		Hour  int   `json:"hour"`
		Count int64 `json:"count"`
	}
)

// SummaryRepository 五个固定聚合，全部只读。
// 时间窗约定：start <= created_at < end（调用方已把含当天的语义折算成开区间上界）。
type SummaryRepository interface {
	EntryFrequency(userID string, start, end time.Time) ([]FrequencyRow, error)
	CategoryDistribution(userID string, start, end time.Time) ([]CategoryCountRow, error)
	WordCountTrends(userID string, start, end time.Time) ([]WordCountRow, error)
	AverageEntryLength(userID string, start, end time.Time) ([]CategoryLengthRow, error)
	TimeOfDayAnalysis(userID string, start, end time.Time) ([]HourCountRow, error)
}
