package service

import (
	"context"

	"go-journal-api/internal/core/cache"
	"go-journal-api/internal/domain"
	"go-journal-api/pkg/utils"
)

type CreateEntryInput struct {
	Title    string
	Content  string
	Category string // 为空则落默认分类
}

type JournalService struct {
	entries domain.JournalRepository
	cache   *cache.Cache // 可为 nil
}

func NewJournalService(entries domain.JournalRepository, c *cache.Cache) *JournalService {
	return &JournalService{entries: entries, cache: c}
}

func (s *JournalService) Create(ctx context.Context, userID string, in CreateEntryInput) (*domain.JournalEntry, error) {
	category := in.Category
	if category == "" {
		category = "personal"
	}
	e := &domain.JournalEntry{
		ID:       utils.NewID(),
		Title:    in.Title,
		Content:  in.Content,
		Category: category,
		UserID:   userID,
	}
	if err := s.entries.Create(e); err != nil {
		return nil, err
	}
	s.bumpSummaries(ctx, userID)
	return e, nil
}

func (s *JournalService) List(_ context.Context, userID string) ([]domain.JournalEntry, error) {
	return s.entries.ListByUser(userID)
}

func (s *JournalService) Get(_ context.Context, userID, entryID string) (*domain.JournalEntry, error) {
	return s.entries.FindOne(userID, entryID)
}

// Update 经由 FindOne 解析，跨用户的更新同样表现为 ErrEntryNotFound。
// 只覆盖补丁里带的字段，createdAt 不可变。
func (s *JournalService) Update(ctx context.Context, userID, entryID string, patch domain.EntryPatch) (*domain.JournalEntry, error) {
	e, err := s.entries.FindOne(userID, entryID)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Content != nil {
		e.Content = *patch.Content
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if err := s.entries.Update(e); err != nil {
		return nil, err
	}
	s.bumpSummaries(ctx, userID)
	return e, nil
}

func (s *JournalService) Delete(ctx context.Context, userID, entryID string) error {
	if _, err := s.entries.FindOne(userID, entryID); err != nil {
		return err
	}
	if err := s.entries.Delete(userID, entryID); err != nil {
		return err
	}
	s.bumpSummaries(ctx, userID)
	return nil
}

// 写路径递增该用户的汇总版本号，让缓存的聚合结果失效
func (s *JournalService) bumpSummaries(ctx context.Context, userID string) {
	if s.cache != nil {
		s.cache.Bump(ctx, "summary:"+userID)
	}
}
