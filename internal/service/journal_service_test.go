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

func strPtr(s string) *string { return &s }

func TestCreateDefaultsCategory(t *testing.T) {
	svc := NewJournalService(repo.NewMemoryJournalRepo(), nil)

	e, err := svc.Create(context.Background(), "u-1", CreateEntryInput{
		Title:   "First",
		Content: "hello world",
	})
	require.NoError(t, err)
	require.Equal(t, "personal", e.Category)
	require.Equal(t, "u-1", e.UserID)
	require.False(t, e.CreatedAt.IsZero())
}

func TestListNewestFirst(t *testing.T) {
	entries := repo.NewMemoryJournalRepo()
	svc := NewJournalService(entries, nil)
	ctx := context.Background()

	base := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, entries.Create(&domain.JournalEntry{
			ID:        utils.NewID(),
			Title:     title,
			Content:   "c",
			Category:  "personal",
			UserID:    "u-1",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "newest", got[0].Title)
	require.Equal(t, "middle", got[1].Title)
	require.Equal(t, "oldest", got[2].Title)
}

func TestCreateThenListIncludesEntry(t *testing.T) {
	svc := NewJournalService(repo.NewMemoryJournalRepo(), nil)
	ctx := context.Background()

	e, err := svc.Create(ctx, "u-1", CreateEntryInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	got, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, e.ID, got[0].ID)
}

// 别人的条目对外表现为不存在，find/update/delete 一视同仁
func TestCrossUserOpacity(t *testing.T) {
	svc := NewJournalService(repo.NewMemoryJournalRepo(), nil)
	ctx := context.Background()

	e, err := svc.Create(ctx, "alice", CreateEntryInput{Title: "private", Content: "secret"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "bob", e.ID)
	require.ErrorIs(t, err, domain.ErrEntryNotFound)

	_, err = svc.Update(ctx, "bob", e.ID, domain.EntryPatch{Title: strPtr("stolen")})
	require.ErrorIs(t, err, domain.ErrEntryNotFound)

	err = svc.Delete(ctx, "bob", e.ID)
	require.ErrorIs(t, err, domain.ErrEntryNotFound)

	// 主人访问正常
	got, err := svc.Get(ctx, "alice", e.ID)
	require.NoError(t, err)
	require.Equal(t, "private", got.Title)
}

func TestPartialUpdate(t *testing.T) {
	svc := NewJournalService(repo.NewMemoryJournalRepo(), nil)
	ctx := context.Background()

	e, err := svc.Create(ctx, "u-1", CreateEntryInput{
		Title: "original", Content: "body", Category: "Work",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u-1", e.ID, domain.EntryPatch{Title: strPtr("renamed")})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, "body", updated.Content)
	require.Equal(t, "Work", updated.Category)
	require.Equal(t, e.CreatedAt, updated.CreatedAt) // createdAt 不可变
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := NewJournalService(repo.NewMemoryJournalRepo(), nil)
	ctx := context.Background()

	e, err := svc.Create(ctx, "u-1", CreateEntryInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u-1", e.ID))

	_, err = svc.Get(ctx, "u-1", e.ID)
	require.ErrorIs(t, err, domain.ErrEntryNotFound)

	err = svc.Delete(ctx, "u-1", e.ID)
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}
