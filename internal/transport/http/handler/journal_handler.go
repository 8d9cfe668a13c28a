package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-journal-api/internal/domain"
	"go-journal-api/internal/service"
	httpez "go-journal-api/internal/transport/http/ez"
)

type JournalHandler struct{ svc *service.JournalService }

func NewJournalHandler(svc *service.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

type createEntryIn struct {
	Title    string `json:"title"    binding:"required,max=100"`
	Content  string `json:"content"  binding:"required,max=10000"`
	Category string `json:"category" binding:"omitempty,max=64"`
}

// 部分更新：nil 表示“没传”，空串会被 min=1 拦下
type updateEntryIn struct {
	Title    *string `json:"title"    binding:"omitempty,min=1,max=100"`
	Content  *string `json:"content"  binding:"omitempty,min=1,max=10000"`
	Category *string `json:"category" binding:"omitempty,max=64"`
}

// MountAPI 挂在鉴权分组下，userId 来自 token，不信 body
func (h *JournalHandler) MountAPI(g *gin.RouterGroup) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[createEntryIn, *domain.JournalEntry]{
		Method: http.MethodPost,
		Path:   "/journals",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *createEntryIn) (*domain.JournalEntry, error) {
			return h.svc.Create(c, c.GetString("userId"), service.CreateEntryInput{
				Title:    in.Title,
				Content:  in.Content,
				Category: in.Category,
			})
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.JournalEntry]{
		Method: http.MethodGet,
		Path:   "/journals",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.JournalEntry, error) {
			entries, err := h.svc.List(c, c.GetString("userId"))
			if entries == nil {
				entries = []domain.JournalEntry{}
			}
			return entries, err
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.JournalEntry]{
		Method: http.MethodGet,
		Path:   "/journals/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.JournalEntry, error) {
			return h.svc.Get(c, c.GetString("userId"), c.Param("id"))
		},
	})

	httpez.RegisterAction(ez, httpez.Action[updateEntryIn, *domain.JournalEntry]{
		Method: http.MethodPatch,
		Path:   "/journals/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *updateEntryIn) (*domain.JournalEntry, error) {
			return h.svc.Update(c, c.GetString("userId"), c.Param("id"), domain.EntryPatch{
				Title:    in.Title,
				Content:  in.Content,
				Category: in.Category,
			})
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/journals/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := h.svc.Delete(c, c.GetString("userId"), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
