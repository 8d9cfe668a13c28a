package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-journal-api/internal/service"
	httpez "go-journal-api/internal/transport/http/ez"
)

type SummaryHandler struct{ svc *service.SummaryService }

func NewSummaryHandler(svc *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

type rangeQ struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end"   binding:"required,datetime=2006-01-02"`
}

func (q *rangeQ) parse() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", q.Start)
	end, _ := time.Parse("2006-01-02", q.End)
	return start, end
}

// MountAPI 五个聚合端点形状完全一致，统一走 Action 注册
func (h *SummaryHandler) MountAPI(g *gin.RouterGroup) {
	ez := httpez.New(g)

	registerSummary(ez, "/summary/entry-frequency", h.svc.EntryFrequency)
	registerSummary(ez, "/summary/category-distribution", h.svc.CategoryDistribution)
	registerSummary(ez, "/summary/word-count-trends", h.svc.WordCountTrends)
	registerSummary(ez, "/summary/average-entry-length", h.svc.AverageEntryLength)
	registerSummary(ez, "/summary/time-of-day-analysis", h.svc.TimeOfDayAnalysis)
}

func registerSummary[T any](
	ez httpez.EZ,
	path string,
	query func(ctx context.Context, userID string, start, end time.Time) ([]T, error),
) {
	httpez.RegisterAction(ez, httpez.Action[rangeQ, []T]{
		Method: http.MethodGet,
		Path:   path,
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *rangeQ) ([]T, error) {
			start, end := in.parse()
			rows, err := query(c, c.GetString("userId"), start, end)
			if rows == nil {
				rows = []T{}
			}
			return rows, err
		},
	})
}
