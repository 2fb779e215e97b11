package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/mapper"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/validation"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/apierrors"
)

type StatsHandler struct {
	statsService ports.StatsService
	now          func() time.Time
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService, now: time.Now}
}

func (h *StatsHandler) GetDaily(c *gin.Context) {
	date, ok := validation.ParseDate(c.Query("date"), h.now())
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	stats, err := h.statsService.Daily(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadStats, "failed to compute daily stats")
		return
	}

	c.JSON(http.StatusOK, mapper.ToDailyStatsItem(stats))
}

func (h *StatsHandler) GetTasks(c *gin.Context) {
	query, err := validation.BuildStatsQuery(c.Query("from"), c.Query("to"), c.Query("project_id"), c.Query("category_id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidStatsQuery)
		return
	}

	stats, err := h.statsService.Tasks(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadStats, "failed to compute task stats")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStatisticsItem(stats))
}

func (h *StatsHandler) GetWeek(c *gin.Context) {
	date, ok := validation.ParseDate(c.Query("date"), h.now())
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	stats, err := h.statsService.Week(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadStats, "failed to compute week stats")
		return
	}

	c.JSON(http.StatusOK, mapper.ToWeekStatsItem(stats))
}

func (h *StatsHandler) GetTimeBlocks(c *gin.Context) {
	from, to, ok := parseRange(c, h.now())
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidRange)
		return
	}

	stats, err := h.statsService.TimeBlocks(c.Request.Context(), from, to)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadStats, "failed to compute time block stats")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeBlockStatisticsItem(stats))
}
