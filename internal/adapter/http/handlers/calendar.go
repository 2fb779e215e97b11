package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/mapper"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/validation"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/apierrors"
)

type CalendarHandler struct {
	calendarService ports.CalendarService
	now             func() time.Time
}

func NewCalendarHandler(calendarService ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService, now: time.Now}
}

func (h *CalendarHandler) GetDay(c *gin.Context) {
	date, ok := validation.ParseDate(c.Query("date"), h.now())
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	view, err := h.calendarService.Day(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadCalendar, "failed to load day view", zap.Time("date", date))
		return
	}

	c.JSON(http.StatusOK, mapper.ToDayViewResponse(view))
}

func (h *CalendarHandler) GetWeek(c *gin.Context) {
	date, ok := validation.ParseDate(c.Query("date"), h.now())
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	view, err := h.calendarService.Week(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadCalendar, "failed to load week view", zap.Time("date", date))
		return
	}

	c.JSON(http.StatusOK, mapper.ToWeekViewResponse(view))
}

func (h *CalendarHandler) ListEvents(c *gin.Context) {
	from, to, ok := parseRange(c, h.now())
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidRange)
		return
	}

	events, err := h.calendarService.Events(c.Request.Context(), from, to)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadCalendar, "failed to list events")
		return
	}

	c.JSON(http.StatusOK, mapper.ToEventItems(events))
}

// parseRange reads ?from=&to=. from defaults to today and to to from.
func parseRange(c *gin.Context, now time.Time) (time.Time, time.Time, bool) {
	from, ok := validation.ParseDate(c.Query("from"), now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to := from
	if value := c.Query("to"); value != "" {
		parsed, ok := validation.ParseDate(value, now)
		if !ok || parsed.Before(from) {
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	return from, to, true
}
