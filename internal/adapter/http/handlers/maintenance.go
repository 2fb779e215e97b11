package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/mapper"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/middleware"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/validation"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/apierrors"
)

type MaintenanceHandler struct {
	timeBlockService ports.TimeBlockService
	sessionService   ports.SessionService
	now              func() time.Time
}

func NewMaintenanceHandler(timeBlockService ports.TimeBlockService, sessionService ports.SessionService) *MaintenanceHandler {
	return &MaintenanceHandler{
		timeBlockService: timeBlockService,
		sessionService:   sessionService,
		now:              time.Now,
	}
}

// FindDanglingRefs lists time blocks whose task no longer exists.
func (h *MaintenanceHandler) FindDanglingRefs(c *gin.Context) {
	h.sweep(c, false)
}

// ClearDanglingRefs detaches time blocks from tasks that no longer exist.
func (h *MaintenanceHandler) ClearDanglingRefs(c *gin.Context) {
	h.sweep(c, true)
}

func (h *MaintenanceHandler) sweep(c *gin.Context, apply bool) {
	from, to, ok := parseRange(c, h.now())
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidRange)
		return
	}

	refs, err := h.timeBlockService.SweepDanglingReferences(c.Request.Context(), from, to, apply)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailSweep, "failed to sweep dangling references", zap.Bool("apply", apply))
		return
	}

	c.JSON(http.StatusOK, dto.SweepResponse{
		From:     from.Format(validation.DateLayout),
		To:       to.Format(validation.DateLayout),
		Applied:  apply,
		Dangling: mapper.ToDanglingRefItems(refs),
	})
}

// ResetSession drops every cached resource, as on logout.
func (h *MaintenanceHandler) ResetSession(c *gin.Context) {
	h.sessionService.Reset()
	zap.L().Info("session reset", zap.String("request_id", middleware.GetRequestID(c)))
	c.Status(http.StatusNoContent)
}
