package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/mapper"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/validation"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/apierrors"
)

type TimeBlockHandler struct {
	timeBlockService ports.TimeBlockService
	now              func() time.Time
}

func NewTimeBlockHandler(timeBlockService ports.TimeBlockService) *TimeBlockHandler {
	return &TimeBlockHandler{timeBlockService: timeBlockService, now: time.Now}
}

// strictMode reads ?strict=true. Overlaps are advisory unless it is set.
func strictMode(c *gin.Context) bool {
	strict, err := strconv.ParseBool(c.DefaultQuery("strict", "false"))
	return err == nil && strict
}

func (h *TimeBlockHandler) ListTimeBlocks(c *gin.Context) {
	date, ok := validation.ParseDate(c.Query("date"), h.now())
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	blocks, err := h.timeBlockService.ListForDate(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListTimeBlocks, "failed to list time blocks", zap.Time("date", date))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeBlockItems(blocks))
}

func (h *TimeBlockHandler) CreateTimeBlock(c *gin.Context) {
	var req dto.CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}

	input, err := validation.BuildCreateTimeBlockInput(req)
	if err != nil {
		writePayloadError(c, err)
		return
	}

	result, err := h.timeBlockService.Create(c.Request.Context(), input, strictMode(c))
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailSaveTimeBlock, "failed to create time block")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToScheduleResponse(result))
}

func (h *TimeBlockHandler) UpdateTimeBlock(c *gin.Context) {
	blockID := c.Param("id")
	if !validID(blockID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockID)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}

	var req dto.UpdateTimeBlockRequest
	if err := bindRaw(raw, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}

	input, err := validation.BuildUpdateTimeBlockInput(req, raw)
	if err != nil {
		writePayloadError(c, err)
		return
	}

	result, err := h.timeBlockService.Update(c.Request.Context(), blockID, input, strictMode(c))
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailSaveTimeBlock, "failed to update time block", zap.String("time_block_id", blockID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleResponse(result))
}

func (h *TimeBlockHandler) CheckConflict(c *gin.Context) {
	var req dto.CheckConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}

	interval, err := validation.BuildInterval(req.StartTime, req.EndTime)
	if err != nil {
		writePayloadError(c, err)
		return
	}

	conflicts, err := h.timeBlockService.CheckConflicts(c.Request.Context(), interval, req.ExcludeID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListTimeBlocks, "failed to check time block conflicts")
		return
	}

	c.JSON(http.StatusOK, mapper.ToConflictResponse(conflicts))
}

func (h *TimeBlockHandler) ToggleTimeBlock(c *gin.Context) {
	blockID := c.Param("id")
	if !validID(blockID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockID)
		return
	}

	block, err := h.timeBlockService.ToggleCompletion(c.Request.Context(), blockID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailSaveTimeBlock, "failed to toggle time block", zap.String("time_block_id", blockID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeBlockItem(block))
}

func (h *TimeBlockHandler) DeleteTimeBlock(c *gin.Context) {
	blockID := c.Param("id")
	if !validID(blockID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockID)
		return
	}

	if err := h.timeBlockService.Delete(c.Request.Context(), blockID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailDeleteTimeBlock, "failed to delete time block", zap.String("time_block_id", blockID))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetLinkedTask answers 200 with found=false when the linked task was deleted.
func (h *TimeBlockHandler) GetLinkedTask(c *gin.Context) {
	blockID := c.Param("id")
	if !validID(blockID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockID)
		return
	}

	ref, err := h.timeBlockService.ResolveTask(c.Request.Context(), blockID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailResolveTask, "failed to resolve linked task", zap.String("time_block_id", blockID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskRefResponse(ref))
}

func writePayloadError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidInterval) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidInterval)
		return
	}
	writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
}
