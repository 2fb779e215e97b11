package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/mapper"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/validation"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListTask, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID := c.Param("id")
	if !validID(taskID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), taskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailGetTask, "failed to get task", zap.String("task_id", taskID))
		return
	}
	if task == nil {
		writeError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(*task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	var req dto.CreateTaskRequest
	if err := bindRaw(raw, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	if !validID(taskID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	var req dto.UpdateTaskRequest
	if err := bindRaw(raw, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), taskID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) SetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if !validID(taskID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.SetTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.SetStatus(c.Request.Context(), taskID, domain.TaskStatus(req.Status))
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to set task status", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	taskID := c.Param("id")
	if !validID(taskID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.ToggleCompletion(c.Request.Context(), taskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to toggle task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if !validID(taskID) {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), taskID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.String("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}
