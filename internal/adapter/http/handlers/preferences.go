package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/mapper"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/validation"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/apierrors"
)

type PreferenceHandler struct {
	preferenceService ports.PreferenceService
}

func NewPreferenceHandler(preferenceService ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.preferenceService.Resolve(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadPreferences, "failed to load preferences")
		return
	}

	c.JSON(http.StatusOK, mapper.ToPreferencesItem(prefs))
}

// UpdatePreferences merges the provided fields into the current preferences.
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPreferences)
		return
	}

	current, err := h.preferenceService.Resolve(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailLoadPreferences, "failed to load preferences")
		return
	}

	prefs, err := validation.BuildPreferences(current, req.StartOfWeek, req.ShowCompletedTasks)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPreferences)
		return
	}

	saved, err := h.preferenceService.Update(c.Request.Context(), prefs)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailSavePreferences, "failed to save preferences")
		return
	}

	c.JSON(http.StatusOK, mapper.ToPreferencesItem(saved))
}
