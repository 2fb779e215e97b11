package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/middleware"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/apierrors"
)

const maxIDLength = 64

func writeError(c *gin.Context, status int, msgKey string) {
	c.JSON(
		status,
		apierrors.CreateError(status, msgKey, middleware.GetLang(c)).WithRequestID(middleware.GetRequestID(c)),
	)
}

// writeServiceError maps domain errors to their HTTP status. Anything it does
// not recognise is logged and answered with fallbackKey as a 500.
func writeServiceError(c *gin.Context, err error, fallbackKey, logMessage string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(c, http.StatusUnauthorized, apierrors.MsgUnauthorized)
	case errors.Is(err, domain.ErrTaskNotFound):
		writeError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
	case errors.Is(err, domain.ErrTimeBlockNotFound):
		writeError(c, http.StatusNotFound, apierrors.MsgTimeBlockNotFound)
	case errors.Is(err, domain.ErrInvalidInterval):
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidInterval)
	case errors.Is(err, domain.ErrInvalidRange):
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidRange)
	case errors.Is(err, domain.ErrTimeBlockConflict):
		writeError(c, http.StatusConflict, apierrors.MsgTimeBlockConflict)
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrMalformedResponse):
		zap.L().Warn(logMessage, append(fields, zap.Error(err))...)
		writeError(c, http.StatusBadGateway, apierrors.MsgUpstreamUnavailable)
	default:
		zap.L().Error(logMessage, append(fields, zap.Error(err))...)
		writeError(c, http.StatusInternalServerError, fallbackKey)
	}
}

func validID(id string) bool {
	id = strings.TrimSpace(id)
	return id != "" && len(id) <= maxIDLength && !strings.ContainsAny(id, "/?#")
}
