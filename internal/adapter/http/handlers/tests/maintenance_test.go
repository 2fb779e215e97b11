package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/handlers"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/middleware"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

func newMaintenanceRouter(blocks *timeBlockServiceMock, session *sessionServiceMock) *gin.Engine {
	handler := handlers.NewMaintenanceHandler(blocks, session)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(), middleware.LanguageMiddleware())
	router.GET("/api/maintenance/dangling-refs", handler.FindDanglingRefs)
	router.POST("/api/maintenance/dangling-refs", handler.ClearDanglingRefs)
	router.POST("/api/session/reset", handler.ResetSession)
	return router
}

func TestMaintenanceHandler_FindDanglingRefs_DoesNotApply(t *testing.T) {
	blocks := new(timeBlockServiceMock)
	blocks.On("SweepDanglingReferences", mock.Anything,
		sameTime(localDate(2026, 3, 9)), sameTime(localDate(2026, 3, 15)), false,
	).Return([]domain.DanglingRef{{TimeBlockID: "b-1", TaskID: "t-gone"}}, nil).Once()

	rec := serve(newMaintenanceRouter(blocks, new(sessionServiceMock)), http.MethodGet,
		"/api/maintenance/dangling-refs?from=2026-03-09&to=2026-03-15", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SweepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2026-03-09", got.From)
	assert.Equal(t, "2026-03-15", got.To)
	assert.False(t, got.Applied)
	require.Len(t, got.Dangling, 1)
	assert.Equal(t, "t-gone", got.Dangling[0].TaskID)
	assert.False(t, got.Dangling[0].Cleared)
	blocks.AssertExpectations(t)
}

func TestMaintenanceHandler_ClearDanglingRefs(t *testing.T) {
	blocks := new(timeBlockServiceMock)
	blocks.On("SweepDanglingReferences", mock.Anything, mock.Anything, mock.Anything, true).
		Return([]domain.DanglingRef{{TimeBlockID: "b-1", TaskID: "t-gone", Cleared: true}}, nil).Once()

	rec := serve(newMaintenanceRouter(blocks, new(sessionServiceMock)), http.MethodPost,
		"/api/maintenance/dangling-refs?from=2026-03-10", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SweepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Applied)
	assert.Equal(t, got.From, got.To)
	assert.True(t, got.Dangling[0].Cleared)
	blocks.AssertExpectations(t)
}

func TestMaintenanceHandler_SweepWindowTooWide(t *testing.T) {
	blocks := new(timeBlockServiceMock)
	blocks.On("SweepDanglingReferences", mock.Anything, mock.Anything, mock.Anything, false).
		Return(nil, domain.ErrInvalidRange).Once()

	rec := serve(newMaintenanceRouter(blocks, new(sessionServiceMock)), http.MethodGet,
		"/api/maintenance/dangling-refs?from=2026-01-01&to=2026-12-31", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	blocks.AssertExpectations(t)
}

func TestMaintenanceHandler_ResetSession(t *testing.T) {
	session := new(sessionServiceMock)
	session.On("Reset").Return().Once()

	rec := serve(newMaintenanceRouter(new(timeBlockServiceMock), session), http.MethodPost, "/api/session/reset", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	session.AssertExpectations(t)
}
