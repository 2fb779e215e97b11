package http

import (
	"github.com/gin-gonic/gin"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/handlers"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/middleware"
)

// Handlers bundles every HTTP handler the router serves.
type Handlers struct {
	Health      *handlers.HealthHandler
	Tasks       *handlers.TaskHandler
	TimeBlocks  *handlers.TimeBlockHandler
	Calendar    *handlers.CalendarHandler
	Stats       *handlers.StatsHandler
	Preferences *handlers.PreferenceHandler
	Maintenance *handlers.MaintenanceHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware(), middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.PUT("/tasks/:id", h.Tasks.UpdateTask)
		api.PATCH("/tasks/:id/status", h.Tasks.SetTaskStatus)
		api.POST("/tasks/:id/toggle", h.Tasks.ToggleTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		api.GET("/time-blocks", h.TimeBlocks.ListTimeBlocks)
		api.POST("/time-blocks", h.TimeBlocks.CreateTimeBlock)
		api.POST("/time-blocks/check-conflict", h.TimeBlocks.CheckConflict)
		api.PUT("/time-blocks/:id", h.TimeBlocks.UpdateTimeBlock)
		api.POST("/time-blocks/:id/toggle", h.TimeBlocks.ToggleTimeBlock)
		api.GET("/time-blocks/:id/task", h.TimeBlocks.GetLinkedTask)
		api.DELETE("/time-blocks/:id", h.TimeBlocks.DeleteTimeBlock)

		api.GET("/calendar/day", h.Calendar.GetDay)
		api.GET("/calendar/week", h.Calendar.GetWeek)
		api.GET("/calendar/events", h.Calendar.ListEvents)

		api.GET("/stats/daily", h.Stats.GetDaily)
		api.GET("/stats/tasks", h.Stats.GetTasks)
		api.GET("/stats/week", h.Stats.GetWeek)
		api.GET("/stats/time-blocks", h.Stats.GetTimeBlocks)

		api.GET("/preferences", h.Preferences.GetPreferences)
		api.PUT("/preferences", h.Preferences.UpdatePreferences)

		api.GET("/maintenance/dangling-refs", h.Maintenance.FindDanglingRefs)
		api.POST("/maintenance/dangling-refs", h.Maintenance.ClearDanglingRefs)
		api.POST("/session/reset", h.Maintenance.ResetSession)
	}
}
