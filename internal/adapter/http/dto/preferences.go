package dto

type PreferencesItem struct {
	StartOfWeek        string `json:"start_of_week"`
	ShowCompletedTasks bool   `json:"show_completed_tasks"`
}

type UpdatePreferencesRequest struct {
	StartOfWeek        *string `json:"start_of_week" binding:"omitempty,oneof=monday sunday"`
	ShowCompletedTasks *bool   `json:"show_completed_tasks"`
}
