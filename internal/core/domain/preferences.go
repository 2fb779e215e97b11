package domain

type WeekStart string

const (
	WeekStartMonday WeekStart = "monday"
	WeekStartSunday WeekStart = "sunday"
)

func (w WeekStart) Valid() bool {
	return w == WeekStartMonday || w == WeekStartSunday
}

type UserPreferences struct {
	StartOfWeek        WeekStart
	ShowCompletedTasks bool
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		StartOfWeek:        WeekStartMonday,
		ShowCompletedTasks: true,
	}
}
