package apierrors

const (
	MsgFailListTask       = "errorListTask"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidTimeBlockID      = "invalidTimeBlockID"
	MsgInvalidTimeBlockPayload = "invalidTimeBlockPayload"
	MsgInvalidInterval         = "invalidInterval"
	MsgTimeBlockNotFound       = "timeBlockNotFound"
	MsgTimeBlockConflict       = "timeBlockConflict"
	MsgFailListTimeBlocks      = "failListTimeBlocks"
	MsgFailSaveTimeBlock       = "failSaveTimeBlock"
	MsgFailDeleteTimeBlock     = "failDeleteTimeBlock"
	MsgFailResolveTask         = "failResolveTask"

	MsgInvalidDate         = "invalidDate"
	MsgInvalidRange        = "invalidRange"
	MsgFailLoadCalendar    = "failLoadCalendar"
	MsgInvalidStatsQuery   = "invalidStatsQuery"
	MsgFailLoadStats       = "failLoadStats"
	MsgInvalidPreferences  = "invalidPreferences"
	MsgFailLoadPreferences = "failLoadPreferences"
	MsgFailSavePreferences = "failSavePreferences"
	MsgFailSweep           = "failSweepDanglingRefs"

	MsgUnauthorized        = "unauthorized"
	MsgUpstreamUnavailable = "upstreamUnavailable"
)
