package shared

// Task types processed by the worker.
const (
	TypeNotificationDeliver = "notification:deliver"
	TypeNotificationCleanup = "notification:cleanup_old"
)

// Queue names with their worker priorities.
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)
