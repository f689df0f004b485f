package service

// Outcome labels shared by the metrics recorder.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// MetricsRecorder counts security-relevant domain outcomes and handled events.
type MetricsRecorder interface {
	RecordLogin(outcome string)
	RecordSessionEvent(eventType string)
	RecordDeletion(outcome string)
	RecordEvent(eventType, result string)
}
