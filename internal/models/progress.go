package models

type ProgressEventType string

const (
	ProgressBranchDetected ProgressEventType = "branch_detected"
	ProgressStagedFiles    ProgressEventType = "staged_files"
	ProgressNothingStaged  ProgressEventType = "nothing_staged"
	ProgressConfigResolved ProgressEventType = "config_resolved"
	ProgressMessageReady   ProgressEventType = "message_ready"
	ProgressCommitting     ProgressEventType = "committing"
	ProgressCommitted      ProgressEventType = "committed"
	ProgressCancelled      ProgressEventType = "cancelled"
)

type ProgressEvent struct {
	Type    ProgressEventType
	Message string
	Branch  string
	Files   []FileStatus
}

// SessionOutcome is the non-error result of a commit session.
type SessionOutcome string

const (
	OutcomeCommitted     SessionOutcome = "committed"
	OutcomeCancelled     SessionOutcome = "cancelled"
	OutcomeNothingStaged SessionOutcome = "nothing_staged"
)
