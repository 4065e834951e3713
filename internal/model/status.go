package model

// RunState represents the state of the download orchestration loop
type RunState string

const (
	// RunStateIdle means no download is being handled
	RunStateIdle RunState = "Idle"

	// RunStateValidating means the inputs of a download action are being checked
	RunStateValidating RunState = "Validating"

	// RunStateRunning means the external downloader is working
	RunStateRunning RunState = "Running"

	// RunStateSucceeded means the downloader returned without error
	RunStateSucceeded RunState = "Succeeded"

	// RunStateFailed means the downloader reported an error
	RunStateFailed RunState = "Failed"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsActive returns true while a download action holds the controls
func (rs RunState) IsActive() bool {
	return rs == RunStateValidating || rs == RunStateRunning
}

// IsFinished returns true if the run reached a terminal state (succeeded or failed)
func (rs RunState) IsFinished() bool {
	return rs == RunStateSucceeded || rs == RunStateFailed
}

// FailureKind distinguishes the user-facing categories of a failed run
type FailureKind string

const (
	FailureNone       FailureKind = ""
	FailureInvalidURL FailureKind = "invalid_url"
	FailureDownload   FailureKind = "download"
)
