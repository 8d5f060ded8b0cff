package model

// JobStatus represents the status of a transcode job
type JobStatus string

const (
	// JobStatusPending means the job is accepted but ffmpeg has not been launched
	JobStatusPending JobStatus = "Pending"

	// JobStatusRunning means ffmpeg is running
	JobStatusRunning JobStatus = "Running"

	// JobStatusStopping means a stop was requested and the process is being torn down
	JobStatusStopping JobStatus = "Stopping"

	// JobStatusStopped means the job was stopped by user
	JobStatusStopped JobStatus = "Stopped"

	// JobStatusCompleted means ffmpeg exited successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job still owns a process
func (js JobStatus) IsActive() bool {
	return js == JobStatusPending || js == JobStatusRunning || js == JobStatusStopping
}

// IsFinished returns true if the job is in a finished state (completed, stopped, or error)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusStopped || js == JobStatusError
}
