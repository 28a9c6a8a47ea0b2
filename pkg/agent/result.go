package agent

// SubtaskResult is the scheduler's record of one dispatched (or skipped)
// subtask. Tool failures land here rather than propagating as errors; the
// scheduler decides whether to route around them or re-plan.
type SubtaskResult struct {
	SubtaskID   string         `json:"subtaskId"`
	Tool        string         `json:"tool"`
	Description string         `json:"description"`
	Success     bool           `json:"success"`
	Skipped     bool           `json:"skipped,omitempty"`
	TimedOut    bool           `json:"timedOut,omitempty"`
	Retryable   bool           `json:"retryable,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	Message     string         `json:"message,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// RunResult is the terminal outcome of one agent run.
type RunResult struct {
	FinalResponse string                    `json:"finalResponse"`
	Finished      bool                      `json:"finished"`
	Loops         int                       `json:"loops"`
	Replanned     bool                      `json:"replanned"`
	Results       map[string]*SubtaskResult `json:"results"`
}
