package tutor

import "time"

// convoReadyMsg is sent once the greeting turn has been recorded.
type convoReadyMsg struct{}

// sendDoneMsg is sent when a lesson exchange settles. Tutor failures
// resolve inside the thread; Err carries only local rejections.
type sendDoneMsg struct {
	Err error
}

// ratedMsg is sent when a feedback submission finishes.
type ratedMsg struct {
	Value int
	Err   error
}

// tickMsg drives the thinking animation and the voice transcript poll.
type tickMsg time.Time
