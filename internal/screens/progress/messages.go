package progress

import "github.com/abhisek/learnpal/internal/api"

// reportLoadedMsg is sent when the progress fetch finishes.
type reportLoadedMsg struct {
	Report api.ProgressReport
	Err    error
}
