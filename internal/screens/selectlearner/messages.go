package selectlearner

import "github.com/abhisek/learnpal/internal/api"

// learnersLoadedMsg is sent when the learner roster fetch finishes.
type learnersLoadedMsg struct {
	Learners []api.Learner
	Err      error
}

// learnerCreatedMsg is sent when the add-learner call finishes.
type learnerCreatedMsg struct {
	Learner *api.Learner
	Err     error
}
