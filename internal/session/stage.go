package session

import "fmt"

// Stage is the application's top-level mode. One authoritative current
// value lives on the Controller; all changes go through the fixed
// transition table below.
type Stage int

const (
	// StageBooting is the transient pre-bootstrap state.
	StageBooting Stage = iota
	StageLogin
	StageSignup
	StageSelect
	StageTutor
	StageProgress
)

func (s Stage) String() string {
	switch s {
	case StageBooting:
		return "booting"
	case StageLogin:
		return "login"
	case StageSignup:
		return "signup"
	case StageSelect:
		return "select"
	case StageTutor:
		return "tutor"
	case StageProgress:
		return "progress"
	}
	return "unknown"
}

// transitions is the full edge set of the stage machine. Logout (any
// stage to login) is handled separately since it is valid everywhere.
var transitions = map[Stage][]Stage{
	StageBooting:  {StageLogin, StageSelect},
	StageLogin:    {StageSelect, StageSignup},
	StageSignup:   {StageLogin, StageSelect},
	StageSelect:   {StageTutor, StageProgress},
	StageTutor:    {StageSelect},
	StageProgress: {StageSelect},
}

// canTransition reports whether from -> to is a legal edge.
func canTransition(from, to Stage) bool {
	if to == StageLogin {
		// Logout or credential invalidation is valid from any stage.
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// mustTransition panics on an illegal edge. An invalid transition is a
// programming error in the caller, not a runtime fault.
func mustTransition(from, to Stage) {
	if !canTransition(from, to) {
		panic(fmt.Sprintf("session: invalid stage transition %s -> %s", from, to))
	}
}
