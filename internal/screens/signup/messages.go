package signup

// registerDoneMsg is sent when account creation finishes.
type registerDoneMsg struct {
	Err error
}
