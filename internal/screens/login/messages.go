package login

// authDoneMsg is sent when the credential exchange finishes.
type authDoneMsg struct {
	Err error
}
