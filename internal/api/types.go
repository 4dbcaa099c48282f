package api

// User is the authenticated guardian record returned by /me.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Learner is a child profile owned by the remote service.
// The client holds read-only copies.
type Learner struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	DOB  string `json:"dob"` // YYYY-MM, year and month only for privacy
}

// Registration is the signup payload.
type Registration struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	TenantName string `json:"tenant_name"`
}

// LessonReply is the tutor's answer to one user message.
// The canonical reply field is "content"; latency_ms is the
// server-measured model latency and may be absent.
type LessonReply struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	LatencyMs int64  `json:"latency_ms"`
}

// ConceptStat is per-concept mastery: correct answers out of attempts.
type ConceptStat struct {
	Correct  int `json:"correct"`
	Attempts int `json:"attempts"`
}

// ProgressReport maps concept label to its stat.
type ProgressReport map[string]ConceptStat

// tokenResponse is the body of both auth endpoints.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Transcription is the speech-to-text result for an audio upload.
type Transcription struct {
	Text string `json:"text"`
}
