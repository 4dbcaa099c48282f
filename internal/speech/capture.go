// Package speech wraps a platform voice-recognition capability behind a
// start/stop/transcript contract for dictating tutor replies.
package speech

import (
	"errors"
	"sync"
)

// ErrUnavailable reports that the running platform offers no voice
// recognition. The feature is disabled for the service instance; there
// is no fallback implementation.
var ErrUnavailable = errors.New("voice recognition is not available on this system")

// Recognizer is the platform recognition capability. Start begins
// listening for a single utterance and delivers the recognized text to
// onResult; Stop halts listening. One concrete adapter binds this to
// the actual platform, tests use a double.
type Recognizer interface {
	Start(onResult func(text string)) error
	Stop()
}

// RecognizerFactory creates the platform recognizer. It is invoked
// lazily, at most once per CaptureService instance.
type RecognizerFactory func() (Recognizer, error)

// CaptureService owns one recognition handle, created on first Start
// and reused thereafter. Whatever owns a CaptureService must guarantee
// Stop runs on teardown, on every exit path.
type CaptureService struct {
	factory RecognizerFactory

	mu          sync.Mutex
	rec         Recognizer
	transcript  string
	listening   bool
	unavailable bool
}

// NewCaptureService creates a CaptureService around factory.
func NewCaptureService(factory RecognizerFactory) *CaptureService {
	return &CaptureService{factory: factory}
}

// Start begins listening for one utterance in single-utterance mode.
// The recognition handle is created on the first call and reused on
// later ones. Returns ErrUnavailable when the platform offers no
// recognition capability.
func (s *CaptureService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unavailable {
		return ErrUnavailable
	}
	if s.listening {
		return nil
	}

	if s.rec == nil {
		rec, err := s.factory()
		if err != nil {
			s.unavailable = true
			return ErrUnavailable
		}
		s.rec = rec
	}

	if err := s.rec.Start(s.onResult); err != nil {
		return err
	}
	s.listening = true
	return nil
}

// Stop halts the active recognition handle. Safe to call when not
// listening.
func (s *CaptureService) Stop() {
	s.mu.Lock()
	rec, listening := s.rec, s.listening
	s.listening = false
	s.mu.Unlock()

	if rec != nil && listening {
		rec.Stop()
	}
}

// Transcript returns the most recently recognized utterance.
func (s *CaptureService) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript
}

// SetTranscript overrides the transcript, typically to clear it after a
// send consumes it.
func (s *CaptureService) SetTranscript(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = text
}

// Listening reports whether the microphone is live.
func (s *CaptureService) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listening
}

// onResult overwrites the transcript with the recognized utterance.
// Recognition is single-utterance, so listening ends here.
func (s *CaptureService) onResult(text string) {
	s.mu.Lock()
	s.transcript = text
	s.listening = false
	s.mu.Unlock()
}
