package speech

import (
	"errors"
	"testing"
)

type fakeRecognizer struct {
	starts   int
	stops    int
	startErr error
	onResult func(string)
}

func (f *fakeRecognizer) Start(onResult func(string)) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.starts++
	f.onResult = onResult
	return nil
}

func (f *fakeRecognizer) Stop() { f.stops++ }

func TestStartCreatesHandleOnce(t *testing.T) {
	rec := &fakeRecognizer{}
	created := 0
	svc := NewCaptureService(func() (Recognizer, error) {
		created++
		return rec, nil
	})

	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	svc.Stop()
	if err := svc.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}

	if created != 1 {
		t.Errorf("expected one recognizer creation, got %d", created)
	}
	if rec.starts != 2 {
		t.Errorf("expected handle reused across starts, got %d starts", rec.starts)
	}
}

func TestStartWhileListeningIsNoop(t *testing.T) {
	rec := &fakeRecognizer{}
	svc := NewCaptureService(func() (Recognizer, error) { return rec, nil })

	svc.Start()
	svc.Start()

	if rec.starts != 1 {
		t.Errorf("expected one underlying start, got %d", rec.starts)
	}
	if !svc.Listening() {
		t.Error("expected listening")
	}
}

func TestResultOverwritesTranscriptAndEndsListening(t *testing.T) {
	rec := &fakeRecognizer{}
	svc := NewCaptureService(func() (Recognizer, error) { return rec, nil })

	svc.SetTranscript("stale")
	svc.Start()
	rec.onResult("what is a noun")

	if got := svc.Transcript(); got != "what is a noun" {
		t.Errorf("expected transcript overwritten, got %q", got)
	}
	if svc.Listening() {
		t.Error("expected listening to end after single utterance")
	}
}

func TestRestartAfterCaptureFinishesOnItsOwn(t *testing.T) {
	rec := &fakeRecognizer{}
	svc := NewCaptureService(func() (Recognizer, error) { return rec, nil })

	// A capture can end without Stop (utterance length cap, device
	// error); the next Start must reach the recognizer again.
	svc.Start()
	rec.onResult("thirty seconds of talking")
	svc.Stop()

	if err := svc.Start(); err != nil {
		t.Fatalf("Start after natural finish: %v", err)
	}
	if rec.starts != 2 {
		t.Errorf("expected recognizer restarted, got %d starts", rec.starts)
	}
	if !svc.Listening() {
		t.Error("expected listening after restart")
	}
}

func TestStopWhenNotListeningIsSafe(t *testing.T) {
	rec := &fakeRecognizer{}
	svc := NewCaptureService(func() (Recognizer, error) { return rec, nil })

	svc.Stop() // before any start, no handle yet

	svc.Start()
	svc.Stop()
	svc.Stop()

	if rec.stops != 1 {
		t.Errorf("expected one underlying stop, got %d", rec.stops)
	}
}

func TestUnavailableCapability(t *testing.T) {
	calls := 0
	svc := NewCaptureService(func() (Recognizer, error) {
		calls++
		return nil, errors.New("no microphone")
	})

	if err := svc.Start(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	// Feature stays disabled for this instance; the factory is not retried.
	if err := svc.Start(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on retry, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected factory invoked once, got %d", calls)
	}
}

func TestSetTranscriptClearsAfterSend(t *testing.T) {
	svc := NewCaptureService(func() (Recognizer, error) { return &fakeRecognizer{}, nil })
	svc.SetTranscript("2+2=4")
	svc.SetTranscript("")
	if svc.Transcript() != "" {
		t.Error("expected cleared transcript")
	}
}
