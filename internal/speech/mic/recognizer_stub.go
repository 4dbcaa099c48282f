//go:build !portaudio

package mic

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the binary was built without the
// portaudio tag, so no microphone capture exists on this platform.
var ErrUnavailable = errors.New("voice capture unavailable: built without portaudio support")

// Transcriber converts captured audio to text. *api.Client satisfies this.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (string, error)
}

// Recognizer is a placeholder when PortAudio is compiled out.
type Recognizer struct{}

// NewRecognizer reports the missing capability; the speech feature is
// then disabled with a one-time notice.
func NewRecognizer(transcriber Transcriber) (*Recognizer, error) {
	return nil, ErrUnavailable
}

func (r *Recognizer) Start(onResult func(text string)) error { return ErrUnavailable }

func (r *Recognizer) Stop() {}
