//go:build portaudio

// Package mic binds the speech.Recognizer capability to a PortAudio
// microphone stream. Captured audio is wrapped as WAV and transcribed
// through the voice gateway; recognition ends when the caller stops the
// handle (push-to-talk, one utterance per start).
package mic

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"sync"
	"time"

	pa "github.com/gordonklaus/portaudio"
)

const (
	// SampleRate for microphone input (16kHz for speech).
	SampleRate = 16000
	// FramesPerBuffer is 100ms of audio at 16kHz.
	FramesPerBuffer = 1600
	// MaxUtterance caps a single capture.
	MaxUtterance = 30 * time.Second
)

// Transcriber converts captured audio to text. *api.Client satisfies this.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (string, error)
}

// Recognizer captures one utterance per Start.
type Recognizer struct {
	transcriber Transcriber

	mu      sync.Mutex
	stream  *pa.Stream
	stopped chan struct{}
}

// NewRecognizer initializes PortAudio and returns a Recognizer.
func NewRecognizer(transcriber Transcriber) (*Recognizer, error) {
	if err := pa.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}
	return &Recognizer{transcriber: transcriber}, nil
}

// Start opens the microphone and records until Stop (or the utterance
// cap). The recording is then transcribed and delivered to onResult.
func (r *Recognizer) Start(onResult func(text string)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stream != nil {
		return nil
	}

	in := make([]int16, FramesPerBuffer)
	stream, err := pa.OpenDefaultStream(1, 0, SampleRate, FramesPerBuffer, in)
	if err != nil {
		return fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("start input stream: %w", err)
	}

	r.stream = stream
	r.stopped = make(chan struct{})
	go r.captureLoop(stream, r.stopped, in, onResult)
	return nil
}

// Stop halts recording; transcription of the captured audio follows
// asynchronously and lands in onResult.
func (r *Recognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stream == nil {
		return
	}
	close(r.stopped)
	r.stream = nil
	r.stopped = nil
}

func (r *Recognizer) captureLoop(stream *pa.Stream, stopped chan struct{}, in []int16, onResult func(string)) {
	var pcm []byte
	deadline := time.Now().Add(MaxUtterance)

	for time.Now().Before(deadline) {
		select {
		case <-stopped:
			goto finish
		default:
		}

		if err := stream.Read(); err != nil {
			break
		}
		for _, sample := range in {
			var pair [2]byte
			binary.LittleEndian.PutUint16(pair[:], uint16(sample))
			pcm = append(pcm, pair[0], pair[1])
		}
	}

finish:
	stream.Abort()
	stream.Close()

	// The loop can end on its own (utterance cap or read error), not only
	// through Stop. Release the handle so the next Start opens a fresh
	// stream; skip if Stop already cleared it or a new capture began.
	r.mu.Lock()
	if r.stream == stream {
		r.stream = nil
		r.stopped = nil
	}
	r.mu.Unlock()

	if len(pcm) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	text, err := r.transcriber.Transcribe(ctx, wavEncode(pcm), "audio/wav")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: transcription failed: %v\n", err)
		return
	}
	onResult(text)
}

// wavEncode wraps raw s16le mono PCM in a minimal WAV container.
func wavEncode(pcm []byte) []byte {
	dataLen := uint32(len(pcm))
	buf := make([]byte, 0, 44+len(pcm))

	le32 := func(v uint32) []byte {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		return b[:]
	}
	le16 := func(v uint16) []byte {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], v)
		return b[:]
	}

	buf = append(buf, []byte("RIFF")...)
	buf = append(buf, le32(36+dataLen)...)
	buf = append(buf, []byte("WAVE")...)
	buf = append(buf, []byte("fmt ")...)
	buf = append(buf, le32(16)...)                // PCM chunk size
	buf = append(buf, le16(1)...)                 // PCM format
	buf = append(buf, le16(1)...)                 // mono
	buf = append(buf, le32(SampleRate)...)        // sample rate
	buf = append(buf, le32(SampleRate*2)...)      // byte rate
	buf = append(buf, le16(2)...)                 // block align
	buf = append(buf, le16(16)...)                // bits per sample
	buf = append(buf, []byte("data")...)
	buf = append(buf, le32(dataLen)...)
	buf = append(buf, pcm...)
	return buf
}
