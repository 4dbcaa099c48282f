//go:build portaudio

// Package portaudio binds the audio.Player capability to a real output
// device via PortAudio. Audio is 16-bit little-endian mono PCM at 24kHz,
// the stream format the voice gateway synthesizes.
package portaudio

import (
	"encoding/binary"
	"fmt"
	"sync"

	pa "github.com/gordonklaus/portaudio"
)

const (
	// SampleRate for synthesized speech output.
	SampleRate = 24000
	// FramesPerBuffer is 40ms of audio at 24kHz.
	FramesPerBuffer = 960
)

// Player owns one output stream at a time.
type Player struct {
	mu      sync.Mutex
	stream  *pa.Stream
	stopped chan struct{}
}

// NewPlayer initializes PortAudio and returns a Player.
func NewPlayer() (*Player, error) {
	if err := pa.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}
	return &Player{}, nil
}

// Play starts playback of a PCM byte stream. Any prior stream must have
// been stopped by the caller; Play itself retires a leftover stream
// defensively rather than let two overlap.
func (p *Player) Play(data []byte, done func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.retireLocked()

	out := make([]int16, FramesPerBuffer)
	stream, err := pa.OpenDefaultStream(0, 1, SampleRate, FramesPerBuffer, out)
	if err != nil {
		return fmt.Errorf("open output stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("start output stream: %w", err)
	}

	p.stream = stream
	p.stopped = make(chan struct{})
	go p.feed(stream, p.stopped, data, out, done)
	return nil
}

// Stop halts playback and releases the loaded stream. No-op when
// nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.retireLocked()
}

// Close releases the player and terminates PortAudio.
func (p *Player) Close() error {
	p.Stop()
	return pa.Terminate()
}

func (p *Player) retireLocked() {
	if p.stream == nil {
		return
	}
	close(p.stopped)
	p.stream.Abort()
	p.stream.Close()
	p.stream = nil
	p.stopped = nil
}

func (p *Player) feed(stream *pa.Stream, stopped chan struct{}, data []byte, out []int16, done func()) {
	defer func() {
		select {
		case <-stopped:
			// Explicitly stopped; the retirer owns cleanup and no
			// completion callback fires.
		default:
			p.mu.Lock()
			if p.stream == stream {
				p.stream.Close()
				p.stream = nil
				p.stopped = nil
			}
			p.mu.Unlock()
			done()
		}
	}()

	for off := 0; off+1 < len(data); {
		select {
		case <-stopped:
			return
		default:
		}

		n := 0
		for ; n < len(out) && off+1 < len(data); n++ {
			out[n] = int16(binary.LittleEndian.Uint16(data[off:]))
			off += 2
		}
		for ; n < len(out); n++ {
			out[n] = 0
		}

		if err := stream.Write(); err != nil {
			return
		}
	}
}
