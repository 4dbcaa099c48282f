// Package audio turns tutor text into spoken playback. Playback is
// exclusive: starting a new utterance first retires any in-progress one.
package audio

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// Synthesizer requests synthesized speech for text.
// *api.Client satisfies this.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Player is the platform playback capability. One concrete adapter binds
// it to the actual audio device; tests use a double.
type Player interface {
	// Play starts playback of an audio byte stream, returning once
	// playback has started. done runs on natural completion.
	Play(data []byte, done func()) error

	// Stop halts playback and releases the loaded audio. Safe to call
	// when nothing is playing.
	Stop()
}

// Pipeline sanitizes tutor text, fetches synthesized audio, and plays it.
// Spoken feedback is best-effort: every failure is swallowed here.
type Pipeline struct {
	tts    Synthesizer
	player Player

	mu      sync.Mutex
	playing bool
	gen     uint64
}

// NewPipeline creates a Pipeline. player may be nil when the platform
// offers no playback capability; Speak then becomes a no-op.
func NewPipeline(tts Synthesizer, player Player) *Pipeline {
	return &Pipeline{tts: tts, player: player}
}

// Speak sanitizes text and, if anything speakable remains, synthesizes
// and plays it. Any prior playback is stopped first so two streams never
// overlap. Errors surface nowhere beyond a stderr warning.
func (p *Pipeline) Speak(ctx context.Context, text string) {
	if p.player == nil {
		return
	}

	clean := Sanitize(text)
	if clean == "" {
		return
	}

	data, err := p.tts.Synthesize(ctx, clean)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: speech synthesis failed: %v\n", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.player.Stop()
	p.playing = true
	p.gen++
	gen := p.gen
	if err := p.player.Play(data, func() { p.playbackDone(gen) }); err != nil {
		p.playing = false
		fmt.Fprintf(os.Stderr, "warning: audio playback failed: %v\n", err)
	}
}

// Stop halts any in-progress playback.
func (p *Pipeline) Stop() {
	if p.player == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.player.Stop()
	p.playing = false
}

// Playing reports whether an utterance is currently being spoken.
func (p *Pipeline) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// playbackDone clears the playing flag on natural completion. A retired
// utterance's completion can arrive after a newer Speak; only the
// current generation may clear the flag.
func (p *Pipeline) playbackDone(gen uint64) {
	p.mu.Lock()
	if gen == p.gen {
		p.playing = false
	}
	p.mu.Unlock()
}
