package audio

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type fakeSynth struct {
	calls []string
	err   error
}

func (f *fakeSynth) Synthesize(_ context.Context, text string) ([]byte, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("pcm"), nil
}

type fakePlayer struct {
	mu     sync.Mutex
	plays  int
	stops  int
	err    error
	done   func()
	dones  []func()
	loaded bool
}

func (f *fakePlayer) Play(data []byte, done func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.plays++
	f.loaded = true
	f.done = done
	f.dones = append(f.dones, done)
	return nil
}

func (f *fakePlayer) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	f.loaded = false
}

func TestSanitizeStripsEmoji(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Great job! 🎉", "Great job!"},
		{"2 + 2 = 4 :) keep going", "2 + 2 = 4 keep going"},
		{"🎈🎈🎈", ""},
		{"plain text", "plain text"},
		{"well done ⭐ superstar", "well done superstar"},
		{":-) :-(", ""},
		// A stripped glyph can join the halves of an emoticon.
		{":😀)", ""},
		{"Nice :⭐) job", "Nice job"},
	}

	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Great job! 🎉🎉",
		"Keep going :) you rock ⭐",
		"plain",
		"",
		"  spaced   out  ",
		":😀)",
		"Nice :⭐) job",
		"::😀))",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSpeakPlaysSanitizedText(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{}
	p := NewPipeline(synth, player)

	p.Speak(context.Background(), "Nice work! 🎉")

	if len(synth.calls) != 1 || synth.calls[0] != "Nice work!" {
		t.Errorf("expected one synthesis of sanitized text, got %v", synth.calls)
	}
	if player.plays != 1 {
		t.Errorf("expected one playback, got %d", player.plays)
	}
	if !p.Playing() {
		t.Error("expected playing flag set after Play")
	}

	player.done()
	if p.Playing() {
		t.Error("expected playing flag cleared on completion")
	}
}

func TestSpeakSkipsEmptyAfterSanitize(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{}
	p := NewPipeline(synth, player)

	p.Speak(context.Background(), "🎉🎉🎉")

	if len(synth.calls) != 0 {
		t.Errorf("expected no synthesis, got %v", synth.calls)
	}
	if player.plays != 0 {
		t.Errorf("expected no playback, got %d", player.plays)
	}
}

func TestSpeakStopsPriorPlayback(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{}
	p := NewPipeline(synth, player)

	p.Speak(context.Background(), "first")
	p.Speak(context.Background(), "second")

	if player.stops < 1 {
		t.Error("expected prior playback stopped before new one starts")
	}
	if player.plays != 2 {
		t.Errorf("expected two plays, got %d", player.plays)
	}
}

func TestStaleCompletionKeepsNewPlaybackFlag(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{}
	p := NewPipeline(synth, player)

	p.Speak(context.Background(), "first")
	p.Speak(context.Background(), "second")

	// The retired utterance finishing late must not mark the live one done.
	player.dones[0]()
	if !p.Playing() {
		t.Error("expected playing flag still set while second utterance runs")
	}

	player.dones[1]()
	if p.Playing() {
		t.Error("expected playing flag cleared when current utterance completes")
	}
}

func TestSpeakSwallowsSynthesisFailure(t *testing.T) {
	synth := &fakeSynth{err: errors.New("boom")}
	player := &fakePlayer{}
	p := NewPipeline(synth, player)

	p.Speak(context.Background(), "hello")

	if player.plays != 0 {
		t.Error("expected no playback after synthesis failure")
	}
	if p.Playing() {
		t.Error("expected playing flag false after failure")
	}
}

func TestSpeakSwallowsPlaybackFailure(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{err: errors.New("device busy")}
	p := NewPipeline(synth, player)

	p.Speak(context.Background(), "hello")

	if p.Playing() {
		t.Error("expected playing flag false after playback failure")
	}
}

func TestNilPlayerIsNoop(t *testing.T) {
	synth := &fakeSynth{}
	p := NewPipeline(synth, nil)

	p.Speak(context.Background(), "hello")
	p.Stop()

	if len(synth.calls) != 0 {
		t.Error("expected no synthesis without a playback capability")
	}
}
