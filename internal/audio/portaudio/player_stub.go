//go:build !portaudio

package portaudio

import "errors"

// ErrUnavailable reports that the binary was built without the
// portaudio tag, so no playback capability exists on this platform.
var ErrUnavailable = errors.New("audio playback unavailable: built without portaudio support")

// Player is a placeholder when PortAudio is compiled out.
type Player struct{}

// NewPlayer reports the missing capability. Callers treat this as
// non-fatal and run without spoken feedback.
func NewPlayer() (*Player, error) {
	return nil, ErrUnavailable
}

func (p *Player) Play(data []byte, done func()) error { return ErrUnavailable }

func (p *Player) Stop() {}

func (p *Player) Close() error { return nil }
