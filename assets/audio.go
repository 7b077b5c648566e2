package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	cfg "github.com/automoto/blutti/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var ErrUnknownSound = errors.New("unknown sound")

// bytesPerFrame is one 16-bit stereo sample, the format audio.Context players read.
const bytesPerFrame = 4

// Synthesize renders a square wave sweeping linearly from StartHz to EndHz,
// with a short linear fade out so the cut does not click.
func Synthesize(t cfg.Tone, sampleRate int) []byte {
	frames := sampleRate * t.DurationMs / 1000
	out := make([]byte, frames*bytesPerFrame)
	fade := frames / 8

	phase := 0.0
	for i := range frames {
		progress := float64(i) / float64(max(frames, 1))
		hz := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += hz / float64(sampleRate)
		phase -= math.Floor(phase)

		v := t.Volume
		if phase >= 0.5 {
			v = -v
		}
		if left := frames - i; left < fade {
			v *= float64(left) / float64(fade)
		}
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(s))
	}
	return out
}

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

func (l *AudioLoader) sampleRate() int {
	if l.context == nil {
		return cfg.Audio.SampleRate
	}
	return l.context.SampleRate()
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// PreloadAll renders every configured sound.
func (l *AudioLoader) PreloadAll() error {
	var errs []error
	for id := range cfg.Sound.Tones {
		errs = append(errs, l.PreloadSFX(id))
	}
	return errors.Join(errs...)
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSound, id)
	}
	data := Synthesize(tone, l.sampleRate())
	l.sfxCache[id] = data
	return data, nil
}

// LoadSFX returns a new player over the cached samples each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}
