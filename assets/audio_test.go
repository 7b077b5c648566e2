package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/blutti/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLength(t *testing.T) {
	tone := cfg.Tone{StartHz: 440, EndHz: 440, DurationMs: 100, Volume: 0.5}
	pcm := Synthesize(tone, 44100)
	assert.Len(t, pcm, 4410*bytesPerFrame)
}

func TestSynthesizeSquareWave(t *testing.T) {
	tone := cfg.Tone{StartHz: 1000, EndHz: 1000, DurationMs: 50, Volume: 0.5}
	pcm := Synthesize(tone, 8000)

	sample := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(pcm[i*bytesPerFrame:]))
	}
	peak := int16(16383) // 0.5 * MaxInt16, truncated

	// 8 frames per period: high for the first half, low for the second.
	assert.Equal(t, peak, sample(0))
	assert.Equal(t, peak, sample(2))
	assert.Equal(t, -peak, sample(4))
	assert.Equal(t, -peak, sample(6))

	// Both channels carry the same sample.
	assert.Equal(t, pcm[0:2], pcm[2:4])

	// The tail fades out.
	last := len(pcm)/bytesPerFrame - 1
	assert.Less(t, abs(sample(last)), peak/4)
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func TestAudioLoaderCache(t *testing.T) {
	l := NewAudioLoader(nil)
	require.NoError(t, l.PreloadAll())
	assert.Len(t, l.sfxCache, len(cfg.Sound.Tones))

	first, err := l.pcm(cfg.SoundJump)
	require.NoError(t, err)
	again, err := l.pcm(cfg.SoundJump)
	require.NoError(t, err)
	assert.Same(t, &first[0], &again[0])

	_, err = l.pcm(cfg.SoundNone)
	assert.ErrorIs(t, err, ErrUnknownSound)
}
