package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDash
	SoundCoin
	SoundPowerup
	SoundWrong
	SoundExit
	SoundDeath
)

var soundNames = [...]string{
	SoundNone:    "none",
	SoundJump:    "sound_jump",
	SoundDash:    "sound_dash",
	SoundCoin:    "sound_coin",
	SoundPowerup: "sound_powerup",
	SoundWrong:   "sound_wrong",
	SoundExit:    "sound_exit",
	SoundDeath:   "sound_death",
}

func (s SoundID) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// Tone is a short synthesized square wave sweep.
type Tone struct {
	StartHz    float64
	EndHz      float64
	DurationMs int
	Volume     float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var (
	Audio AudioConfig
	Sound SoundConfig
)

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:    {StartHz: 320, EndHz: 640, DurationMs: 90, Volume: 0.6},
			SoundDash:    {StartHz: 900, EndHz: 300, DurationMs: 120, Volume: 0.5},
			SoundCoin:    {StartHz: 990, EndHz: 1320, DurationMs: 80, Volume: 0.5},
			SoundPowerup: {StartHz: 440, EndHz: 1760, DurationMs: 260, Volume: 0.6},
			SoundWrong:   {StartHz: 180, EndHz: 140, DurationMs: 180, Volume: 0.6},
			SoundExit:    {StartHz: 660, EndHz: 1980, DurationMs: 400, Volume: 0.6},
			SoundDeath:   {StartHz: 600, EndHz: 80, DurationMs: 450, Volume: 0.7},
		},
	}
}
