package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPlayerFire
	SoundEnemyFire
	SoundExplosion
)

func (s SoundID) String() string {
	switch s {
	case SoundPlayerFire:
		return "player_fire"
	case SoundEnemyFire:
		return "enemy_fire"
	case SoundExplosion:
		return "explosion"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Music             string
	MusicVolume       float64 // multiplier applied on top of the music volume setting
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   1.0,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	// Player and enemy shots share one sample at different volumes.
	Sound = SoundConfig{
		Music:       "music.wav",
		MusicVolume: 0.2,
		SFXPaths: map[SoundID]string{
			SoundPlayerFire: "bullet.wav",
			SoundEnemyFire:  "bullet.wav",
			SoundExplosion:  "explosion.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundPlayerFire: 0.5,
			SoundEnemyFire:  0.1,
			SoundExplosion:  0.3,
		},
	}
}
