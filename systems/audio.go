package systems

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/invaders/assets"
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and decodes every sound effect from
// fsys. Missing files are logged and then stay silent.
func InitAudio(fsys fs.FS) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
	})

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: Could not load sound effect: %v", err)
		}
	}
}

// UpdateAudio plays queued SFX and manages the music fade.
func UpdateAudio(e *ecs.ECS) {
	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 {
			StopMusic()
		}
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalAudioLoader == nil || globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

func musicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume * cfg.Sound.MusicVolume
}

// PlayMusic starts looping the track at path unless it is already playing.
func PlayMusic(path string) {
	if globalAudioLoader == nil || globalMusicKey == path {
		return
	}
	StopMusic()

	player, err := globalAudioLoader.LoadMusic(path)
	if err != nil {
		log.Printf("Warning: Could not play music: %v", err)
		return
	}

	player.SetVolume(musicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = path
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic() {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = musicVolume()
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFadeTimer = 0
}

// PauseMusic pauses the current music playback
func PauseMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// SetMuted silences or restores all audio.
func SetMuted(muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

// IsMuted reports whether audio is silenced.
func IsMuted() bool {
	return globalMuted
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// PlaySFX queues a sound effect on the world. Nothing is played until
// UpdateAudio drains the queue.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// DrainSFX returns and clears the world's queued sound effects.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) == 0 {
		return nil
	}
	out := make([]cfg.SoundID, len(audioData.PendingSFX))
	copy(out, audioData.PendingSFX)
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return out
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
