package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/invaders/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live audio and window settings.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		MusicVolume: globalMusicVolume,
		SFXVolume:   globalSFXVolume,
		Muted:       globalMuted,
		Fullscreen:  ebiten.IsFullscreen(),
	}
}

// SaveCurrentSettings persists the live settings.
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettings applies loaded settings before the first scene starts.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalMusicVolume = clampVolume(saved.MusicVolume)
	globalSFXVolume = clampVolume(saved.SFXVolume)
	globalMuted = saved.Muted

	ebiten.SetFullscreen(saved.Fullscreen)
}

func clampVolume(v float64) float64 {
	steps := cfg.Settings.VolumeSteps
	if v < steps[0] {
		return steps[0]
	}
	if v > steps[len(steps)-1] {
		return steps[len(steps)-1]
	}
	return v
}
