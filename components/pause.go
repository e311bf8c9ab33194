package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuSound
	MenuQuit
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitRequested  bool
}

var Pause = donburi.NewComponentType[PauseData]()

// DebugData toggles developer overlays.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
