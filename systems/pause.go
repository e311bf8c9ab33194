package systems

import (
	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE the round is stepped.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := GetOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
			PauseMusic()
		} else {
			ResumeMusic()
		}
	}

	if !pause.IsPaused {
		return
	}

	numOptions := int(components.MenuQuit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
			ResumeMusic()
		case components.MenuSound:
			SetMuted(!IsMuted())
			SaveCurrentSettings()
		case components.MenuQuit:
			pause.IsPaused = false
			pause.QuitRequested = true
			StopMusic()
		}
	}
}

// pauseLabel returns the text shown for a menu option.
func pauseLabel(option components.PauseMenuOption, label string) string {
	if option != components.MenuSound {
		return label
	}
	if IsMuted() {
		return label + ": OFF"
	}
	return label + ": ON"
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Menu.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		label := pauseLabel(components.PauseMenuOption(i), option)
		bounds := text.BoundString(fontFace, label)
		x := int((width - float64(bounds.Dx())) / 2)

		text.Draw(screen, label, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	input := GetOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintBounds := text.BoundString(hintFont, hint)
	hintX := int((width - float64(hintBounds.Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
