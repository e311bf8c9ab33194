package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func pad(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: keys(ebiten.KeyLeft, ebiten.KeyA), StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftLeft)},
			ActionMoveRight: {Keys: keys(ebiten.KeyRight, ebiten.KeyD), StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftRight)},
			// A / Cross fires and selects
			ActionFire:       {Keys: keys(ebiten.KeySpace), StandardGamepadButtons: pad(ebiten.StandardGamepadButtonRightBottom)},
			ActionMenuSelect: {Keys: keys(ebiten.KeyEnter), StandardGamepadButtons: pad(ebiten.StandardGamepadButtonRightBottom)},
			// Start / Options
			ActionPause:    {Keys: keys(ebiten.KeyEscape, ebiten.KeyP), StandardGamepadButtons: pad(ebiten.StandardGamepadButtonCenterRight)},
			ActionMenuUp:   {Keys: keys(ebiten.KeyUp, ebiten.KeyW), StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftTop)},
			ActionMenuDown: {Keys: keys(ebiten.KeyDown, ebiten.KeyS), StandardGamepadButtons: pad(ebiten.StandardGamepadButtonLeftBottom)},
			// B / Circle
			ActionMenuBack:    {Keys: keys(ebiten.KeyBackspace), StandardGamepadButtons: pad(ebiten.StandardGamepadButtonRightRight)},
			ActionToggleDebug: {Keys: keys(ebiten.KeyF3)},
		},
	}
}
