package systems

import (
	"strings"

	"github.com/automoto/invaders/components"
	cfg "github.com/automoto/invaders/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	gamepadIDs          []ebiten.GamepadID
	controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)
)

// stick is the left analog stick folded into four directions.
type stick struct {
	left, right, up, down bool
	gamepad               ebiten.GamepadID
}

func (s stick) active() bool {
	return s.left || s.right || s.up || s.down
}

// UpdateInput polls keyboard and gamepads into the Input singleton.
// It runs before anything reads actions in the same frame.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	keyboardUsed, padUsed, pad := pollBindings(input)

	s := readStick(gamepadIDs)
	if s.active() {
		input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || s.left
		input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || s.right
		input.Current[cfg.ActionMenuUp] = input.Current[cfg.ActionMenuUp] || s.up
		input.Current[cfg.ActionMenuDown] = input.Current[cfg.ActionMenuDown] || s.down
		padUsed, pad = true, s.gamepad
	}

	switch {
	case padUsed:
		input.LastInputMethod = getControllerType(pad)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollBindings sets every bound action that is held and reports which
// device kinds were used.
func pollBindings(input *components.InputData) (keyboard, pad bool, lastPad ebiten.GamepadID) {
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboard = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					pad, lastPad = true, gpID
				}
			}
		}
	}
	return keyboard, pad, lastPad
}

func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	method := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(gpID))
	for _, marker := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, marker) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[gpID] = method
	return method
}

func readStick(gamepads []ebiten.GamepadID) stick {
	var s stick
	dz := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -dz || h > dz || v < -dz || v > dz {
			s.gamepad = gpID
		}
		s.left = s.left || h < -dz
		s.right = s.right || h > dz
		s.up = s.up || v < -dz
		s.down = s.down || v > dz
	}
	return s
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the action's edge state from the last two frames.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ControlFromInput maps the held gameplay actions to the round's control state.
func ControlFromInput(input *components.InputData) components.ControlData {
	return components.ControlData{
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
		Fire:  GetAction(input, cfg.ActionFire).Pressed,
	}
}
