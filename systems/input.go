package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid per-frame allocations
var (
	gamepadIDs  []ebiten.GamepadID
	justPressed []ebiten.Key
)

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	_, existed := components.Input.First(ecs.World)
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}

	// "Any key" covers unbound keys too, so poll the raw key list.
	justPressed = inpututil.AppendJustPressedKeys(justPressed[:0])
	input.AnyJustPressed = len(justPressed) > 0
	for _, gpID := range gamepadIDs {
		if anyPadButtonJustPressed(gpID) {
			input.AnyJustPressed = true
			gamepadUsed = true
		}
	}

	// Keys still held from the previous scene must not count as presses here.
	if !existed {
		input.Previous = input.Current
		input.AnyJustPressed = false
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

func anyPadButtonJustPressed(gpID ebiten.GamepadID) bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return false
	}
	for btn := ebiten.StandardGamepadButton(0); btn <= ebiten.StandardGamepadButtonMax; btn++ {
		if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
			return true
		}
	}
	return false
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
