package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionWait     // Skip a turn
	ActionInteract // Open adjacent gates and doors (E, Enter, A button)

	// Meta / UI
	ActionHint
	ActionQuit

	// Debug
	ActionDebugMapDump
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "KeyW", "arrow_up", "GamepadDPadUp").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Each RawInput is already debounced by the underlying libraries (Ebiten,
// terminal raw mode); the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	// Wait
	".":     ActionWait,
	"space": ActionWait,

	// Help / hint
	"?": ActionHint,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,
	"gamepad_x":          ActionWait,

	// Interaction (E, Enter, A button)
	"e":         ActionInteract,
	"enter":     ActionInteract,
	"gamepad_a": ActionInteract, // A button / Cross

	"gamepad_b": ActionQuit, // B button / Circle

	// Debug map dump
	"f8": ActionDebugMapDump,
	"%":  ActionDebugMapDump,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

var actionNames = map[Action]string{
	ActionMoveNorth:    "Move North",
	ActionMoveSouth:    "Move South",
	ActionMoveWest:     "Move West",
	ActionMoveEast:     "Move East",
	ActionWait:         "Wait",
	ActionInteract:     "Interact",
	ActionHint:         "Hint",
	ActionQuit:         "Quit",
	ActionDebugMapDump: "Dump Map",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
