package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "dungeoncrawl/pkg/engine/input"
)

// repeatKeys are movement keys that repeat while held, with the binding
// code each one produces
var repeatKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyPeriod, "."},
	{ebiten.KeySpace, "space"},
}

// pressKeys trigger once per press
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyE, "e"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyKPEnter, "enter"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF8, "f8"},
}

// Update handles input (Ebiten interface). Intents are handed to the game
// loop through inputChan.
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.done:
		return ebiten.Termination
	default:
	}

	e.handleZoom()

	// Check for gamepad input first, then fall back to keyboard (raw layer)
	intent := e.checkGamepadInput()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}
	if intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}

	return nil
}

// handleZoom handles =/- for font/tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		if e.tileSize < maxTileSize {
			e.tileSize += tileSizeStep
			e.recalculateViewport()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		if e.tileSize > minTileSize {
			e.tileSize -= tileSizeStep
			e.recalculateViewport()
		}
	case inpututil.IsKeyJustPressed(ebiten.Key0):
		e.tileSize = defaultTileSize
		e.recalculateViewport()
	}
}

// uiLineHeight is the pixel height of one line of UI text
func (e *EbitenRenderer) uiLineHeight() int {
	return int(e.getUIFontSize()*1.4) + 1
}

// recalculateViewport recalculates viewport dimensions based on current window and tile size
func (e *EbitenRenderer) recalculateViewport() {
	e.invalidateFontCache()

	// Title above the map; status and messages below it
	reserved := (1+statusLines+messageLines)*e.uiLineHeight() + frameBorder*4
	cols := max((e.windowWidth-frameBorder*2)/e.tileSize, 15)
	rows := max((e.windowHeight-reserved)/e.tileSize, 11)

	// Keep odd numbers for centering
	if cols%2 == 0 {
		cols--
	}
	if rows%2 == 0 {
		rows--
	}

	e.viewportMu.Lock()
	e.viewportRows, e.viewportCols = rows, cols
	e.viewportMu.Unlock()
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
// Returns true if the key should trigger, false otherwise
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]

	if !isPressed() {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	// Key is held - repeat once the initial delay has passed
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

func keyboardIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

func gamepadIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceGamepad,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// checkGamepadInput checks for controller input on standard-layout gamepads
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	dpad := []struct {
		button ebiten.StandardGamepadButton
		code   string
	}{
		{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
		{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
		{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
		{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	}
	face := []struct {
		button ebiten.StandardGamepadButton
		code   string
	}{
		{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
		{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
		{ebiten.StandardGamepadButtonRightLeft, "gamepad_x"},
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, d := range dpad {
			pressed := func() bool { return ebiten.IsStandardGamepadButtonPressed(id, d.button) }
			if e.shouldRepeatKey(pressed, fmt.Sprintf("gamepad_%d_%s", id, d.code)) {
				return gamepadIntent(d.code)
			}
		}
		for _, f := range face {
			if inpututil.IsStandardGamepadButtonJustPressed(id, f.button) {
				return gamepadIntent(f.code)
			}
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range repeatKeys {
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(k.key) }, "key_"+k.code) {
			return keyboardIntent(k.code)
		}
	}

	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return keyboardIntent(k.code)
		}
	}

	// Help
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return keyboardIntent("?")
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Recalculate viewport when window size changes
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.recalculateViewport()
	}
	return outsideWidth, outsideHeight
}
