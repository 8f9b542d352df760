package renderer

import (
	"dungeoncrawl/pkg/engine/input"
	"dungeoncrawl/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleWall
	StyleDoorway
	StyleItem
	StylePortal
	StyleEnemy
	StylePlayer
	StyleRemembered // seen earlier but not currently lit
	StyleSubtle
	StyleDenied
	StyleAction
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame
	// This includes the map, status bar and messages
	RenderFrame(g *state.Game)

	// GetInput blocks until the player does something and returns it as an Intent
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets the next intent from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionNone}
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 15, 30 // sensible defaults
}
