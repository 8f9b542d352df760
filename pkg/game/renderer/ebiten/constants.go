package ebiten

import (
	"image/color"

	"dungeoncrawl/pkg/game/renderer"
)

// Color palette for the game
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall          = color.RGBA{180, 180, 200, 255} // Light gray-blue for wall text
	colorWallBg        = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorFloor         = color.RGBA{100, 100, 120, 255}
	colorDoorway       = color.RGBA{255, 255, 0, 255}
	colorItem          = color.RGBA{220, 170, 255, 255}
	colorPortal        = color.RGBA{100, 255, 100, 255}
	colorEnemy         = color.RGBA{255, 80, 80, 255}
	colorRemembered    = color.RGBA{70, 70, 95, 255}
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction        = color.RGBA{180, 150, 250, 255}
	colorDenied        = color.RGBA{255, 100, 100, 255}
	colorPanel         = color.RGBA{30, 30, 50, 220} // Semi-transparent dark
)

// styleColors maps renderer styles onto the palette
var styleColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleNormal:     colorText,
	renderer.StyleFloor:      colorFloor,
	renderer.StyleWall:       colorWall,
	renderer.StyleDoorway:    colorDoorway,
	renderer.StyleItem:       colorItem,
	renderer.StylePortal:     colorPortal,
	renderer.StyleEnemy:      colorEnemy,
	renderer.StylePlayer:     colorPlayer,
	renderer.StyleRemembered: colorRemembered,
	renderer.StyleSubtle:     colorSubtle,
	renderer.StyleDenied:     colorDenied,
	renderer.StyleAction:     colorAction,
}

// Tile size constraints
const (
	defaultTileSize = 24
	minTileSize     = 12
	maxTileSize     = 72
	tileSizeStep    = 4
	baseFontSize    = 16.0 // Base font size at default tile size
)

const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)

// Screen layout, in pixels
const (
	frameBorder  = 10
	statusLines  = 2
	messageLines = 5
)
