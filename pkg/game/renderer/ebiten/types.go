// Package ebiten provides an Ebiten-based 2D graphical renderer for the dungeon.
package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "dungeoncrawl/pkg/engine/input"
)

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// tile is one drawn map cell in a frame
type tile struct {
	glyph string
	fg    color.RGBA
	wall  bool // drawn on the wall background
}

// frame is a copy of everything Draw needs, taken by RenderFrame on the
// game goroutine so Draw never touches live game state.
type frame struct {
	valid    bool
	title    string
	status   []string
	messages []string
	rows     int
	cols     int
	tiles    []tile // rows*cols, row major
	over     bool
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Viewport dimensions (in tiles) - recalculated based on window and tile size
	viewportRows int
	viewportCols int
	viewportMu   sync.RWMutex

	// Font source and cached faces (recreated when tile size changes)
	monoFontSource     *text.GoTextFaceSource
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedTileFace     *text.GoTextFace
	cachedUIFace       *text.GoTextFace

	// Latest frame built by RenderFrame
	frame      frame
	frameMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Closed by Stop, makes Update end the Ebiten loop
	done     chan struct{}
	stopOnce sync.Once

	// Key repeat state tracking
	// Maps key/button codes to their repeat state
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex
}
