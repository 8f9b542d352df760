package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts parses the embedded Go Mono font
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("loading mono font: %w", err)
	}
	e.monoFontSource = src
	return nil
}

// getTileFontSize returns the font size for map tiles, scaled to the current tile size
func (e *EbitenRenderer) getTileFontSize() float64 {
	return baseFontSize * float64(e.tileSize) / defaultTileSize
}

// getUIFontSize returns the font size for UI text
func (e *EbitenRenderer) getUIFontSize() float64 {
	return max(e.getTileFontSize()*0.75, 10)
}

// getTileFace returns a cached font face for map tiles
func (e *EbitenRenderer) getTileFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedTileFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedTileFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedTileFace
}

// getUIFace returns a cached font face for the status bar and messages
func (e *EbitenRenderer) getUIFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedUIFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}

// invalidateFontCache clears cached font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedTileFace = nil
	e.cachedUIFace = nil
}
