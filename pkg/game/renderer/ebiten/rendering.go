package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
)

// Draw renders the latest frame to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.monoFontSource == nil {
		// Can't draw anything without fonts
		return
	}

	e.frameMutex.RLock()
	f := e.frame
	e.frameMutex.RUnlock()

	if !f.valid {
		return
	}

	lineHeight := e.uiLineHeight()
	screenWidth := screen.Bounds().Dx()

	// Title
	e.drawText(screen, f.title, frameBorder, frameBorder, colorAction)

	// Map, centred horizontally under the title
	mapY := frameBorder*2 + lineHeight
	mapW := f.cols * e.tileSize
	mapH := f.rows * e.tileSize
	mapX := max((screenWidth-mapW)/2, frameBorder)
	e.drawMap(screen, f, mapX, mapY)

	// Status bar and messages below the map
	y := mapY + mapH + frameBorder
	e.drawStatusBar(screen, f, y, lineHeight)
	e.drawMessages(screen, f, y+statusLines*lineHeight+frameBorder, lineHeight, screenWidth)

	if f.over {
		e.drawGameOver(screen, mapX, mapY, mapW, mapH)
	}
}

// drawMap draws every tile of the frame
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, f frame, mapX, mapY int) {
	vector.DrawFilledRect(screen, float32(mapX), float32(mapY),
		float32(f.cols*e.tileSize), float32(f.rows*e.tileSize), colorMapBackground, false)

	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			t := f.tiles[row*f.cols+col]
			e.drawTile(screen, t, mapX+col*e.tileSize, mapY+row*e.tileSize)
		}
	}
}

// drawTile draws a single tile, with a block background for walls
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, t tile, x, y int) {
	// Skip completely empty/void tiles
	if t.glyph == " " || t.glyph == "" {
		return
	}

	if t.wall {
		// Draw background with small margin inside the tile
		margin := float32(2)
		vector.DrawFilledRect(screen, float32(x)+margin, float32(y)+margin,
			float32(e.tileSize)-margin*2, float32(e.tileSize)-margin*2,
			colorWallBg, false)
	}

	face := e.getTileFace()
	w, h := text.Measure(t.glyph, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+(float64(e.tileSize)-w)/2, float64(y)+(float64(e.tileSize)-h)/2)
	op.ColorScale.ScaleWithColor(t.fg)
	text.Draw(screen, t.glyph, face, op)
}

// drawStatusBar draws the player's stats
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, f frame, y, lineHeight int) {
	for i, line := range f.status {
		e.drawText(screen, line, frameBorder, y+i*lineHeight, colorText)
	}
}

// drawMessages draws the message log on a panel, newest last
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, f frame, y, lineHeight, screenWidth int) {
	panelHeight := messageLines*lineHeight + frameBorder
	vector.DrawFilledRect(screen, float32(frameBorder/2), float32(y-frameBorder/2),
		float32(screenWidth-frameBorder), float32(panelHeight), colorPanel, false)

	if len(f.messages) == 0 {
		e.drawText(screen, gotext.Get("(no messages)"), frameBorder, y, colorSubtle)
		return
	}

	for i, msg := range f.messages {
		c := colorSubtle
		if i == len(f.messages)-1 {
			c = colorText
		}
		e.drawText(screen, msg, frameBorder, y+i*lineHeight, c)
	}
}

// drawGameOver dims the map and writes the death notice across it
func (e *EbitenRenderer) drawGameOver(screen *ebiten.Image, mapX, mapY, mapW, mapH int) {
	vector.DrawFilledRect(screen, float32(mapX), float32(mapY), float32(mapW), float32(mapH),
		color.RGBA{0, 0, 0, 160}, false)

	msg := gotext.Get("You have died. Press Q to quit.")
	w, _ := text.Measure(msg, e.getUIFace(), 0)
	e.drawText(screen, msg, mapX+(mapW-int(w))/2, mapY+mapH/2, colorDenied)
}

// drawText draws one line of UI text with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, e.getUIFace(), op)
}
