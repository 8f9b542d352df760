package ebiten

import (
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "dungeoncrawl/pkg/engine/input"
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/renderer"
	"dungeoncrawl/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    1024,
		windowHeight:   768,
		tileSize:       defaultTileSize,
		viewportRows:   21,
		viewportCols:   35,
		inputChan:      make(chan engineinput.Intent, 10),
		done:           make(chan struct{}),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init initializes the Ebiten renderer: window and fonts
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Dungeon Crawl"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := e.loadFonts(); err != nil {
		slog.Error("Font setup failed", "err", err)
	}
}

// Run starts the Ebiten game loop. It must be called from the main
// goroutine and returns once the window closes or Stop is called.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// Stop ends the Ebiten loop at the next Update
func (e *EbitenRenderer) Stop() {
	e.stopOnce.Do(func() { close(e.done) })
}

// Clear does nothing; each RenderFrame replaces the whole frame
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces an intent. Once the renderer
// has stopped it reports Quit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns text unchanged; Draw colours whole lines instead
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// ShowMessage logs the message; in-game messages come from the game log
func (e *EbitenRenderer) ShowMessage(msg string) {
	slog.Info(msg)
}

// GetViewportSize returns the current viewport dimensions
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	e.viewportMu.RLock()
	defer e.viewportMu.RUnlock()
	return e.viewportRows, e.viewportCols
}

// RenderFrame copies what Draw needs out of g
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	rows, cols := e.GetViewportSize()
	origin := renderer.Viewport(g, rows, cols)

	f := frame{
		valid:    true,
		title:    g.Map.Title,
		status:   statusText(g),
		messages: append([]string(nil), g.Messages...),
		rows:     rows,
		cols:     cols,
		tiles:    make([]tile, 0, rows*cols),
		over:     g.Over,
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := renderer.CellAt(g, world.Coord{X: origin.X + x, Y: origin.Y + y})
			f.tiles = append(f.tiles, tile{
				glyph: string(cell.Glyph),
				fg:    styleColors[cell.Style],
				wall:  cell.Style == renderer.StyleWall,
			})
		}
	}

	e.frameMutex.Lock()
	e.frame = f
	e.frameMutex.Unlock()
}

// statusText builds the status bar lines
func statusText(g *state.Game) []string {
	p := g.Player
	return []string{
		strings.Join([]string{
			gotext.Get("HP %d/%d", p.Health, p.Stats.HP),
			gotext.Get("Level %d", p.Level),
			gotext.Get("Exp %d/%d", p.Exp, p.MaxExp),
		}, "   "),
		strings.Join([]string{
			gotext.Get("Keys %d", p.Keys),
			gotext.Get("Gold %d", p.Gold),
			gotext.Get("Turn %d", g.Turns),
		}, "   "),
	}
}
