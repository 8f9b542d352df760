package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"dungeoncrawl/pkg/game/gameplay"
	"dungeoncrawl/pkg/game/renderer"
	ebitenrenderer "dungeoncrawl/pkg/game/renderer/ebiten"
	"dungeoncrawl/pkg/game/renderer/tui"
	"dungeoncrawl/pkg/game/state"
)

func main() {
	rendererName := flag.String("renderer", "tui", "renderer to use (tui or ebiten)")
	seed := flag.Int64("seed", 0, "random seed for the run (0 picks one from the clock)")
	startLevel := flag.Int("level", 1, "starting floor number (for developer testing)")
	debugLog := flag.String("debug-log", "", "write debug logs to this file")
	flag.Parse()

	if *debugLog != "" {
		f, err := os.Create(*debugLog)
		if err != nil {
			log.Fatalf("Cannot open debug log: %v", err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	slog.Debug("starting run", "seed", *seed, "level", *startLevel, "renderer", *rendererName)

	g := gameplay.BuildGame(*seed, *startLevel)

	switch *rendererName {
	case "tui":
		renderer.SetRenderer(tui.New())
		renderer.Init()
		mainLoop(g)
		renderer.Clear()
		renderer.RenderFrame(g)

	case "ebiten":
		r := ebitenrenderer.New()
		renderer.SetRenderer(r)
		renderer.Init()

		// Ebiten owns the main goroutine; the game loop runs beside it
		go func() {
			mainLoop(g)
			r.Stop()
		}()
		err := r.Run()
		r.Stop()
		if err != nil {
			log.Fatalf("Renderer failed: %v", err)
		}

	default:
		log.Fatalf("Unknown renderer %q", *rendererName)
	}

	renderer.ShowMessage(fmt.Sprintf("Seed: %d", g.Seed))
}

// mainLoop draws the game and applies player input until the player quits
func mainLoop(g *state.Game) {
	for !g.Quit {
		renderer.Clear()
		renderer.RenderFrame(g)
		gameplay.ProcessIntent(g, renderer.GetInput())
	}
}
