package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeoncrawl/pkg/engine/input"
	"dungeoncrawl/pkg/engine/terminal"
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/renderer"
	"dungeoncrawl/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside viewport:
	// - Floor title + blank (2)
	// - Status bar + blank (2)
	// - Help line (1)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Spare (2)
	ViewportTopMargin = 14
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	styles map[renderer.TextStyle]color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleFloor:      {color.FgWhite},
		renderer.StyleWall:       {color.FgWhite, color.OpBold},
		renderer.StyleDoorway:    {color.FgYellow, color.OpBold},
		renderer.StyleItem:       {color.FgMagenta},
		renderer.StylePortal:     {color.FgGreen},
		renderer.StyleEnemy:      {color.FgRed, color.OpBold},
		renderer.StylePlayer:     {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleRemembered: {color.FgGray},
		renderer.StyleSubtle:     {color.FgGray, color.OpBold},
		renderer.StyleDenied:     {color.FgRed, color.OpBold},
		renderer.StyleAction:     {color.FgMagenta, color.OpBold},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.MapToIntent(input.NewDebouncedInput(input.ReadKey()))
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	return terminal.Viewport(ViewportTopMargin, ViewportMinRows, ViewportMinCols)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Print(t.StyleText(g.Map.Title, renderer.StyleAction) + "\n\n")

	t.printMap(g)
	t.printStatusBar(g)
	t.printHelp()
	t.printMessagesPane(g)
}

// printMap renders the part of the map around the player
func (t *TUIRenderer) printMap(g *state.Game) {
	rows, cols := t.GetViewportSize()
	origin := renderer.Viewport(g, rows, cols)

	var sb strings.Builder
	for vRow := 0; vRow < rows; vRow++ {
		for vCol := 0; vCol < cols; vCol++ {
			cell := renderer.CellAt(g, world.Coord{X: origin.X + vCol, Y: origin.Y + vRow})
			sb.WriteString(t.StyleText(string(cell.Glyph), cell.Style))
		}
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())
}

// printStatusBar renders the player's stats and inventory
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	p := g.Player

	hpStyle := renderer.StyleNormal
	if p.Health*4 <= p.Stats.HP {
		hpStyle = renderer.StyleDenied
	}

	fmt.Println()
	fmt.Println(strings.Join([]string{
		t.StyleText(gotext.Get("HP %d/%d", p.Health, p.Stats.HP), hpStyle),
		gotext.Get("Level %d", p.Level),
		gotext.Get("Exp %d/%d", p.Exp, p.MaxExp),
		t.StyleText(gotext.Get("Keys %d", p.Keys), renderer.StyleItem),
		t.StyleText(gotext.Get("Gold %d", p.Gold), renderer.StyleItem),
		t.StyleText(gotext.Get("Turn %d", g.Turns), renderer.StyleSubtle),
	}, t.StyleText(" | ", renderer.StyleSubtle)))
}

// helpActions are listed under the status bar with one of their keys
var helpActions = []input.Action{input.ActionWait, input.ActionInteract, input.ActionHint, input.ActionQuit}

// printHelp prints the key reminder
func (t *TUIRenderer) printHelp() {
	bindings := input.GetBindingsByAction()
	parts := make([]string, 0, len(helpActions))
	for _, act := range helpActions {
		codes := bindings[act]
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, t.StyleText(codes[0], renderer.StyleAction)+": "+input.ActionName(act))
	}
	fmt.Println(strings.Join(parts, "  "))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("Messages") + " "
	labelLen := len(label)
	sideLen := max((width-labelLen)/2, 1)

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Println()
	fmt.Println(t.StyleText(leftDashes+label+rightDashes, renderer.StyleSubtle))

	if len(g.Messages) == 0 {
		fmt.Println(t.StyleText("  "+gotext.Get("(no messages)"), renderer.StyleSubtle))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle))
}
