package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors
var (
	colorBgDark        = rl.NewColor(18, 18, 24, 230)
	colorBgElement     = rl.NewColor(32, 32, 42, 255)
	colorBgHover       = rl.NewColor(45, 45, 58, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(240, 240, 245, 255)
	colorTextSecondary = rl.NewColor(160, 160, 175, 255)
)

// hudPanel is the area the debug overlay covers.
var hudPanel = rl.Rectangle{X: 5, Y: 5, Width: 290, Height: 200}

// pointerOnHUD reports whether a press should go to the debug panel
// instead of the scene.
func (g *Game) pointerOnHUD() bool {
	return g.DebugMode && rl.CheckCollisionPointRec(rl.GetMousePosition(), hudPanel)
}

// initHUDStyle sets up the dark raygui theme used by the loading bar and
// the debug panel.
func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (g *Game) drawLoading() {
	if g.progress == nil {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	bounds := rl.Rectangle{X: w * 0.2, Y: h/2 - 10, Width: w * 0.6, Height: 20}

	percent := float32(g.progress.Overall())
	label := fmt.Sprintf("%d%%", int(percent))
	if g.barrier != nil {
		label = fmt.Sprintf("%d%% (%d left)", int(percent), g.barrier.Pending())
	}
	gui.ProgressBar(bounds, "", label, percent, 0, 100)
}

func (g *Game) drawDebug() {
	ctrl := g.World.Controller

	rl.DrawRectangleRec(hudPanel, colorBgDark)
	rl.DrawFPS(10, 10)

	rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 35, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 55, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Speed:   %.2f deg/frame", ctrl.Speed), 10, 75, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Camera:  %.1f deg", g.World.Camera.Angle), 10, 95, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Color:   %s", g.World.Drift.Hex()), 10, 115, 16, rl.Yellow)

	maxBounds := rl.Rectangle{X: 110, Y: 140, Width: 120, Height: 20}
	ctrl.MaxSpeed = gui.Slider(maxBounds, "Max speed", fmt.Sprintf("%.1f", ctrl.MaxSpeed), ctrl.MaxSpeed, 0.5, 30)

	defBounds := rl.Rectangle{X: 110, Y: 170, Width: 120, Height: 20}
	ctrl.DefaultSpeed = gui.Slider(defBounds, "Idle speed", fmt.Sprintf("%.2f", ctrl.DefaultSpeed), ctrl.DefaultSpeed, -5, 5)
}
