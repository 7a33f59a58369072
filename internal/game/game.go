package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"cubescene/internal/assets"
	"cubescene/internal/config"
	"cubescene/internal/input"
	"cubescene/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	World     *world.World
	Drag      input.DragState
	Tracker   *input.Tracker
	DebugMode bool

	loader   *assets.Loader
	progress *assets.Progress
	barrier  *assets.Barrier
	cancel   context.CancelFunc
	ready    bool
	loadErr  error

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) *Game {
	return &Game{
		Config: cfg,
		World:  world.New(cfg),
		loader: assets.NewLoader(),
	}
}

func (g *Game) Run() {
	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	if g.Config.Render.Antialias {
		flags |= rl.FlagMsaa4xHint
	}
	if g.Config.Render.Alpha {
		flags |= rl.FlagWindowTransparent
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	initHUDStyle()

	g.Tracker = input.NewTracker(input.RaylibDevice{})
	g.Tracker.Blocked = g.pointerOnHUD

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	defer cancel()
	g.startLoading(ctx)
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// startLoading fetches every model file in the background. The scene is
// only assembled once all of them have arrived.
func (g *Game) startLoading(ctx context.Context) {
	var paths []string
	for _, src := range g.Config.Assets() {
		if err := src.Validate(); err != nil {
			g.fail(err)
			return
		}
		paths = append(paths, src.Paths()...)
	}

	g.progress = assets.NewProgress(paths...)
	g.loader.OnProgress = g.progress.Report

	futures := make([]*assets.Future, 0, len(paths))
	for _, p := range paths {
		futures = append(futures, g.loader.Fetch(ctx, p))
	}
	g.barrier = assets.Join(ctx, futures...)
	log.Printf("Assets: loading %d files", len(paths))
}

// finishLoading runs on the window thread once the barrier is done. The
// fetched files are checked against each other before raylib reads them.
func (g *Game) finishLoading() {
	files, err := g.barrier.Wait(context.Background())
	if err != nil {
		g.fail(err)
		return
	}

	models := make(map[string]rl.Model)
	for _, src := range g.Config.Assets() {
		if err := assets.Verify(src, files); err != nil {
			g.fail(err)
			return
		}
		model, err := assets.LoadModel(src)
		if err != nil {
			g.fail(err)
			return
		}
		models[src.Geometry] = model
	}

	if err := g.World.Initialize(models); err != nil {
		g.fail(err)
		return
	}
	g.ready = true
}

func (g *Game) fail(err error) {
	g.loadErr = err
	log.Printf("Assets: %v", err)
}

func (g *Game) Update() {
	updateStart := time.Now()

	if rl.IsWindowResized() {
		log.Printf("Window: resized to %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	g.Tracker.Poll(&g.Drag)

	if !g.ready {
		if g.loadErr != nil || g.barrier == nil {
			return
		}
		if done, _ := g.barrier.Ready(); done {
			g.finishLoading()
		}
		return
	}

	g.World.Step(&g.Drag, rl.GetFrameTime())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(g.World.Renderer.Background)

	switch {
	case g.loadErr != nil:
		g.drawLoadError()
	case !g.ready:
		g.drawLoading()
	default:
		drawStart := time.Now()
		g.World.Draw()
		g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
		if g.DebugMode {
			g.drawDebug()
		}
	}

	rl.EndDrawing()
}

func (g *Game) drawLoadError() {
	msg := fmt.Sprintf("Scene could not load: %v", g.loadErr)
	rl.DrawText(msg, 10, 10, 18, rl.Red)
}
