//go:build ebiten

package app

import (
	"context"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifewatch/internal/config"
	"lifewatch/internal/patternfile"
	"lifewatch/internal/render"
	"lifewatch/internal/status"
	"lifewatch/internal/ui"
	"lifewatch/pkg/life"
	"lifewatch/pkg/runner"
)

const (
	hudWidth  = 220
	minPeriod = 10 * time.Millisecond
	maxPeriod = 10 * time.Second
)

// Game adapts an engine and its run controller to the ebiten.Game interface.
// The engine is only touched on the UI goroutine while no run is active; the
// board shown during a run is mirrored from cell notifications.
type Game struct {
	cfg    config.Config
	engine *life.Engine
	ctrl   *runner.Controller
	inbox  *Inbox
	logger *log.Logger

	board   Mirror
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale   int
	period  time.Duration
	stats   life.Stats
	pattern string
	status  string
}

// New constructs a Game around engine using the display and run settings of cfg.
func New(engine *life.Engine, cfg config.Config, logger *log.Logger) *Game {
	inbox := NewInbox()
	engine.SetNotifier(inbox)
	g := &Game{
		cfg:      cfg,
		engine:   engine,
		inbox:    inbox,
		logger:   logger,
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(hudWidth),
		onColor:  color.RGBA{R: 120, G: 220, B: 120, A: 255},
		offColor: color.Black,
		scale:    cfg.Scale,
		period:   cfg.Period,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	g.ctrl = runner.New(engine,
		runner.WithReporter(inbox),
		runner.WithTick(inbox.Tick),
		runner.WithLogger(logger),
	)
	g.rebuild()
	return g
}

// rebuild resizes the mirror to the engine and copies its board. Only call
// while idle.
func (g *Game) rebuild() {
	if g.board.Sync(g.inbox, g.engine.Field()) || g.painter == nil {
		g.painter = render.NewGridPainter(g.board.Columns, g.board.Rows)
	}
	g.stats = g.engine.Stats()
}

// idle reports whether the engine may be used from the UI goroutine, waiting
// for a stopping run to finish its last advance.
func (g *Game) idle() bool {
	if g.ctrl.Running() {
		return false
	}
	g.ctrl.Wait()
	return true
}

// Update handles input and folds run output into the mirrored board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Stop()
		g.ctrl.Wait()
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.toggleRun()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if g.idle() {
			g.engine.Advance()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.ctrl.Reset()
		// The start snapshot may have a different size than the board shown.
		g.rebuild()
		g.clearMessages()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if g.idle() {
			g.engine.Clear()
			g.clearMessages()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.setPeriod(g.period / 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.setPeriod(g.period * 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.load()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.click()
	}

	g.drain()
	g.overlay.Update(g.ctrl.Running())
	g.hud.Update(status.FromStats(g.stats, g.ctrl.Running(), g.period, g.message()))
	return nil
}

func (g *Game) toggleRun() {
	if g.ctrl.Running() {
		g.ctrl.Stop()
		return
	}
	g.clearMessages()
	if err := g.ctrl.Start(context.Background(), g.period); err != nil {
		g.status = err.Error()
	}
}

func (g *Game) setPeriod(p time.Duration) {
	if p < minPeriod {
		p = minPeriod
	}
	if p > maxPeriod {
		p = maxPeriod
	}
	g.period = p
}

func (g *Game) click() {
	if !g.idle() {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	if mx < 0 || my < 0 || x >= g.board.Columns || y >= g.board.Rows {
		return
	}
	g.engine.Toggle(x, y)
}

func (g *Game) save() {
	if g.cfg.SaveFile == "" || !g.idle() {
		return
	}
	if err := patternfile.Save(g.cfg.SaveFile, life.Export(g.engine)); err != nil {
		g.logf("save %s: %v", g.cfg.SaveFile, err)
		g.status = "Saving failed."
		return
	}
	g.status = "Saved to " + g.cfg.SaveFile
}

func (g *Game) load() {
	path := g.cfg.PatternFile
	if path == "" {
		path = g.cfg.SaveFile
	}
	if path == "" || !g.idle() {
		return
	}
	s, err := patternfile.Load(path)
	if err == nil {
		var loaded *life.Engine
		loaded, err = life.Import(s, life.WithKeepTrack(g.engine.KeepTrack()))
		if err == nil {
			g.engine.Restore(loaded)
		}
	}
	if err != nil {
		g.logf("load %s: %v", path, err)
		g.pattern, g.status = "", LoadMessage(err)
		return
	}
	g.rebuild()
	g.pattern, g.status = "", "Loaded "+path
}

func (g *Game) drain() {
	batch := g.board.Apply(g.inbox)
	if batch.HasStats {
		g.stats = batch.Stats
	}
	if batch.Messages {
		g.pattern, g.status = batch.Pattern, batch.Status
	}
	if !g.ctrl.Running() {
		g.ctrl.Wait()
		g.stats = g.engine.Stats()
	}
}

func (g *Game) clearMessages() {
	g.inbox.ClearMessages()
	g.pattern, g.status = "", ""
}

func (g *Game) message() string {
	return strings.TrimSpace(g.pattern + "\n" + g.status)
}

func (g *Game) logf(format string, args ...any) {
	if g.logger != nil {
		g.logger.Printf(format, args...)
	}
}

// Draw renders the mirrored board, cell borders and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.board.Columns, g.board.Rows, g.scale)
	g.hud.Draw(screen, g.board.Columns*g.scale, g.board.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.Columns*g.scale + hudWidth, g.board.Rows * g.scale
}
