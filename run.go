package lightsource

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Renderer draws a scene. Layout, paint and text shaping live behind this
// interface; the engine only hands it the current scene each frame.
type Renderer interface {
	Draw(screen *ebiten.Image, scene *Scene)
}

// DebugRenderer prints the scene tree with focus markers using ebiten's
// debug font. Useful while building navigation before a real renderer exists.
type DebugRenderer struct {
	// ShowFPS appends the measured FPS and TPS below the tree.
	ShowFPS bool

	buf bytes.Buffer
}

// Draw implements Renderer.
func (r *DebugRenderer) Draw(screen *ebiten.Image, scene *Scene) {
	r.buf.Reset()
	if scene != nil {
		_ = DumpTree(&r.buf, scene.Root())
	}
	if r.ShowFPS {
		fmt.Fprintf(&r.buf, "\nFPS: %.1f\nTPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrint(screen, r.buf.String())
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage    *Stage
	renderer Renderer
	width    int
	height   int
	dt       float32
}

func (g *game) Update() error {
	g.stage.Update(g.dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.stage.Scene())
	g.stage.flushScreenshots(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives stage at cfg.TPS until the window closes.
// A nil renderer uses DebugRenderer.
func Run(stage *Stage, renderer Renderer, cfg RunConfig) error {
	mapping, err := cfg.Mapping()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	stage.SetMapping(mapping, cfg.RepeatDelay, cfg.RepeatInterval)
	if s := stage.Scene(); s != nil {
		s.SetDebugMode(cfg.Debug)
	}
	if renderer == nil {
		renderer = &DebugRenderer{ShowFPS: cfg.ShowFPS}
	}
	if cfg.ScreenshotDir != "" {
		stage.ScreenshotDir = cfg.ScreenshotDir
	}
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS)

	return ebiten.RunGame(&game{
		stage:    stage,
		renderer: renderer,
		width:    cfg.Width,
		height:   cfg.Height,
		dt:       1 / float32(cfg.TPS),
	})
}
