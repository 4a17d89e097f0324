package tween

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS overlays the measured FPS and TPS in the top-left corner.
	ShowFPS bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig

	fpsText    string
	fpsElapsed float64
}

// Run opens a window and drives scene until the window closes or the update
// callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}

func (g *game) Update() error {
	if g.cfg.ShowFPS {
		g.updateFPS(1.0 / float64(ebiten.TPS()))
	}
	return g.scene.Update()
}

// updateFPS refreshes the overlay text roughly twice a second.
func (g *game) updateFPS(dt float64) {
	g.fpsElapsed += dt
	if g.fpsText != "" && g.fpsElapsed < 0.5 {
		return
	}
	g.fpsElapsed = 0
	g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
