package ebitensurface

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Drawer draws one frame onto a surface. *render.Scene satisfies it once
// its surface is the Game's Surface.
type Drawer interface {
	Draw() error
}

// Game adapts a scene to ebiten.Game. Step runs once per tick before the
// frame is drawn; Escape ends the game.
type Game struct {
	Surface *Surface
	Scene   Drawer
	Step    func() error

	width, height int
	err           error
}

// NewGame creates a game with a fixed logical screen size.
func NewGame(scene Drawer, surface *Surface, width, height int) *Game {
	return &Game{
		Surface: surface,
		Scene:   scene,
		width:   width,
		height:  height,
	}
}

// Update advances the animation. Errors from the previous Draw end the game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.Step != nil {
		return g.Step()
	}
	return nil
}

// Draw renders the scene onto the screen image.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Surface.SetImage(screen)
	if err := g.Scene.Draw(); err != nil && g.err == nil {
		g.err = fmt.Errorf("draw frame: %w", err)
	}
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and blocks until it closes.
func Run(g *Game, title string, tps int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
