package immediate

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/trellis"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ClearColor    Color
	ShowFPS       bool

	// Script, when set, is attached to the context before the first frame.
	Script *TestRunner
	// ExitWhenScriptDone ends Run once Script has executed every step.
	ExitWhenScriptDone bool
}

// game adapts a viewport and its context to ebiten.Game.
type game struct {
	vp  *trellis.Viewport
	ctx *Context
	cfg RunConfig
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.ctx.BeginFrame(PollInput(), dt)
	g.vp.AdvanceFrame()
	if g.cfg.ExitWhenScriptDone && g.cfg.Script != nil && g.cfg.Script.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorRGBA(g.cfg.ClearColor))
	g.ctx.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			screen.Bounds().Dx()-100, 0)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and advances vp once per tick until the window is
// closed. ctx must be the backend vp was created with.
func Run(vp *trellis.Viewport, ctx *Context, cfg RunConfig) error {
	if vp == nil || ctx == nil {
		return errors.New("immediate: Run needs a viewport and a context")
	}
	if b, ok := vp.Backend().(*Context); !ok || b != ctx {
		return errors.New("immediate: viewport is not driven by this context")
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = Color{0.06, 0.06, 0.08, 1}
	}
	if cfg.Script != nil {
		ctx.SetTestRunner(cfg.Script)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	err := ebiten.RunGame(&game{vp: vp, ctx: ctx, cfg: cfg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func colorRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}
