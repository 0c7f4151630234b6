package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"clothsim/cloth"
	"clothsim/config"
)

// Game is the window shell: ebiten's tick is the frame pump, Layout reports
// viewport changes, and left clicks tear.
type Game struct {
	cloth  *cloth.Cloth
	width  int
	height int
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.cloth.Tear(r2.Vec{X: float64(x), Y: float64(y)})
	}
	g.cloth.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for i, c := range g.cloth.Constraints {
		if !c.Active {
			continue
		}
		a, b := g.cloth.Endpoints(i)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, color.White, false)
	}
	for _, p := range g.cloth.Particles {
		vector.DrawFilledRect(screen, float32(p.Position.X-1), float32(p.Position.Y-1), 2, 2, color.White, false)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Cloth(Thread) Simulator  frame %d  links %d/%d  click to tear",
		g.cloth.Frame, g.cloth.ActiveConstraints(), len(g.cloth.Constraints)))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.cloth.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func main() {
	envFile := flag.String("env", ".env", "dotenv file to load")
	flag.Parse()

	config.InitConfig(*envFile)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	c, err := cloth.New(cfg.Cloth)
	if err != nil {
		log.Fatalf("cloth: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.ViewWidth), int(cfg.ViewHeight))
	ebiten.SetWindowTitle("Cloth Simulation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 60 ticks per second matches the 16ms reference frame cadence.
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(&Game{cloth: c}); err != nil {
		log.Fatal(err)
	}
}
