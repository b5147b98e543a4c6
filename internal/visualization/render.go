package visualization

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hashicorp/go-hclog"
	"gonum.org/v1/gonum/spatial/r2"

	"planet-sim/internal/analysis"
	"planet-sim/internal/physics"
	"planet-sim/internal/simulation"
	"planet-sim/internal/view"
)

const (
	ScreenWidth  = 1500
	ScreenHeight = 900
	Title        = "Planet Simulation"

	maxTrailPoints = 2000 // drawn per body; the stored trail is not affected
	statsInterval  = 60   // ticks between HUD statistics refreshes

	// Key repeat timing in ticks.
	repeatDelay    = 30
	repeatInterval = 3
)

var background = color.RGBA{0, 0, 0, 255}

// keyBindings maps ebiten keys to view controls.
var keyBindings = []struct {
	key     ebiten.Key
	control view.Key
}{
	{ebiten.KeyArrowLeft, view.KeyLeft},
	{ebiten.KeyArrowRight, view.KeyRight},
	{ebiten.KeyArrowUp, view.KeyUp},
	{ebiten.KeyArrowDown, view.KeyDown},
	{ebiten.KeyZ, view.KeyZoomIn},
	{ebiten.KeyX, view.KeyZoomOut},
}

// Renderer implements ebiten.Game. Every tick it advances the simulation by
// one step and applies pending view controls.
type Renderer struct {
	sim    *simulation.Simulation
	view   view.Transform
	logger hclog.Logger

	screenWidth  int
	screenHeight int

	ticks         int
	startEnergy   float64
	startMomentum r2.Vec
	momentumScale float64
	energyDrift   float64
	momentumDrift float64
}

// NewRenderer creates a renderer for sim.
func NewRenderer(sim *simulation.Simulation, logger hclog.Logger) *Renderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	bodies := sim.Bodies()
	return &Renderer{
		sim:           sim,
		view:          view.Identity(),
		logger:        logger,
		screenWidth:   ScreenWidth,
		screenHeight:  ScreenHeight,
		startEnergy:   analysis.TotalEnergy(bodies),
		startMomentum: analysis.Momentum(bodies),
		momentumScale: analysis.MomentumScale(bodies),
	}
}

// Run opens the window and blocks until it is closed or a step fails.
func (r *Renderer) Run() error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(Title)
	return ebiten.RunGame(r)
}

// View returns the current view transform.
func (r *Renderer) View() view.Transform {
	return r.view
}

// Update is called every tick.
func (r *Renderer) Update() error {
	r.view = view.HandleAll(r.view, pressedControls())

	if err := r.sim.Step(); err != nil {
		r.logger.Error("simulation step failed", "error", err)
		return err
	}

	r.ticks++
	if r.ticks%statsInterval == 0 {
		r.refreshStats()
	}
	return nil
}

func (r *Renderer) refreshStats() {
	bodies := r.sim.Bodies()
	r.energyDrift = analysis.RelativeDrift(r.startEnergy, analysis.TotalEnergy(bodies))
	r.momentumDrift = 0
	if r.momentumScale > 0 {
		change := r2.Sub(analysis.Momentum(bodies), r.startMomentum)
		r.momentumDrift = r2.Norm(change) / r.momentumScale
	}
	r.logger.Debug("stats", "day", r.sim.Days(), "energy_drift", r.energyDrift, "momentum_drift", r.momentumDrift)
}

// pressedControls returns the view controls pressed or repeating this tick.
func pressedControls() []view.Key {
	var keys []view.Key
	for _, b := range keyBindings {
		if isKeyRepeating(b.key) {
			keys = append(keys, b.control)
		}
	}
	return keys
}

func isKeyRepeating(key ebiten.Key) bool {
	return view.KeyRepeats(inpututil.KeyPressDuration(key), repeatDelay, repeatInterval)
}

// worldToScreen converts simulation meters to ebiten screen coordinates.
// The view works in y-up space; ebiten's y axis points down.
func (r *Renderer) worldToScreen(x, y float64) (float32, float32) {
	sx, sy := r.view.WorldToScreen(x, y, r.screenWidth, r.screenHeight)
	return float32(sx), float32(float64(r.screenHeight) - sy)
}

// Draw is called every frame to render the simulation.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, b := range r.sim.Bodies() {
		r.drawTrail(screen, b)
	}
	for _, b := range r.sim.Bodies() {
		x, y := r.worldToScreen(b.X, b.Y)
		radius := float32(r.view.Radius(b.Radius))
		vector.DrawFilledCircle(screen, x, y, radius, b.Color, true)
	}

	r.drawDebugInfo(screen)
}

func (r *Renderer) drawTrail(screen *ebiten.Image, b *physics.Body) {
	pts := b.Orbit.Points()
	if len(pts) <= 2 {
		return
	}
	idx := view.TrailIndices(len(pts), maxTrailPoints)

	px, py := r.worldToScreen(pts[idx[0]].X, pts[idx[0]].Y)
	for _, i := range idx[1:] {
		x, y := r.worldToScreen(pts[i].X, pts[i].Y)
		vector.StrokeLine(screen, px, py, x, y, 1, b.Color, true)
		px, py = x, y
	}
}

func (r *Renderer) drawDebugInfo(screen *ebiten.Image) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Day %.0f  TPS: %.1f  FPS: %.1f\n", r.sim.Days(), ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&sb, "Zoom %.1f  Offset (%.0f, %.0f)  [arrows pan, Z/X zoom]\n", r.view.ScaleFactor, r.view.OffsetX, r.view.OffsetY)
	fmt.Fprintf(&sb, "Energy drift %.2e  Momentum drift %.2e\n", r.energyDrift, r.momentumDrift)

	for _, b := range r.sim.Bodies() {
		if b.Central {
			continue
		}
		fmt.Fprintf(&sb, "%-8s %7.3f AU\n", b.Name, b.DistanceToPrimary/physics.AU)
	}

	ebitenutil.DebugPrint(screen, sb.String())
}

// Layout is called when the window size changes.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.screenWidth = outsideWidth
	r.screenHeight = outsideHeight
	return r.screenWidth, r.screenHeight
}
