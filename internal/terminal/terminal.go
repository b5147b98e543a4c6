// Package terminal renders the simulation as character cells with tcell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"

	"planet-sim/internal/physics"
	"planet-sim/internal/simulation"
	"planet-sim/internal/view"
)

// The view transform works on a virtual window of this size, which is then
// scaled down to the terminal grid.
const (
	virtualWidth  = 1500
	virtualHeight = 900

	maxTrailPoints = 400

	bodyGlyph  = '●'
	trailGlyph = '·'
)

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)

// Terminal advances the simulation on a ticker and draws it to a tcell screen.
type Terminal struct {
	sim    *simulation.Simulation
	view   view.Transform
	screen tcell.Screen
	logger hclog.Logger
}

// NewTerminal creates a terminal front-end. The screen must be initialized.
func NewTerminal(sim *simulation.Simulation, screen tcell.Screen, logger hclog.Logger) *Terminal {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Terminal{
		sim:    sim,
		view:   view.Identity(),
		screen: screen,
		logger: logger,
	}
}

// View returns the current view transform.
func (t *Terminal) View() view.Transform {
	return t.view
}

// Run steps and redraws every interval until ctx is done, the user quits or
// a step fails.
func (t *Terminal) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.HandleKey(ev) {
					t.logger.Info("quit requested", "day", t.sim.Days())
					return nil
				}
				t.Draw()
			case *tcell.EventResize:
				t.screen.Sync()
				t.Draw()
			}

		case <-ticker.C:
			if err := t.sim.Step(); err != nil {
				t.logger.Error("simulation step failed", "error", err)
				return err
			}
			t.Draw()
		}
	}
}

// HandleKey applies a key event to the view. It returns false when the
// event asks to quit.
func (t *Terminal) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		t.view = view.Handle(t.view, view.KeyLeft)
	case tcell.KeyRight:
		t.view = view.Handle(t.view, view.KeyRight)
	case tcell.KeyUp:
		t.view = view.Handle(t.view, view.KeyUp)
	case tcell.KeyDown:
		t.view = view.Handle(t.view, view.KeyDown)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'z':
			t.view = view.Handle(t.view, view.KeyZoomIn)
		case 'x':
			t.view = view.Handle(t.view, view.KeyZoomOut)
		}
	}
	return true
}

// cell maps a world position to a terminal cell below the status line.
func (t *Terminal) cell(x, y float64) (int, int, bool) {
	cols, rows := t.screen.Size()
	height := rows - 1
	if cols <= 0 || height <= 0 {
		return 0, 0, false
	}

	sx, sy := t.view.WorldToScreen(x, y, virtualWidth, virtualHeight)
	col := int(sx / virtualWidth * float64(cols))
	row := 1 + (height - 1) - int(sy/virtualHeight*float64(height))
	if sx < 0 || sy < 0 || col >= cols || row < 1 || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// Draw renders trails, bodies and the status line.
func (t *Terminal) Draw() {
	t.screen.Clear()

	bodies := t.sim.Bodies()
	for _, b := range bodies {
		t.drawTrail(b)
	}
	for _, b := range bodies {
		if col, row, ok := t.cell(b.X, b.Y); ok {
			t.screen.SetContent(col, row, bodyGlyph, nil, styleFor(b))
		}
	}
	t.drawStatus()

	t.screen.Show()
}

func (t *Terminal) drawTrail(b *physics.Body) {
	pts := b.Orbit.Points()
	if len(pts) <= 2 {
		return
	}
	style := styleFor(b).Dim(true)
	for _, i := range view.TrailIndices(len(pts), maxTrailPoints) {
		if col, row, ok := t.cell(pts[i].X, pts[i].Y); ok {
			t.screen.SetContent(col, row, trailGlyph, nil, style)
		}
	}
}

func (t *Terminal) drawStatus() {
	cols, _ := t.screen.Size()
	status := fmt.Sprintf(" Day %.0f  Zoom %.1f  [arrows pan, z/x zoom, q quit]", t.sim.Days(), t.view.ScaleFactor)
	for _, b := range t.sim.Bodies() {
		if b.Central {
			continue
		}
		status += fmt.Sprintf("  %s %.2f AU", b.Name, b.DistanceToPrimary/physics.AU)
	}

	col := 0
	for _, r := range status {
		if col >= cols {
			break
		}
		t.screen.SetContent(col, 0, r, nil, statusStyle)
		col++
	}
	for ; col < cols; col++ {
		t.screen.SetContent(col, 0, ' ', nil, statusStyle)
	}
}

func styleFor(b *physics.Body) tcell.Style {
	c := tcell.NewRGBColor(int32(b.Color.R), int32(b.Color.G), int32(b.Color.B))
	return tcell.StyleDefault.Foreground(c)
}
