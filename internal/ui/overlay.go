//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"halo-life/pkg/core"
	"halo-life/pkg/partition"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
)

type statsProvider interface {
	Generation() int
	Workers() int
	Alive() int
}

// Overlay draws run statistics and worker band boundaries over the grid.
type Overlay struct {
	sim       core.Sim
	scale     int
	showStats bool
	showBands bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers: H for statistics, B for worker bands.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBands = !o.showBands
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	stats, ok := o.sim.(statsProvider)
	if o.showBands && ok {
		o.drawBands(screen, stats.Workers())
	}
	if !o.showStats {
		return
	}
	lines := []string{o.sim.Name()}
	if ok {
		lines = append(lines,
			fmt.Sprintf("gen     %d", stats.Generation()),
			fmt.Sprintf("workers %d", stats.Workers()),
			fmt.Sprintf("alive   %d", stats.Alive()),
		)
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	o.fillRect(screen, 0, 0, float64(width+2*panelPadding), float64(len(lines)*lineHeight+panelPadding), color.RGBA{A: 170})
	for i, line := range lines {
		text.Draw(screen, line, face, panelPadding, panelPadding+10+i*lineHeight, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func (o *Overlay) drawBands(screen *ebiten.Image, workers int) {
	size := o.sim.Size()
	plan, err := partition.Plan(size.H, workers)
	if err != nil {
		return
	}
	scale := float64(max(o.scale, 1))
	for i, r := range plan {
		if i == 0 || r.Empty() {
			continue
		}
		y := float64(r.OwnedStart) * scale
		o.fillRect(screen, 0, y, float64(size.W)*scale, 1, color.RGBA{R: 255, G: 120, B: 40, A: 200})
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
