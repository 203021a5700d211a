package mainwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// gauge is the can-shaped fill visual: the fill drains with the
// countdown, proportional to the time remaining in the interval.
type gauge struct {
	outline *canvas.Rectangle
	fill    *canvas.Rectangle
	level   float64
	box     *fyne.Container
}

const (
	gaugeWidth  = float32(110)
	gaugeHeight = float32(170)
	gaugeInset  = float32(7)
)

func newGauge() *gauge {
	outline := canvas.NewRectangle(color.Transparent)
	outline.StrokeColor = color.White
	outline.StrokeWidth = 3
	outline.CornerRadius = 10

	fill := canvas.NewRectangle(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xC8})
	fill.CornerRadius = 4

	fillGauge := &gauge{outline: outline, fill: fill, level: 1}
	fillGauge.box = container.New(&gaugeLayout{gauge: fillGauge}, fill, outline)
	return fillGauge
}

// SetLevel sets the fill fraction in [0,1] and re-lays out the gauge.
func (fillGauge *gauge) SetLevel(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	fillGauge.level = level
	fillGauge.box.Refresh()
}

type gaugeLayout struct {
	gauge *gauge
}

func (layout *gaugeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	fill := objects[0]
	outline := objects[1]

	outline.Move(fyne.NewPos(0, 0))
	outline.Resize(size)

	innerWidth := size.Width - 2*gaugeInset
	innerHeight := size.Height - 2*gaugeInset
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	fillHeight := innerHeight * float32(layout.gauge.level)
	fill.Move(fyne.NewPos(gaugeInset, gaugeInset+innerHeight-fillHeight))
	fill.Resize(fyne.NewSize(innerWidth, fillHeight))
}

func (layout *gaugeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(gaugeWidth, gaugeHeight)
}
