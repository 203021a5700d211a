package mainwindow

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomobell/internal/core/model"
)

// Callbacks defines the user command handlers.
type Callbacks struct {
	OnStart     func()
	OnPause     func()
	OnReset     func()
	OnResetSkip func()
}

// Window is the single main window: colored interval background, MM:SS
// countdown, fill gauge, cycle indicator dots and the control buttons.
type Window struct {
	window      fyne.Window
	background  *canvas.Rectangle
	titleLabel  *canvas.Text
	timeLabel   *canvas.Text
	gauge       *gauge
	dots        []*canvas.Circle
	startButton *widget.Button
	pauseButton *widget.Button
	stopButton  *widget.Button
	resetButton *widget.Button
	callbacks   Callbacks
}

// New creates the main window and renders the provided initial state.
func New(app fyne.App, initial model.Snapshot, callbacks Callbacks) *Window {
	window := app.NewWindow("PomoBell")
	window.SetFixedSize(true)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(kindColor(initial.Kind))

	titleLabel := canvas.NewText(initial.Kind.Title(), color.White)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 26
	titleLabel.Alignment = fyne.TextAlignCenter

	timeLabel := canvas.NewText(formatRemaining(initial.Remaining), color.White)
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 44
	timeLabel.Alignment = fyne.TextAlignCenter

	fillGauge := newGauge()

	dots := make([]*canvas.Circle, model.FocusPerCycle)
	dotObjects := make([]fyne.CanvasObject, 0, len(dots))
	for i := range dots {
		dot := canvas.NewCircle(color.Transparent)
		dot.StrokeColor = color.White
		dot.StrokeWidth = 2
		dots[i] = dot
		dotObjects = append(dotObjects, container.New(&dotSlotLayout{}, dot))
	}
	dotRow := container.NewGridWithColumns(len(dots), dotObjects...)

	win := &Window{
		window:     window,
		background: background,
		titleLabel: titleLabel,
		timeLabel:  timeLabel,
		gauge:      fillGauge,
		dots:       dots,
		callbacks:  callbacks,
	}

	win.startButton = widget.NewButton("Start", func() {
		if win.callbacks.OnStart != nil {
			win.callbacks.OnStart()
		}
	})
	win.pauseButton = widget.NewButton("Pause", func() {
		if win.callbacks.OnPause != nil {
			win.callbacks.OnPause()
		}
	})
	win.stopButton = widget.NewButton("Stop", func() {
		if win.callbacks.OnReset != nil {
			win.callbacks.OnReset()
		}
	})
	win.resetButton = widget.NewButton("Reset/Skip", func() {
		if win.callbacks.OnResetSkip != nil {
			win.callbacks.OnResetSkip()
		}
	})

	buttons := container.NewGridWithColumns(4,
		win.startButton, win.pauseButton, win.stopButton, win.resetButton)

	content := container.NewVBox(
		titleLabel,
		container.NewCenter(fillGauge.box),
		timeLabel,
		dotRow,
		buttons,
	)
	root := container.NewStack(background, container.NewPadded(content))

	window.SetContent(root)
	window.Resize(fyne.NewSize(420, 480))
	window.CenterOnScreen()

	win.applyUnsafe(initial)
	return win
}

// Show displays the main window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// Render updates every display element from the snapshot. Safe to call
// from any goroutine.
func (win *Window) Render(snapshot model.Snapshot) {
	fyne.Do(func() {
		win.applyUnsafe(snapshot)
	})
}

func (win *Window) applyUnsafe(snapshot model.Snapshot) {
	background := kindColor(snapshot.Kind)
	win.background.FillColor = background
	win.background.Refresh()

	win.titleLabel.Text = snapshot.Kind.Title()
	win.titleLabel.Refresh()

	win.timeLabel.Text = formatRemaining(snapshot.Remaining)
	win.timeLabel.Refresh()

	win.gauge.SetLevel(1 - snapshot.Progress())

	filled := filledDots(snapshot.FocusCount)
	for i, dot := range win.dots {
		if i < filled {
			dot.FillColor = color.White
		} else {
			dot.FillColor = color.Transparent
		}
		dot.Refresh()
	}

	if snapshot.Running {
		win.startButton.Disable()
		win.pauseButton.Enable()
		win.stopButton.Enable()
	} else {
		win.startButton.Enable()
		win.pauseButton.Disable()
		win.stopButton.Disable()
	}
}

// filledDots reports how many cycle indicators show filled.
func filledDots(focusCount int) int {
	if focusCount < 0 {
		return 0
	}
	if focusCount > model.FocusPerCycle {
		return model.FocusPerCycle
	}
	return focusCount
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func kindColor(kind model.IntervalKind) color.NRGBA {
	switch kind {
	case model.KindShortBreak:
		return color.NRGBA{R: 0xFF, G: 0xEB, B: 0x3B, A: 0xFF}
	case model.KindLongBreak:
		return color.NRGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}
	default:
		return color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	}
}

type dotSlotLayout struct{}

const dotDiameter = float32(24)

func (layout *dotSlotLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	x := (size.Width - dotDiameter) / 2
	y := (size.Height - dotDiameter) / 2
	objects[0].Move(fyne.NewPos(x, y))
	objects[0].Resize(fyne.NewSize(dotDiameter, dotDiameter))
}

func (layout *dotSlotLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(dotDiameter+12, dotDiameter+12)
}
