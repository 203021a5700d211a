package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	onCancel      func()
	soundCheck    *widget.Check
	volumeSlider  *widget.Slider
	autoStart     *widget.Check
	launchAtLogin *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("PomoBell Settings")

	soundCheck := widget.NewCheck("Play alert sound", nil)
	soundCheck.SetChecked(settings.SoundEnabled)

	volumeSlider := widget.NewSlider(0, 1)
	volumeSlider.Value = settings.SoundVolume
	volumeSlider.Step = 0.05

	autoStart := widget.NewCheck("Start countdown on launch", nil)
	autoStart.SetChecked(settings.AutoStart)

	launchAtLogin := widget.NewCheck("Launch at login", nil)
	launchAtLogin.SetChecked(settings.LaunchAtLogin)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		soundCheck,
		widget.NewLabel("Alert volume"),
		volumeSlider,
		widget.NewLabelWithStyle("Behavior", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autoStart,
		launchAtLogin,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 300))

	prefs := &Window{
		window:        window,
		settings:      settings,
		onSave:        onSave,
		soundCheck:    soundCheck,
		volumeSlider:  volumeSlider,
		autoStart:     autoStart,
		launchAtLogin: launchAtLogin,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.volumeSlider.Value = settings.SoundVolume
	prefs.volumeSlider.Refresh()
	prefs.autoStart.SetChecked(settings.AutoStart)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.SoundVolume = prefs.volumeSlider.Value
	settings.AutoStart = prefs.autoStart.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
