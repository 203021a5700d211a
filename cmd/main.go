package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"pomobell/internal/audio"
	"pomobell/internal/core/model"
	"pomobell/internal/core/pomodoro"
	"pomobell/internal/platform"
	"pomobell/internal/storage"
	"pomobell/internal/ui/mainwindow"
	"pomobell/internal/ui/preferences"
	"pomobell/internal/ui/tray"
	"pomobell/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "PomoBell"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomobell.app")
	fyneApp.SetIcon(resources.MustLogo("tomato_active.png"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v (using defaults)", err)
	}

	timer := pomodoro.New(pomodoro.Options{TickInterval: time.Second})

	player := audio.NewPlayer()
	player.SetEnabled(settings.SoundEnabled)
	player.SetVolume(settings.SoundVolume)

	window := mainwindow.New(fyneApp, timer.Snapshot(), mainwindow.Callbacks{
		OnStart:     timer.Start,
		OnPause:     timer.Pause,
		OnReset:     timer.Reset,
		OnResetSkip: timer.ResetSkip,
	})

	platformService := platform.NewService()
	if settings.LaunchAtLogin {
		applyAutostart(platformService, true)
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.LaunchAtLogin != settings.LaunchAtLogin {
			applyAutostart(platformService, updated.LaunchAtLogin)
		}
		settings = updated
		player.SetEnabled(settings.SoundEnabled)
		player.SetVolume(settings.SoundVolume)
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	activeIcon := resources.MustLogo("tomato_active.png")
	pausedIcon := resources.MustLogo("tomato_paused.png")

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		desktopApp.SetSystemTrayIcon(pausedIcon)
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: window.Show,
			OnToggleStart: func() {
				if timer.Snapshot().Running {
					timer.Pause()
				} else {
					timer.Start()
				}
			},
			OnResetSkip:   timer.ResetSkip,
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				timer.Close()
				fyneApp.Quit()
			},
		})
	}

	events := timer.Subscribe(8)
	go func() {
		wasRunning := false
		for event := range events {
			if event.Type == pomodoro.EventIntervalComplete {
				// Fire-and-forget: a failed or slow alert never blocks
				// or desynchronizes the countdown.
				player.PlayAlert()
			}
			window.Render(event.Snapshot)

			if trayManager != nil {
				trayManager.SetStatus(statusLine(event.Snapshot))
				if event.Snapshot.Running != wasRunning {
					trayManager.SetRunning(event.Snapshot.Running)
					icon := pausedIcon
					if event.Snapshot.Running {
						icon = activeIcon
					}
					fyne.Do(func() {
						desktopApp.SetSystemTrayIcon(icon)
					})
				}
			}
			wasRunning = event.Snapshot.Running
		}
	}()

	timer.Run()
	if settings.AutoStart {
		timer.Start()
	}

	window.Show()
	fyneApp.Run()
	timer.Close()
}

func statusLine(snapshot model.Snapshot) string {
	seconds := int(snapshot.Remaining.Seconds())
	return fmt.Sprintf("%s %02d:%02d", snapshot.Kind.Title(), seconds/60, seconds%60)
}

func applyAutostart(service platform.Service, enabled bool) {
	if !enabled {
		if err := service.DisableAutostart(appName); err != nil {
			log.Printf("disable autostart: %v", err)
		}
		return
	}

	execPath, err := os.Executable()
	if err != nil {
		log.Printf("enable autostart: resolve executable: %v", err)
		return
	}
	if err := service.EnableAutostart(appName, execPath); err != nil {
		log.Printf("enable autostart: %v", err)
	}
}
