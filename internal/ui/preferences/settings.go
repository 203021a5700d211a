package preferences

// Settings defines editable user preferences. Interval durations are
// fixed by design and deliberately absent here.
type Settings struct {
	SoundEnabled  bool
	SoundVolume   float64
	AutoStart     bool
	LaunchAtLogin bool
}

// DefaultSettings returns default settings for PomoBell.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:  true,
		SoundVolume:   1.0,
		AutoStart:     false,
		LaunchAtLogin: false,
	}
}
