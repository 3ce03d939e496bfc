package domain

// Preferences holds the single per-user settings row.
type Preferences struct {
	ID            string
	NotifyEnabled bool
	Sound         bool
	ReminderTone  string
	DefaultView   string // "daily" or "weekly"
}

// DefaultPreferences returns the seed values used for a fresh database.
func DefaultPreferences() *Preferences {
	return &Preferences{
		ID:            "default",
		NotifyEnabled: true,
		Sound:         true,
		ReminderTone:  "chime",
		DefaultView:   "daily",
	}
}
