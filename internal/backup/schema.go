// Package backup reads and writes the portable JSON snapshot format used
// for export, import, and clipboard transfer of schedule data.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
)

// SchemaVersion is bumped when the snapshot layout changes incompatibly.
const SchemaVersion = 1

// Schema is the top-level JSON structure for a schedule snapshot.
type Schema struct {
	Version     int                `json:"version"`
	ExportedAt  string             `json:"exported_at,omitempty"`
	Items       []ItemExport       `json:"items"`
	Preferences *PreferencesExport `json:"preferences,omitempty"`
}

// ItemExport defines one schedule item in the snapshot file.
type ItemExport struct {
	ID        string           `json:"id,omitempty"`
	Subject   string           `json:"subject"`
	Category  string           `json:"category,omitempty"`
	StartTime string           `json:"start_time,omitempty"`
	EndTime   string           `json:"end_time,omitempty"`
	Repeat    string           `json:"repeat,omitempty"`
	RepeatDay string           `json:"repeat_day,omitempty"`
	Date      *string          `json:"date,omitempty"`
	Color     string           `json:"color,omitempty"`
	Location  string           `json:"location,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	Reminders []ReminderExport `json:"reminders,omitempty"`
}

// ReminderExport defines one reminder spec on an exported item.
type ReminderExport struct {
	OffsetMin int    `json:"offset_min"`
	Label     string `json:"label,omitempty"`
}

// PreferencesExport carries the settings row in the snapshot file.
type PreferencesExport struct {
	NotifyEnabled bool   `json:"notify_enabled"`
	Sound         bool   `json:"sound"`
	ReminderTone  string `json:"reminder_tone,omitempty"`
	DefaultView   string `json:"default_view,omitempty"`
}

// LoadSchema reads and parses a snapshot JSON file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema parses snapshot JSON from a byte slice.
func ParseSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &schema, nil
}

// MarshalSchema renders a snapshot as indented JSON.
func MarshalSchema(schema *Schema) ([]byte, error) {
	return json.MarshalIndent(schema, "", "  ")
}

// SaveSchema writes a snapshot JSON file.
func SaveSchema(path string, schema *Schema) error {
	data, err := MarshalSchema(schema)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
