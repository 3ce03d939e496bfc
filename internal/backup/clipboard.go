package backup

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard places a snapshot's JSON on the system clipboard.
func CopyToClipboard(schema *Schema) error {
	data, err := MarshalSchema(schema)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("writing to clipboard: %w", err)
	}
	return nil
}

// ReadFromClipboard parses a snapshot from the system clipboard.
func ReadFromClipboard() (*Schema, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading from clipboard: %w", err)
	}
	return ParseSchema([]byte(text))
}
