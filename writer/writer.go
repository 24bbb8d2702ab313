package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON serializes v as a human-readable JSON array with 2-space
// indentation and writes it to path, overwriting any existing file.
// The file is written in a single call at the very end of the run, so
// a failed run never leaves partial output behind.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	// keep ampersands in names and URLs unescaped
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize records: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
