// Package format renders values for machine consumption on stdout. It is
// used by the non-interactive commands; the TUI paints directly.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Supported output formats.
const (
	JSON = "json"
	EDN  = "edn"
)

// Write encodes v to w in the named format. Unknown names are an error so a
// typo on the flag fails loudly instead of printing nothing.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteJSON encodes v as JSON, followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
