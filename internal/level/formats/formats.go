// Package formats provides level file format parsers. Parsers only check the
// shape of a document; what the glyphs mean is decided by the level package.
package formats

import (
	"path/filepath"
	"strings"
)

// Level represents a parsed level document.
type Level struct {
	ID       string
	Name     string
	Rows     []string // top row first
	Metadata map[string]string
}

// Parse dispatches on the file extension.
func Parse(name string, data []byte) (Level, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseText(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)), data)
	}
}

// FormatExtensions returns supported file extensions in lookup order.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
