package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// ParseText parses the plain grid format: one line per arena row, top row
// first. Blank lines and lines starting with ';' are ignored.
func ParseText(id string, data []byte) (Level, error) {
	level := Level{ID: id, Name: id}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		row := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(row) == "" || strings.HasPrefix(row, ";") {
			continue
		}
		level.Rows = append(level.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("text scan: %w", err)
	}
	if len(level.Rows) == 0 {
		return Level{}, fmt.Errorf("text: no rows")
	}
	return level, nil
}
