package standings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a standings file, choosing YAML for .yaml/.yml and the text
// format for anything else.
func Load(path string, opts ...Option) (*Standings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("standings: open %s: %w", path, err)
	}
	defer f.Close()

	var s *Standings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = ReadYAML(f, opts...)
	default:
		s, err = Read(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
