package configs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Default is the embedded reference chain.
const Default = "default.yaml"

//go:embed *.yaml
var embedded embed.FS

// Names returns the embedded chain definitions, sorted.
func Names() []string {
	entries, err := fs.Glob(embedded, "*.yaml")
	if err != nil {
		return nil
	}
	sort.Strings(entries)
	return entries
}

// Load returns an embedded chain definition by filename.
func Load(name string) ([]byte, error) {
	if name == "" {
		name = Default
	}
	data, err := fs.ReadFile(embedded, name)
	if err != nil {
		return nil, fmt.Errorf("read embedded config %q: %w", name, err)
	}
	return data, nil
}
