package puzzle

import (
	"embed"
	"fmt"
	"path"
	"sort"
)

//go:embed samples/*.yaml
var sampleFS embed.FS

// SampleNames lists the embedded sample boards, sorted by name.
func SampleNames() []string {
	entries, err := sampleFS.ReadDir("samples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		names = append(names, name[:len(name)-len(path.Ext(name))])
	}
	sort.Strings(names)
	return names
}

// Sample returns an embedded sample board by name.
func Sample(name string) (Def, error) {
	data, err := sampleFS.ReadFile("samples/" + name + ".yaml")
	if err != nil {
		return Def{}, fmt.Errorf("puzzle: unknown sample %q", name)
	}
	return Parse(data)
}
