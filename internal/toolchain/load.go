package toolchain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile merges toolchain definitions from a YAML file into the registry.
// Entries with a known tag replace the builtin definition; new tags are
// added. This lets a deployment repoint interpreter binaries or add languages
// without rebuilding.
//
// File format is a list of toolchain objects:
//
//	- tag: python
//	  run: ["python3.12", "-c", "{code}"]
//	- tag: lua
//	  source: main.lua
//	  run: ["lua", "main.lua"]
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading toolchains: %w", err)
	}

	var tcs []*Toolchain
	if err := yaml.Unmarshal(data, &tcs); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, t := range tcs {
		if t.Tag == "" {
			return fmt.Errorf("%s: toolchain entry missing tag", path)
		}
		if len(t.Run) == 0 {
			return fmt.Errorf("%s: toolchain %q has no run command", path, t.Tag)
		}
		r.Add(t)
	}
	return nil
}
