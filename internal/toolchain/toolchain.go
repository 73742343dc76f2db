package toolchain

import (
	"strings"
)

// Toolchain describes how one language turns a source snippet into a running
// process: where the source lives on disk, an optional compile step, and the
// run command.
//
// Argv entries and the source filename may carry two placeholders: {code}
// expands to the raw source text (inline interpreters like python and node)
// and {class} expands to the class name extracted from Java-style sources.
type Toolchain struct {
	Tag     string   `yaml:"tag"`
	Aliases []string `yaml:"aliases"`

	// Source is the filename the code is written to inside the workspace.
	// Empty means the code is passed inline on the run argv and no
	// workspace is needed.
	Source  string   `yaml:"source"`
	Compile []string `yaml:"compile"`
	Run     []string `yaml:"run"`
}

// Inline reports whether the code is handed to the interpreter on argv
// instead of being written to disk.
func (t *Toolchain) Inline() bool { return t.Source == "" }

// HasCompile reports whether a compile step precedes the run.
func (t *Toolchain) HasCompile() bool { return len(t.Compile) > 0 }

// SourceName resolves the on-disk filename for a code snippet.
func (t *Toolchain) SourceName(code string) string {
	return expand(t.Source, code)
}

// CompileArgv resolves the compile command, or nil when there is none.
func (t *Toolchain) CompileArgv(code string) []string {
	return expandArgv(t.Compile, code)
}

// RunArgv resolves the run command.
func (t *Toolchain) RunArgv(code string) []string {
	return expandArgv(t.Run, code)
}

func expandArgv(argv []string, code string) []string {
	if len(argv) == 0 {
		return nil
	}
	out := make([]string, len(argv))
	for i, a := range argv {
		out[i] = expand(a, code)
	}
	return out
}

func expand(s, code string) string {
	if strings.Contains(s, "{class}") {
		s = strings.ReplaceAll(s, "{class}", javaClassName(code))
	}
	if strings.Contains(s, "{code}") {
		s = strings.ReplaceAll(s, "{code}", code)
	}
	return s
}

// Registry maps language tags (and aliases) to toolchains. Lookups are exact
// lowercase matches; there is no normalization.
type Registry struct {
	byTag map[string]*Toolchain
	tags  []string
}

// NewRegistry builds a registry from the given toolchains.
func NewRegistry(tcs ...*Toolchain) *Registry {
	r := &Registry{byTag: make(map[string]*Toolchain)}
	for _, t := range tcs {
		r.Add(t)
	}
	return r
}

// Add registers a toolchain, replacing any existing definition for its tag.
func (r *Registry) Add(t *Toolchain) {
	if _, exists := r.byTag[t.Tag]; !exists {
		r.tags = append(r.tags, t.Tag)
	}
	r.byTag[t.Tag] = t
	for _, a := range t.Aliases {
		r.byTag[a] = t
	}
}

// Lookup resolves a language tag or alias.
func (r *Registry) Lookup(tag string) (*Toolchain, bool) {
	t, ok := r.byTag[tag]
	return t, ok
}

// Tags returns the canonical tags in registration order, aliases excluded.
func (r *Registry) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}
