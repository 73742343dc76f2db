package toolchain

// Defaults returns the builtin language table. Binaries are resolved from
// PATH at execution time; a missing toolchain fails that language's requests,
// not the service.
func Defaults() *Registry {
	return NewRegistry(
		&Toolchain{
			Tag: "python",
			Run: []string{"python3", "-c", "{code}"},
		},
		&Toolchain{
			Tag:     "javascript",
			Aliases: []string{"typescript"},
			Run:     []string{"node", "-e", "{code}"},
		},
		&Toolchain{
			Tag:     "rust",
			Source:  "main.rs",
			Compile: []string{"rustc", "main.rs", "-o", "main"},
			Run:     []string{"./main"},
		},
		&Toolchain{
			Tag:    "go",
			Source: "main.go",
			Run:    []string{"go", "run", "main.go"},
		},
		&Toolchain{
			Tag:     "cpp",
			Aliases: []string{"c++"},
			Source:  "main.cpp",
			Compile: []string{"g++", "main.cpp", "-o", "main", "-std=c++17"},
			Run:     []string{"./main"},
		},
		&Toolchain{
			Tag:     "c",
			Source:  "main.c",
			Compile: []string{"gcc", "main.c", "-o", "main"},
			Run:     []string{"./main"},
		},
		&Toolchain{
			Tag:     "java",
			Source:  "{class}.java",
			Compile: []string{"javac", "{class}.java"},
			Run:     []string{"java", "{class}"},
		},
		&Toolchain{
			Tag:     "zig",
			Source:  "main.zig",
			Compile: []string{"zig", "build-exe", "main.zig"},
			Run:     []string{"./main"},
		},
		&Toolchain{
			Tag:    "elixir",
			Source: "main.exs",
			Run:    []string{"elixir", "main.exs"},
		},
		&Toolchain{
			Tag:     "vlang",
			Aliases: []string{"v"},
			Source:  "main.v",
			Run:     []string{"v", "run", "main.v"},
		},
	)
}
