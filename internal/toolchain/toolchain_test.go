package toolchain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsCoverAllTags(t *testing.T) {
	reg := Defaults()

	tags := []string{
		"python", "javascript", "typescript", "rust", "go",
		"cpp", "c++", "c", "java", "zig", "elixir", "vlang", "v",
	}
	for _, tag := range tags {
		_, ok := reg.Lookup(tag)
		assert.True(t, ok, "tag %q should resolve", tag)
	}
}

func TestLookupUnknown(t *testing.T) {
	reg := Defaults()

	_, ok := reg.Lookup("brainfuck")
	assert.False(t, ok)

	// Matching is exact: no case folding, no trimming.
	_, ok = reg.Lookup("Python")
	assert.False(t, ok)
}

func TestAliasesShareToolchain(t *testing.T) {
	reg := Defaults()

	cpp, ok := reg.Lookup("cpp")
	require.True(t, ok)
	alias, ok := reg.Lookup("c++")
	require.True(t, ok)
	assert.Same(t, cpp, alias)

	vlang, ok := reg.Lookup("vlang")
	require.True(t, ok)
	v, ok := reg.Lookup("v")
	require.True(t, ok)
	assert.Same(t, vlang, v)
}

func TestTagsExcludeAliases(t *testing.T) {
	reg := Defaults()
	assert.NotContains(t, reg.Tags(), "c++")
	assert.Contains(t, reg.Tags(), "cpp")
}

func TestInlineRunArgv(t *testing.T) {
	reg := Defaults()

	py, ok := reg.Lookup("python")
	require.True(t, ok)
	assert.True(t, py.Inline())
	assert.False(t, py.HasCompile())
	assert.Equal(t, []string{"python3", "-c", "print('hi')"}, py.RunArgv("print('hi')"))

	js, ok := reg.Lookup("typescript")
	require.True(t, ok)
	assert.Equal(t, []string{"node", "-e", "console.log(1)"}, js.RunArgv("console.log(1)"))
}

func TestCompiledArgv(t *testing.T) {
	reg := Defaults()

	c, ok := reg.Lookup("c")
	require.True(t, ok)
	assert.False(t, c.Inline())
	assert.Equal(t, "main.c", c.SourceName("int main(){}"))
	assert.Equal(t, []string{"gcc", "main.c", "-o", "main"}, c.CompileArgv("int main(){}"))
	assert.Equal(t, []string{"./main"}, c.RunArgv("int main(){}"))
}

func TestJavaArgvUsesClassName(t *testing.T) {
	reg := Defaults()

	java, ok := reg.Lookup("java")
	require.True(t, ok)

	code := "public class Foo { public static void main(String[] a){} }"
	assert.Equal(t, "Foo.java", java.SourceName(code))
	assert.Equal(t, []string{"javac", "Foo.java"}, java.CompileArgv(code))
	assert.Equal(t, []string{"java", "Foo"}, java.RunArgv(code))
}

func TestJavaClassName(t *testing.T) {
	cases := []struct {
		name string
		code string
		want string
	}{
		{"plain", "public class Foo {", "Foo"},
		{"no space before brace", "public class Bar{", "Bar"},
		{"no brace", "public class Baz", "Baz"},
		{"indented", "  \tpublic class Qux {", "Qux"},
		{"after other lines", "import java.util.*;\npublic class Deep {}", "Deep"},
		{"no public class", "class Hidden {}", "Main"},
		{"empty", "", "Main"},
		{"first declaration wins", "public class First {}\npublic class Second {}", "First"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, javaClassName(tc.code))
		})
	}
}

func TestLoadFileOverridesAndAdds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolchains.yaml")
	yaml := `
- tag: python
  run: ["python3.12", "-c", "{code}"]
- tag: lua
  source: main.lua
  run: ["lua", "main.lua"]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	reg := Defaults()
	require.NoError(t, reg.LoadFile(path))

	py, ok := reg.Lookup("python")
	require.True(t, ok)
	assert.Equal(t, []string{"python3.12", "-c", "x=1"}, py.RunArgv("x=1"))

	lua, ok := reg.Lookup("lua")
	require.True(t, ok)
	assert.Equal(t, "main.lua", lua.Source)
	assert.Contains(t, reg.Tags(), "lua")
}

func TestLoadFileRejectsBadEntries(t *testing.T) {
	dir := t.TempDir()

	missingTag := filepath.Join(dir, "no-tag.yaml")
	require.NoError(t, os.WriteFile(missingTag, []byte("- run: [\"true\"]\n"), 0o644))
	assert.Error(t, Defaults().LoadFile(missingTag))

	missingRun := filepath.Join(dir, "no-run.yaml")
	require.NoError(t, os.WriteFile(missingRun, []byte("- tag: lua\n"), 0o644))
	assert.Error(t, Defaults().LoadFile(missingRun))

	assert.Error(t, Defaults().LoadFile(filepath.Join(dir, "absent.yaml")))
}
