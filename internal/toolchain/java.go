package toolchain

import "strings"

// javaClassName extracts the public class name from a Java source snippet so
// the file can be named to match. This is a textual scan, not a parser: the
// identifier after "class" on the first line containing "public class" wins.
// Good enough for single-file submissions; sources that hide the declaration
// behind comments or odd formatting fall back to Main.
func javaClassName(code string) string {
	for _, line := range strings.Split(code, "\n") {
		if !strings.Contains(line, "public class") {
			continue
		}
		fields := strings.Fields(line)
		for i, f := range fields {
			if f != "class" || i+1 >= len(fields) {
				continue
			}
			name := strings.Trim(fields[i+1], "{ \t")
			if name != "" {
				return name
			}
		}
	}
	return "Main"
}
