// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// ForEngineStart returns hints for JVM bridge startup errors.
// Suggests the environment variables that locate Java and the Marvin jars.
func ForEngineStart() string {
	var hints []string

	if os.Getenv("CHEMOPS_JAVA_BIN") == "" {
		hints = append(hints, "set CHEMOPS_JAVA_BIN if java is not on PATH")
	}
	if os.Getenv("CHEMOPS_CLASSPATH") == "" && os.Getenv("CLASSPATH") == "" {
		hints = append(hints, "set CHEMOPS_CLASSPATH to the Marvin jars and the ChemBridge class")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow calculations.
func ForTimeout() string {
	return format("for large structures, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and the user config directory to create one in.
func ForConfigNotFound() string {
	hint := "use --config /path/to/file.yaml"
	if dir, err := os.UserConfigDir(); err == nil {
		hint += " or create one under " + filepath.Join(dir, "chemops")
	}
	return format(hint)
}

// ForOutputFile returns hints for output file creation errors.
func ForOutputFile() string {
	return format("check parent directory exists and is writable")
}

// format returns a single hint formatted for appending to an error message.
func format(hint string) string {
	return "\n  hint: " + hint
}

// formatHints joins multiple hints, one per line.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
