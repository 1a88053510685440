package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultConfigFileName is looked up in the user's home directory when no
// config file path is given on the command line.
const DefaultConfigFileName = ".env"

// FileLoader parses a dotenv-style file into key/value pairs.
type FileLoader interface {
	Load(path string) (map[string]string, error)
}

// DotenvLoader reads files with godotenv.Read, which returns the parsed
// values without touching the process environment.
type DotenvLoader struct{}

func (DotenvLoader) Load(path string) (map[string]string, error) {
	return godotenv.Read(path)
}

// EnvMap turns os.Environ style "KEY=VALUE" entries into a map. Entries
// without '=' are skipped; later duplicates win.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// expandHome replaces a leading "~" or "~/" with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultHomeDir() (string, error) {
	return os.UserHomeDir()
}
