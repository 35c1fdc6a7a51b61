package path

import (
	"os"
	"path/filepath"
)

// GetProjectRoot walks up from the working directory to the directory
// holding go.mod.
func GetProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		panic("get working directory: " + err.Error())
	}

	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			panic("project root with go.mod not found")
		}

		dir = parent
	}
}

// Migrations returns the goose migrations directory of the project.
func Migrations() string {
	return filepath.Join(GetProjectRoot(), "migrations")
}
