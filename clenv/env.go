// Package clenv provides functionality to work with environment variables.
package clenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadOptional loads environment variables from each of the named dotenv files that exist. Missing files
// are skipped, variables that are already set in the process environment are never overwritten. It
// returns the files that were actually loaded.
func LoadOptional(names ...string) (loaded []string, err error) {
	for _, name := range names {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return loaded, fmt.Errorf("failed to stat '%s': %w", name, err)
		}

		if err := godotenv.Load(name); err != nil {
			return loaded, fmt.Errorf("failed to load '%s': %w", name, err)
		}

		loaded = append(loaded, name)
	}

	return loaded, nil
}
