package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const (
	dotEnvPathVariable = "ENV_FILE"
	defaultDotEnvPath  = ".env"
)

// loadDotEnv loads variables from a .env file into the process environment.
// Variables that are already set are left untouched. A missing file at the
// default location is not an error; a missing file named explicitly via
// ENV_FILE is.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvPath
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file %q: %w", path, err)
	}

	return nil
}
