package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv exports the variables defined in the dotenv file at path.
// Variables already present in the environment keep their values. A
// missing file is ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading dotenv file %s: %w", path, err)
}
