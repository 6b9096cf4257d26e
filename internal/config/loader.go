package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tetrisFile = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.cplxtris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// other candidates are skipped when they are missing or broken.
func LoadTetris(customPath string) (TetrisConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}
	return loadFirst(searchPaths(tetrisFile))
}

// searchPaths returns the candidate files in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// loadFirst returns the first candidate that loads cleanly, or the embedded
// default when none does.
func loadFirst(paths []string) (TetrisConfig, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if cfg, err := loadFile(p); err == nil {
			return cfg, nil
		}
	}
	return parse(defaultTetrisYAML, "embedded default")
}

func loadFile(path string) (TetrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	return parse(data, path)
}

// parse decodes data over the built-in defaults, so a partial file only
// overrides the keys it names.
func parse(data []byte, source string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cplxtris", "configs", filename)
}
