package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
	"github.com/ulikunitz/stree"
)

// Settings are read from the TOML file given with -c.
type Settings struct {
	Tree stree.Config `toml:"tree"`
	Log  LogSettings  `toml:"log"`
	// Jobs limits the number of inputs indexed in parallel.
	Jobs int `toml:"jobs"`
}

type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func (ls LogSettings) LogLevel() (logging.Level, error) {
	if ls.Level == "" {
		return logging.WARNING, nil
	}
	return logging.LogLevel(strings.ToUpper(ls.Level))
}

func defaultSettings() *Settings {
	return &Settings{Jobs: 4}
}

// loadSettings reads the settings file. An empty path returns the
// defaults.
func loadSettings(path string) (*Settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("%s is not a valid toml config file: %w",
			path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("%s: unknown keys %v", path, keys)
	}
	if err = s.verify(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) verify() error {
	if s.Jobs < 1 {
		return fmt.Errorf("invalid jobs=%d; must be >= 1", s.Jobs)
	}
	if _, err := s.Log.LogLevel(); err != nil {
		return fmt.Errorf("invalid log level %q", s.Log.Level)
	}
	cfg := s.Tree
	cfg.ApplyDefaults()
	return cfg.Verify()
}
