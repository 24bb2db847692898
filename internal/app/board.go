package app

import (
	"fmt"

	"lifewatch/internal/config"
	"lifewatch/internal/patternfile"
	"lifewatch/pkg/life"
)

// WindowTitle is the title of the GUI window.
const WindowTitle = "lifewatch - Game of Life"

// BuildEngine creates the starting board described by cfg: a loaded pattern
// file, or an empty board optionally seeded randomly and stamped with a preset.
func BuildEngine(cfg config.Config) (*life.Engine, error) {
	opts := []life.Option{life.WithKeepTrack(cfg.KeepTrack)}
	if cfg.PatternFile != "" {
		s, err := patternfile.Load(cfg.PatternFile)
		if err != nil {
			return nil, err
		}
		return life.Import(s, opts...)
	}

	e, err := life.New(cfg.Rows, cfg.Columns, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Density > 0 {
		e.Randomize(cfg.Seed, cfg.Density)
	}
	if cfg.Pattern != "" {
		p, ok := life.Lookup(cfg.Pattern)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q", cfg.Pattern)
		}
		if err := e.StampCentered(p); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// LoadMessage maps a load failure to the text shown to the user.
func LoadMessage(err error) string {
	if patternfile.IsInvalid(err) {
		return "File invalid."
	}
	return "Loading failed."
}
