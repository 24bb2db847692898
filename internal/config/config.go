package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"lifewatch/pkg/life"
)

// ErrInvalid marks configuration values that cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config holds the run parameters shared by the terminal runner and the GUI.
type Config struct {
	Rows      int           `yaml:"rows"`
	Columns   int           `yaml:"columns"`
	KeepTrack int           `yaml:"keep_track"`
	Period    time.Duration `yaml:"period"`

	// Pattern names a registered preset stamped in the middle of the board.
	Pattern string `yaml:"pattern"`
	// PatternFile is an XML snapshot to load instead of an empty board.
	PatternFile string `yaml:"pattern_file"`
	// SaveFile receives the final board when set.
	SaveFile string `yaml:"save_file"`

	// Density > 0 seeds the board randomly using Seed.
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`

	// MaxGenerations stops the terminal runner after that many generations; 0 means no cap.
	MaxGenerations int64 `yaml:"max_generations"`
	// Watch renders every generation in the terminal runner.
	Watch bool `yaml:"watch"`

	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// DefaultConfig returns the standard configuration: a 20x20 board advanced
// every 500ms with the default history depth.
func DefaultConfig() Config {
	return Config{
		Rows:      20,
		Columns:   20,
		KeepTrack: life.DefaultKeepTrack,
		Period:    500 * time.Millisecond,
		Seed:      42,
		Scale:     24,
		TPS:       60,
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save writes c as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields from key/value pairs using the YAML key names.
// Unknown keys and unparsable values are ignored.
func (c *Config) Apply(cfg map[string]string) {
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["columns"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["keep_track"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.KeepTrack = parsed
		}
	}
	if v, ok := cfg["period"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Period = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["pattern_file"]; ok {
		c.PatternFile = v
	}
	if v, ok := cfg["save_file"]; ok {
		c.SaveFile = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["max_generations"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed >= 0 {
			c.MaxGenerations = parsed
		}
	}
	if v, ok := cfg["watch"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Watch = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Columns <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Columns, c.Rows)
	case c.KeepTrack <= 0:
		return fmt.Errorf("%w: keep_track %d", ErrInvalid, c.KeepTrack)
	case c.Period <= 0:
		return fmt.Errorf("%w: period %s", ErrInvalid, c.Period)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %g", ErrInvalid, c.Density)
	case c.MaxGenerations < 0:
		return fmt.Errorf("%w: max_generations %d", ErrInvalid, c.MaxGenerations)
	case c.Pattern != "" && c.PatternFile != "":
		return fmt.Errorf("%w: pattern and pattern_file are mutually exclusive", ErrInvalid)
	}
	if c.Pattern != "" {
		if _, ok := life.Lookup(c.Pattern); !ok {
			return fmt.Errorf("%w: unknown pattern %q (known: %s)", ErrInvalid, c.Pattern, strings.Join(life.PatternNames(), ", "))
		}
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Flag names match
// the YAML keys so explicitly set flags can be re-applied over a loaded file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Columns, "columns", c.Columns, "board columns")
	fs.IntVar(&c.KeepTrack, "keep_track", c.KeepTrack, "generations kept for cycle detection")
	fs.DurationVar(&c.Period, "period", c.Period, "time between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "preset stamped in the middle of the board ("+strings.Join(life.PatternNames(), ", ")+")")
	fs.StringVar(&c.PatternFile, "pattern_file", c.PatternFile, "XML board to load")
	fs.StringVar(&c.SaveFile, "save_file", c.SaveFile, "XML file receiving the board")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "random fill density in [0,1]; 0 disables")
	fs.Int64Var(&c.MaxGenerations, "max_generations", c.MaxGenerations, "stop after this many generations; 0 disables")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "render every generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
}

// Overrides collects repeatable key=value flags.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set appends one override.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the overrides as a map; later entries win.
func (o Overrides) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// SetFlags returns the flags explicitly set on fs as key/value pairs.
func SetFlags(fs *flag.FlagSet) map[string]string {
	m := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		m[f.Name] = f.Value.String()
	})
	return m
}

// Parse binds the configuration flags plus -config (a YAML file) and -set
// (repeatable key=value overrides) to fs and parses args. Precedence is
// defaults, then the file, then explicitly set flags, then overrides.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	c := DefaultConfig()
	c.Bind(fs)
	path := fs.String("config", "", "YAML configuration file")
	var overrides Overrides
	fs.Var(&overrides, "set", "key=value override, may be repeated")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return c, err
		}
		loaded.Apply(SetFlags(fs))
		c = loaded
	}
	c.Apply(overrides.Map())
	return c, c.Validate()
}
