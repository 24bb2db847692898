package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Rows != 20 || c.Columns != 20 || c.Period != 500*time.Millisecond || c.KeepTrack != 100 {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("rows: 12\ncolumns: 30\nperiod: 250ms\npattern: glider\nmax_generations: 40\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Rows != 12 || c.Columns != 30 {
		t.Fatalf("expected 30x12 board, got %dx%d", c.Columns, c.Rows)
	}
	if c.Period != 250*time.Millisecond {
		t.Fatalf("expected 250ms period, got %s", c.Period)
	}
	if c.Pattern != "glider" || c.MaxGenerations != 40 {
		t.Fatalf("unexpected pattern settings %+v", c)
	}
	if c.KeepTrack != 100 {
		t.Fatal("keys missing from the file must keep their defaults")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"size.yaml":    "rows: 0\n",
		"pattern.yaml": "pattern: spaceship-9000\n",
		"both.yaml":    "pattern: block\npattern_file: board.xml\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.Period = 75 * time.Millisecond
	c.Pattern = "toad"
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != c {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, c)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":    "-4",
		"columns": "33",
		"period":  "soon",
		"density": "0.25",
		"watch":   "true",
	})
	if c.Rows != 20 {
		t.Fatalf("negative rows must be ignored, got %d", c.Rows)
	}
	if c.Columns != 33 || c.Density != 0.25 || !c.Watch {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Period != 500*time.Millisecond {
		t.Fatal("unparsable period must be ignored")
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	var overrides Overrides
	fs.Var(&overrides, "set", "")
	if err := fs.Parse([]string{"-rows", "9", "-set", "keep_track=7", "-set", "seed=5"}); err != nil {
		t.Fatal(err)
	}

	fileCfg := FromMap(map[string]string{"rows": "40", "columns": "41"})
	fileCfg.Apply(SetFlags(fs))
	fileCfg.Apply(overrides.Map())
	if fileCfg.Rows != 9 || fileCfg.Columns != 41 {
		t.Fatalf("explicit flags must win over the file, got %dx%d", fileCfg.Columns, fileCfg.Rows)
	}
	if fileCfg.KeepTrack != 7 || fileCfg.Seed != 5 {
		t.Fatalf("overrides not applied: %+v", fileCfg)
	}

	if err := overrides.Set("novalue"); err == nil {
		t.Fatal("override without '=' must be rejected")
	}
}

func TestParsePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("rows: 8\ncolumns: 9\nperiod: 250ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c, err := Parse(fs, []string{"-config", path, "-columns", "12", "-set", "rows=4", "-set", "pattern=glider"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Rows != 4 || c.Columns != 12 || c.Period != 250*time.Millisecond || c.Pattern != "glider" {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_, err := Parse(fs, []string{"-pattern", "nope"})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
