package patternfile

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"lifewatch/pkg/core"
	"lifewatch/pkg/life"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	e, err := life.New(7, 11)
	if err != nil {
		t.Fatal(err)
	}
	e.SetCell(core.Alive, 0, 0)
	e.SetCell(core.Alive, 10, 6)
	e.SetCell(core.Alive, 4, 3)

	path := filepath.Join(t.TempDir(), "board.xml")
	if err := Save(path, life.Export(e)); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Columns != 11 || s.Rows != 7 {
		t.Fatalf("expected 11x7, got %dx%d", s.Columns, s.Rows)
	}
	if !slices.Equal(s.Alive, life.Export(e).Alive) {
		t.Fatalf("alive cells differ: %v", s.Alive)
	}

	loaded, err := life.Import(s)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Field().Equal(e.Field().Clone()) {
		t.Fatal("loaded board differs from the saved one")
	}
}

func TestDecodeDocumentShape(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<config x="4" y="3">
    <alive>
        <point x="1" y="0"/>
        <point x="3" y="2"/>
    </alive>
</config>`
	s, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []life.Point{{X: 1, Y: 0}, {X: 3, Y: 2}}
	if s.Columns != 4 || s.Rows != 3 || !slices.Equal(s.Alive, want) {
		t.Fatalf("unexpected snapshot %+v", s)
	}
}

func TestEncodeWritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	s := life.Snapshot{Columns: 2, Rows: 5, Alive: []life.Point{{X: 1, Y: 4}}}
	if err := Encode(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`<config x="2" y="5">`, `<point x="1" y="4"></point>`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInvalidVersusUnreadable(t *testing.T) {
	_, err := Decode(strings.NewReader(`<config x="3" y="3"><alive><point x="5" y="0"/></alive></config>`))
	if err == nil || !IsInvalid(err) {
		t.Fatalf("out-of-range point must be reported as invalid, got %v", err)
	}

	_, err = Decode(strings.NewReader(`<config x="0" y="3"></config>`))
	if err == nil || !IsInvalid(err) {
		t.Fatalf("zero width must be reported as invalid, got %v", err)
	}

	_, err = Decode(strings.NewReader(`<config x="3"`))
	if err == nil || IsInvalid(err) {
		t.Fatalf("truncated document must be a read failure, got %v", err)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil || IsInvalid(err) {
		t.Fatalf("missing file must be a read failure, got %v", err)
	}
}
