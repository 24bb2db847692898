package status

import (
	"strings"
	"testing"
	"time"

	"lifewatch/pkg/life"
)

func TestFromStats(t *testing.T) {
	st := life.Stats{Rows: 5, Columns: 7, Generations: 12, Alive: 3, Period: 2}
	s := FromStats(st, true, 250*time.Millisecond, "cyclic, period 2, first seen after 10 generations")

	checks := map[string]string{
		"size":       "7x5",
		"alive":      "3",
		"generation": "12",
		"static":     "no",
		"cyclic":     "period 2",
		"state":      "running",
		"period":     "250ms",
	}
	for key, want := range checks {
		got, ok := s.Value(key)
		if !ok || got != want {
			t.Fatalf("%s: got %q (present=%v), expected %q", key, got, ok, want)
		}
	}

	lines := s.Lines()
	if lines[len(lines)-1] != s.Message {
		t.Fatal("message must be the last line")
	}
	if !strings.HasPrefix(lines[1], "  Size:") {
		t.Fatalf("unexpected line layout %q", lines[1])
	}
}

func TestFromStatsIdle(t *testing.T) {
	s := FromStats(life.Stats{Rows: 1, Columns: 1, Static: true}, false, time.Second, "")
	if v, _ := s.Value("state"); v != "idle" {
		t.Fatalf("expected idle, got %q", v)
	}
	if v, _ := s.Value("cyclic"); v != "-" {
		t.Fatalf("expected no period, got %q", v)
	}
	// Three headers, seven fields, two separators.
	if n := len(s.Lines()); n != 12 {
		t.Fatalf("expected 12 lines without a message, got %d", n)
	}
}
