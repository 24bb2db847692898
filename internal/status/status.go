package status

import (
	"fmt"
	"strconv"
	"time"

	"lifewatch/pkg/life"
)

// Field is a single labelled value shown in a status panel.
type Field struct {
	Key   string
	Label string
	Value string
}

// Group clusters related fields for presentation purposes.
type Group struct {
	Name   string
	Fields []Field
}

// Snapshot captures what the status panels display.
type Snapshot struct {
	Groups  []Group
	Message string
}

// FromStats builds the panel contents for an engine summary, the controller
// state and the most recent report message.
func FromStats(st life.Stats, running bool, period time.Duration, message string) Snapshot {
	cyclic := "-"
	if st.Period > 0 {
		cyclic = fmt.Sprintf("period %d", st.Period)
	}
	state := "idle"
	if running {
		state = "running"
	}
	return Snapshot{
		Groups: []Group{
			{
				Name: "Board",
				Fields: []Field{
					{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", st.Columns, st.Rows)},
					{Key: "alive", Label: "Alive", Value: strconv.Itoa(st.Alive)},
				},
			},
			{
				Name: "Analysis",
				Fields: []Field{
					{Key: "generation", Label: "Generation", Value: strconv.FormatInt(st.Generations, 10)},
					{Key: "static", Label: "Static", Value: yesNo(st.Static)},
					{Key: "cyclic", Label: "Cyclic", Value: cyclic},
				},
			},
			{
				Name: "Run",
				Fields: []Field{
					{Key: "state", Label: "State", Value: state},
					{Key: "period", Label: "Period", Value: period.String()},
				},
			},
		},
		Message: message,
	}
}

// Lines flattens the snapshot into display lines.
func (s Snapshot) Lines() []string {
	var lines []string
	for i, g := range s.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, f := range g.Fields {
			lines = append(lines, fmt.Sprintf("  %s: %s", f.Label, f.Value))
		}
	}
	if s.Message != "" {
		lines = append(lines, "", s.Message)
	}
	return lines
}

// Value returns the value of the field with the given key.
func (s Snapshot) Value(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, f := range g.Fields {
			if f.Key == key {
				return f.Value, true
			}
		}
	}
	return "", false
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
