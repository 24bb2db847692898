// Package patternfile reads and writes board snapshots as XML documents of the
// form
//
//	<config x="20" y="20">
//	    <alive>
//	        <point x="3" y="4"/>
//	    </alive>
//	</config>
//
// where the root x/y attributes are the column and row counts.
package patternfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"lifewatch/pkg/life"
)

type document struct {
	XMLName xml.Name `xml:"config"`
	X       int      `xml:"x,attr"`
	Y       int      `xml:"y,attr"`
	Points  []point  `xml:"alive>point"`
}

type point struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

// IsInvalid reports whether err means the document was readable but described
// an impossible board, as opposed to an I/O or syntax failure.
func IsInvalid(err error) bool {
	return errors.Is(err, life.ErrMalformedSnapshot)
}

// Decode parses a document and validates the snapshot it describes.
func Decode(r io.Reader) (life.Snapshot, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return life.Snapshot{}, fmt.Errorf("decode pattern: %w", err)
	}
	s := life.Snapshot{Columns: doc.X, Rows: doc.Y}
	if len(doc.Points) > 0 {
		s.Alive = make([]life.Point, len(doc.Points))
		for i, p := range doc.Points {
			s.Alive[i] = life.Point{X: p.X, Y: p.Y}
		}
	}
	if err := s.Validate(); err != nil {
		return life.Snapshot{}, err
	}
	return s, nil
}

// Encode writes s as an indented document.
func Encode(w io.Writer, s life.Snapshot) error {
	doc := document{X: s.Columns, Y: s.Rows, Points: make([]point, len(s.Alive))}
	for i, p := range s.Alive {
		doc.Points[i] = point{X: p.X, Y: p.Y}
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode pattern: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Load reads the document at path.
func Load(path string) (life.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return life.Snapshot{}, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return life.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, replacing any existing file.
func Save(path string, s life.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
