// Package cli implements the gridctl commands: loading a YAML scene of
// character cells into the lvgrid containers and printing them.
package cli

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgrid/geom"
	"github.com/katalvlaran/lvgrid/sparse"
)

// Sentinel errors for scene and flag parsing.
var (
	// ErrBadRune indicates a cell or default value that is not exactly one character.
	ErrBadRune = errors.New("cli: value must be exactly one character")
	// ErrBadRect indicates a --rect value that is not x,y,w,h with w,h >= 0.
	ErrBadRect = errors.New("cli: rect must be x,y,w,h with non-negative w and h")
)

// defaultRune is used when a scene file omits "default".
const defaultRune = '.'

// Scene is the coordinate space of scene files.
type Scene struct{}

// sceneFile is the YAML layout:
//
//	default: "."
//	cells:
//	  - {x: 2, y: 3, v: "b"}
type sceneFile struct {
	Default string     `yaml:"default"`
	Cells   []cellSpec `yaml:"cells"`
}

type cellSpec struct {
	X int    `yaml:"x"`
	Y int    `yaml:"y"`
	V string `yaml:"v"`
}

// LoadScene decodes a scene from r into a CopyGrid whose default is the
// scene's default character. Later cells overwrite earlier ones.
func LoadScene(r io.Reader) (*sparse.CopyGrid[Scene, rune], error) {
	var sf sceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	def := rune(defaultRune)
	if sf.Default != "" {
		var err error
		if def, err = singleRune(sf.Default); err != nil {
			return nil, fmt.Errorf("scene default: %w", err)
		}
	}

	g := sparse.NewCopy[Scene](def)
	for i, c := range sf.Cells {
		v, err := singleRune(c.V)
		if err != nil {
			return nil, fmt.Errorf("scene cell %d at (%d,%d): %w", i, c.X, c.Y, err)
		}
		g.Set(geom.Pt[Scene](c.X, c.Y), v)
	}

	return g, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadRune)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// RectFromInts builds a rectangle from the four values of a --rect flag,
// in x, y, w, h order.
func RectFromInts(v []int) (geom.Rect[Scene, int], error) {
	if len(v) != 4 || v[2] < 0 || v[3] < 0 {
		return geom.Rect[Scene, int]{}, fmt.Errorf("%v: %w", v, ErrBadRect)
	}

	return geom.R[Scene](v[0], v[1], v[2], v[3]), nil
}
