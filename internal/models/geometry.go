// internal/models/geometry.go

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Geometry is one of the fixed terminal sizes offered by the options
// dialog, stored in the legacy "COLSxROWS" form.
type Geometry string

const (
	Geometry80x24  Geometry = "80x24"
	Geometry80x43  Geometry = "80x43"
	Geometry132x24 Geometry = "132x24"
	Geometry132x43 Geometry = "132x43"
)

// Geometries lists the supported sizes in dialog order.
var Geometries = []Geometry{Geometry80x24, Geometry80x43, Geometry132x24, Geometry132x43}

// ParseGeometry rejects anything outside the fixed set.
func ParseGeometry(s string) (Geometry, error) {
	for _, g := range Geometries {
		if Geometry(s) == g {
			return g, nil
		}
	}
	return "", fmt.Errorf("unsupported geometry %q", s)
}

// Normalize maps anything outside the fixed set to 80x24.
func (g Geometry) Normalize() Geometry {
	if _, err := ParseGeometry(string(g)); err != nil {
		return Geometry80x24
	}
	return g
}

// Size splits the geometry into column and row counts.
func (g Geometry) Size() (cols, rows int) {
	parts := strings.SplitN(string(g.Normalize()), "x", 2)
	cols, _ = strconv.Atoi(parts[0])
	rows, _ = strconv.Atoi(parts[1])
	return cols, rows
}

func (g Geometry) String() string {
	return string(g)
}
