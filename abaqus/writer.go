package abaqus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/notargets/vesselmesh/mesh"
)

// ErrSerialization marks a failure to encode the generated deck to
// UTF-8 bytes. The deck vocabulary is ASCII, so this guards the Heading
// title, which is caller-supplied.
var ErrSerialization = errors.New("serialization failure")

const (
	// DefaultTitle is the Heading line used when the caller supplies
	// none.
	DefaultTitle = "Pressure Vessel Model"

	// PoissonRatio is fixed for the single isotropic steel material.
	PoissonRatio = "0.3"
)

// Generate builds the cylinder mesh for c and serializes it as an
// Abaqus input deck. It returns the deck text, the same text as UTF-8
// bytes for writing to a file, and the node coordinates in node id
// order for plotting. Identical inputs produce byte-identical decks.
func Generate(c mesh.Cylinder) (content string, data []byte, coords [][]float64, err error) {
	return GenerateTitled(c, DefaultTitle)
}

// GenerateTitled is Generate with a caller-supplied Heading title. An
// empty title falls back to DefaultTitle.
func GenerateTitled(c mesh.Cylinder, title string) (content string, data []byte, coords [][]float64, err error) {
	m, err := mesh.GenerateCylinder(c)
	if err != nil {
		return "", nil, nil, err
	}
	content, data, err = WriteInp(m, c, title)
	if err != nil {
		return "", nil, nil, err
	}
	return content, data, m.Vertices, nil
}

// WriteInp serializes an already generated mesh into the Abaqus deck:
// part with node and S4 element blocks, elastic steel material, shell
// section over the full element set, one assembly instance and a single
// static step with nlgeom on. The step carries no loads or boundary
// conditions; the deck is a structure skeleton, not a runnable case.
func WriteInp(m *mesh.Mesh, c mesh.Cylinder, title string) (content string, data []byte, err error) {
	if c.Thickness <= 0 || c.YoungsModulus <= 0 {
		return "", nil, fmt.Errorf("%w: thickness and Young's modulus must be positive, have t=%g E=%g",
			mesh.ErrInvalidGeometry, c.Thickness, c.YoungsModulus)
	}
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.WriteString("** Abaqus Input File for Shell Model of a Vessel\n")
	b.WriteString("*Heading\n")
	b.WriteString(title + "\n\n")
	b.WriteString("*Part, name=Vessel\n")

	b.WriteString("*Node\n")
	for i, v := range m.Vertices {
		fmt.Fprintf(&b, "%d, %.3f, %.3f, %.3f\n", i+1, v[0], v[1], v[2])
	}

	b.WriteString("*Element, type=S4\n")
	for i, e := range m.EToV {
		fmt.Fprintf(&b, "%d, %d, %d, %d, %d\n", i+1, e[0], e[1], e[2], e[3])
	}

	b.WriteString("*End Part\n\n")
	b.WriteString("*Material, name=Steel\n")
	b.WriteString("*Elastic\n")
	fmt.Fprintf(&b, "%s, %s\n\n", floatString(c.YoungsModulus), PoissonRatio)
	fmt.Fprintf(&b, "*Shell Section, elset=ALL_ELEMENTS, material=Steel, thickness=%s\n", floatString(c.Thickness))
	b.WriteString("*Assembly, name=Assembly\n")
	b.WriteString("*Instance, name=Vessel-1, part=Vessel\n")
	b.WriteString("*End Instance\n")
	b.WriteString("*End Assembly\n\n")
	b.WriteString("*Step, name=StaticStep, nlgeom=YES\n")
	b.WriteString("*Static\n")
	b.WriteString("1.0, 1.0, 1e-05, 1.0\n\n")
	b.WriteString("*End Step\n")

	content = b.String()
	if !utf8.ValidString(content) {
		return "", nil, fmt.Errorf("%w: deck contains invalid UTF-8 (title %q)", ErrSerialization, title)
	}
	return content, []byte(content), nil
}

// floatString prints v with minimal digits but always a decimal point,
// so a whole-number modulus reads 29000000.0 rather than 29000000.
func floatString(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
