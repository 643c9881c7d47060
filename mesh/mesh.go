package mesh

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidGeometry marks rejected input parameters: non-positive
// dimensions, or an element size too coarse to form a closed ring of
// quads between at least two rings of nodes.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Cylinder holds the geometry and material inputs for one generation
// run. Dimensions and modulus share whatever unit system the caller
// uses; only ratios enter the mesh resolution.
type Cylinder struct {
	Diameter      float64 // outer diameter
	Thickness     float64 // shell wall thickness, feeds the section definition only
	Height        float64 // axial length
	YoungsModulus float64
	ElementSize   float64 // target element edge length
}

// Mesh is a structured quad shell mesh over a cylinder surface. Node
// ids are 1-based and ring-major: node id i*NumCircumferential+j+1 sits
// on vertical ring i at circumferential position j. Connectivity wraps
// the seam, so the last column of elements references the first column
// of nodes.
type Mesh struct {
	Vertices [][]float64 // vertex coordinates [nnodes][3], index = node id - 1
	EToV     [][4]int    // element to vertex connectivity, 1-based node ids

	NumCircumferential int // elements (and nodes) around the circumference
	NumVertical        int // elements along the axis; node rings = NumVertical+1

	NumNodes    int
	NumElements int
}

// Counts derives the grid resolution for a cylinder. Both counts
// truncate, so the realized element size runs slightly under the
// request; truncation (not rounding) keeps node and element counts
// reproducible.
func (c Cylinder) Counts() (numCircumferential, numVertical int) {
	numCircumferential = int(3.1416 * c.Diameter / c.ElementSize)
	numVertical = int(c.Height / c.ElementSize)
	return
}

// GenerateCylinder builds the structured quad mesh for c. The mesh is
// freshly allocated and never mutated afterward; two calls with the
// same inputs produce identical meshes.
func GenerateCylinder(c Cylinder) (*Mesh, error) {
	if c.Diameter <= 0 || c.Height <= 0 || c.ElementSize <= 0 {
		return nil, fmt.Errorf("%w: diameter, height and element size must be positive, have D=%g H=%g es=%g",
			ErrInvalidGeometry, c.Diameter, c.Height, c.ElementSize)
	}
	numCirc, numVert := c.Counts()
	if numCirc < 3 {
		return nil, fmt.Errorf("%w: element size %g yields %d circumferential elements, need at least 3 to close the ring",
			ErrInvalidGeometry, c.ElementSize, numCirc)
	}
	if numVert < 1 {
		return nil, fmt.Errorf("%w: element size %g exceeds height %g, need at least 1 vertical element",
			ErrInvalidGeometry, c.ElementSize, c.Height)
	}

	var (
		radius = c.Diameter / 2
		m      = &Mesh{
			NumCircumferential: numCirc,
			NumVertical:        numVert,
			NumNodes:           (numVert + 1) * numCirc,
			NumElements:        numVert * numCirc,
		}
	)

	m.Vertices = make([][]float64, 0, m.NumNodes)
	for i := 0; i <= numVert; i++ {
		z := float64(i) * c.ElementSize
		for j := 0; j < numCirc; j++ {
			theta := 360.0 * float64(j) / float64(numCirc)
			x := radius * math.Cos(theta*math.Pi/180)
			y := radius * math.Sin(theta*math.Pi/180)
			m.Vertices = append(m.Vertices, []float64{x, y, z})
		}
	}

	m.EToV = make([][4]int, 0, m.NumElements)
	for i := 0; i < numVert; i++ {
		for j := 0; j < numCirc; j++ {
			m.EToV = append(m.EToV, [4]int{
				m.NodeID(i, j),
				m.NodeID(i, (j+1)%numCirc),
				m.NodeID(i+1, (j+1)%numCirc),
				m.NodeID(i+1, j),
			})
		}
	}
	return m, nil
}

// NodeID maps grid position (ring i, circumferential j) to the 1-based
// node id.
func (m *Mesh) NodeID(i, j int) int {
	return i*m.NumCircumferential + j + 1
}

// Coords returns the vertex coordinates split per axis, in node id
// order.
func (m *Mesh) Coords() (x, y, z []float64) {
	x = make([]float64, len(m.Vertices))
	y = make([]float64, len(m.Vertices))
	z = make([]float64, len(m.Vertices))
	for i, v := range m.Vertices {
		x[i], y[i], z[i] = v[0], v[1], v[2]
	}
	return
}

// Extents returns the axis-aligned bounding box of the mesh as
// {xmin,ymin,zmin}, {xmax,ymax,zmax}.
func (m *Mesh) Extents() (min, max [3]float64) {
	x, y, z := m.Coords()
	min = [3]float64{floats.Min(x), floats.Min(y), floats.Min(z)}
	max = [3]float64{floats.Max(x), floats.Max(y), floats.Max(z)}
	return
}

func (m *Mesh) String() string {
	if m.NumCircumferential > 0 {
		return fmt.Sprintf("quad shell mesh: %d nodes, %d elements (%d circumferential x %d vertical)",
			m.NumNodes, m.NumElements, m.NumCircumferential, m.NumVertical)
	}
	return fmt.Sprintf("quad shell mesh: %d nodes, %d elements", m.NumNodes, m.NumElements)
}
