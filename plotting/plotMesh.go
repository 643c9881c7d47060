package plotting

import (
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/vesselmesh/mesh"
)

// PlotMesh renders the generated quad mesh in an isometric projection.
// Each quad panel is split into two triangles for the chart's TriMesh
// series; the plot shows the authoritative generated nodes, not an
// approximation of them.
func PlotMesh(m *mesh.Mesh, plotPoints bool) (chart *chart2d.Chart2D) {
	var (
		points  []graphics2D.Point
		trimesh graphics2D.TriMesh
		pu, pv  = project(m)
	)
	points = make([]graphics2D.Point, m.NumNodes)
	for i := range points {
		points[i].X[0] = float32(pu[i])
		points[i].X[1] = float32(pv[i])
	}
	trimesh.Triangles = make([]graphics2D.Triangle, 2*m.NumElements)
	trimesh.Attributes = make([][]float32, 2*m.NumElements)
	for k, e := range m.EToV {
		// Quad n1-n2-n3-n4 splits along the n1-n3 diagonal. TriMesh
		// node indices are 0-based.
		trimesh.Triangles[2*k].Nodes = [3]int32{int32(e[0] - 1), int32(e[1] - 1), int32(e[2] - 1)}
		trimesh.Triangles[2*k+1].Nodes = [3]int32{int32(e[0] - 1), int32(e[2] - 1), int32(e[3] - 1)}
		trimesh.Attributes[2*k] = make([]float32, 3)
		trimesh.Attributes[2*k+1] = make([]float32, 3)
	}
	trimesh.Geometry = points
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.3)
	chart = chart2d.NewChart2D(1920, 1920, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	colorMap := utils2.NewColorMap(0, 1, 1)
	chart.AddColorMap(colorMap)
	go chart.Plot()
	white := color.RGBA{
		R: 255,
		G: 255,
		B: 255,
		A: 0,
	}
	black := color.RGBA{
		R: 0,
		G: 0,
		B: 0,
		A: 0,
	}
	if err := chart.AddTriMesh("QuadMesh", trimesh,
		chart2d.NoGlyph, chart2d.Solid, white); err != nil {
		panic("unable to add graph series")
	}
	if plotPoints {
		if err := chart.AddSeries("Nodes", pu, pv,
			chart2d.CircleGlyph, chart2d.NoLine, black); err != nil {
			panic(err)
		}
	}
	return
}

// project maps the 3D node coordinates to a 2D isometric view:
// u = (x-y)cos30, v = z + (x+y)sin30.
func project(m *mesh.Mesh) (u, v []float64) {
	var (
		x, y, z = m.Coords()
		cos30   = math.Cos(30 * math.Pi / 180)
		sin30   = math.Sin(30 * math.Pi / 180)
	)
	u = make([]float64, len(x))
	v = make([]float64, len(x))
	for i := range x {
		u[i] = (x[i] - y[i]) * cos30
		v[i] = z[i] + (x[i]+y[i])*sin30
	}
	return
}
