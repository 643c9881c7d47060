package abaqus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/vesselmesh/mesh"
)

// Helper function to create temporary test files
func createTempInpFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.inp")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

func TestReadInp(t *testing.T) {
	content := `** Test deck
*Heading
Unit Square Tube

*Part, name=Vessel
*Node
1, 1.000, 0.000, 0.000
2, 0.000, 1.000, 0.000
3, -1.000, 0.000, 0.000
4, 0.000, -1.000, 0.000
5, 1.000, 0.000, 2.000
6, 0.000, 1.000, 2.000
7, -1.000, 0.000, 2.000
8, 0.000, -1.000, 2.000
*Element, type=S4
1, 1, 2, 6, 5
2, 2, 3, 7, 6
3, 3, 4, 8, 7
4, 4, 1, 5, 8
*End Part

*Material, name=Steel
*Elastic
1000000.0, 0.3
`
	tmpFile := createTempInpFile(t, content)

	m, err := ReadInp(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 8, m.NumNodes)
	assert.Equal(t, 4, m.NumElements)
	assert.Equal(t, []float64{0, 1, 0}, m.Vertices[1])
	assert.Equal(t, []float64{0, -1, 2}, m.Vertices[7])
	assert.Equal(t, [4]int{4, 1, 5, 8}, m.EToV[3])
}

func TestReadInpRoundTrip(t *testing.T) {
	c := mesh.Cylinder{Diameter: 36, Thickness: 0.5, Height: 48, YoungsModulus: 29000000.0, ElementSize: 4}
	m, err := mesh.GenerateCylinder(c)
	require.NoError(t, err)
	_, data, err := WriteInp(m, c, "")
	require.NoError(t, err)

	tmpFile := createTempInpFile(t, string(data))
	back, err := ReadInp(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, m.NumNodes, back.NumNodes)
	assert.Equal(t, m.NumElements, back.NumElements)
	assert.Equal(t, m.EToV, back.EToV)
	// Coordinates are written with 3 decimals
	for i, v := range m.Vertices {
		for d := 0; d < 3; d++ {
			assert.InDelta(t, v[d], back.Vertices[i][d], 0.0005, "node %d axis %d", i+1, d)
		}
	}
}

func TestReadInpMalformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no node section", "*Heading\nEmpty\n"},
		{"short node line", "*Node\n1, 0.000, 0.000\n"},
		{"bad coordinate", "*Node\n1, 0.000, abc, 0.000\n"},
		{"dangling element reference", `*Node
1, 0.000, 0.000, 0.000
2, 1.000, 0.000, 0.000
3, 1.000, 1.000, 0.000
4, 0.000, 1.000, 0.000
*Element, type=S4
1, 1, 2, 3, 9
`},
		{"gap in node ids", `*Node
1, 0.000, 0.000, 0.000
3, 1.000, 0.000, 0.000
`},
		{"gap in element ids", `*Node
1, 0.000, 0.000, 0.000
2, 1.000, 0.000, 0.000
3, 1.000, 1.000, 0.000
4, 0.000, 1.000, 0.000
*Element, type=S4
2, 1, 2, 3, 4
`},
	}
	for _, tc := range cases {
		tmpFile := createTempInpFile(t, tc.content)
		m, err := ReadInp(tmpFile)
		assert.Error(t, err, tc.name)
		assert.Nil(t, m, tc.name)
	}
}

func TestReadInpMissingFile(t *testing.T) {
	_, err := ReadInp(filepath.Join(t.TempDir(), "nope.inp"))
	assert.Error(t, err)
}
