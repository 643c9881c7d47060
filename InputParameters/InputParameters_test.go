package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var (
		err       error
		fileInput = []byte(`
Title: "Feedwater Heater Shell"
Diameter: 120.
Thickness: 1.125
Height: 270.
YoungsModulus: 29000000. # PSI
ElementSize: 6.
`)
	)
	var input VesselParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, "Feedwater Heater Shell", input.Title)
	assert.Equal(t, 120., input.Diameter)
	assert.Equal(t, 1.125, input.Thickness)
	assert.Equal(t, 29000000., input.YoungsModulus)
	input.Print()
	assert.Equal(t, 6., input.ElementSize)

	c := input.Cylinder()
	assert.Equal(t, 270., c.Height)
	assert.Equal(t, 1.125, c.Thickness)
}

func TestParsePartial(t *testing.T) {
	// Missing keys keep their zero values; validation happens in the
	// mesh generator, not here
	var input VesselParameters
	err := input.Parse([]byte("Diameter: 48.\n"))
	assert.NoError(t, err)
	assert.Equal(t, 48., input.Diameter)
	assert.Equal(t, 0., input.ElementSize)
	assert.Equal(t, "", input.Title)
}
