package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/vesselmesh/mesh"
)

// Parameters obtained from the YAML job file
type VesselParameters struct {
	Title         string  `yaml:"Title"`
	Diameter      float64 `yaml:"Diameter"`
	Thickness     float64 `yaml:"Thickness"`
	Height        float64 `yaml:"Height"`
	YoungsModulus float64 `yaml:"YoungsModulus"`
	ElementSize   float64 `yaml:"ElementSize"`
}

func (vp *VesselParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, vp)
}

func (vp *VesselParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", vp.Title)
	fmt.Printf("%8.3f\t\t= Diameter\n", vp.Diameter)
	fmt.Printf("%8.3f\t\t= Thickness\n", vp.Thickness)
	fmt.Printf("%8.3f\t\t= Height\n", vp.Height)
	fmt.Printf("%8.1f\t= YoungsModulus\n", vp.YoungsModulus)
	fmt.Printf("%8.3f\t\t= ElementSize\n", vp.ElementSize)
}

// Cylinder maps the job parameters onto the mesh generator's input.
func (vp *VesselParameters) Cylinder() mesh.Cylinder {
	return mesh.Cylinder{
		Diameter:      vp.Diameter,
		Thickness:     vp.Thickness,
		Height:        vp.Height,
		YoungsModulus: vp.YoungsModulus,
		ElementSize:   vp.ElementSize,
	}
}
