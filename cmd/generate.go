/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/vesselmesh/InputParameters"
	"github.com/notargets/vesselmesh/abaqus"
	"github.com/notargets/vesselmesh/mesh"
	"github.com/notargets/vesselmesh/plotting"
)

type GenModel struct {
	Params     InputParameters.VesselParameters
	JobFile    string
	OutputFile string
	Graph      bool
	PlotPoints bool
	Profile    bool
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cylindrical vessel shell mesh and write the Abaqus input deck",
	Long: `Generate a cylindrical vessel shell mesh and write the Abaqus input deck,
either from command line parameters or from a YAML job file`,
	Run: func(cmd *cobra.Command, args []string) {
		gm := &GenModel{}
		gm.JobFile, _ = cmd.Flags().GetString("jobFile")
		gm.OutputFile, _ = cmd.Flags().GetString("outputFile")
		gm.Graph, _ = cmd.Flags().GetBool("graph")
		gm.PlotPoints, _ = cmd.Flags().GetBool("plotPoints")
		gm.Profile, _ = cmd.Flags().GetBool("profile")
		gm.Params.Title, _ = cmd.Flags().GetString("title")
		gm.Params.Diameter, _ = cmd.Flags().GetFloat64("diameter")
		gm.Params.Thickness, _ = cmd.Flags().GetFloat64("thickness")
		gm.Params.Height, _ = cmd.Flags().GetFloat64("height")
		gm.Params.YoungsModulus, _ = cmd.Flags().GetFloat64("youngsModulus")
		gm.Params.ElementSize, _ = cmd.Flags().GetFloat64("elementSize")
		processInput(gm)
		RunGenerate(gm)
	},
}

func processInput(gm *GenModel) {
	if len(gm.JobFile) == 0 {
		return
	}
	data, err := ioutil.ReadFile(gm.JobFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Feedwater Heater Shell"
Diameter: 120.0
Thickness: 1.125
Height: 270.0
YoungsModulus: 29000000.0
ElementSize: 6.0
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if err = gm.Params.Parse(data); err != nil {
		fmt.Printf("error parsing job file %s: %s\n", gm.JobFile, err.Error())
		os.Exit(1)
	}
	gm.Params.Print()
}

func RunGenerate(gm *GenModel) {
	if gm.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	c := gm.Params.Cylinder()
	m, err := mesh.GenerateCylinder(c)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	content, data, err := abaqus.WriteInp(m, c, gm.Params.Title)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if len(gm.OutputFile) != 0 {
		if err = ioutil.WriteFile(gm.OutputFile, data, 0644); err != nil {
			fmt.Printf("error writing %s: %s\n", gm.OutputFile, err.Error())
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", gm.OutputFile, len(data))
		fmt.Println(m)
	} else {
		fmt.Print(content)
		fmt.Fprintln(os.Stderr, m)
	}
	if gm.Graph {
		plotting.PlotMesh(m, gm.PlotPoints)
		fmt.Fprintln(os.Stderr, "press enter to close the plot and exit")
		_, _ = fmt.Scanln()
	}
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	GenerateCmd.Flags().Float64P("diameter", "D", 120.0, "Shell outer diameter")
	GenerateCmd.Flags().Float64P("thickness", "t", 1.125, "Shell wall thickness")
	GenerateCmd.Flags().Float64P("height", "L", 270.0, "Shell length along the axis")
	GenerateCmd.Flags().Float64P("youngsModulus", "E", 29000000.0, "Material Young's modulus")
	GenerateCmd.Flags().Float64P("elementSize", "s", 6.0, "Target element edge length")
	GenerateCmd.Flags().StringP("title", "T", "", "Heading title for the input deck")
	GenerateCmd.Flags().StringP("jobFile", "I", "", "YAML file with the vessel parameters, overrides the geometry flags")
	GenerateCmd.Flags().StringP("outputFile", "o", "", "Output .inp file, default writes the deck to stdout")
	GenerateCmd.Flags().BoolP("graph", "g", false, "display the generated mesh in a plot window")
	GenerateCmd.Flags().BoolP("plotPoints", "p", false, "overlay node points on the mesh plot")
	GenerateCmd.Flags().Bool("profile", false, "write a CPU profile of the generation run")
}
