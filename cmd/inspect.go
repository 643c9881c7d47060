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
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/vesselmesh/abaqus"
	"github.com/notargets/vesselmesh/plotting"
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect <file.inp>",
	Short: "Read an Abaqus input deck back and report the mesh it contains",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := abaqus.ReadInp(args[0])
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Println(m)
		min, max := m.Extents()
		fmt.Printf("extents: x [%.3f, %.3f], y [%.3f, %.3f], z [%.3f, %.3f]\n",
			min[0], max[0], min[1], max[1], min[2], max[2])
		if graph, _ := cmd.Flags().GetBool("graph"); graph {
			plotting.PlotMesh(m, false)
			fmt.Fprintln(os.Stderr, "press enter to close the plot and exit")
			_, _ = fmt.Scanln()
		}
	},
}

func init() {
	rootCmd.AddCommand(InspectCmd)
	InspectCmd.Flags().BoolP("graph", "g", false, "display the mesh read from the deck")
}
