package main

import "github.com/notargets/vesselmesh/cmd"

func main() {
	cmd.Execute()
}
