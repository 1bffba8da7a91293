package main

import "github.com/OpenTraceLab/hypgen/cmd/hypgen/cmd"

func main() {
	cmd.Execute()
}
