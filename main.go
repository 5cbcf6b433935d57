package main

import "github.com/bravoman80000/Country-Sim-Bot/cmd"

func main() {
	cmd.Execute()
}
