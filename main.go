package main

import "github.com/pagewright/canvas/cmd"

func main() {
	cmd.Execute()
}
