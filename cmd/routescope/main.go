package main

import "github.com/routescope/routescope/cmd/routescope/cmd"

func main() {
	cmd.Execute()
}
