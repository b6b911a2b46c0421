package main

import "github.com/agentic-research/skyforge/cmd"

func main() {
	cmd.Execute()
}
