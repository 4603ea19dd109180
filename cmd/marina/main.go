package main

import "github.com/nauticalventures/marina/cmd/marina/cmd"

func main() {
	cmd.Execute()
}
